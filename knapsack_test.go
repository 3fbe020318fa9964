package cutstock

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPriceKnapsack_PicksHighestDualDensity(t *testing.T) {
	lines := []demandLine{
		{Length: 50, Quantity: 3},
		{Length: 30, Quantity: 3},
	}
	duals := []float64{2.0, 0.5}
	cfg := pricerConfig{maxDPCells: DefaultMaxDPCells}

	res, err := priceKnapsack(lines, duals, 100, cfg)
	require.NoError(t, err)
	require.Equal(t, 2, res.x[0]) // 2x50 = 100, value 4.0
	require.InDelta(t, 4.0, res.objective, 1e-6)
}

func TestPriceKnapsack_RespectsQuantityBound(t *testing.T) {
	lines := []demandLine{{Length: 10, Quantity: 2}}
	duals := []float64{1.0}
	cfg := pricerConfig{maxDPCells: DefaultMaxDPCells}

	res, err := priceKnapsack(lines, duals, 100, cfg)
	require.NoError(t, err)
	require.Equal(t, 2, res.x[0])
}

func TestPriceKnapsack_FallsBackToBranchAndBound(t *testing.T) {
	lines := []demandLine{{Length: 10, Quantity: 5}}
	duals := []float64{1.0}
	cfg := pricerConfig{maxDPCells: 1} // forces the BB fallback

	res, err := priceKnapsack(lines, duals, 50, cfg)
	require.NoError(t, err)
	require.True(t, res.fromBB)
	require.Equal(t, 5, res.x[0])
}
