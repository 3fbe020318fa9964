package cutstock

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSeedPool_OneSingletonPerLength(t *testing.T) {
	lines := []demandLine{{Length: 50, Quantity: 2}, {Length: 30, Quantity: 1}}
	pool, err := seedPool(lines, 100)
	require.NoError(t, err)
	require.Len(t, pool, 2)
	for i, l := range lines {
		require.Equal(t, 1, pool[i].CountOf(l.Length), "seed pattern for length %d must carry exactly one piece", l.Length)
	}
}

func TestSolveMaster_FeasibleOnSingletonPool(t *testing.T) {
	lines := []demandLine{{Length: 50, Quantity: 2}}
	pool, err := seedPool(lines, 100)
	require.NoError(t, err)

	x, duals, objective, err := solveMaster(lines, pool)
	require.NoError(t, err)
	require.Len(t, x, 1)
	require.Len(t, duals, 1)
	// The singleton pattern carries one piece per roll, so meeting a
	// demand of 2 needs 2 rolls cut to it.
	require.InDelta(t, 2.0, x[0], 1e-6)
	require.InDelta(t, 2.0, objective, 1e-6)
}
