package cutstock

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunColumnGeneration_MeetsDemand(t *testing.T) {
	lines := []demandLine{
		{Length: 60, Quantity: 1, Priority: PriorityNormal},
		{Length: 40, Quantity: 1, Priority: PriorityNormal},
		{Length: 30, Quantity: 2, Priority: PriorityNormal},
	}
	outcome, err := runColumnGeneration(lines, 100, Cancellation{})
	require.NoError(t, err)

	covered := map[int]int{}
	for _, pu := range outcome.plan {
		for _, c := range pu.Pattern.Cuts() {
			covered[c.Length] += c.Quantity * pu.RollsUsed
		}
	}
	require.GreaterOrEqual(t, covered[60], 1)
	require.GreaterOrEqual(t, covered[40], 1)
	require.GreaterOrEqual(t, covered[30], 2)
}

func TestRunColumnGeneration_DetectsOptimalConvergence(t *testing.T) {
	lines := []demandLine{{Length: 50, Quantity: 2, Priority: PriorityNormal}}
	outcome, err := runColumnGeneration(lines, 100, Cancellation{})
	require.NoError(t, err)
	require.Equal(t, ConvergenceOptimal, outcome.convergence)
}
