package cutstock

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGoalScore_MinimizeWasteUsesWaste(t *testing.T) {
	s := planStats{rolls: 2, waste: 40, cost: 2, efficiency: 80}
	require.Equal(t, 40.0, goalScore(MinimizeWaste, s, s))
}

func TestGoalScore_BalanceAllNormalizesAgainstBaseline(t *testing.T) {
	baseline := planStats{rolls: 4, waste: 80, cost: 4}
	s := planStats{rolls: 2, waste: 40, cost: 2}
	got := goalScore(BalanceAll, s, baseline)
	require.InDelta(t, 0.5, got, 1e-9)
}

func TestSelectPlan_KeepsRequestedFFDPlan(t *testing.T) {
	lines := []demandLine{
		{Length: 60, Quantity: 1, Priority: PriorityNormal},
		{Length: 40, Quantity: 1, Priority: PriorityNormal},
	}
	win := selectPlan(lines, 100, FirstFitDecreasing, MinimizeWaste, 1, nil)
	require.Equal(t, FirstFitDecreasing, win.algorithm)
	require.Equal(t, 0, win.stats.waste)
}

func TestBetterCandidate_TieBreaksOnPriority(t *testing.T) {
	a := candidate{score: 1.0, lastHighIndex: 2}
	b := candidate{score: 1.0, lastHighIndex: 5}
	require.True(t, betterCandidate(a, b))
	require.False(t, betterCandidate(b, a))
}
