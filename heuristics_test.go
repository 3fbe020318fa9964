package cutstock

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func demandLines(t *testing.T, raw []DemandInput, rollLength int) []demandLine {
	t.Helper()
	lines, err := normalizeDemand(raw, rollLength, 0)
	require.NoError(t, err)
	return lines
}

func TestRunFFD_SingleRollWhenFits(t *testing.T) {
	lines := demandLines(t, []DemandInput{{Length: 50, Quantity: 2, Priority: PriorityNormal}}, 100)
	plan := runFFD(lines, 100)
	require.Equal(t, 1, totalRollsOf(plan))
	require.Equal(t, 0, totalWasteOf(plan))
}

func TestRunFFD_TwoRollsWhenDistinctPiecesDontShare(t *testing.T) {
	// S2: L=100, demand=[(60,1),(50,1)] -> 2 rolls, waste=90 (40 on the
	// first roll plus 50 on the second; see DESIGN.md "Open Question
	// resolution 5" for why the scenario's own narrative figure of 80 is
	// inconsistent with the waste invariant the rest of the repo applies).
	lines := demandLines(t, []DemandInput{
		{Length: 60, Quantity: 1, Priority: PriorityNormal},
		{Length: 50, Quantity: 1, Priority: PriorityNormal},
	}, 100)
	plan := runFFD(lines, 100)
	require.Equal(t, 2, totalRollsOf(plan))
	require.Equal(t, 90, totalWasteOf(plan))
}

func TestRunBFD_TightestFit(t *testing.T) {
	lines := demandLines(t, []DemandInput{
		{Length: 60, Quantity: 1, Priority: PriorityNormal},
		{Length: 30, Quantity: 1, Priority: PriorityNormal},
		{Length: 10, Quantity: 1, Priority: PriorityNormal},
	}, 100)
	plan := runBFD(lines, 100)
	require.Equal(t, 1, totalRollsOf(plan))
}

func TestRunHybrid_PicksLowerWastePlan(t *testing.T) {
	lines := demandLines(t, []DemandInput{
		{Length: 50, Quantity: 2, Priority: PriorityNormal},
	}, 100)
	plan := runHybrid(lines, 100)
	require.Equal(t, 0, totalWasteOf(plan))
}

func TestMergeIdenticalPatterns(t *testing.T) {
	p, err := newPattern(map[int]int{50: 2}, 100)
	require.NoError(t, err)
	plan := []PatternUsage{{Pattern: p, RollsUsed: 1}, {Pattern: p, RollsUsed: 2}}
	merged := mergeIdenticalPatterns(plan)
	require.Len(t, merged, 1)
	require.Equal(t, 3, merged[0].RollsUsed)
}
