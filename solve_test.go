package cutstock_test

import (
	"testing"

	"github.com/arnovek/cutstock"
	"github.com/stretchr/testify/require"
)

// TestSolve_S1 covers spec scenario S1: single pattern, full utilization.
func TestSolve_S1(t *testing.T) {
	req := cutstock.NewRequest(100, []cutstock.DemandInput{
		{Length: 50, Quantity: 2, Priority: cutstock.PriorityNormal},
	}, cutstock.WithGoal(cutstock.MinimizeWaste))

	res, err := cutstock.Solve(req)
	require.NoError(t, err)
	require.Equal(t, 1, res.TotalRolls)
	require.InDelta(t, 100.0, res.Efficiency, 1e-6)
	require.Equal(t, 0, res.TotalWaste)
}

// TestSolve_S2 covers spec scenario S2: FFD on two distinct lengths. The
// waste figure here is derived from the invariant totalWaste = Σ waste ·
// rollsUsed (90), not the scenario narrative's stated 80 — see DESIGN.md
// "Open Question resolution 5" for why the two numbers in the scenario
// text are mutually inconsistent and the invariant wins.
func TestSolve_S2(t *testing.T) {
	req := cutstock.NewRequest(100, []cutstock.DemandInput{
		{Length: 60, Quantity: 1, Priority: cutstock.PriorityNormal},
		{Length: 50, Quantity: 1, Priority: cutstock.PriorityNormal},
	}, cutstock.WithAlgorithm(cutstock.FirstFitDecreasing))

	res, err := cutstock.Solve(req)
	require.NoError(t, err)
	require.Equal(t, 2, res.TotalRolls)
	require.Equal(t, 90, res.TotalWaste)
	require.InDelta(t, 55.0, res.Efficiency, 1e-6)
}

// TestSolve_S5 covers spec scenario S5: demand that doesn't divide evenly.
func TestSolve_S5(t *testing.T) {
	req := cutstock.NewRequest(10, []cutstock.DemandInput{
		{Length: 3, Quantity: 7, Priority: cutstock.PriorityNormal},
	})

	res, err := cutstock.Solve(req)
	require.NoError(t, err)
	require.Equal(t, 3, res.TotalRolls)
	require.Equal(t, 9, res.TotalWaste)
}

// TestSolve_S3 covers spec scenario S3: column generation, minimize_rolls.
func TestSolve_S3(t *testing.T) {
	req := cutstock.NewRequest(100, []cutstock.DemandInput{
		{Length: 60, Quantity: 1, Priority: cutstock.PriorityNormal},
		{Length: 40, Quantity: 1, Priority: cutstock.PriorityNormal},
		{Length: 30, Quantity: 2, Priority: cutstock.PriorityNormal},
	}, cutstock.WithAlgorithm(cutstock.ColumnGeneration), cutstock.WithGoal(cutstock.MinimizeRolls))

	res, err := cutstock.Solve(req)
	require.NoError(t, err)
	require.Equal(t, 2, res.TotalRolls)
	require.InDelta(t, 80.0, res.Efficiency, 1e-6)
}

// TestSolve_S4 covers spec scenario S4: demand that exactly fills the
// ceil(totalLength/L) lower bound on rolls.
func TestSolve_S4(t *testing.T) {
	req := cutstock.NewRequest(600, []cutstock.DemandInput{
		{Length: 100, Quantity: 5, Priority: cutstock.PriorityNormal},
		{Length: 150, Quantity: 3, Priority: cutstock.PriorityNormal},
		{Length: 200, Quantity: 2, Priority: cutstock.PriorityNormal},
	}, cutstock.WithGoal(cutstock.MinimizeWaste))

	res, err := cutstock.Solve(req)
	require.NoError(t, err)
	require.Equal(t, 3, res.TotalRolls)
	require.InDelta(t, 75.0, res.Efficiency, 1e-6)
}

func TestSolve_DemandCoverageInvariant(t *testing.T) {
	req := cutstock.NewRequest(600, []cutstock.DemandInput{
		{Length: 100, Quantity: 5, Priority: cutstock.PriorityNormal},
		{Length: 150, Quantity: 3, Priority: cutstock.PriorityNormal},
		{Length: 200, Quantity: 2, Priority: cutstock.PriorityNormal},
	})

	res, err := cutstock.Solve(req)
	require.NoError(t, err)

	covered := map[int]int{}
	for _, p := range res.Patterns {
		for _, c := range p.Cuts {
			covered[c.Length] += c.Quantity * p.RollsUsed
		}
	}
	require.GreaterOrEqual(t, covered[100], 5)
	require.GreaterOrEqual(t, covered[150], 3)
	require.GreaterOrEqual(t, covered[200], 2)
}

func TestSolve_Determinism(t *testing.T) {
	req := cutstock.NewRequest(100, []cutstock.DemandInput{
		{Length: 60, Quantity: 1, Priority: cutstock.PriorityNormal},
		{Length: 40, Quantity: 1, Priority: cutstock.PriorityNormal},
		{Length: 30, Quantity: 2, Priority: cutstock.PriorityNormal},
	}, cutstock.WithAlgorithm(cutstock.ColumnGeneration), cutstock.WithGoal(cutstock.MinimizeRolls))

	res1, err := cutstock.Solve(req)
	require.NoError(t, err)
	res2, err := cutstock.Solve(req)
	require.NoError(t, err)
	require.Equal(t, res1.TotalRolls, res2.TotalRolls)
	require.Equal(t, res1.Patterns, res2.Patterns)
}

func TestSolve_RejectsEmptyDemand(t *testing.T) {
	req := cutstock.NewRequest(100, nil)
	_, err := cutstock.Solve(req)
	require.ErrorIs(t, err, cutstock.ErrEmptyDemand)
}

func TestSolveRange_SkipsInfeasibleLengthsAndPicksBest(t *testing.T) {
	rr := cutstock.RangeRequest{
		MinRollLength: 100,
		MaxRollLength: 200,
		Step:          10,
		UnitCost:      1,
		Algorithm:     cutstock.FirstFitDecreasing,
		Goal:          cutstock.MinimizeRolls,
		Demand: []cutstock.DemandInput{
			{Length: 40, Quantity: 5, Priority: cutstock.PriorityNormal},
			{Length: 60, Quantity: 3, Priority: cutstock.PriorityNormal},
		},
	}

	var events []cutstock.ProgressEvent
	outcome, err := cutstock.SolveRange(rr, func(e cutstock.ProgressEvent) {
		events = append(events, e)
	})
	require.NoError(t, err)
	require.NotEmpty(t, outcome.Results)
	require.NotEmpty(t, events)
	require.Equal(t, len(outcome.Results), outcome.Summary.TotalConfigurations)
	require.GreaterOrEqual(t, outcome.Summary.BestEfficiency, outcome.Summary.WorstEfficiency)
	// S6: best efficiency >= mean efficiency >= worst efficiency.
	require.GreaterOrEqual(t, outcome.Summary.BestEfficiency, outcome.Summary.MeanEfficiency)
	require.GreaterOrEqual(t, outcome.Summary.MeanEfficiency, outcome.Summary.WorstEfficiency)
}

func TestSolveRange_NoFeasibleLength(t *testing.T) {
	rr := cutstock.RangeRequest{
		MinRollLength: 10,
		MaxRollLength: 20,
		Step:          5,
		Demand: []cutstock.DemandInput{
			{Length: 100, Quantity: 1, Priority: cutstock.PriorityNormal},
		},
	}
	_, err := cutstock.SolveRange(rr, nil)
	require.ErrorIs(t, err, cutstock.ErrNoFeasibleLength)
}
