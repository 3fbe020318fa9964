// Solve dispatches a Request to the requested algorithm family, assembles
// its trace and performance counters, and produces the final Result.
//
// Design principles (mirroring the teacher's tsp dispatcher):
//   - Deterministic: no time-based randomness anywhere in the solve path.
//   - Strict sentinels: only errors from errors.go; fmt.Errorf only for
//     internal invariant violations that should never reach a caller.
//   - Resource-failure downgrade: a column-generation run that hits a
//     resource or backend error does not abort; it falls back to Hybrid
//     and reports convergence = error with the cause recorded.

package cutstock

import "time"

// Solve runs the solver for a single master roll length (spec.md §6).
func Solve(req Request) (Result, error) {
	if err := req.Validate(); err != nil {
		return Result{}, err
	}

	tracer := newStepTracer()
	overallStart := time.Now()

	endNormalize := tracer.begin("normalize", "")
	lines, err := normalizeDemand(req.Demand, req.MasterRollLength, req.DemandCap)
	endNormalize(err)
	if err != nil {
		return Result{}, err
	}

	unitCost := effectiveUnitCost(req.UnitCost)

	var cgOutcome *colgenOutcome
	var cgErr error
	convergence := ConvergenceOptimal
	var errorDetail string

	if req.Algorithm == ColumnGeneration {
		endInit := tracer.begin("initialize pool", "")
		endInit(nil)

		endIterate := tracer.begin("iterate pricing", "")
		outcome, err := runColumnGeneration(lines, req.MasterRollLength, req.Cancellation)
		endIterate(err)
		if err != nil {
			if err == ErrCancelled {
				return Result{}, err
			}
			if !downgradable(err) {
				return Result{}, err
			}
			cgErr = err
			convergence = ConvergenceError
			errorDetail = err.Error()
		} else {
			endRound := tracer.begin("round to integer", "")
			endRound(nil)
			cgOutcome = &outcome
			convergence = outcome.convergence
		}
	}

	endFinalize := tracer.begin("finalize", "")
	win := selectPlan(lines, req.MasterRollLength, req.Algorithm, req.Goal, unitCost, cgOutcome)
	endFinalize(nil)

	perf := PerformanceCounters{
		ExecutionTime: time.Since(overallStart),
		Convergence:   convergence,
	}
	if cgOutcome != nil {
		perf.PatternsEvaluated = cgOutcome.patternsEvaluated
		perf.Iterations = cgOutcome.iterations
	}
	if cgErr != nil {
		tracer.steps[len(tracer.steps)-1].Detail = errorDetail
	}

	return buildResult(lines, req.MasterRollLength, win, unitCost, tracer.result(), perf), nil
}

// SolveRange runs Solve across an arithmetic progression of master roll
// lengths (spec.md §4.9, §6), skipping lengths too short for the longest
// demanded piece, and reports the best configuration by goal score.
func SolveRange(req RangeRequest, sink ProgressSink) (RangeOutcome, error) {
	if err := req.Validate(); err != nil {
		return RangeOutcome{}, err
	}

	var lengths []int
	for l := req.MinRollLength; l <= req.MaxRollLength; l += req.Step {
		lengths = append(lengths, l)
	}

	var results []RangeResult
	var bestScore float64
	var best RangeResult
	haveBest := false
	var totalWall time.Duration

	for i, l := range lengths {
		if sink != nil {
			sink(ProgressEvent{Completed: i, Total: len(lengths), CurrentConfiguration: l})
		}
		if req.Cancellation.fired() {
			return RangeOutcome{}, ErrCancelled
		}

		demandMax := maxDemandLength(req.Demand)
		if demandMax > l {
			continue
		}

		start := time.Now()
		solveReq := NewRequest(l, req.Demand,
			WithAlgorithm(req.Algorithm),
			WithGoal(req.Goal),
			WithUnitCost(req.UnitCost),
			WithDemandCap(req.DemandCap),
		)
		solveReq.Cancellation = req.Cancellation
		result, err := Solve(solveReq)
		elapsed := time.Since(start)
		totalWall += elapsed
		if err == ErrCancelled {
			return RangeOutcome{}, err
		}
		if err != nil {
			// A single-L failure never aborts the sweep (spec.md §7).
			continue
		}

		rr := RangeResult{MasterRollLength: l, Optimization: result}
		results = append(results, rr)

		score := rangeScore(req.Goal, result, effectiveUnitCost(req.UnitCost))
		if !haveBest || score < bestScore {
			bestScore = score
			best = rr
			haveBest = true
		}
	}

	if !haveBest {
		return RangeOutcome{}, ErrNoFeasibleLength
	}

	summary := computeRangeSummary(results, totalWall)
	return RangeOutcome{Results: results, BestConfiguration: best, Summary: summary}, nil
}

// maxDemandLength returns the largest requested piece length, or 0 if empty.
func maxDemandLength(demand []DemandInput) int {
	max := 0
	for _, d := range demand {
		if d.Length > max {
			max = d.Length
		}
	}
	return max
}

// effectiveUnitCost applies the same non-positive-cost default Solve uses
// (spec.md §4.1), so the range driver scores MinimizeCost with the same
// per-roll cost Solve itself billed.
func effectiveUnitCost(unitCost float64) float64 {
	if unitCost <= 0 {
		return defaultUnitCost
	}
	return unitCost
}

// rangeScore mirrors goalScore but works directly off a finished Result,
// since the range driver does not keep the FFD baseline used by
// balance_all inside a single solve; balance_all degrades to efficiency
// comparison across L values, which is the quantity the range summary
// itself reports on (spec.md §4.9's best/worst/mean efficiency).
func rangeScore(goal Goal, r Result, unitCost float64) float64 {
	switch goal {
	case MinimizeWaste:
		return float64(r.TotalWaste)
	case MinimizeRolls:
		return float64(r.TotalRolls)
	case MinimizeCost:
		return float64(r.TotalRolls) * unitCost
	default:
		return -r.Efficiency
	}
}

func computeRangeSummary(results []RangeResult, totalWall time.Duration) RangeSummary {
	if len(results) == 0 {
		return RangeSummary{}
	}
	best, worst, sum := results[0].Optimization.Efficiency, results[0].Optimization.Efficiency, 0.0
	for _, r := range results {
		e := r.Optimization.Efficiency
		if e > best {
			best = e
		}
		if e < worst {
			worst = e
		}
		sum += e
	}
	return RangeSummary{
		TotalConfigurations: len(results),
		BestEfficiency:      best,
		WorstEfficiency:     worst,
		MeanEfficiency:      sum / float64(len(results)),
		TotalWallTime:       totalWall,
	}
}
