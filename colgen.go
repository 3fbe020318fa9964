package cutstock

import (
	"sort"
	"time"
)

// Column-generation constants (spec.md §4.5).
const (
	colgenEpsilon    = 1e-6
	colgenMaxIters   = 200
	colgenTimeBudget = 10 * time.Second
)

// colgenOutcome is the internal result of the pricing loop, before goal
// scoring and report assembly take over.
type colgenOutcome struct {
	plan        []PatternUsage
	convergence Convergence
	iterations  int
	patternsEvaluated int
	detail      string
}

// runColumnGeneration executes the pricing loop of spec.md §4.5: alternate
// solving the LP master over a growing pattern pool and pricing a new
// column with the knapsack pricer, until no column of positive reduced
// cost exists, a repeated column is produced, or the iteration/time budget
// is exhausted. It then rounds the fractional master solution to an
// integer plan.
func runColumnGeneration(lines []demandLine, rollLength int, cancel Cancellation) (colgenOutcome, error) {
	pool, err := seedPool(lines, rollLength)
	if err != nil {
		return colgenOutcome{}, err
	}

	start := time.Now()
	var (
		primal         []float64
		duals          []float64
		iterations     int
		convergence    = ConvergenceOptimal
		detail         string
	)

	pricerCfg := pricerConfig{maxDPCells: DefaultMaxDPCells, cancel: cancel}

loop:
	for {
		if cancel.fired() {
			return colgenOutcome{}, ErrCancelled
		}

		x, y, _, err := solveMaster(lines, pool)
		if err != nil {
			return colgenOutcome{}, err
		}
		primal, duals = x, y

		capacity := rollLength
		kr, err := priceKnapsack(lines, duals, capacity, pricerCfg)
		if err != nil {
			return colgenOutcome{}, err
		}

		if kr.objective <= 1+colgenEpsilon {
			convergence = ConvergenceOptimal
			break loop
		}

		counts := make(map[int]int, len(lines))
		for i, l := range lines {
			if kr.x[i] > 0 {
				counts[l.Length] = kr.x[i]
			}
		}
		candidate, err := newPattern(counts, rollLength)
		if err != nil {
			return colgenOutcome{}, err
		}
		if containsPattern(pool, candidate) {
			convergence = ConvergenceNearOptimal
			detail = "repeated column: pricing converged without strict improvement"
			break loop
		}
		pool = append(pool, candidate)
		iterations++

		if iterations >= colgenMaxIters {
			convergence = ConvergenceTimeout
			detail = "iteration budget exhausted"
			break loop
		}
		if time.Since(start) >= colgenTimeBudget {
			convergence = ConvergenceTimeout
			detail = "time budget exhausted"
			break loop
		}
	}

	plan, roundingGap := roundToIntegerPlan(lines, rollLength, pool, primal)
	if convergence == ConvergenceOptimal && roundingGap > 1 {
		convergence = ConvergenceNearOptimal
		if detail == "" {
			detail = "integer rounding gap exceeded 1 roll"
		}
	}

	return colgenOutcome{
		plan:              plan,
		convergence:       convergence,
		iterations:        iterations,
		patternsEvaluated: len(pool),
		detail:            detail,
	}, nil
}

// containsPattern reports whether pool already holds a pattern
// canonically equal to p.
func containsPattern(pool []Pattern, p Pattern) bool {
	for _, existing := range pool {
		if existing.Equal(p) {
			return true
		}
	}
	return false
}

// roundToIntegerPlan implements spec.md §4.5's two-phase rounding: floor
// each pattern's fractional usage, subtract its contribution from residual
// demand, then hand any remainder to the Hybrid heuristic, which packs the
// residual pieces into fresh rolls; the pattern pool is not consulted for
// that fill step. roundingGap is Σ(y*_p - floor(y*_p)) across patterns, a proxy for
// how far the integer plan drifted from the LP bound.
func roundToIntegerPlan(lines []demandLine, rollLength int, pool []Pattern, primal []float64) ([]PatternUsage, float64) {
	type indexed struct {
		idx int
		y   float64
	}
	order := make([]indexed, len(primal))
	for i, y := range primal {
		order[i] = indexed{idx: i, y: y}
	}
	sort.SliceStable(order, func(a, b int) bool { return order[a].y > order[b].y })

	residual := make(map[int]int, len(lines))
	for _, l := range lines {
		residual[l.Length] = l.Quantity
	}

	var plan []PatternUsage
	gap := 0.0
	for _, o := range order {
		z := int(o.y + 1e-9)
		gap += o.y - float64(z)
		if z <= 0 {
			continue
		}
		p := pool[o.idx]
		for _, c := range p.Cuts() {
			residual[c.Length] -= c.Quantity * z
		}
		plan = append(plan, PatternUsage{Pattern: p, RollsUsed: z})
	}

	remaining := make([]demandLine, 0)
	for _, l := range lines {
		if left := residual[l.Length]; left > 0 {
			remaining = append(remaining, demandLine{Length: l.Length, Quantity: left, Priority: l.Priority})
		}
	}
	if len(remaining) > 0 {
		fillPlan := runHybrid(remaining, rollLength)
		plan = mergePlans(plan, fillPlan)
	}

	return mergeIdenticalPatterns(plan), gap
}
