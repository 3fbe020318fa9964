package cutstock

import "github.com/arnovek/cutstock/internal/tableau"

// solveMaster solves the restricted LP master problem over the current
// pattern pool (spec.md §4.4): minimize Σ x_p (rolls cut to pattern p)
// subject to Σ_p CountOf(pattern_p, length_i)·x_p >= demand_i for every
// normalized demand line, x_p >= 0. It returns the fractional roll counts
// per pattern and the dual price y_i per demand line, the latter feeding
// directly into the next knapsack pricing round.
func solveMaster(lines []demandLine, pool []Pattern) (x []float64, duals []float64, objective float64, err error) {
	m := len(lines)
	n := len(pool)
	a := make([][]float64, m)
	b := make([]float64, m)
	cost := make([]float64, n)
	for i, l := range lines {
		row := make([]float64, n)
		for j, p := range pool {
			row[j] = float64(p.CountOf(l.Length))
		}
		a[i] = row
		b[i] = float64(l.Quantity)
	}
	for j := range cost {
		cost[j] = 1
	}

	sol, err := tableau.SolveGE(tableau.GEProblem{A: a, B: b, Cost: cost})
	if err != nil {
		return nil, nil, 0, wrapLPError(err)
	}
	return sol.X, sol.Y, sol.Objective, nil
}

// wrapLPError classifies a tableau failure into the package's own sentinel
// errors (spec.md §7: callers see this package's ErrorKind taxonomy, never
// an internal subsystem's error type directly).
func wrapLPError(err error) error {
	switch err {
	case tableau.ErrInfeasible, tableau.ErrUnbounded:
		return ErrLPInfeasible
	default:
		return ErrLPResourceFailure
	}
}

// seedPool builds the initial pattern pool: one literal singleton pattern
// per distinct demand length, cutting exactly one piece of that length and
// leaving the rest of the roll as waste (spec.md §4.4: "one singleton
// pattern per piece length i ... y_singleton_i = qᵢ"). This guarantees the
// master problem starts feasible: every demand line has at least one
// pattern that can supply it, even though the singleton pool alone is a
// wasteful starting point the pricing loop immediately improves on.
func seedPool(lines []demandLine, rollLength int) ([]Pattern, error) {
	pool := make([]Pattern, 0, len(lines))
	for _, l := range lines {
		if l.Length > rollLength {
			continue
		}
		p, err := newPattern(map[int]int{l.Length: 1}, rollLength)
		if err != nil {
			return nil, err
		}
		pool = append(pool, p)
	}
	return pool, nil
}
