package tableau

import (
	"errors"
	"math"
)

// ErrInfeasible indicates the constraint system Ax >= b, x >= 0 admits no
// feasible point (phase 1's artificial-variable objective cannot reach 0).
var ErrInfeasible = errors.New("tableau: infeasible constraint system")

// ErrUnbounded indicates the objective is unbounded over the feasible region.
var ErrUnbounded = errors.New("tableau: unbounded objective")

// simplexEps is the zero-tolerance used throughout pivoting and the
// optimality/feasibility tests.
const simplexEps = 1e-9

// GEProblem is a linear program in "greater-or-equal" standard form:
// minimize Cost^T x subject to A x >= B, x >= 0. This is the shape the LP
// master problem (columns = patterns, rows = demand lines) naturally takes:
// every row requires "at least as many pieces of length i as demanded".
type GEProblem struct {
	A    [][]float64 // len(B) rows, len(Cost) cols
	B    []float64   // len(B), must be >= 0 (demand quantities always are)
	Cost []float64   // len(Cost), per-variable objective coefficient
}

// GESolution is the result of solving a GEProblem to optimality.
type GESolution struct {
	X         []float64 // primal values, one per column of A
	Y         []float64 // dual values (shadow prices), one per row of A
	Objective float64
}

// SolveGE solves a GEProblem with a two-phase dense-tableau primal simplex,
// using Bland's rule (smallest-index entering/leaving variable on ties) to
// guarantee termination without cycling. The tableau itself is a Dense
// matrix, flat row-major storage mirroring the teacher's matrix.Dense, and
// the pivot routine is staged (build / reduce / pivot-loop / extract) the
// way the teacher's ops.LU is staged.
func SolveGE(prob GEProblem) (GESolution, error) {
	m := len(prob.B)
	if m == 0 {
		return GESolution{}, errors.New("tableau: empty problem")
	}
	n := len(prob.Cost)

	// Stage 1: Normalize so every row has B[i] >= 0 (flip sign if needed).
	a := make([][]float64, m)
	b := make([]float64, m)
	for i := 0; i < m; i++ {
		row := make([]float64, n)
		copy(row, prob.A[i])
		sign := 1.0
		if prob.B[i] < 0 {
			sign = -1.0
		}
		for j := range row {
			row[j] *= sign
		}
		a[i] = row
		b[i] = prob.B[i] * sign
	}

	// Stage 2: Build the phase-1 tableau: original vars, m surplus vars
	// (coefficient -1, so Ax - s = b after flipping >= to this form when
	// combined with an artificial), m artificial vars (coefficient +1,
	// initial basis), plus the rhs column.
	ncols := n + m + m
	tab, err := NewDense(m+1, ncols+1)
	if err != nil {
		return GESolution{}, err
	}
	basis := make([]int, m)
	for i := 0; i < m; i++ {
		row := tab.row(i)
		copy(row[:n], a[i])
		row[n+i] = -1
		row[n+m+i] = 1
		row[ncols] = b[i]
		basis[i] = n + m + i
	}

	// Phase-1 objective: minimize the sum of artificial variables. Store
	// cost_j directly in the objective row (our minimization convention),
	// then eliminate the basic (artificial) columns to zero their reduced
	// cost, matching the teacher's pattern of reducing a freshly built row
	// against already-known basic rows.
	obj := tab.row(m)
	for i := 0; i < m; i++ {
		obj[n+m+i] = 1
	}
	for i := 0; i < m; i++ {
		subtractMultipleOfRow(obj, tab.row(i), obj[basis[i]])
	}

	if err := pivotLoop(tab, basis, m, ncols); err != nil {
		return GESolution{}, err
	}
	if tab.row(m)[ncols] > simplexEps {
		return GESolution{}, ErrInfeasible
	}

	// Stage 3: Drive any remaining artificial variable out of the basis
	// (it can stay at a degenerate zero level); then rebuild the objective
	// row for the real cost vector and re-optimize (phase 2).
	for i := 0; i < m; i++ {
		if basis[i] >= n+m {
			pivoted := false
			for j := 0; j < n+m; j++ {
				if math.Abs(tab.row(i)[j]) > simplexEps {
					doPivot(tab, basis, i, j, ncols)
					pivoted = true
					break
				}
			}
			_ = pivoted // a row that can't be pivoted out is a redundant constraint; left as-is
		}
	}

	obj2 := tab.row(m)
	for j := 0; j <= ncols; j++ {
		obj2[j] = 0
	}
	for j := 0; j < n; j++ {
		obj2[j] = prob.Cost[j]
	}
	for i := 0; i < m; i++ {
		if basis[i] < n {
			subtractMultipleOfRow(obj2, tab.row(i), prob.Cost[basis[i]])
		} else {
			subtractMultipleOfRow(obj2, tab.row(i), 0)
		}
	}
	// Forbid re-entry of artificial columns during phase 2.
	for j := n + m; j < ncols; j++ {
		obj2[j] = math.Inf(1)
	}

	if err := pivotLoop(tab, basis, m, ncols); err != nil {
		return GESolution{}, err
	}

	// Stage 4: Extract primal x, dual y (reduced cost of each surplus
	// column, by LP duality for >= constraints), and the objective value.
	x := make([]float64, n)
	for i := 0; i < m; i++ {
		if basis[i] < n {
			x[basis[i]] = tab.row(i)[ncols]
		}
	}
	y := make([]float64, m)
	for i := 0; i < m; i++ {
		v := tab.row(m)[n+i]
		if !math.IsInf(v, 0) {
			y[i] = v
		}
	}
	objective := 0.0
	for j := 0; j < n; j++ {
		objective += prob.Cost[j] * x[j]
	}

	return GESolution{X: x, Y: y, Objective: objective}, nil
}

// pivotLoop runs simplex pivots (Bland's rule: smallest-index entering
// column with negative reduced cost, smallest-index basis on ratio ties)
// until optimal or a cycle-free unboundedness is detected.
func pivotLoop(tab *Dense, basis []int, m, ncols int) error {
	const maxIterations = 20000
	obj := tab.row(m)
	for iter := 0; iter < maxIterations; iter++ {
		enter := -1
		for j := 0; j < ncols; j++ {
			if obj[j] < -simplexEps {
				enter = j
				break // Bland's rule: first negative column, not most negative
			}
		}
		if enter == -1 {
			return nil
		}

		leave := -1
		bestRatio := math.Inf(1)
		for i := 0; i < m; i++ {
			coeff := tab.row(i)[enter]
			if coeff <= simplexEps {
				continue
			}
			ratio := tab.row(i)[ncols] / coeff
			if ratio < bestRatio-simplexEps || (math.Abs(ratio-bestRatio) <= simplexEps && (leave == -1 || basis[i] < basis[leave])) {
				bestRatio = ratio
				leave = i
			}
		}
		if leave == -1 {
			return ErrUnbounded
		}
		doPivot(tab, basis, leave, enter, ncols)
	}
	return errors.New("tableau: pivot limit exceeded without convergence")
}

// doPivot performs a Gauss-Jordan pivot on (row, col): normalizes the pivot
// row, then eliminates col from every other row including the objective row.
func doPivot(tab *Dense, basis []int, row, col, ncols int) {
	pivotRow := tab.row(row)
	pivotVal := pivotRow[col]
	for j := 0; j <= ncols; j++ {
		pivotRow[j] /= pivotVal
	}
	for i := 0; i < tab.Rows(); i++ {
		if i == row {
			continue
		}
		subtractMultipleOfRow(tab.row(i), pivotRow, tab.row(i)[col])
	}
	basis[row] = col
}

// subtractMultipleOfRow computes dst -= factor*src, element-wise.
func subtractMultipleOfRow(dst, src []float64, factor float64) {
	if factor == 0 {
		return
	}
	for j := range dst {
		dst[j] -= factor * src[j]
	}
}
