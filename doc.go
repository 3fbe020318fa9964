// Package cutstock implements a one-dimensional cutting-stock optimization
// engine: given a master stock length and a demand list of (piece length,
// required quantity, priority) triples, it computes an assignment of pieces
// to a minimum-cost set of stock rolls that honors demand and respects the
// master length.
//
// The package is a pure function of its input and its configured goal: it
// performs no I/O, no time lookups beyond measuring elapsed wall time for
// reporting, and no logging. HTTP surfaces, persistence, request validation,
// progress transport, and export/rendering are external collaborators; this
// package exposes only the two operations below plus the value types they
// exchange.
//
// # Algorithms
//
//   - Column generation (Solve with Algorithm=ColumnGeneration): builds a
//     fractional optimum over a growing pool of cutting patterns via a
//     pricing loop (LP master problem <-> bounded knapsack subproblem), then
//     rounds the fractional solution to an integer cutting plan.
//   - Greedy heuristics (FirstFitDecreasing, BestFitDecreasing, Hybrid):
//     single-pass placements that always produce a feasible plan quickly;
//     Hybrid runs both and keeps whichever scores better under the active
//     goal.
//   - Goal scoring picks among algorithm candidates by minimizing waste,
//     rolls, cost, or a balanced combination of the three.
//
// # API
//
//	req := cutstock.NewRequest(100, []cutstock.DemandInput{
//	    {Length: 60, Quantity: 1, Priority: cutstock.PriorityNormal},
//	    {Length: 40, Quantity: 1, Priority: cutstock.PriorityNormal},
//	})
//	result, err := cutstock.Solve(req)
//
// SolveRange repeats Solve across an arithmetic progression of master
// lengths and reports the best configuration by goal score.
//
// # Determinism
//
// For a fixed request, every numeric field, pattern id, and ordering of
// patterns, cutting instructions, and algorithm steps is reproducible
// bit-for-bit across runs.
package cutstock
