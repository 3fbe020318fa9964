package cutstock

import "sort"

// DefaultMaxDPCells bounds the knapsack DP table (spec.md §4.3, §5): above
// this many cells the pricer falls back to a depth-first branch-and-bound
// search (priceBranchAndBound).
const DefaultMaxDPCells = 10_000_000

// pricerEps is the reduced-cost sign-test tolerance (spec.md §4.3/§4.5).
const pricerEps = 1e-6

// pricerConfig carries the knobs and cancellation plumbing shared by the DP
// and branch-and-bound pricing paths. It carries no time budget.
type pricerConfig struct {
	maxDPCells int
	cancel     Cancellation
}

// knapsackResult is one solution to the bounded knapsack pricing subproblem:
// max Σ dᵢ·xᵢ s.t. Σ ℓᵢ·xᵢ ≤ L, 0 ≤ xᵢ ≤ qᵢ (spec.md §4.3).
type knapsackResult struct {
	objective    float64
	x            []int // per normalized-length index, the chosen count
	usedCapacity int32  // Σℓᵢ·xᵢ actually consumed, for the Σℓᵢ·xᵢ tiebreak
	fromBB       bool   // true when the branch-and-bound fallback produced this result
}

// priceKnapsack solves the pricing subproblem for the given normalized
// lengths/quantities and dual prices under capacity. It uses a flattened
// 2D DP table (dp[(step)*(capacity+1)+c]) over a power-of-two bounded-count
// decomposition, mirroring the teacher's Held-Karp DP layout
// (tsp/exact.go's dp/parent flat tables) rather than a literal single O(L)
// array, because full-plan reconstruction needs a per-decomposition-step
// choice bit; see DESIGN.md "Knapsack Pricer" for the tradeoff. When the
// resulting cell count would exceed cfg.maxDPCells, it falls back to
// priceBranchAndBound.
func priceKnapsack(lines []demandLine, duals []float64, capacity int, cfg pricerConfig) (knapsackResult, error) {
	n := len(lines)
	if capacity < 0 {
		capacity = 0
	}

	type pseudoItem struct {
		orig   int
		units  int
		weight int
		value  float64
	}
	items := make([]pseudoItem, 0, n*4)
	for i, l := range lines {
		remaining := l.Quantity
		k := 1
		for remaining > 0 {
			take := k
			if take > remaining {
				take = remaining
			}
			items = append(items, pseudoItem{orig: i, units: take, weight: take * l.Length, value: float64(take) * duals[i]})
			remaining -= take
			k *= 2
		}
	}
	m := len(items)
	width := capacity + 1
	cells := int64(m+1) * int64(width)
	if cells > int64(cfg.maxDPCells) || cfg.maxDPCells <= 0 {
		return priceBranchAndBound(lines, duals, capacity, cfg)
	}

	dp := make([]float64, (m+1)*width)
	cnt := make([]int32, (m+1)*width)
	used := make([]int32, (m+1)*width)
	taken := make([]bool, (m+1)*width)

	for s := 1; s <= m; s++ {
		it := items[s-1]
		prevRow := (s - 1) * width
		row := s * width
		for c := 0; c <= capacity; c++ {
			dp[row+c] = dp[prevRow+c]
			cnt[row+c] = cnt[prevRow+c]
			used[row+c] = used[prevRow+c]
			if it.weight <= c {
				src := prevRow + c - it.weight
				candValue := dp[src] + it.value
				candCount := cnt[src] + int32(it.units)
				candUsed := used[src] + int32(it.weight)
				if betterKnapsackCell(candValue, candCount, candUsed, dp[row+c], cnt[row+c], used[row+c]) {
					dp[row+c] = candValue
					cnt[row+c] = candCount
					used[row+c] = candUsed
					taken[row+c] = true
				}
			}
		}
		// Cancellation is checked at every outer DP-row boundary (spec.md §5).
		if cfg.cancel.fired() {
			return knapsackResult{}, ErrCancelled
		}
	}

	bestC := 0
	lastRow := m * width
	for c := 1; c <= capacity; c++ {
		if betterKnapsackCell(dp[lastRow+c], cnt[lastRow+c], used[lastRow+c], dp[lastRow+bestC], cnt[lastRow+bestC], used[lastRow+bestC]) {
			bestC = c
		}
	}

	x := make([]int, n)
	c := bestC
	for s := m; s > 0; s-- {
		row := s * width
		if taken[row+c] {
			it := items[s-1]
			x[it.orig] += it.units
			c -= it.weight
		}
	}

	return knapsackResult{objective: dp[lastRow+bestC], x: x, usedCapacity: used[lastRow+bestC]}, nil
}

// betterKnapsackCell implements spec.md §4.3's tie-break hierarchy: larger
// objective wins; ties prefer larger Σxᵢ, then larger Σℓᵢ·xᵢ. A literal
// lexicographically-largest-x tiebreak would require per-cell vector state;
// preferring the candidate with more pieces and more consumed length is a
// documented approximation of it (DESIGN.md "Knapsack Pricer").
func betterKnapsackCell(value float64, count, length int32, bestValue float64, bestCount, bestLength int32) bool {
	if value > bestValue+pricerEps {
		return true
	}
	if value < bestValue-pricerEps {
		return false
	}
	if count != bestCount {
		return count > bestCount
	}
	return length > bestLength
}

// bbNodeBudget bounds the fallback branch-and-bound pricer's explored node
// count (spec.md §5's "node budget" for ResourceExceeded).
const bbNodeBudget = 2_000_000

// priceBranchAndBound is the branch-and-bound fallback used when the DP
// table would exceed cfg.maxDPCells (spec.md §4.3). It searches depth-first
// (not best-first; see DESIGN.md "Open Question resolution 2"). It is
// structured as a dedicated engine, not closures, mirroring the teacher's
// tsp/bb.go bbEngine: explicit state, deterministic branch order (items
// sorted by value-density dᵢ/ℓᵢ descending, index tiebreak), an admissible
// relaxation bound (the best remaining density times the remaining
// capacity), and sparse cancellation polling every 4096 nodes.
type knapsackBBEngine struct {
	lines    []demandLine
	duals    []float64
	capacity int
	order    []int // item indices sorted by density descending
	density  []float64
	cfg      pricerConfig

	best      knapsackResult
	haveBest  bool
	nodes     int
}

func priceBranchAndBound(lines []demandLine, duals []float64, capacity int, cfg pricerConfig) (knapsackResult, error) {
	n := len(lines)
	e := &knapsackBBEngine{
		lines:    lines,
		duals:    duals,
		capacity: capacity,
		cfg:      cfg,
		density:  make([]float64, n),
	}
	for i, l := range lines {
		if l.Length > 0 {
			e.density[i] = duals[i] / float64(l.Length)
		}
	}
	e.order = make([]int, n)
	for i := range e.order {
		e.order[i] = i
	}
	sort.SliceStable(e.order, func(a, b int) bool {
		ia, ib := e.order[a], e.order[b]
		if e.density[ia] != e.density[ib] {
			return e.density[ia] > e.density[ib]
		}
		return ia < ib
	})

	x := make([]int, n)
	if err := e.dfs(0, capacity, 0, 0, 0, x); err != nil {
		return knapsackResult{}, err
	}
	if !e.haveBest {
		return knapsackResult{objective: 0, x: make([]int, n), fromBB: true}, nil
	}
	e.best.fromBB = true
	return e.best, nil
}

// dfs explores item e.order[depth:] greedily by density, bounding unexplored
// capacity by the best remaining density (an admissible relaxation bound).
func (e *knapsackBBEngine) dfs(depth, remainingCap int, value float64, count, used int32, x []int) error {
	e.nodes++
	if e.nodes > bbNodeBudget {
		return ErrBBNodeBudget
	}
	if e.nodes&4095 == 0 && e.cfg.cancel.fired() {
		return ErrCancelled
	}

	if depth == len(e.order) || remainingCap <= 0 {
		e.considerLeaf(value, count, used, x)
		return nil
	}

	// Admissible upper bound: best achievable density among remaining items
	// times remaining capacity, added to the value already accrued.
	bestDensity := 0.0
	for d := depth; d < len(e.order); d++ {
		if e.density[e.order[d]] > bestDensity {
			bestDensity = e.density[e.order[d]]
		}
	}
	if e.haveBest && value+bestDensity*float64(remainingCap) <= e.best.objective+pricerEps {
		e.considerLeaf(value, count, used, x)
		return nil
	}

	idx := e.order[depth]
	l := e.lines[idx]
	maxUnits := l.Quantity
	if l.Length > 0 {
		if byCap := remainingCap / l.Length; byCap < maxUnits {
			maxUnits = byCap
		}
	} else {
		maxUnits = 0
	}

	for take := maxUnits; take >= 0; take-- {
		x[idx] = take
		if err := e.dfs(depth+1, remainingCap-take*l.Length, value+float64(take)*e.duals[idx], count+int32(take), used+int32(take*l.Length), x); err != nil {
			return err
		}
	}
	x[idx] = 0
	return nil
}

func (e *knapsackBBEngine) considerLeaf(value float64, count, used int32, x []int) {
	if e.haveBest && !betterKnapsackCell(value, count, used, e.best.objective, int32(sumInts(e.best.x)), e.best.usedCapacity) {
		return
	}
	snapshot := make([]int, len(x))
	copy(snapshot, x)
	e.best = knapsackResult{objective: value, x: snapshot, usedCapacity: used}
	e.haveBest = true
}

func sumInts(xs []int) int {
	sum := 0
	for _, x := range xs {
		sum += x
	}
	return sum
}
