package cutstock

import "sort"

// piece is one expanded, individually placeable demand unit (spec.md
// §4.6's "multiset D").
type piece struct {
	length   int
	priority Priority
}

// expandDemand fully expands normalized demand into a multiset of
// individual pieces, sorted descending by length. No sort is performed:
// normalized demand already arrives sorted descending with unique lengths,
// so each line's qᵢ pieces are simply appended in place.
func expandDemand(lines []demandLine) []piece {
	pieces := make([]piece, 0, totalQuantity(lines))
	for _, l := range lines {
		for i := 0; i < l.Quantity; i++ {
			pieces = append(pieces, piece{length: l.Length, priority: l.Priority})
		}
	}
	return pieces
}

// openRoll is one in-progress roll during greedy placement.
type openRoll struct {
	remaining int
	counts    map[int]int
	lastHigh  int // index (1-based placement order) of the last high-priority piece placed, 0 if none
}

// heuristicOutcome pairs a greedy plan with the priority-bump metrics the
// Goal Scorer needs (spec.md §4.7): the placement index of the roll that
// last closed out a piece at each priority tier, 0 if that tier was never
// placed. The cascade compares high first, then normal, then low.
type heuristicOutcome struct {
	plan            []PatternUsage
	lastHighIndex   int
	lastNormalIndex int
	lastLowIndex    int
}

// runFFD is the First-Fit Decreasing heuristic (spec.md §4.6): each piece
// goes into the first open roll with enough remaining capacity, else a
// new roll is opened.
func runFFD(lines []demandLine, rollLength int) []PatternUsage {
	return runFFDWithMetrics(lines, rollLength).plan
}

func runFFDWithMetrics(lines []demandLine, rollLength int) heuristicOutcome {
	pieces := expandDemand(lines)
	rolls := make([]*openRoll, 0)
	lastHigh, lastNormal, lastLow := 0, 0, 0
	for order, pc := range pieces {
		placed := false
		rollIdx := -1
		for i, r := range rolls {
			if r.remaining >= pc.length {
				placeInRoll(r, pc, order)
				placed = true
				rollIdx = i
				break
			}
		}
		if !placed {
			r := newOpenRoll(rollLength)
			placeInRoll(r, pc, order)
			rolls = append(rolls, r)
			rollIdx = len(rolls) - 1
		}
		bumpPriorityIndex(pc.priority, rollIdx+1, &lastHigh, &lastNormal, &lastLow)
	}
	return heuristicOutcome{plan: rollsToPlan(rolls, rollLength), lastHighIndex: lastHigh, lastNormalIndex: lastNormal, lastLowIndex: lastLow}
}

// runBFD is the Best-Fit Decreasing heuristic (spec.md §4.6): each piece
// goes into the open roll with the smallest sufficient remaining capacity
// (tightest fit); ties favor the older roll.
func runBFD(lines []demandLine, rollLength int) []PatternUsage {
	return runBFDWithMetrics(lines, rollLength).plan
}

func runBFDWithMetrics(lines []demandLine, rollLength int) heuristicOutcome {
	pieces := expandDemand(lines)
	rolls := make([]*openRoll, 0)
	lastHigh, lastNormal, lastLow := 0, 0, 0
	for order, pc := range pieces {
		best := -1
		for i, r := range rolls {
			if r.remaining < pc.length {
				continue
			}
			if best == -1 || r.remaining < rolls[best].remaining {
				best = i
			}
		}
		if best == -1 {
			r := newOpenRoll(rollLength)
			placeInRoll(r, pc, order)
			rolls = append(rolls, r)
			best = len(rolls) - 1
		} else {
			placeInRoll(rolls[best], pc, order)
		}
		bumpPriorityIndex(pc.priority, best+1, &lastHigh, &lastNormal, &lastLow)
	}
	return heuristicOutcome{plan: rollsToPlan(rolls, rollLength), lastHighIndex: lastHigh, lastNormalIndex: lastNormal, lastLowIndex: lastLow}
}

// bumpPriorityIndex updates whichever of the three priority-tier placement
// indices matches pc's tier to rollIndex (spec.md §4.7's three-level
// priority-bump cascade: high, then normal, then low).
func bumpPriorityIndex(priority Priority, rollIndex int, lastHigh, lastNormal, lastLow *int) {
	switch priority {
	case PriorityHigh:
		*lastHigh = rollIndex
	case PriorityNormal:
		*lastNormal = rollIndex
	case PriorityLow:
		*lastLow = rollIndex
	}
}

// runHybrid runs FFD and BFD and keeps whichever scores lower under the
// default minimize_waste goal (spec.md §4.6: "score both under the active
// goal"); the column generator's residual-fill use has no goal context of
// its own, so it always compares by waste. Ties favor FFD.
func runHybrid(lines []demandLine, rollLength int) []PatternUsage {
	return runHybridWithMetrics(lines, rollLength).plan
}

func runHybridWithMetrics(lines []demandLine, rollLength int) heuristicOutcome {
	ffd := runFFDWithMetrics(lines, rollLength)
	bfd := runBFDWithMetrics(lines, rollLength)
	if totalWasteOf(bfd.plan) < totalWasteOf(ffd.plan) {
		return bfd
	}
	return ffd
}

func newOpenRoll(rollLength int) *openRoll {
	return &openRoll{remaining: rollLength, counts: make(map[int]int)}
}

func placeInRoll(r *openRoll, pc piece, order int) {
	r.remaining -= pc.length
	r.counts[pc.length]++
	if pc.priority == PriorityHigh {
		r.lastHigh = order + 1
	}
}

// rollsToPlan converts open rolls into Patterns, merging identical rolls
// into a single PatternUsage (spec.md §4.6: "identical rolls ... merged").
func rollsToPlan(rolls []*openRoll, rollLength int) []PatternUsage {
	plan := make([]PatternUsage, 0, len(rolls))
	for _, r := range rolls {
		p, err := newPattern(r.counts, rollLength)
		if err != nil {
			// Construction invariants guarantee feasibility; a failure here
			// means a placement bug, not bad input.
			continue
		}
		plan = append(plan, PatternUsage{Pattern: p, RollsUsed: 1})
	}
	return mergeIdenticalPatterns(plan)
}

// mergeIdenticalPatterns folds PatternUsages that share a canonical
// pattern into one entry with a summed RollsUsed.
func mergeIdenticalPatterns(plan []PatternUsage) []PatternUsage {
	merged := make([]PatternUsage, 0, len(plan))
	for _, pu := range plan {
		found := false
		for i := range merged {
			if merged[i].Pattern.Equal(pu.Pattern) {
				merged[i].RollsUsed += pu.RollsUsed
				found = true
				break
			}
		}
		if !found {
			merged = append(merged, pu)
		}
	}
	return merged
}

// mergePlans concatenates two plans and folds any patterns shared between them.
func mergePlans(a, b []PatternUsage) []PatternUsage {
	combined := make([]PatternUsage, 0, len(a)+len(b))
	combined = append(combined, a...)
	combined = append(combined, b...)
	return mergeIdenticalPatterns(combined)
}

// totalWasteOf sums RollsUsed*Pattern.Waste() across a plan.
func totalWasteOf(plan []PatternUsage) int {
	sum := 0
	for _, pu := range plan {
		sum += pu.RollsUsed * pu.Pattern.Waste()
	}
	return sum
}

// totalRollsOf sums RollsUsed across a plan.
func totalRollsOf(plan []PatternUsage) int {
	sum := 0
	for _, pu := range plan {
		sum += pu.RollsUsed
	}
	return sum
}

// sortPlanForReport orders PatternUsages the way the Report Builder
// requires (spec.md §4.8): descending rollsUsed, then descending
// totalLength, then ascending pattern id.
func sortPlanForReport(plan []PatternUsage) {
	sort.SliceStable(plan, func(i, j int) bool {
		a, b := plan[i], plan[j]
		if a.RollsUsed != b.RollsUsed {
			return a.RollsUsed > b.RollsUsed
		}
		if a.Pattern.TotalLength() != b.Pattern.TotalLength() {
			return a.Pattern.TotalLength() > b.Pattern.TotalLength()
		}
		return a.Pattern.ID() < b.Pattern.ID()
	})
}
