package cutstock

// planStats holds the four quantities the Goal Scorer needs (spec.md
// §4.7): R = total rolls, W = total waste, C = cost, E = efficiency.
type planStats struct {
	rolls      int
	waste      int
	cost       float64
	efficiency float64
}

func computePlanStats(plan []PatternUsage, rollLength int, demandLength int, unitCost float64) planStats {
	r := totalRollsOf(plan)
	w := totalWasteOf(plan)
	cost := float64(r) * unitCost
	efficiency := 0.0
	if r > 0 && rollLength > 0 {
		efficiency = 100 * float64(demandLength) / float64(r*rollLength)
	}
	return planStats{rolls: r, waste: w, cost: cost, efficiency: efficiency}
}

// goalScore evaluates a single candidate's score under goal, given the FFD
// baseline stats (R0, W0, C0) that balance_all normalizes against (spec.md
// §4.7). Lower is always better.
func goalScore(goal Goal, s, baseline planStats) float64 {
	switch goal {
	case MinimizeWaste:
		return float64(s.waste)
	case MinimizeRolls:
		return float64(s.rolls)
	case MinimizeCost:
		return s.cost
	case BalanceAll:
		const third = 1.0 / 3.0
		r0, w0, c0 := baseline.rolls, baseline.waste, baseline.cost
		rTerm, wTerm, cTerm := 0.0, 0.0, 0.0
		if r0 > 0 {
			rTerm = float64(s.rolls) / float64(r0)
		}
		if w0 > 0 {
			wTerm = float64(s.waste) / float64(w0)
		}
		if c0 > 0 {
			cTerm = s.cost / c0
		}
		return third*rTerm + third*wTerm + third*cTerm
	default:
		return float64(s.waste)
	}
}

// candidate is one scored plan considered by the selector.
type candidate struct {
	algorithm       Algorithm
	plan            []PatternUsage
	stats           planStats
	score           float64
	lastHighIndex   int
	lastNormalIndex int
	lastLowIndex    int
}

// selectPlan runs the selector described in spec.md §4.7: it scores the
// requested algorithm's primary plan, adds HYBRID as a safety net when the
// primary algorithm is column_generation, and returns the lowest-scoring
// candidate. Ties are broken first by the priority-bump rule (earlier
// satisfaction of high-priority pieces wins), then by preferring the
// requested algorithm over the safety net. The column-generation candidate
// carries no priority-tier indices (all 0), so on a score tie it is kept
// over the Hybrid safety net whenever the safety net placed any piece.
func selectPlan(lines []demandLine, rollLength int, algorithm Algorithm, goal Goal, unitCost float64, cgOutcome *colgenOutcome) candidate {
	demandLen := totalDemandLength(lines)

	ffdOut := runFFDWithMetrics(lines, rollLength)
	bfdOut := runBFDWithMetrics(lines, rollLength)
	baseline := computePlanStats(ffdOut.plan, rollLength, demandLen, unitCost)

	score := func(out heuristicOutcome, a Algorithm) candidate {
		stats := computePlanStats(out.plan, rollLength, demandLen, unitCost)
		return candidate{
			algorithm:       a,
			plan:            out.plan,
			stats:           stats,
			score:           goalScore(goal, stats, baseline),
			lastHighIndex:   out.lastHighIndex,
			lastNormalIndex: out.lastNormalIndex,
			lastLowIndex:    out.lastLowIndex,
		}
	}

	var primary candidate
	switch algorithm {
	case FirstFitDecreasing:
		primary = score(ffdOut, FirstFitDecreasing)
	case BestFitDecreasing:
		primary = score(bfdOut, BestFitDecreasing)
	case Hybrid:
		hybridOut := runHybridWithMetrics(lines, rollLength)
		primary = score(hybridOut, Hybrid)
	case ColumnGeneration:
		if cgOutcome == nil {
			hybridOut := runHybridWithMetrics(lines, rollLength)
			primary = score(hybridOut, Hybrid)
		} else {
			stats := computePlanStats(cgOutcome.plan, rollLength, demandLen, unitCost)
			primary = candidate{algorithm: ColumnGeneration, plan: cgOutcome.plan, stats: stats, score: goalScore(goal, stats, baseline)}
		}
	default:
		primary = score(ffdOut, FirstFitDecreasing)
	}

	best := primary
	if algorithm == ColumnGeneration {
		hybridOut := runHybridWithMetrics(lines, rollLength)
		safetyNet := score(hybridOut, Hybrid)
		if betterCandidate(safetyNet, best) {
			best = safetyNet
		}
	}
	return best
}

// betterCandidate reports whether a should replace b as the selector's
// winner: lower score wins; ties cascade through the three priority tiers
// in order (earlier satisfaction of high-priority pieces wins, then
// normal, then low), then the first candidate evaluated (b, i.e. a must be
// strictly better to replace it).
func betterCandidate(a, b candidate) bool {
	const eps = 1e-9
	if a.score < b.score-eps {
		return true
	}
	if a.score > b.score+eps {
		return false
	}
	if a.lastHighIndex != b.lastHighIndex {
		return a.lastHighIndex < b.lastHighIndex
	}
	if a.lastNormalIndex != b.lastNormalIndex {
		return a.lastNormalIndex < b.lastNormalIndex
	}
	if a.lastLowIndex != b.lastLowIndex {
		return a.lastLowIndex < b.lastLowIndex
	}
	return false
}
