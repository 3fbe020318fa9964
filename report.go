package cutstock

import "fmt"

// buildResult assembles the final Result record (spec.md §4.8, §6) from a
// winning candidate plan, the demand it was built against, and the
// solve's execution trace and performance counters.
func buildResult(lines []demandLine, rollLength int, win candidate, unitCost float64, steps []AlgorithmStep, perf PerformanceCounters) Result {
	plan := append([]PatternUsage(nil), win.plan...)
	sortPlanForReport(plan)

	patterns := make([]PatternSummary, len(plan))
	instructions := make([]CuttingInstruction, len(plan))
	totalRolls, totalWaste := 0, 0
	for i, pu := range plan {
		patterns[i] = PatternSummary{
			ID:          pu.Pattern.ID(),
			Cuts:        pu.Pattern.Cuts(),
			TotalLength: pu.Pattern.TotalLength(),
			Waste:       pu.Pattern.Waste(),
			RollsUsed:   pu.RollsUsed,
		}
		instructions[i] = CuttingInstruction{
			Step:        i + 1,
			Description: fmt.Sprintf("Cut %d roll(s) as %s", pu.RollsUsed, pu.Pattern.String()),
			Pattern:     pu.Pattern.String(),
			RollsCount:  pu.RollsUsed,
		}
		totalRolls += pu.RollsUsed
		totalWaste += pu.RollsUsed * pu.Pattern.Waste()
	}

	demandLen := totalDemandLength(lines)
	efficiency := 0.0
	if totalRolls > 0 && rollLength > 0 {
		efficiency = 100 * float64(demandLen) / float64(totalRolls*rollLength)
	}
	wastePct := 100 - efficiency

	ffdBaseline := computePlanStats(runFFD(lines, rollLength), rollLength, demandLen, unitCost)
	costSavings := ffdBaseline.cost - float64(totalRolls)*unitCost

	return Result{
		TotalRolls:          totalRolls,
		Efficiency:          efficiency,
		WastePercentage:     wastePct,
		TotalWaste:          totalWaste,
		CostSavings:         costSavings,
		Patterns:            patterns,
		CuttingInstructions: instructions,
		AlgorithmSteps:      steps,
		Performance:         perf,
	}
}
