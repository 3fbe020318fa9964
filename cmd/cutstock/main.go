// Command cutstock runs a single cutting-stock solve from a JSON request on
// stdin and writes the JSON result to stdout. It is a thin demonstration of
// the package's external interface (spec.md §6); request parsing, HTTP
// transport, and persistence belong to a surrounding application, not here.
package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"

	"github.com/arnovek/cutstock"
)

type cliDemand struct {
	Length   int    `json:"length"`
	Quantity int    `json:"quantity"`
	Priority string `json:"priority"`
}

type cliRequest struct {
	MasterRollLength int         `json:"masterRollLength"`
	UnitCost         float64     `json:"unitCost"`
	Algorithm        string      `json:"algorithm"`
	Goal             string      `json:"goal"`
	Demand           []cliDemand `json:"demand"`
}

func main() {
	flag.Parse()

	var in cliRequest
	if err := json.NewDecoder(os.Stdin).Decode(&in); err != nil {
		log.Fatalf("cutstock: failed to parse request: %v", err)
	}

	demand := make([]cutstock.DemandInput, len(in.Demand))
	for i, d := range in.Demand {
		demand[i] = cutstock.DemandInput{Length: d.Length, Quantity: d.Quantity, Priority: parsePriority(d.Priority)}
	}

	req := cutstock.NewRequest(in.MasterRollLength, demand,
		cutstock.WithAlgorithm(parseAlgorithm(in.Algorithm)),
		cutstock.WithGoal(parseGoal(in.Goal)),
		cutstock.WithUnitCost(in.UnitCost),
	)

	result, err := cutstock.Solve(req)
	if err != nil {
		log.Fatalf("cutstock: solve failed (%s): %v", cutstock.KindOf(err), err)
	}

	if err := json.NewEncoder(os.Stdout).Encode(result); err != nil {
		log.Fatalf("cutstock: failed to encode result: %v", err)
	}
}

func parseAlgorithm(s string) cutstock.Algorithm {
	switch s {
	case "first_fit_decreasing":
		return cutstock.FirstFitDecreasing
	case "best_fit_decreasing":
		return cutstock.BestFitDecreasing
	case "hybrid":
		return cutstock.Hybrid
	default:
		return cutstock.ColumnGeneration
	}
}

func parseGoal(s string) cutstock.Goal {
	switch s {
	case "minimize_rolls":
		return cutstock.MinimizeRolls
	case "minimize_cost":
		return cutstock.MinimizeCost
	case "balance_all":
		return cutstock.BalanceAll
	default:
		return cutstock.MinimizeWaste
	}
}

func parsePriority(s string) cutstock.Priority {
	switch s {
	case "high":
		return cutstock.PriorityHigh
	case "low":
		return cutstock.PriorityLow
	default:
		return cutstock.PriorityNormal
	}
}
