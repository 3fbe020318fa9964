package cutstock_test

import (
	"fmt"

	"github.com/arnovek/cutstock"
)

// Example demonstrates a single solve over a small demand list.
func Example() {
	req := cutstock.NewRequest(100, []cutstock.DemandInput{
		{Length: 50, Quantity: 2, Priority: cutstock.PriorityNormal},
	}, cutstock.WithGoal(cutstock.MinimizeWaste))

	result, err := cutstock.Solve(req)
	if err != nil {
		fmt.Println("solve failed:", err)
		return
	}

	fmt.Println(result.TotalRolls)
	fmt.Println(result.TotalWaste)
	// Output:
	// 1
	// 0
}
