package main

import (
	"fmt"
	"log"

	"github.com/homequant/buyrent/money"
	"github.com/homequant/buyrent/sim"
	"github.com/homequant/buyrent/sim/sweep"
)

// Demo: price the classroom baseline and print the scenario comparison.
func main() {
	p := sim.DefaultParams()

	st := p.Loan()
	fmt.Printf("Monthly EMI: %s\n", money.Format(st.EMI))

	interest, principal := st.YearTotals(1)
	fmt.Printf("Year-1 interest: %s | principal repaid: %s\n\n",
		money.Format(interest), money.Format(principal))

	table, err := sweep.ScenarioTable(p, sweep.DefaultScenarios(p))
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("Scenario comparison (NPV buy / NPV rent / buy-rent):")
	for _, row := range table {
		fmt.Printf("  %-6s %14s %14s %14s\n",
			row.Label, money.Format(row.NPVBuy), money.Format(row.NPVRent), money.Format(row.Delta))
	}

	res, err := sweep.GrowthSweep(p, sweep.DefaultGrowthLowPct, sweep.DefaultGrowthHighPct, sweep.DefaultGrowthSteps)
	if err != nil {
		log.Fatal(err)
	}
	if res.HasBreakEven {
		fmt.Printf("\nBreak-even house growth: %.2f%%\n", res.BreakEven)
	} else {
		fmt.Println("\nNo break-even growth in the swept range.")
	}
}
