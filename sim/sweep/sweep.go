// Package sweep runs the pricing engine across scenario sets and parameter
// grids and locates break-even points by sign-change bracketing.
package sweep

import (
	"fmt"

	"github.com/homequant/buyrent/sim"
)

// Default sweep bounds.
const (
	DefaultGrowthLowPct   = -5.0
	DefaultGrowthHighPct  = 8.0
	DefaultGrowthSteps    = 80
	DefaultTenureMinYears = 1
	DefaultTenureMaxYears = 30
)

// Scenario is one labeled growth override pair.
type Scenario struct {
	Label          string
	HouseGrowthPct float64
	RentGrowthPct  float64
}

// ScenarioResult is one evaluated scenario. Delta is NPVBuy - NPVRent: a
// positive delta favors buying.
type ScenarioResult struct {
	Label   string
	NPVBuy  float64
	NPVRent float64
	Delta   float64
}

// DefaultScenarios derives the Base/Boom/Crash set from a parameter value:
// house growth shifted by ±1pp with rent growth held fixed.
func DefaultScenarios(p sim.Params) []Scenario {
	return []Scenario{
		{Label: "Base", HouseGrowthPct: p.HouseGrowthPct, RentGrowthPct: p.RentGrowthPct},
		{Label: "Boom", HouseGrowthPct: p.HouseGrowthPct + 1, RentGrowthPct: p.RentGrowthPct},
		{Label: "Crash", HouseGrowthPct: p.HouseGrowthPct - 1, RentGrowthPct: p.RentGrowthPct},
	}
}

// ScenarioTable evaluates each scenario in order and returns one result per
// scenario, preserving the input order.
func ScenarioTable(p sim.Params, scenarios []Scenario) ([]ScenarioResult, error) {
	results := make([]ScenarioResult, 0, len(scenarios))
	for _, sc := range scenarios {
		buy, rent, err := sim.Evaluate(p, sc.HouseGrowthPct, sc.RentGrowthPct, p.TaxEnabled)
		if err != nil {
			return nil, fmt.Errorf("ScenarioTable: %s: %w", sc.Label, err)
		}
		results = append(results, ScenarioResult{
			Label:   sc.Label,
			NPVBuy:  buy,
			NPVRent: rent,
			Delta:   buy - rent,
		})
	}
	return results, nil
}

// Point pairs one sampled value of the swept variable with its delta.
type Point struct {
	X     float64
	Delta float64
}

// Result is an ordered sweep with an optional break-even. HasBreakEven is
// the sentinel for "no sign change in range"; callers must branch on it
// before using BreakEven.
type Result struct {
	Points       []Point
	BreakEven    float64
	HasBreakEven bool
}

// GrowthSweep evaluates the delta over a linear house-growth grid from
// lowPct to highPct inclusive, rent growth held fixed. steps is the number
// of samples and must be at least 2.
func GrowthSweep(p sim.Params, lowPct, highPct float64, steps int) (Result, error) {
	if steps < 2 {
		return Result{}, fmt.Errorf("GrowthSweep: need at least 2 steps, got %d", steps)
	}

	stepSize := (highPct - lowPct) / float64(steps-1)
	points := make([]Point, 0, steps)
	for i := 0; i < steps; i++ {
		g := lowPct + float64(i)*stepSize
		buy, rent, err := sim.Evaluate(p, g, p.RentGrowthPct, p.TaxEnabled)
		if err != nil {
			return Result{}, fmt.Errorf("GrowthSweep: at %.4f%%: %w", g, err)
		}
		points = append(points, Point{X: g, Delta: buy - rent})
	}
	return withBreakEven(points), nil
}

// TenureSweep evaluates the delta over integer holding years from minYears
// to maxYears inclusive, growth rates held fixed. Lifetime mode is disabled
// for the swept evaluations so every sample books a sale.
func TenureSweep(p sim.Params, minYears, maxYears int) (Result, error) {
	if minYears < 1 || maxYears < minYears {
		return Result{}, fmt.Errorf("TenureSweep: invalid range [%d, %d]", minYears, maxYears)
	}

	points := make([]Point, 0, maxYears-minYears+1)
	for y := minYears; y <= maxYears; y++ {
		py := p
		py.Lifetime = false
		py.HoldingYears = y

		buy, rent, err := sim.Evaluate(py, p.HouseGrowthPct, p.RentGrowthPct, p.TaxEnabled)
		if err != nil {
			return Result{}, fmt.Errorf("TenureSweep: at %d years: %w", y, err)
		}
		points = append(points, Point{X: float64(y), Delta: buy - rent})
	}
	return withBreakEven(points), nil
}

// withBreakEven scans the samples in ascending order and reports the left
// edge of the first adjacent pair whose deltas have strictly opposite signs.
// No interpolation; a delta of exactly zero does not count as a crossing.
func withBreakEven(points []Point) Result {
	res := Result{Points: points}
	for i := 0; i+1 < len(points); i++ {
		if points[i].Delta*points[i+1].Delta < 0 {
			res.BreakEven = points[i].X
			res.HasBreakEven = true
			break
		}
	}
	return res
}
