package sweep_test

import (
	"errors"
	"math"
	"testing"

	"github.com/homequant/buyrent/sim"
	"github.com/homequant/buyrent/sim/sweep"
)

func TestScenarioTable_BoomBaseCrashOrdering(t *testing.T) {
	t.Parallel()

	p := sim.DefaultParams()
	table, err := sweep.ScenarioTable(p, sweep.DefaultScenarios(p))
	if err != nil {
		t.Fatalf("ScenarioTable: %v", err)
	}
	if len(table) != 3 {
		t.Fatalf("expected 3 scenarios, got %d", len(table))
	}

	base, boom, crash := table[0], table[1], table[2]
	if base.Label != "Base" || boom.Label != "Boom" || crash.Label != "Crash" {
		t.Fatalf("scenario order not preserved: %s, %s, %s", base.Label, boom.Label, crash.Label)
	}
	if !(boom.NPVBuy >= base.NPVBuy && base.NPVBuy >= crash.NPVBuy) {
		t.Fatalf("npvBuy ordering violated: boom %.2f base %.2f crash %.2f",
			boom.NPVBuy, base.NPVBuy, crash.NPVBuy)
	}
	// Rent growth is held fixed, so the rent path is identical.
	if boom.NPVRent != base.NPVRent || crash.NPVRent != base.NPVRent {
		t.Fatalf("npvRent should be scenario-invariant: %.6f %.6f %.6f",
			boom.NPVRent, base.NPVRent, crash.NPVRent)
	}
	for _, row := range table {
		if math.Abs(row.Delta-(row.NPVBuy-row.NPVRent)) > 1e-9 {
			t.Fatalf("%s: delta %.6f != npvBuy-npvRent %.6f", row.Label, row.Delta, row.NPVBuy-row.NPVRent)
		}
	}
}

func TestScenarioTable_PropagatesInvalidParams(t *testing.T) {
	t.Parallel()

	p := sim.DefaultParams()
	p.Price = -1
	if _, err := sweep.ScenarioTable(p, sweep.DefaultScenarios(p)); !errors.Is(err, sim.ErrInvalidParameter) {
		t.Fatalf("want ErrInvalidParameter, got %v", err)
	}
}

func TestGrowthSweep_BreakEvenBracket(t *testing.T) {
	t.Parallel()

	p := sim.DefaultParams()
	res, err := sweep.GrowthSweep(p, sweep.DefaultGrowthLowPct, sweep.DefaultGrowthHighPct, sweep.DefaultGrowthSteps)
	if err != nil {
		t.Fatalf("GrowthSweep: %v", err)
	}
	if len(res.Points) != sweep.DefaultGrowthSteps {
		t.Fatalf("points: got %d want %d", len(res.Points), sweep.DefaultGrowthSteps)
	}
	// Endpoints included.
	if res.Points[0].X != sweep.DefaultGrowthLowPct {
		t.Fatalf("first sample: got %.4f want %.4f", res.Points[0].X, sweep.DefaultGrowthLowPct)
	}
	if math.Abs(res.Points[len(res.Points)-1].X-sweep.DefaultGrowthHighPct) > 1e-9 {
		t.Fatalf("last sample: got %.4f want %.4f", res.Points[len(res.Points)-1].X, sweep.DefaultGrowthHighPct)
	}

	if !res.HasBreakEven {
		t.Fatal("baseline parameters should cross zero within [-5, 8]")
	}
	// The reported value is the left edge of a strict sign change.
	var left, right float64
	found := false
	for i := 0; i+1 < len(res.Points); i++ {
		if res.Points[i].X == res.BreakEven {
			left = res.Points[i].Delta
			right = res.Points[i+1].Delta
			found = true
			break
		}
	}
	if !found {
		t.Fatalf("break-even %.4f is not a sampled grid point", res.BreakEven)
	}
	if left*right >= 0 {
		t.Fatalf("bracket deltas should have opposite signs: %.2f, %.2f", left, right)
	}
}

func TestGrowthSweep_NoBreakEvenInNarrowRange(t *testing.T) {
	t.Parallel()

	// At strongly negative growth the delta keeps one sign across a narrow
	// band, so no crossing is reported.
	p := sim.DefaultParams()
	res, err := sweep.GrowthSweep(p, -5, -4, 10)
	if err != nil {
		t.Fatalf("GrowthSweep: %v", err)
	}
	if res.HasBreakEven {
		t.Fatalf("unexpected break-even at %.4f", res.BreakEven)
	}
	for _, pt := range res.Points {
		if pt.Delta >= 0 {
			t.Fatalf("delta at %.2f%% growth should be negative, got %.2f", pt.X, pt.Delta)
		}
	}
}

func TestGrowthSweep_RejectsDegenerateGrid(t *testing.T) {
	t.Parallel()

	if _, err := sweep.GrowthSweep(sim.DefaultParams(), -5, 8, 1); err == nil {
		t.Fatal("expected an error for a single-sample grid")
	}
}

func TestTenureSweep_IntegerGrid(t *testing.T) {
	t.Parallel()

	p := sim.DefaultParams()
	res, err := sweep.TenureSweep(p, sweep.DefaultTenureMinYears, sweep.DefaultTenureMaxYears)
	if err != nil {
		t.Fatalf("TenureSweep: %v", err)
	}
	if len(res.Points) != 30 {
		t.Fatalf("points: got %d want 30", len(res.Points))
	}
	for i, pt := range res.Points {
		if pt.X != float64(i+1) {
			t.Fatalf("sample %d: got x=%.2f want %d", i, pt.X, i+1)
		}
	}
	if res.HasBreakEven {
		// If present, the bracket must satisfy the strict sign-change rule.
		idx := int(res.BreakEven) - 1
		if idx < 0 || idx+1 >= len(res.Points) {
			t.Fatalf("break-even %.0f outside the sampled range", res.BreakEven)
		}
		if res.Points[idx].Delta*res.Points[idx+1].Delta >= 0 {
			t.Fatalf("bracket deltas should have opposite signs at year %.0f", res.BreakEven)
		}
	}
}

func TestTenureSweep_IgnoresLifetimeFlag(t *testing.T) {
	t.Parallel()

	p := sim.DefaultParams()
	p.Lifetime = true

	res, err := sweep.TenureSweep(p, 1, 5)
	if err != nil {
		t.Fatalf("TenureSweep: %v", err)
	}
	// Each sample must reflect its own horizon, not the 60-year cap: a
	// lifetime evaluation would make every point identical.
	if res.Points[0].Delta == res.Points[len(res.Points)-1].Delta {
		t.Fatal("tenure sweep did not vary the holding horizon")
	}
}

func TestTenureSweep_RejectsInvalidRange(t *testing.T) {
	t.Parallel()

	if _, err := sweep.TenureSweep(sim.DefaultParams(), 10, 5); err == nil {
		t.Fatal("expected an error for max < min")
	}
	if _, err := sweep.TenureSweep(sim.DefaultParams(), 0, 5); err == nil {
		t.Fatal("expected an error for min < 1")
	}
}
