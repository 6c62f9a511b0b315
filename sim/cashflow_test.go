package sim_test

import (
	"errors"
	"math"
	"testing"

	"github.com/homequant/buyrent/sim"
)

func TestBuildBuyFlow_Shape(t *testing.T) {
	t.Parallel()

	p := sim.DefaultParams()
	cf, err := sim.BuildBuyFlow(p, p.HouseGrowthPct, true)
	if err != nil {
		t.Fatalf("BuildBuyFlow: %v", err)
	}

	if len(cf) != p.HoldMonths()+1 {
		t.Fatalf("length: got %d want %d", len(cf), p.HoldMonths()+1)
	}
	if cf[0] >= 0 {
		t.Fatalf("initial outlay should be negative, got %.2f", cf[0])
	}
	// Recurring months (all but the last, which carries the sale) are
	// outflows of EMI + costs - saving.
	for m := 1; m < len(cf)-1; m++ {
		if cf[m] >= 0 {
			t.Fatalf("month %d should be an outflow, got %.2f", m, cf[m])
		}
	}
	// A 10-year hold of an appreciating house ends with a large inflow.
	if cf[len(cf)-1] <= 0 {
		t.Fatalf("final month should carry net sale proceeds, got %.2f", cf[len(cf)-1])
	}
}

func TestBuildBuyFlow_InitialOutlayComponents(t *testing.T) {
	t.Parallel()

	p := sim.DefaultParams()
	cf, err := sim.BuildBuyFlow(p, p.HouseGrowthPct, true)
	if err != nil {
		t.Fatalf("BuildBuyFlow: %v", err)
	}

	// 20% down (300000) + 1% commission (15000) + 3% stamp duty (45000) + 8000.
	want := -(300000.0 + 15000.0 + 45000.0 + 8000.0)
	if math.Abs(cf[0]-want) > 1e-9 {
		t.Fatalf("initial outlay: got %.2f want %.2f", cf[0], want)
	}
}

func TestBuildBuyFlow_LifetimeSkipsSale(t *testing.T) {
	t.Parallel()

	p := sim.DefaultParams()
	p.Lifetime = true

	cf, err := sim.BuildBuyFlow(p, p.HouseGrowthPct, true)
	if err != nil {
		t.Fatalf("BuildBuyFlow: %v", err)
	}

	if len(cf) != sim.LifetimeCapYears*12+1 {
		t.Fatalf("lifetime length: got %d want %d", len(cf), sim.LifetimeCapYears*12+1)
	}
	// No sale: the last month is an ordinary outflow, same order of
	// magnitude as the month before it.
	last, prev := cf[len(cf)-1], cf[len(cf)-2]
	if last >= 0 {
		t.Fatalf("lifetime final month should not book a sale, got %.2f", last)
	}
	if math.Abs(last-prev) > math.Abs(prev) {
		t.Fatalf("lifetime final month %.2f diverges from previous %.2f", last, prev)
	}
}

func TestBuildRentFlow_Shape(t *testing.T) {
	t.Parallel()

	p := sim.DefaultParams()
	cf, err := sim.BuildRentFlow(p, p.RentGrowthPct)
	if err != nil {
		t.Fatalf("BuildRentFlow: %v", err)
	}

	if len(cf) != p.HoldMonths()+1 {
		t.Fatalf("length: got %d want %d", len(cf), p.HoldMonths()+1)
	}
	if cf[0] >= 0 {
		t.Fatalf("initial investment should be an outflow, got %.2f", cf[0])
	}
	// Final month: liquidated investment dwarfs one month's rent.
	if cf[len(cf)-1] <= 0 {
		t.Fatalf("final month should liquidate the investment, got %.2f", cf[len(cf)-1])
	}
}

func TestBuildFlows_IdenticalInitialOutlay(t *testing.T) {
	t.Parallel()

	p := sim.DefaultParams()
	buy, err := sim.BuildBuyFlow(p, p.HouseGrowthPct, true)
	if err != nil {
		t.Fatalf("BuildBuyFlow: %v", err)
	}
	rent, err := sim.BuildRentFlow(p, p.RentGrowthPct)
	if err != nil {
		t.Fatalf("BuildRentFlow: %v", err)
	}
	if buy[0] != rent[0] {
		t.Fatalf("initial outlays differ: buy %.2f rent %.2f", buy[0], rent[0])
	}
}

func TestBuildRentFlow_RentCompounds(t *testing.T) {
	t.Parallel()

	p := sim.DefaultParams()
	cf, err := sim.BuildRentFlow(p, p.RentGrowthPct)
	if err != nil {
		t.Fatalf("BuildRentFlow: %v", err)
	}

	// Month 1 rent has already compounded once.
	want := -p.Rent0 * (1 + p.RentGrowthPct/100/12)
	if math.Abs(cf[1]-want) > 1e-9 {
		t.Fatalf("month-1 rent: got %.6f want %.6f", cf[1], want)
	}
	// Rent outflows grow in magnitude month over month.
	for m := 2; m < len(cf)-1; m++ {
		if cf[m] >= cf[m-1] {
			t.Fatalf("rent should grow: month %d %.6f vs month %d %.6f", m, cf[m], m-1, cf[m-1])
		}
	}
}

func TestBuildFlows_InvalidParams(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		mutate func(*sim.Params)
	}{
		{"zero price", func(p *sim.Params) { p.Price = 0 }},
		{"negative price", func(p *sim.Params) { p.Price = -1 }},
		{"down payment over 100", func(p *sim.Params) { p.DownPaymentPct = 120 }},
		{"zero tenure", func(p *sim.Params) { p.TenureYears = 0 }},
		{"zero holding", func(p *sim.Params) { p.HoldingYears = 0 }},
		{"negative rent", func(p *sim.Params) { p.Rent0 = -10 }},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			p := sim.DefaultParams()
			tc.mutate(&p)

			if _, err := sim.BuildBuyFlow(p, p.HouseGrowthPct, true); !errors.Is(err, sim.ErrInvalidParameter) {
				t.Fatalf("BuildBuyFlow: want ErrInvalidParameter, got %v", err)
			}
			if _, err := sim.BuildRentFlow(p, p.RentGrowthPct); !errors.Is(err, sim.ErrInvalidParameter) {
				t.Fatalf("BuildRentFlow: want ErrInvalidParameter, got %v", err)
			}
		})
	}
}
