// Package marketdata supplies named market-assumption presets (lending and
// discount rates, growth views) for seeding simulations.
package marketdata

import "github.com/homequant/buyrent/sim"

// Assumptions is one named market view. Rates are annual percentages.
type Assumptions struct {
	Name            string
	LoanRatePct     float64
	DiscountRatePct float64
	HouseGrowthPct  float64
	RentGrowthPct   float64
}

// AssumptionFeed resolves a named assumption set.
type AssumptionFeed interface {
	Lookup(name string) (Assumptions, bool)
}

// MapAssumptionFeed is a static map-backed implementation for
// development/testing.
type MapAssumptionFeed struct {
	sets map[string]Assumptions
}

func NewMapAssumptionFeed(sets ...Assumptions) *MapAssumptionFeed {
	m := &MapAssumptionFeed{sets: make(map[string]Assumptions, len(sets))}
	for _, a := range sets {
		m.sets[a.Name] = a
	}
	return m
}

func (m *MapAssumptionFeed) Lookup(name string) (Assumptions, bool) {
	a, ok := m.sets[name]
	return a, ok
}

// DefaultFeed bundles the baseline view plus stressed credit variants.
func DefaultFeed() AssumptionFeed {
	return NewMapAssumptionFeed(
		Assumptions{Name: "base", LoanRatePct: 3, DiscountRatePct: 5, HouseGrowthPct: 3, RentGrowthPct: 2},
		Assumptions{Name: "tight-credit", LoanRatePct: 4.5, DiscountRatePct: 5.5, HouseGrowthPct: 2, RentGrowthPct: 2.5},
		Assumptions{Name: "easy-credit", LoanRatePct: 2.25, DiscountRatePct: 4.5, HouseGrowthPct: 4, RentGrowthPct: 1.5},
	)
}

// Apply copies an assumption set onto a parameter value and returns the
// updated copy; the input is not mutated.
func Apply(p sim.Params, a Assumptions) sim.Params {
	p.LoanRatePct = a.LoanRatePct
	p.DiscountRatePct = a.DiscountRatePct
	p.HouseGrowthPct = a.HouseGrowthPct
	p.RentGrowthPct = a.RentGrowthPct
	return p
}
