package sim

import "github.com/homequant/buyrent/tax"

// DefaultParams is the classroom baseline: a 1.5M purchase with 20% down on
// a 30-year 3% loan, 4,000 starting rent, a 5% discount rate and a 10-year
// hold with 1% commissions on each side.
func DefaultParams() Params {
	return Params{
		Price:          1500000,
		DownPaymentPct: 20,
		LoanRatePct:    3,
		TenureYears:    30,

		Rent0:         4000,
		RentGrowthPct: 2,

		HouseGrowthPct:  3,
		DiscountRatePct: 5,

		HoldingYears: 10,

		BuyCommissionPct:  1,
		SellCommissionPct: 1,
		MonthlyCosts:      450,

		TaxEnabled: true,
		Tax:        tax.DefaultRegime(),
	}
}
