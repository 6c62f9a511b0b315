package sim

import "math"

// Discount returns the present value of a series at the given periodic rate:
// sum of series[i] / (1+rate)^i. A zero rate collapses to the plain sum.
func Discount(s Series, periodicRate float64) float64 {
	var pv float64
	for i, cf := range s {
		pv += cf / math.Pow(1+periodicRate, float64(i))
	}
	return pv
}

// Evaluate prices both paths under the given growth overrides and returns
// their net present values at the monthly discount rate. Deterministic: two
// calls with identical inputs produce bit-identical outputs.
func Evaluate(p Params, houseGrowthPct, rentGrowthPct float64, taxOn bool) (npvBuy, npvRent float64, err error) {
	buy, err := BuildBuyFlow(p, houseGrowthPct, taxOn)
	if err != nil {
		return 0, 0, err
	}
	rent, err := BuildRentFlow(p, rentGrowthPct)
	if err != nil {
		return 0, 0, err
	}

	disc := p.MonthlyDiscountRate()
	return Discount(buy, disc), Discount(rent, disc), nil
}

// TaxBenefit is the value of the deduction regime to the buy path:
// npvBuy with tax relief minus npvBuy without, at the baseline growths.
func TaxBenefit(p Params) (float64, error) {
	withTax, _, err := Evaluate(p, p.HouseGrowthPct, p.RentGrowthPct, true)
	if err != nil {
		return 0, err
	}
	withoutTax, _, err := Evaluate(p, p.HouseGrowthPct, p.RentGrowthPct, false)
	if err != nil {
		return 0, err
	}
	return withTax - withoutTax, nil
}
