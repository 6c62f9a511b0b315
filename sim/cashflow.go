package sim

import (
	"math"

	"github.com/homequant/buyrent/loan"
)

// Series is an ordered monthly cashflow. Index 0 is the initial outlay
// (negative), indices 1..n the recurring flows; any terminal adjustment
// (sale proceeds, liquidated investment) is folded into the final element.
// A series over n holding months has length n+1.
type Series []float64

// Sum adds the raw, undiscounted flows.
func (s Series) Sum() float64 {
	var total float64
	for _, cf := range s {
		total += cf
	}
	return total
}

// BuildBuyFlow constructs the ownership cashflow at the given annual house
// growth. Each month pays EMI plus running costs less any tax saving; unless
// the horizon is a lifetime hold, the final month also books the net sale:
// grown price less seller's commission less the remaining loan balance.
//
// The EMI keeps being charged for horizons past the loan tenure, amortizing
// the balance through zero; the overpayment is then returned via the smaller
// balance deducted at sale. Horizon-bounded semantics, not a payoff check.
func BuildBuyFlow(p Params, houseGrowthPct float64, taxOn bool) (Series, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	months := p.HoldMonths()
	ln := p.Loan()

	cf := make(Series, 0, months+1)
	cf = append(cf, -p.InitialOutlay())

	balance := ln.Amount
	for m := 1; m <= months; m++ {
		interest, principal, next := loan.Split(balance, ln.MonthlyRate, ln.EMI)
		balance = next

		var saving float64
		if taxOn {
			saving = p.Tax.MonthlySaving(interest, principal)
		}
		cf = append(cf, -(ln.EMI + p.MonthlyCosts - saving))
	}

	if !p.Lifetime {
		salePrice := p.Price * math.Pow(1+houseGrowthPct/100, float64(p.HoldYears()))
		saleNet := salePrice*(1-p.SellCommissionPct/100) - balance
		cf[months] += saleNet
	}
	return cf, nil
}

// BuildRentFlow constructs the rent-and-invest cashflow at the given annual
// rent growth. The same initial outlay as the buy path is invested at the
// monthly discount rate; rent compounds monthly and is paid out each month;
// the final month liquidates the investment balance as a lump-sum inflow.
//
// Rent is not discounted here — its monthly compounding is the growth of the
// expense, not a return. Discounting happens once, in Discount.
func BuildRentFlow(p Params, rentGrowthPct float64) (Series, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	months := p.HoldMonths()
	monthlyDisc := p.MonthlyDiscountRate()

	cf := make(Series, 0, months+1)
	invest := p.InitialOutlay()
	cf = append(cf, -invest)

	rent := p.Rent0
	for m := 1; m <= months; m++ {
		invest *= 1 + monthlyDisc
		rent *= 1 + rentGrowthPct/100/12
		cf = append(cf, -rent)
	}
	cf[months] += invest
	return cf, nil
}
