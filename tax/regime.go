// Package tax models the home-loan deduction regime applied to the buy path.
package tax

// Default regime parameters: the Section 24 interest cap, the 80C principal
// cap and a 30% marginal rate. Caps are annual amounts in the same currency
// unit as the house price.
const (
	DefaultRate         = 0.30
	DefaultInterestCap  = 200000.0
	DefaultPrincipalCap = 150000.0
)

// Regime holds the deduction parameters for one jurisdiction.
type Regime struct {
	Rate         float64
	InterestCap  float64
	PrincipalCap float64
}

// DefaultRegime returns the implemented jurisdiction's defaults.
func DefaultRegime() Regime {
	return Regime{
		Rate:         DefaultRate,
		InterestCap:  DefaultInterestCap,
		PrincipalCap: DefaultPrincipalCap,
	}
}

// MonthlySaving returns the tax saved in one month given that month's
// interest and principal portions.
//
// The annual deduction is approximated by multiplying the single month's
// split by 12 and capping each component. This is not a rolling annual cap:
// the split drifts within a year, so early months overstate and late months
// understate the true figure slightly. The approximation is intentional and
// load-bearing for result compatibility.
func (r Regime) MonthlySaving(monthlyInterest, monthlyPrincipal float64) float64 {
	annualInterest := monthlyInterest * 12
	if annualInterest > r.InterestCap {
		annualInterest = r.InterestCap
	}
	annualPrincipal := monthlyPrincipal * 12
	if annualPrincipal > r.PrincipalCap {
		annualPrincipal = r.PrincipalCap
	}
	return (annualInterest + annualPrincipal) * r.Rate / 12
}
