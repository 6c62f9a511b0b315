// Package sim prices the buy-vs-rent decision: it builds the monthly
// cashflow of owning (mortgage, running costs, tax relief, eventual sale)
// and of renting while investing the forgone purchase cash, and discounts
// both to present value.
package sim

import (
	"errors"
	"fmt"

	"github.com/homequant/buyrent/loan"
	"github.com/homequant/buyrent/tax"
)

// ErrInvalidParameter is wrapped into every parameter validation failure so
// callers can branch with errors.Is.
var ErrInvalidParameter = errors.New("invalid parameter")

// LifetimeCapYears bounds the "hold till lifetime" horizon. A lifetime hold
// is modeled as a fixed long horizon with no sale, which approximates but
// does not equal a true perpetuity.
const LifetimeCapYears = 60

// Purchase frictions applied to the initial outlay on top of the down
// payment and the buyer's commission.
const (
	// stampDutyPct is the registration/stamp-duty proxy as a fraction of price.
	stampDutyPct = 0.03
	// flatFee covers fixed legal and processing charges, in currency units.
	flatFee = 8000.0
)

// Params is the immutable input of one simulation run. Every engine call is
// a pure function of a Params value plus the scalar overrides it explicitly
// varies; nothing reads ambient configuration.
type Params struct {
	// Property and loan.
	Price          float64
	DownPaymentPct float64
	LoanRatePct    float64
	TenureYears    int

	// Rent path.
	Rent0         float64
	RentGrowthPct float64

	// Market.
	HouseGrowthPct  float64
	DiscountRatePct float64

	// Holding horizon. Lifetime means hold with no sale, capped at
	// LifetimeCapYears; HoldingYears is ignored while it is set.
	HoldingYears int
	Lifetime     bool

	// Transaction and running costs.
	BuyCommissionPct  float64
	SellCommissionPct float64
	MonthlyCosts      float64

	// Tax treatment of the buy path.
	TaxEnabled bool
	Tax        tax.Regime
}

// Validate fails fast on parameters that make the simulation meaningless.
// Nothing is clamped; the error wraps ErrInvalidParameter.
func (p Params) Validate() error {
	if p.Price <= 0 {
		return fmt.Errorf("Params: price %.2f must be positive: %w", p.Price, ErrInvalidParameter)
	}
	if p.DownPaymentPct < 0 || p.DownPaymentPct > 100 {
		return fmt.Errorf("Params: down payment %.2f%% outside [0, 100]: %w", p.DownPaymentPct, ErrInvalidParameter)
	}
	if p.TenureYears <= 0 {
		return fmt.Errorf("Params: tenure %d years must be positive: %w", p.TenureYears, ErrInvalidParameter)
	}
	if !p.Lifetime && p.HoldingYears <= 0 {
		return fmt.Errorf("Params: holding %d years must be positive: %w", p.HoldingYears, ErrInvalidParameter)
	}
	if p.Rent0 < 0 {
		return fmt.Errorf("Params: rent %.2f must not be negative: %w", p.Rent0, ErrInvalidParameter)
	}
	return nil
}

// HoldYears is the effective holding horizon in years.
func (p Params) HoldYears() int {
	if p.Lifetime {
		return LifetimeCapYears
	}
	return p.HoldingYears
}

// HoldMonths is the effective holding horizon in months.
func (p Params) HoldMonths() int {
	return p.HoldYears() * 12
}

// MonthlyDiscountRate is the periodic discount rate used for NPV and for
// compounding the rent path's investment balance.
func (p Params) MonthlyDiscountRate() float64 {
	return p.DiscountRatePct / 100 / 12
}

// Downpayment is the cash equity paid at purchase.
func (p Params) Downpayment() float64 {
	return p.Price * p.DownPaymentPct / 100
}

// Loan derives the amortizing-loan state for this parameter set.
func (p Params) Loan() loan.State {
	return loan.New(p.Price-p.Downpayment(), p.LoanRatePct, p.TenureYears)
}

// InitialOutlay is the day-zero cash requirement: down payment, buyer's
// commission, stamp duty proxy and the flat fee. The rent path invests this
// same amount, which is what makes the two paths comparable.
func (p Params) InitialOutlay() float64 {
	return p.Downpayment() + p.Price*p.BuyCommissionPct/100 + stampDutyPct*p.Price + flatFee
}
