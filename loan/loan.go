// Package loan implements fixed-rate amortizing loan math: the equated
// monthly installment (EMI) and the interest/principal split of each payment.
package loan

import "math"

// State is the derived position of one loan: everything the simulation needs
// beyond the raw inputs, computed once per parameter set.
type State struct {
	// Amount is the principal borrowed, in currency units.
	Amount float64
	// MonthlyRate is the periodic rate as a decimal (annual % / 100 / 12).
	MonthlyRate float64
	// Months is the number of scheduled payments.
	Months int
	// EMI is the fixed monthly payment.
	EMI float64
}

// New derives the loan state from an annual rate in percent and a tenure in
// years. Callers must ensure tenureYears > 0.
func New(amount, annualRatePct float64, tenureYears int) State {
	r := annualRatePct / 100 / 12
	n := tenureYears * 12
	return State{
		Amount:      amount,
		MonthlyRate: r,
		Months:      n,
		EMI:         Payment(amount, r, n),
	}
}

// Payment returns the fixed periodic payment that fully amortizes amount over
// months at the given periodic rate (the standard annuity formula).
//
// A zero rate makes the annuity formula divide by zero; the payment then
// degrades to straight-line amount/months.
func Payment(amount, monthlyRate float64, months int) float64 {
	if monthlyRate == 0 {
		return amount / float64(months)
	}
	pow := math.Pow(1+monthlyRate, float64(months))
	return amount * monthlyRate * pow / (pow - 1)
}

// Split decomposes a single payment against the current balance into its
// interest and principal portions and returns the balance after the payment.
func Split(balance, monthlyRate, payment float64) (interest, principal, newBalance float64) {
	interest = balance * monthlyRate
	principal = payment - interest
	newBalance = balance - principal
	return interest, principal, newBalance
}

// YearTotals sums the interest and principal portions of the 12 payments
// falling in the given loan year (1-based), amortizing from the original
// balance.
func (s State) YearTotals(year int) (interest, principal float64) {
	balance := s.Amount
	for m := 0; m < year*12; m++ {
		i, p, next := Split(balance, s.MonthlyRate, s.EMI)
		if m >= (year-1)*12 {
			interest += i
			principal += p
		}
		balance = next
	}
	return interest, principal
}
