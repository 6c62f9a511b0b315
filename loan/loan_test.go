package loan_test

import (
	"math"
	"testing"

	"github.com/homequant/buyrent/loan"
)

func TestPayment_AmortizesToZero(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		amount float64
		rate   float64 // periodic
		months int
	}{
		{"30y at 3pct", 1200000, 0.03 / 12, 360},
		{"5y at 12pct", 10000, 0.12 / 12, 60},
		{"1 month", 5000, 0.05 / 12, 1},
		{"zero rate", 1200, 0, 12},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			payment := loan.Payment(tc.amount, tc.rate, tc.months)
			balance := tc.amount
			for m := 0; m < tc.months; m++ {
				_, _, balance = loan.Split(balance, tc.rate, payment)
			}
			if math.Abs(balance) > 1e-6*tc.amount {
				t.Fatalf("ending balance %.8f not within tolerance of 0", balance)
			}
		})
	}
}

func TestPayment_ZeroRateStraightLine(t *testing.T) {
	t.Parallel()

	got := loan.Payment(1200, 0, 12)
	if got != 100 {
		t.Fatalf("zero-rate payment: got %.4f want 100", got)
	}
}

func TestNew_ClassroomEMI(t *testing.T) {
	t.Parallel()

	// 1.5M house, 20% down => 1.2M loan at 3% over 30 years.
	st := loan.New(1200000, 3, 30)

	if st.Months != 360 {
		t.Fatalf("months: got %d want 360", st.Months)
	}
	if math.Abs(st.MonthlyRate-0.0025) > 1e-12 {
		t.Fatalf("monthly rate: got %.8f want 0.0025", st.MonthlyRate)
	}
	if st.EMI < 5050 || st.EMI > 5070 {
		t.Fatalf("EMI: got %.2f want ~5059", st.EMI)
	}

	// Annuity identity: EMI * ((1+r)^n - 1) / (r*(1+r)^n) == loan amount.
	pow := math.Pow(1+st.MonthlyRate, float64(st.Months))
	implied := st.EMI * (pow - 1) / (st.MonthlyRate * pow)
	if math.Abs(implied-st.Amount) > 1e-6*st.Amount {
		t.Fatalf("annuity identity violated: implied principal %.6f", implied)
	}
}

func TestYearTotals_FirstYear(t *testing.T) {
	t.Parallel()

	st := loan.New(1200000, 3, 30)
	interest, principal := st.YearTotals(1)

	if interest < 35000 || interest > 36500 {
		t.Fatalf("year-1 interest: got %.0f want ~35700", interest)
	}
	if principal < 24000 || principal > 26000 {
		t.Fatalf("year-1 principal: got %.0f want ~25000", principal)
	}
	if math.Abs(interest+principal-12*st.EMI) > 1e-6 {
		t.Fatalf("interest+principal %.6f does not sum to 12*EMI %.6f",
			interest+principal, 12*st.EMI)
	}
}

func TestYearTotals_InterestDeclines(t *testing.T) {
	t.Parallel()

	st := loan.New(500000, 4, 20)
	i1, _ := st.YearTotals(1)
	i10, _ := st.YearTotals(10)
	if i10 >= i1 {
		t.Fatalf("interest should decline: year 1 %.2f, year 10 %.2f", i1, i10)
	}
}
