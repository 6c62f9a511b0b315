package money_test

import (
	"testing"

	"github.com/homequant/buyrent/money"
)

func TestRound2(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   float64
		want float64
	}{
		{1.005, 1.01},
		{1.004, 1.0},
		{-2.675, -2.68},
		{0, 0},
		{5059.324, 5059.32},
	}
	for _, tc := range cases {
		if got := money.Round2(tc.in); got != tc.want {
			t.Fatalf("Round2(%v): got %v want %v", tc.in, got, tc.want)
		}
	}
}

func TestFormat(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   float64
		want string
	}{
		{0, "0.00"},
		{42.5, "42.50"},
		{1234.5, "1,234.50"},
		{1234567.891, "1,234,567.89"},
		{-1234567.891, "-1,234,567.89"},
		{999, "999.00"},
		{1000, "1,000.00"},
	}
	for _, tc := range cases {
		if got := money.Format(tc.in); got != tc.want {
			t.Fatalf("Format(%v): got %q want %q", tc.in, got, tc.want)
		}
	}
}
