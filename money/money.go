// Package money rounds and formats currency amounts for presentation. The
// engine itself works in raw float64; rounding happens only at the boundary.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Round2 rounds to two decimal places with decimal half-up semantics,
// avoiding the banker's-rounding surprises of float formatting.
func Round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// Format renders v with thousands separators and two decimals,
// e.g. -1234567.891 -> "-1,234,567.89".
func Format(v float64) string {
	s := decimal.NewFromFloat(v).Round(2).StringFixed(2)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, fracPart, _ := strings.Cut(s, ".")

	var b strings.Builder
	n := len(intPart)
	for i := 0; i < n; i++ {
		if i > 0 && (n-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteByte(intPart[i])
	}
	out := b.String() + "." + fracPart
	if neg {
		out = "-" + out
	}
	return out
}
