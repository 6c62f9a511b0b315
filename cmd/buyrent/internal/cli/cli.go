// Package cli holds the parameter schema and helpers shared by the buyrent
// subcommands.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/homequant/buyrent/marketdata"
	"github.com/homequant/buyrent/sim"
	"github.com/homequant/buyrent/tax"
)

// ParamsInput is the JSON input schema shared by all subcommands.
//
// Conventions:
// - rates and growths are annual percentages (3 means 3%)
// - amounts are in currency units
// - preset overlays a named assumption set from the built-in feed
type ParamsInput struct {
	Preset string `json:"preset,omitempty"`

	Price          float64 `json:"price"`
	DownPaymentPct float64 `json:"down_payment_pct"`
	LoanRatePct    float64 `json:"loan_rate_pct"`
	TenureYears    int     `json:"tenure_years"`

	MonthlyRent   float64 `json:"monthly_rent"`
	RentGrowthPct float64 `json:"rent_growth_pct"`

	HouseGrowthPct  float64 `json:"house_growth_pct"`
	DiscountRatePct float64 `json:"discount_rate_pct"`

	HoldingYears int  `json:"holding_years"`
	Lifetime     bool `json:"lifetime"`

	BuyCommissionPct  float64 `json:"buy_commission_pct"`
	SellCommissionPct float64 `json:"sell_commission_pct"`
	MonthlyCosts      float64 `json:"monthly_costs"`

	TaxEnabled bool `json:"tax_enabled"`
}

// Load resolves the simulation parameters: the built-in defaults when no
// input is given, otherwise the JSON file at path (or stdin for "-").
func Load(stdin io.Reader, path string) (sim.Params, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return sim.DefaultParams(), nil
	}

	var raw []byte
	var err error
	if path == "-" {
		raw, err = io.ReadAll(stdin)
	} else {
		raw, err = os.ReadFile(path)
	}
	if err != nil {
		return sim.Params{}, fmt.Errorf("Load: %w", err)
	}

	var in ParamsInput
	if err := json.Unmarshal(raw, &in); err != nil {
		return sim.Params{}, fmt.Errorf("Load: parse JSON input: %w", err)
	}

	p := sim.Params{
		Price:          in.Price,
		DownPaymentPct: in.DownPaymentPct,
		LoanRatePct:    in.LoanRatePct,
		TenureYears:    in.TenureYears,

		Rent0:         in.MonthlyRent,
		RentGrowthPct: in.RentGrowthPct,

		HouseGrowthPct:  in.HouseGrowthPct,
		DiscountRatePct: in.DiscountRatePct,

		HoldingYears: in.HoldingYears,
		Lifetime:     in.Lifetime,

		BuyCommissionPct:  in.BuyCommissionPct,
		SellCommissionPct: in.SellCommissionPct,
		MonthlyCosts:      in.MonthlyCosts,

		TaxEnabled: in.TaxEnabled,
		Tax:        tax.DefaultRegime(),
	}
	if in.Preset != "" {
		a, ok := marketdata.DefaultFeed().Lookup(in.Preset)
		if !ok {
			return sim.Params{}, fmt.Errorf("Load: unknown preset %q", in.Preset)
		}
		p = marketdata.Apply(p, a)
	}
	if err := p.Validate(); err != nil {
		return sim.Params{}, err
	}
	return p, nil
}

// WriteJSON marshals v onto w followed by a newline.
func WriteJSON(w io.Writer, v any) {
	raw, _ := json.Marshal(v)
	fmt.Fprintln(w, string(raw))
}

// Fail prints the error and returns the CLI failure code.
func Fail(stderr io.Writer, err error) int {
	fmt.Fprintln(stderr, "error:", err)
	return 1
}
