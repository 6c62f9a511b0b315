// Package scen implements `buyrent scenarios`.
package scen

import (
	"flag"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/homequant/buyrent/cmd/buyrent/internal/cli"
	"github.com/homequant/buyrent/money"
	"github.com/homequant/buyrent/sim"
	"github.com/homequant/buyrent/sim/sweep"
)

type row struct {
	Scenario string  `json:"scenario"`
	NPVBuy   float64 `json:"npv_buy"`
	NPVRent  float64 `json:"npv_rent"`
	Delta    float64 `json:"delta"`
}

type output struct {
	Rows       []row   `json:"rows"`
	TaxBenefit float64 `json:"tax_benefit"`
}

func Run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("scenarios", flag.ContinueOnError)
	fs.SetOutput(stderr)
	inputPath := fs.String("input", "", "JSON parameter file ('-' for stdin; built-in defaults when omitted)")
	table := fs.Bool("table", false, "print a formatted table instead of JSON")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	p, err := cli.Load(stdin, *inputPath)
	if err != nil {
		return cli.Fail(stderr, err)
	}

	results, err := sweep.ScenarioTable(p, sweep.DefaultScenarios(p))
	if err != nil {
		return cli.Fail(stderr, err)
	}
	benefit, err := sim.TaxBenefit(p)
	if err != nil {
		return cli.Fail(stderr, err)
	}

	if *table {
		printTable(stdout, results, benefit)
		return 0
	}

	out := output{TaxBenefit: money.Round2(benefit)}
	for _, r := range results {
		out.Rows = append(out.Rows, row{
			Scenario: r.Label,
			NPVBuy:   money.Round2(r.NPVBuy),
			NPVRent:  money.Round2(r.NPVRent),
			Delta:    money.Round2(r.Delta),
		})
	}
	cli.WriteJSON(stdout, out)
	return 0
}

func printTable(w io.Writer, results []sweep.ScenarioResult, benefit float64) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "Scenario\tNPV Buy\tNPV Rent\tBuy-Rent")
	for _, r := range results {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			r.Label, money.Format(r.NPVBuy), money.Format(r.NPVRent), money.Format(r.Delta))
	}
	tw.Flush()
	fmt.Fprintf(w, "\nTax benefit value: %s\n", money.Format(benefit))
}
