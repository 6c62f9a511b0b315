// Package tenure implements `buyrent tenure`.
package tenure

import (
	"flag"
	"io"

	"github.com/homequant/buyrent/cmd/buyrent/internal/cli"
	"github.com/homequant/buyrent/money"
	"github.com/homequant/buyrent/sim/sweep"
)

type point struct {
	Years int     `json:"years"`
	Delta float64 `json:"delta"`
}

type output struct {
	Points    []point `json:"points"`
	BreakEven *int    `json:"break_even_years,omitempty"`
}

func Run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("tenure", flag.ContinueOnError)
	fs.SetOutput(stderr)
	inputPath := fs.String("input", "", "JSON parameter file ('-' for stdin; built-in defaults when omitted)")
	minYears := fs.Int("min", sweep.DefaultTenureMinYears, "shortest holding horizon (years)")
	maxYears := fs.Int("max", sweep.DefaultTenureMaxYears, "longest holding horizon (years)")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	p, err := cli.Load(stdin, *inputPath)
	if err != nil {
		return cli.Fail(stderr, err)
	}

	res, err := sweep.TenureSweep(p, *minYears, *maxYears)
	if err != nil {
		return cli.Fail(stderr, err)
	}

	out := output{Points: make([]point, len(res.Points))}
	for i, pt := range res.Points {
		out.Points[i] = point{Years: int(pt.X), Delta: money.Round2(pt.Delta)}
	}
	if res.HasBreakEven {
		be := int(res.BreakEven)
		out.BreakEven = &be
	}
	cli.WriteJSON(stdout, out)
	return 0
}
