// Package growth implements `buyrent growth`.
package growth

import (
	"flag"
	"io"

	"github.com/homequant/buyrent/cmd/buyrent/internal/cli"
	"github.com/homequant/buyrent/money"
	"github.com/homequant/buyrent/sim/sweep"
)

type point struct {
	GrowthPct float64 `json:"growth_pct"`
	Delta     float64 `json:"delta"`
}

type output struct {
	Points    []point  `json:"points"`
	BreakEven *float64 `json:"break_even_pct,omitempty"`
}

func Run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("growth", flag.ContinueOnError)
	fs.SetOutput(stderr)
	inputPath := fs.String("input", "", "JSON parameter file ('-' for stdin; built-in defaults when omitted)")
	low := fs.Float64("low", sweep.DefaultGrowthLowPct, "lower bound of the growth grid (%)")
	high := fs.Float64("high", sweep.DefaultGrowthHighPct, "upper bound of the growth grid (%)")
	steps := fs.Int("steps", sweep.DefaultGrowthSteps, "number of grid samples")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	p, err := cli.Load(stdin, *inputPath)
	if err != nil {
		return cli.Fail(stderr, err)
	}

	res, err := sweep.GrowthSweep(p, *low, *high, *steps)
	if err != nil {
		return cli.Fail(stderr, err)
	}

	out := output{Points: make([]point, len(res.Points))}
	for i, pt := range res.Points {
		out.Points[i] = point{GrowthPct: pt.X, Delta: money.Round2(pt.Delta)}
	}
	if res.HasBreakEven {
		be := res.BreakEven
		out.BreakEven = &be
	}
	cli.WriteJSON(stdout, out)
	return 0
}
