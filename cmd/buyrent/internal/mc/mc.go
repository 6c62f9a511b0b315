// Package mc implements `buyrent montecarlo`.
package mc

import (
	"flag"
	"io"
	"math/rand"
	"time"

	"github.com/homequant/buyrent/cmd/buyrent/internal/cli"
	"github.com/homequant/buyrent/money"
	"github.com/homequant/buyrent/sim/montecarlo"
)

type output struct {
	Trials         int     `json:"trials"`
	WinProbability float64 `json:"win_probability"`
	MeanDelta      float64 `json:"mean_delta"`
	MinDelta       float64 `json:"min_delta"`
	MaxDelta       float64 `json:"max_delta"`
}

func Run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("montecarlo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	inputPath := fs.String("input", "", "JSON parameter file ('-' for stdin; built-in defaults when omitted)")
	trials := fs.Int("trials", montecarlo.DefaultTrials, "number of trials")
	corr := fs.Float64("corr", montecarlo.DefaultCorrelation, "house/rent growth correlation")
	seed := fs.Int64("seed", 0, "random seed (0 means time-based)")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	p, err := cli.Load(stdin, *inputPath)
	if err != nil {
		return cli.Fail(stderr, err)
	}

	s := *seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	sampler, err := montecarlo.NewGaussianSampler(p.HouseGrowthPct, p.RentGrowthPct, *corr, rand.NewSource(s))
	if err != nil {
		return cli.Fail(stderr, err)
	}

	res, err := montecarlo.Run(p, sampler, *trials)
	if err != nil {
		return cli.Fail(stderr, err)
	}

	mean, min, max := summarize(res.Deltas)
	cli.WriteJSON(stdout, output{
		Trials:         *trials,
		WinProbability: res.WinProbability,
		MeanDelta:      money.Round2(mean),
		MinDelta:       money.Round2(min),
		MaxDelta:       money.Round2(max),
	})
	return 0
}

func summarize(deltas []float64) (mean, min, max float64) {
	min, max = deltas[0], deltas[0]
	var sum float64
	for _, d := range deltas {
		sum += d
		if d < min {
			min = d
		}
		if d > max {
			max = d
		}
	}
	return sum / float64(len(deltas)), min, max
}
