// Package montecarlo evaluates the buy-vs-rent delta under random correlated
// growth assumptions and aggregates the outcomes into a win probability.
package montecarlo

import (
	"errors"
	"fmt"

	"github.com/homequant/buyrent/sim"
)

// ErrDegenerateCorrelation is returned when the requested correlation makes
// the bivariate covariance non-positive-semi-definite (|rho| > 1 with unit
// variances). Reported, never silently corrected.
var ErrDegenerateCorrelation = errors.New("degenerate correlation")

// Defaults for production runs.
const (
	DefaultTrials      = 500
	DefaultCorrelation = 0.4
)

// Sampler yields one (houseGrowthPct, rentGrowthPct) draw per call. The
// randomness source lives entirely behind this interface so runs can be
// seeded and reproduced. Implementations are single-goroutine unless they
// document otherwise.
type Sampler interface {
	Draw() (houseGrowthPct, rentGrowthPct float64)
}

// Result is the aggregate of one run. Deltas holds the per-trial
// NPVBuy - NPVRent values in draw order; WinProbability is the fraction of
// trials with a strictly positive delta.
type Result struct {
	Deltas         []float64
	WinProbability float64
}

// Run draws trials samples, evaluates each and aggregates. The runner keeps
// no state beyond the per-run accumulation; errors from the engine abort the
// run and propagate unchanged.
func Run(p sim.Params, sampler Sampler, trials int) (Result, error) {
	if trials <= 0 {
		return Result{}, fmt.Errorf("Run: trials %d must be positive", trials)
	}
	if sampler == nil {
		return Result{}, fmt.Errorf("Run: sampler is required")
	}

	deltas := make([]float64, 0, trials)
	wins := 0
	for i := 0; i < trials; i++ {
		hg, rg := sampler.Draw()
		buy, rent, err := sim.Evaluate(p, hg, rg, p.TaxEnabled)
		if err != nil {
			return Result{}, fmt.Errorf("Run: trial %d: %w", i, err)
		}
		delta := buy - rent
		if delta > 0 {
			wins++
		}
		deltas = append(deltas, delta)
	}

	return Result{
		Deltas:         deltas,
		WinProbability: float64(wins) / float64(trials),
	}, nil
}
