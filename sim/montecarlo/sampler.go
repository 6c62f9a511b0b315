package montecarlo

import (
	"fmt"
	"math"
	"math/rand"
)

// GaussianSampler draws from a bivariate normal with the configured means,
// unit variances and correlation.
type GaussianSampler struct {
	houseMean float64
	rentMean  float64
	corr      float64
	rng       *rand.Rand
}

// NewGaussianSampler validates the correlation and wires the random source.
// Pass rand.NewSource(seed) for a reproducible stream.
func NewGaussianSampler(houseMean, rentMean, correlation float64, src rand.Source) (*GaussianSampler, error) {
	if correlation < -1 || correlation > 1 {
		return nil, fmt.Errorf("NewGaussianSampler: correlation %.4f: %w", correlation, ErrDegenerateCorrelation)
	}
	return &GaussianSampler{
		houseMean: houseMean,
		rentMean:  rentMean,
		corr:      correlation,
		rng:       rand.New(src),
	}, nil
}

// Draw returns one correlated pair. The second coordinate is constructed
// from the first via the Cholesky factor of the 2x2 unit-variance
// covariance: rent = mean + rho*z1 + sqrt(1-rho^2)*z2.
func (g *GaussianSampler) Draw() (houseGrowthPct, rentGrowthPct float64) {
	z1 := g.rng.NormFloat64()
	z2 := g.rng.NormFloat64()
	houseGrowthPct = g.houseMean + z1
	rentGrowthPct = g.rentMean + g.corr*z1 + math.Sqrt(1-g.corr*g.corr)*z2
	return houseGrowthPct, rentGrowthPct
}
