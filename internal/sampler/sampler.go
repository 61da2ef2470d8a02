// Package sampler draws independent values from the supported probability
// distributions.
package sampler

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/rtreharne/fishdata/internal/domain"
)

// Draw produces n independent draws from the given distribution kind. For the
// normal kind, mean and spread are the Gaussian location and scale; a zero
// spread yields the mean exactly. For the exponential kind the scale equals
// mean and spread is ignored; draws are never negative. All randomness flows
// through src so seeded runs are reproducible.
func Draw(src rand.Source, dist domain.Distribution, n int, mean, spread float64) ([]float64, error) {
	var sample func() float64
	switch dist {
	case domain.Normal:
		d := distuv.Normal{Mu: mean, Sigma: spread, Src: src}
		sample = d.Rand
	case domain.Exponential:
		if mean <= 0 {
			return nil, fmt.Errorf("exponential distribution requires a positive mean, got %v", mean)
		}
		d := distuv.Exponential{Rate: 1 / mean, Src: src}
		sample = d.Rand
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedDistribution, dist.String())
	}

	values := make([]float64, n)
	for i := range values {
		values[i] = sample()
	}
	return values, nil
}
