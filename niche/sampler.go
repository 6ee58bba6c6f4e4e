package niche

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// ConstantFactors normalises payoffs by their mean, so that the expected number
// of offspring over the whole population equals its current size.
func ConstantFactors(payoffs []float64) ([]float64, float64, error) {
	if err := checkPayoffs(payoffs); err != nil {
		return nil, 0, err
	}
	if len(payoffs) == 0 {
		return nil, 0, ErrZeroMeanPayoff
	}
	mean := stat.Mean(payoffs, nil)
	if mean == 0 {
		return nil, 0, ErrZeroMeanPayoff
	}
	factors := make([]float64, len(payoffs))
	for i, p := range payoffs {
		factors[i] = p / mean
	}
	return factors, mean, nil
}

// VariableFactors scales payoffs by the reproduction rate q.
func VariableFactors(payoffs []float64, q float64) ([]float64, error) {
	if err := checkPayoffs(payoffs); err != nil {
		return nil, err
	}
	factors := make([]float64, len(payoffs))
	for i, p := range payoffs {
		factors[i] = q * p
	}
	return factors, nil
}

// Sampler draws raw offspring counts. It holds no seed of its own; the
// random source is owned by the population.
type Sampler struct {
	rng *rand.Rand
}

// NewSampler creates a sampler drawing from rng.
func NewSampler(rng *rand.Rand) Sampler {
	return Sampler{rng: rng}
}

// Sample draws one Poisson count per payoff factor, using the factor as the rate.
func (s Sampler) Sample(factors []float64) []int {
	offspring := make([]int, len(factors))
	for i, lambda := range factors {
		if lambda <= 0 {
			continue
		}
		dist := distuv.Poisson{Lambda: lambda, Src: s.rng}
		offspring[i] = int(dist.Rand())
	}
	return offspring
}
