package niche

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
)

// Policy selects how offspring counts are adjusted to meet a target size.
type Policy int

const (
	// PolicyRanked takes surplus from the least fit and gives deficit to the fittest.
	PolicyRanked Policy = iota
	// PolicyRandom adjusts uniformly chosen individuals.
	PolicyRandom
)

func (p Policy) String() string {
	switch p {
	case PolicyRanked:
		return "ranked"
	case PolicyRandom:
		return "random"
	default:
		return "unknown"
	}
}

// Corrector reconciles raw offspring counts with a target population size.
// Both methods adjust offspring in place and return the discrepancy
// d = sum(offspring) - target observed before any adjustment. factors must be
// aligned with offspring; the ranked policy reads them, the random one ignores them.
type Corrector struct {
	Policy Policy
	rng    *rand.Rand
}

// NewCorrector creates a corrector using policy and drawing from rng.
func NewCorrector(policy Policy, rng *rand.Rand) Corrector {
	return Corrector{Policy: policy, rng: rng}
}

// Constant forces sum(offspring) == target.
func (c Corrector) Constant(offspring []int, factors []float64, target int) int {
	d := sumInts(offspring) - target
	switch {
	case d > 0:
		c.trim(offspring, factors, d)
	case d < 0:
		c.fill(offspring, factors, -d)
	}
	return d
}

// Variable only removes a surplus above target; a deficit is left alone so the
// population size can float.
func (c Corrector) Variable(offspring []int, factors []float64, target int) int {
	d := sumInts(offspring) - target
	if d > 0 {
		c.trim(offspring, factors, d)
	}
	return d
}

func (c Corrector) trim(offspring []int, factors []float64, n int) {
	if c.Policy == PolicyRandom {
		trimRandom(c.rng, offspring, n)
		return
	}
	trimRanked(offspring, factors, n)
}

func (c Corrector) fill(offspring []int, factors []float64, n int) {
	if c.Policy == PolicyRandom {
		fillRandom(c.rng, offspring, n)
		return
	}
	fillRanked(offspring, factors, n)
}

// trimRandom removes n offspring, one at a time, from individuals chosen
// uniformly among those that still have offspring left.
func trimRandom(rng *rand.Rand, offspring []int, n int) {
	eligible := positiveIndices(offspring)
	for i := 0; i < n && len(eligible) > 0; i++ {
		k := rng.Intn(len(eligible))
		m := eligible[k]
		offspring[m]--
		if offspring[m] == 0 {
			eligible[k] = eligible[len(eligible)-1]
			eligible = eligible[:len(eligible)-1]
		}
	}
}

// fillRandom adds n offspring to individuals chosen uniformly among those that
// already reproduce, or among everyone when nobody does.
func fillRandom(rng *rand.Rand, offspring []int, n int) {
	eligible := positiveIndices(offspring)
	if len(eligible) == 0 {
		eligible = allIndices(len(offspring))
	}
	if len(eligible) == 0 {
		return
	}
	for i := 0; i < n; i++ {
		offspring[eligible[rng.Intn(len(eligible))]]++
	}
}

// trimRanked removes n offspring from the individuals with the lowest payoff
// factor. Individuals without offspring are parked above the maximum so they
// are never picked.
func trimRanked(offspring []int, factors []float64, n int) {
	if len(offspring) == 0 {
		return
	}
	pf := make([]float64, len(factors))
	copy(pf, factors)
	parked := floats.Max(pf) + 1
	for i, o := range offspring {
		if o == 0 {
			pf[i] = parked
		}
	}
	for i := 0; i < n; i++ {
		m := floats.MinIdx(pf)
		if offspring[m] == 0 {
			return
		}
		offspring[m]--
		if offspring[m] == 0 {
			pf[m] = parked
		}
	}
}

// fillRanked adds n offspring to the individuals with the highest payoff
// factor, one each in order of fitness. Once every positive factor has had its
// turn, a new round starts from the original factors.
func fillRanked(offspring []int, factors []float64, n int) {
	if len(offspring) == 0 {
		return
	}
	pf := make([]float64, len(factors))
	copy(pf, factors)
	best := floats.Max(factors)
	for i := 0; i < n; i++ {
		if best <= 0 {
			// Nobody is fitter than anybody else.
			offspring[i%len(offspring)]++
			continue
		}
		m := floats.MaxIdx(pf)
		if pf[m] <= 0 {
			copy(pf, factors)
			m = floats.MaxIdx(pf)
		}
		pf[m] = 0
		offspring[m]++
	}
}
