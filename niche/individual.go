package niche

import (
	"errors"

	"golang.org/x/exp/rand"
)

var (
	// ErrSizeMismatch is returned when a population is built with a size that
	// does not match the number of individuals.
	ErrSizeMismatch = errors.New("size does not match number of individuals")
	// ErrNilIndividual is returned when an individual slot holds nil.
	ErrNilIndividual = errors.New("individual is nil")
	// ErrZeroMeanPayoff reports total collapse of a constant-size population:
	// nobody earned anything, so payoffs cannot be normalised.
	ErrZeroMeanPayoff = errors.New("mean payoff of population decreased to 0")
	// ErrInvalidPayoff is returned for a negative or NaN lifetime payoff.
	ErrInvalidPayoff = errors.New("invalid lifetime payoff")
	// ErrSizeInvariant is returned when a constant-size step fails to hit its target.
	ErrSizeInvariant = errors.New("population size invariant violated")
)

// GeneData is the heritable parameter vector of an individual.
type GeneData []float64

// Copy returns an independent copy of the genes.
func (g GeneData) Copy() GeneData {
	if g == nil {
		return nil
	}
	c := make(GeneData, len(g))
	copy(c, g)
	return c
}

// Individual is what reproduction needs from an organism.
type Individual interface {
	// LifetimePayoff is the non-negative fitness accumulated during the generation.
	LifetimePayoff() float64
	// Mutate returns a perturbed copy of the genes. The receiver is not changed.
	Mutate(rng *rand.Rand) GeneData
	// Lineage identifies the founding ancestor.
	Lineage() int
}

// Factory constructs a new individual from genes and an inherited lineage.
type Factory func(genes GeneData, lineage int) Individual

// Reactor is implemented by individuals that sense the environment signal e
// through the cue c.
type Reactor interface {
	React(e, c float64, evolveAll bool)
}

// Genotype is implemented by individuals that expose their genes for reporting.
type Genotype interface {
	Genes() GeneData
}

// NewRand returns a seeded random source for a niche. Every niche gets its own
// source so niches can be bred concurrently and still replay from a seed.
func NewRand(seed uint64, niche int) *rand.Rand {
	return rand.New(rand.NewSource(seed + uint64(niche)))
}
