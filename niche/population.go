package niche

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat"
)

// Population holds one niche's current generation and breeds it in place.
// A Population is not safe for concurrent use; distinct populations are
// independent and may be bred from different goroutines.
type Population struct {
	config  *Config
	niche   int
	size    int
	animals []Individual

	newIndividual Factory
	rng           *rand.Rand
	logger        *slog.Logger
}

// Outcome describes one reproduction step.
type Outcome struct {
	Discrepancy int     // sum of raw offspring minus target, before correction
	MeanPayoff  float64 // mean lifetime payoff of the parents
	Size        int     // size after the step
	Alive       bool    // false once the population is extinct
}

// NewPopulation creates a population for a niche from an initial generation.
// size must equal len(animals).
func NewPopulation(config *Config, niche, size int, animals []Individual, factory Factory, rng *rand.Rand) (*Population, error) {
	if config == nil {
		return nil, fmt.Errorf("config is required")
	}
	if factory == nil {
		return nil, fmt.Errorf("individual factory is required")
	}
	if rng == nil {
		return nil, fmt.Errorf("random source is required")
	}
	if size != len(animals) {
		return nil, fmt.Errorf("population of %d with %d individuals: %w", size, len(animals), ErrSizeMismatch)
	}
	for i, a := range animals {
		if a == nil {
			return nil, fmt.Errorf("individual %d: %w", i, ErrNilIndividual)
		}
	}
	if _, err := config.TargetSize(niche); err != nil {
		return nil, err
	}

	owned := make([]Individual, len(animals))
	copy(owned, animals)
	return &Population{
		config:        config,
		niche:         niche,
		size:          size,
		animals:       owned,
		newIndividual: factory,
		rng:           rng,
		logger:        slog.Default(),
	}, nil
}

// SetLogger replaces the logger used for per-generation messages.
func (p *Population) SetLogger(logger *slog.Logger) {
	if logger != nil {
		p.logger = logger
	}
}

// Animals returns the current generation.
func (p *Population) Animals() []Individual {
	out := make([]Individual, len(p.animals))
	copy(out, p.animals)
	return out
}

// Size returns the current number of individuals.
func (p *Population) Size() int {
	return p.size
}

// Niche returns the index of the niche this population lives in.
func (p *Population) Niche() int {
	return p.niche
}

// Extinct reports whether the population died out.
func (p *Population) Extinct() bool {
	return p.size == 0
}

// Lineage returns the lineage of every current individual.
func (p *Population) Lineage() []int {
	lin := make([]int, len(p.animals))
	for i, a := range p.animals {
		lin[i] = a.Lineage()
	}
	return lin
}

// LifetimePayoffs returns the lifetime payoff of every current individual.
func (p *Population) LifetimePayoffs() []float64 {
	payoffs := make([]float64, len(p.animals))
	for i, a := range p.animals {
		payoffs[i] = a.LifetimePayoff()
	}
	return payoffs
}

// React passes the environment signal e and cue c to every individual that can react.
func (p *Population) React(e, c float64, evolveAll bool) {
	for _, a := range p.animals {
		if r, ok := a.(Reactor); ok {
			r.React(e, c, evolveAll)
		}
	}
}

// Breed runs the reproduction step selected by the configuration.
func (p *Population) Breed() (Outcome, error) {
	if p.config.Population.VariableSize {
		return p.breedVariable()
	}
	return p.breedConstant()
}

// BreedConstant replaces the population with a new generation of exactly the
// target size and returns the discrepancy before correction. It fails with
// ErrZeroMeanPayoff when no individual earned any payoff.
func (p *Population) BreedConstant() (int, error) {
	out, err := p.breedConstant()
	return out.Discrepancy, err
}

// BreedVariable replaces the population with a new generation whose size
// follows the raw offspring draws, capped at the target. It returns alive ==
// false once the population is extinct; calls on an extinct population do nothing.
func (p *Population) BreedVariable() (int, bool, error) {
	out, err := p.breedVariable()
	return out.Discrepancy, out.Alive, err
}

func (p *Population) breedConstant() (Outcome, error) {
	target, err := p.config.TargetSize(p.niche)
	if err != nil {
		return Outcome{}, err
	}

	payoffs := p.LifetimePayoffs()
	factors, mean, err := ConstantFactors(payoffs)
	if err != nil {
		return Outcome{}, fmt.Errorf("niche %d: %w", p.niche, err)
	}

	offspring := NewSampler(p.rng).Sample(factors)
	d := NewCorrector(p.config.Policy(), p.rng).Constant(offspring, factors, target)

	born, err := Build(p.animals, offspring, p.newIndividual, p.rng)
	if err != nil {
		return Outcome{}, fmt.Errorf("niche %d: %w", p.niche, err)
	}
	if len(born) != target {
		return Outcome{}, fmt.Errorf("niche %d: bred %d individuals for target %d: %w", p.niche, len(born), target, ErrSizeInvariant)
	}

	p.animals = born
	p.size = target
	p.logBred(target, mean, d)
	return Outcome{Discrepancy: d, MeanPayoff: mean, Size: target, Alive: target > 0}, nil
}

func (p *Population) breedVariable() (Outcome, error) {
	if p.Extinct() {
		return Outcome{}, nil
	}
	target, err := p.config.TargetSize(p.niche)
	if err != nil {
		return Outcome{}, err
	}

	payoffs := p.LifetimePayoffs()
	factors, err := VariableFactors(payoffs, p.config.Population.Q)
	if err != nil {
		return Outcome{Alive: true, Size: p.size}, fmt.Errorf("niche %d: %w", p.niche, err)
	}
	mean := stat.Mean(payoffs, nil)

	offspring := NewSampler(p.rng).Sample(factors)
	d := NewCorrector(p.config.Policy(), p.rng).Variable(offspring, factors, target)

	if sumInts(offspring) == 0 {
		p.animals = nil
		p.size = 0
		p.logger.Warn("population extinct", "niche", p.niche, "mean_payoff", mean)
		return Outcome{Discrepancy: d, MeanPayoff: mean}, nil
	}

	born, err := Build(p.animals, offspring, p.newIndividual, p.rng)
	if err != nil {
		return Outcome{Alive: true, Size: p.size}, fmt.Errorf("niche %d: %w", p.niche, err)
	}

	p.animals = born
	p.size = len(born)
	p.logBred(p.size, mean, d)
	return Outcome{Discrepancy: d, MeanPayoff: mean, Size: p.size, Alive: true}, nil
}

func (p *Population) logBred(size int, mean float64, d int) {
	level := slog.LevelDebug
	if p.config.Population.Verbose {
		level = slog.LevelInfo
	}
	p.logger.Log(context.Background(), level, "population bred",
		"niche", p.niche,
		"size", size,
		"mean_payoff", mean,
		"discrepancy", d,
	)
}
