package niche

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Phenotype maps genes and the sensed signal to the payoff of one time step.
type Phenotype func(genes GeneData, e, c float64, evolveAll bool) float64

// Animal is the concrete Individual. Its genes never change after creation;
// only the payoff it earns while reacting accumulates.
type Animal struct {
	genes     GeneData
	lineage   int
	phenotype Phenotype
	config    *AnimalConfig

	payoff float64 // Sum of per-step payoffs
	steps  int
}

// NewAnimal creates an animal with its own copy of genes.
func NewAnimal(config *AnimalConfig, phenotype Phenotype, genes GeneData, lineage int) *Animal {
	return &Animal{
		genes:     genes.Copy(),
		lineage:   lineage,
		phenotype: phenotype,
		config:    config,
	}
}

// NewAnimalFactory returns a Factory that builds animals sharing config and phenotype.
func NewAnimalFactory(config *AnimalConfig, phenotype Phenotype) Factory {
	return func(genes GeneData, lineage int) Individual {
		return NewAnimal(config, phenotype, genes, lineage)
	}
}

// Founders creates n animals with the configured initial genes. Each founder
// starts its own lineage, numbered from 0.
func Founders(config *AnimalConfig, phenotype Phenotype, n int) []Individual {
	animals := make([]Individual, n)
	for i := range animals {
		animals[i] = NewAnimal(config, phenotype, GeneData(config.InitialGenes), i)
	}
	return animals
}

// Genes returns a copy of the animal's genes.
func (a *Animal) Genes() GeneData {
	return a.genes.Copy()
}

// Lineage returns the id of the founding ancestor.
func (a *Animal) Lineage() int {
	return a.lineage
}

// React evaluates the phenotype against signal e and cue c and records the payoff.
func (a *Animal) React(e, c float64, evolveAll bool) {
	if a.phenotype == nil {
		return
	}
	p := a.phenotype(a.genes, e, c, evolveAll)
	if p < 0 {
		p = 0
	}
	a.payoff += p
	a.steps++
}

// LifetimePayoff is the mean payoff per reaction step, or 0 before the first step.
func (a *Animal) LifetimePayoff() float64 {
	if a.steps == 0 {
		return 0
	}
	return a.payoff / float64(a.steps)
}

// Mutate returns a perturbed copy of the genes. Each gene is shifted by a
// normal deviate with probability MutationRate and clamped to [GeneMin, GeneMax].
func (a *Animal) Mutate(rng *rand.Rand) GeneData {
	genes := a.genes.Copy()
	if a.config == nil {
		return genes
	}
	noise := distuv.Normal{Mu: 0, Sigma: a.config.MutationPower, Src: rng}
	for i, g := range genes {
		genes[i] = mutateGene(g, rng.Float64(), a.config.MutationRate, noise, a.config.GeneMin, a.config.GeneMax)
	}
	return genes
}

func mutateGene(value, r, mutateRate float64, noise distuv.Normal, minVal, maxVal float64) float64 {
	if r >= mutateRate || noise.Sigma == 0 {
		return value
	}
	return clamp(value+noise.Rand(), minVal, maxVal)
}
