package niche

import (
	"golang.org/x/exp/rand"
)

// stubIndividual has a fixed payoff and mutates by adding 1 to every gene.
type stubIndividual struct {
	payoff  float64
	genes   GeneData
	lineage int
}

func (s *stubIndividual) LifetimePayoff() float64 { return s.payoff }
func (s *stubIndividual) Lineage() int            { return s.lineage }
func (s *stubIndividual) Genes() GeneData         { return s.genes.Copy() }

func (s *stubIndividual) Mutate(_ *rand.Rand) GeneData {
	g := s.genes.Copy()
	for i := range g {
		g[i]++
	}
	return g
}

// stubFactory gives every child a payoff that depends on its lineage, so that
// successive generations keep a positive mean payoff.
func stubFactory(genes GeneData, lineage int) Individual {
	return &stubIndividual{payoff: 1 + float64(lineage%3), genes: genes, lineage: lineage}
}

func stubs(payoffs ...float64) []Individual {
	animals := make([]Individual, len(payoffs))
	for i, p := range payoffs {
		animals[i] = &stubIndividual{payoff: p, genes: GeneData{float64(i)}, lineage: i}
	}
	return animals
}

func testConfig(sizes ...int) *Config {
	return &Config{
		Population: PopulationConfig{
			EnvironmentSizes: sizes,
			Q:                1,
			Generations:      1,
			Lifetime:         1,
		},
	}
}

func testRand() *rand.Rand {
	return NewRand(42, 0)
}
