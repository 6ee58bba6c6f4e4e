package niche

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnimalMutateLeavesParentUnchanged(t *testing.T) {
	cfg := &AnimalConfig{MutationRate: 1, MutationPower: 10, GeneMin: -0.1, GeneMax: 0.1}
	a := NewAnimal(cfg, nil, GeneData{0, 0.05, -0.05}, 7)

	rng := testRand()
	for i := 0; i < 100; i++ {
		genes := a.Mutate(rng)
		require.Len(t, genes, 3)
		for _, g := range genes {
			require.GreaterOrEqual(t, g, -0.1)
			require.LessOrEqual(t, g, 0.1)
		}
	}
	assert.Equal(t, GeneData{0, 0.05, -0.05}, a.Genes())
	assert.Equal(t, 7, a.Lineage())
}

func TestAnimalMutateWithZeroRateCopies(t *testing.T) {
	cfg := &AnimalConfig{MutationRate: 0, MutationPower: 1, GeneMin: -2, GeneMax: 2}
	a := NewAnimal(cfg, nil, GeneData{1, -1}, 0)

	genes := a.Mutate(testRand())
	assert.Equal(t, GeneData{1, -1}, genes)

	genes[0] = 5
	assert.Equal(t, GeneData{1, -1}, a.Genes())
}

func TestAnimalMutationChangesGenes(t *testing.T) {
	cfg := &AnimalConfig{MutationRate: 1, MutationPower: 0.5, GeneMin: -2, GeneMax: 2}
	a := NewAnimal(cfg, nil, GeneData{0, 0, 0, 0}, 0)

	assert.NotEqual(t, GeneData{0, 0, 0, 0}, a.Mutate(testRand()))
}

func TestAnimalLifetimePayoffIsMeanPerStep(t *testing.T) {
	steps := []float64{1, -3, 2}
	i := 0
	phenotype := func(GeneData, float64, float64, bool) float64 {
		p := steps[i]
		i++
		return p
	}
	a := NewAnimal(&AnimalConfig{}, phenotype, GeneData{0}, 0)
	assert.Zero(t, a.LifetimePayoff())

	for range steps {
		a.React(0, 0, false)
	}
	// Negative step payoffs count as zero.
	assert.InDelta(t, 1.0, a.LifetimePayoff(), 1e-12)
}

func TestFoundersStartOwnLineages(t *testing.T) {
	cfg := &AnimalConfig{InitialGenes: []float64{0.25, 0.75}}
	animals := Founders(cfg, nil, 4)
	require.Len(t, animals, 4)
	for i, a := range animals {
		assert.Equal(t, i, a.Lineage())
		assert.Equal(t, GeneData{0.25, 0.75}, a.(Genotype).Genes())
	}

	// Founders must not share the config's slice.
	animals[0].(*Animal).genes[0] = 9
	assert.Equal(t, 0.25, cfg.InitialGenes[0])
}

func TestAnimalFactoryBuildsAnimals(t *testing.T) {
	factory := NewAnimalFactory(&AnimalConfig{}, nil)
	child := factory(GeneData{3}, 12)
	assert.Equal(t, 12, child.Lineage())
	assert.Equal(t, GeneData{3}, child.(Genotype).Genes())
}
