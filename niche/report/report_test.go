package report

import (
	"bytes"
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/baldhumanity/niche-go/niche"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPopulation(t *testing.T, genes ...niche.GeneData) *niche.Population {
	t.Helper()
	cfg := &niche.Config{Population: niche.PopulationConfig{EnvironmentSizes: []int{len(genes)}, Q: 1}}
	animalCfg := &niche.AnimalConfig{}
	animals := make([]niche.Individual, len(genes))
	for i, g := range genes {
		animals[i] = niche.NewAnimal(animalCfg, nil, g, i%2)
	}
	pop, err := niche.NewPopulation(cfg, 0, len(animals), animals, niche.NewAnimalFactory(animalCfg, nil), niche.NewRand(1, 0))
	require.NoError(t, err)
	return pop
}

func TestSummarize(t *testing.T) {
	pop := testPopulation(t, niche.GeneData{1, 5}, niche.GeneData{3, 5}, niche.GeneData{2, 5})

	s := Summarize(4, pop, niche.Outcome{Discrepancy: -2, MeanPayoff: 0.5}, 2)

	assert.Equal(t, 4, s.Generation)
	assert.Equal(t, 0, s.Niche)
	assert.Equal(t, 3, s.Size)
	assert.Equal(t, -2, s.Discrepancy)
	assert.Equal(t, 0.5, s.MeanPayoff)
	assert.Equal(t, 2, s.Lineages)
	require.Len(t, s.GeneMean, 2)
	assert.InDelta(t, 2.0, s.GeneMean[0], 1e-12)
	assert.InDelta(t, 1.0, s.GeneStdDev[0], 1e-12)
	assert.InDelta(t, 5.0, s.GeneMean[1], 1e-12)
	assert.InDelta(t, 0.0, s.GeneStdDev[1], 1e-12)
}

func TestSummarizeExtinctPopulation(t *testing.T) {
	pop := testPopulation(t, niche.GeneData{1}, niche.GeneData{2})
	d, alive, err := pop.BreedVariable()
	require.NoError(t, err)
	require.False(t, alive, "animals that never reacted earn nothing")

	s := Summarize(1, pop, niche.Outcome{Discrepancy: d, MeanPayoff: math.NaN()}, 1)

	assert.Zero(t, s.Size)
	assert.Zero(t, s.Lineages)
	assert.Equal(t, []float64{0}, s.GeneMean)
	assert.Zero(t, s.MeanPayoff)
}

func TestCSVWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewCSVWriter(&buf, []string{"a", "b"})
	require.NoError(t, w.WriteHeader())
	require.NoError(t, w.Write(Summary{
		Generation:  3,
		Niche:       1,
		Size:        10,
		Discrepancy: 2,
		MeanPayoff:  0.25,
		GeneMean:    []float64{0.5, -1},
		GeneStdDev:  []float64{0.1, 0.2},
		Lineages:    4,
	}))
	require.NoError(t, w.Flush())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "generation,niche,a_mean,b_mean,a_std,b_std,discrepancy,mean_payoff,lineages,n", lines[0])
	assert.Equal(t, "3,2,0.500000,-1.000000,0.100000,0.200000,2,0.250000,4,10", lines[1])
}

func TestRenderTable(t *testing.T) {
	var buf bytes.Buffer
	RenderTable(&buf, "Generation 7", []string{"a"}, []Summary{
		{Generation: 7, Niche: 0, Size: 12, GeneMean: []float64{0.5}, GeneStdDev: []float64{0.25}, Lineages: 3},
	})

	out := buf.String()
	assert.Contains(t, out, "Generation 7")
	assert.Contains(t, out, "NICHE")
	assert.Contains(t, out, "0.500 ± 0.250")
}

func TestStore(t *testing.T) {
	store, err := OpenStore(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	defer store.Close()

	for _, gen := range []int{10, 2, 1} {
		require.NoError(t, store.Put(Summary{Generation: gen, Niche: 0, Size: gen * 10}))
	}
	require.NoError(t, store.Put(Summary{Generation: 1, Niche: 1, Size: 99}))

	s, ok, err := store.Get(0, 2)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 20, s.Size)

	_, ok, err = store.Get(0, 3)
	require.NoError(t, err)
	assert.False(t, ok)

	history, err := store.Niche(0)
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, []int{1, 2, 10}, []int{history[0].Generation, history[1].Generation, history[2].Generation})

	other, err := store.Niche(1)
	require.NoError(t, err)
	require.Len(t, other, 1)
	assert.Equal(t, 99, other[0].Size)
}
