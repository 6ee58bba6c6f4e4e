package niche

import (
	"fmt"

	"golang.org/x/exp/rand"
)

// Build creates the next generation. Parent i is copied offspring[i] times and
// every copy is built from freshly mutated genes with the parent's lineage.
// The result is grouped by parent index.
func Build(animals []Individual, offspring []int, factory Factory, rng *rand.Rand) ([]Individual, error) {
	if factory == nil {
		return nil, fmt.Errorf("individual factory is required")
	}
	if len(animals) != len(offspring) {
		return nil, fmt.Errorf("offspring vector has %d entries for %d individuals", len(offspring), len(animals))
	}

	total := 0
	for i, n := range offspring {
		if n < 0 {
			return nil, fmt.Errorf("negative offspring count %d for individual %d", n, i)
		}
		total += n
	}

	born := make([]Individual, 0, total)
	for i, parent := range animals {
		for j := 0; j < offspring[i]; j++ {
			child := factory(parent.Mutate(rng), parent.Lineage())
			if child == nil {
				return nil, fmt.Errorf("factory returned nil for offspring of individual %d: %w", i, ErrNilIndividual)
			}
			born = append(born, child)
		}
	}
	return born, nil
}
