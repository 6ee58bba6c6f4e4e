// Package report turns populations into per-generation summaries and writes
// them as CSV rows, terminal tables and a leveldb history.
package report

import (
	"math"

	"github.com/baldhumanity/niche-go/niche"
	"gonum.org/v1/gonum/stat"
)

// Summary describes one niche after one generation.
type Summary struct {
	Generation  int       `json:"generation"`
	Niche       int       `json:"niche"`
	Size        int       `json:"size"`
	Discrepancy int       `json:"discrepancy"`
	MeanPayoff  float64   `json:"mean_payoff"`
	GeneMean    []float64 `json:"gene_mean"`
	GeneStdDev  []float64 `json:"gene_stddev"`
	Lineages    int       `json:"lineages"` // Distinct founding lineages still alive
}

// Summarize collects gene statistics of the population's current generation.
// Individuals that do not expose their genes are counted but not measured.
// genes is the number of genes to report on.
func Summarize(generation int, pop *niche.Population, out niche.Outcome, genes int) Summary {
	s := Summary{
		Generation:  generation,
		Niche:       pop.Niche(),
		Size:        pop.Size(),
		Discrepancy: out.Discrepancy,
		MeanPayoff:  out.MeanPayoff,
		GeneMean:    make([]float64, genes),
		GeneStdDev:  make([]float64, genes),
	}

	columns := make([][]float64, genes)
	for _, a := range pop.Animals() {
		g, ok := a.(niche.Genotype)
		if !ok {
			continue
		}
		values := g.Genes()
		for i := 0; i < genes && i < len(values); i++ {
			columns[i] = append(columns[i], values[i])
		}
	}
	for i, col := range columns {
		switch len(col) {
		case 0:
		case 1:
			s.GeneMean[i] = col[0]
		default:
			s.GeneMean[i], s.GeneStdDev[i] = stat.MeanStdDev(col, nil)
		}
	}

	seen := make(map[int]struct{})
	for _, l := range pop.Lineage() {
		seen[l] = struct{}{}
	}
	s.Lineages = len(seen)

	if math.IsNaN(s.MeanPayoff) {
		s.MeanPayoff = 0
	}
	return s
}
