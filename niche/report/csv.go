package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// CSVWriter writes one row per niche and generation:
// generation, niche, gene means..., gene standard deviations..., size.
type CSVWriter struct {
	w         *csv.Writer
	geneNames []string
}

// NewCSVWriter creates a writer for the given gene names.
func NewCSVWriter(w io.Writer, geneNames []string) *CSVWriter {
	return &CSVWriter{w: csv.NewWriter(w), geneNames: geneNames}
}

// WriteHeader writes the column names.
func (c *CSVWriter) WriteHeader() error {
	header := []string{"generation", "niche"}
	for _, name := range c.geneNames {
		header = append(header, name+"_mean")
	}
	for _, name := range c.geneNames {
		header = append(header, name+"_std")
	}
	header = append(header, "discrepancy", "mean_payoff", "lineages", "n")
	if err := c.w.Write(header); err != nil {
		return fmt.Errorf("error writing csv header: %w", err)
	}
	return nil
}

// Write appends a summary row. Empty niches are written with zero statistics.
func (c *CSVWriter) Write(s Summary) error {
	row := []string{strconv.Itoa(s.Generation), strconv.Itoa(s.Niche + 1)}
	for i := range c.geneNames {
		row = append(row, formatGene(s.GeneMean, i))
	}
	for i := range c.geneNames {
		row = append(row, formatGene(s.GeneStdDev, i))
	}
	row = append(row,
		strconv.Itoa(s.Discrepancy),
		strconv.FormatFloat(s.MeanPayoff, 'f', 6, 64),
		strconv.Itoa(s.Lineages),
		strconv.Itoa(s.Size),
	)
	if err := c.w.Write(row); err != nil {
		return fmt.Errorf("error writing csv row: %w", err)
	}
	return nil
}

// Flush writes buffered rows to the underlying writer.
func (c *CSVWriter) Flush() error {
	c.w.Flush()
	return c.w.Error()
}

func formatGene(values []float64, i int) string {
	if i >= len(values) {
		return "0"
	}
	return strconv.FormatFloat(values[i], 'f', 6, 64)
}
