package report

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
)

// RenderTable prints summaries as a table, one row per niche and generation.
func RenderTable(w io.Writer, title string, geneNames []string, summaries []Summary) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle(title)

	header := table.Row{"GEN", "NICHE", "SIZE", "D", "PAYOFF", "LINEAGES"}
	for _, name := range geneNames {
		header = append(header, name)
	}
	t.AppendHeader(header)

	for _, s := range summaries {
		row := table.Row{s.Generation, s.Niche + 1, s.Size, s.Discrepancy, fmt.Sprintf("%0.4f", s.MeanPayoff), s.Lineages}
		for i := range geneNames {
			if i < len(s.GeneMean) && i < len(s.GeneStdDev) {
				row = append(row, fmt.Sprintf("%0.3f ± %0.3f", s.GeneMean[i], s.GeneStdDev[i]))
			} else {
				row = append(row, "-")
			}
		}
		t.AppendRow(row)
	}
	t.Render()
}
