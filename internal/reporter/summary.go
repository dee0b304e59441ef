package reporter

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
)

// Summary counts what a run produced. Empty paths mark phases that did not run.
type Summary struct {
	Offers      int
	OffersPath  string
	Matches     int
	MatchesPath string
	Skipped     int
}

// Render writes s as a table.
func Render(w io.Writer, s Summary) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Artifact", "Rows", "Path"})

	if s.OffersPath != "" {
		t.AppendRow(table.Row{"Offers", s.Offers, s.OffersPath})
	}
	if s.MatchesPath != "" {
		t.AppendRow(table.Row{"Matches", s.Matches, s.MatchesPath})
	}
	if s.Skipped > 0 {
		t.AppendRow(table.Row{"Skipped", s.Skipped, "rows without search term"})
	}

	t.SetStyle(table.StyleRounded)
	t.Render()
}
