// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package migrate

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// WriteSummary renders the per-file conversion summary table.
func WriteSummary(w io.Writer, results []FileResult) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.SetTitle("Conversion Summary")
	t.AppendHeader(table.Row{"File", "Converter", "Status", "Notes"})

	for _, r := range results {
		status := text.FgGreen.Sprint(r.Status())
		if r.Err != nil {
			status = text.FgRed.Sprint(r.Status())
		}
		t.AppendRow(table.Row{r.File, valueOr(r.Converter, "N/A"), status, len(r.Notes)})
	}

	t.Render()
}
