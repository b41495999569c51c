package main

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// runHistoryColumns is the fixed column layout of `attest history`. The
// plain (non-TTY) output uses the same columns tab-separated.
var runHistoryColumns = []string{
	"When", "Project", "Verdict", "Added", "Removed", "Differs", "Matched", "Duration",
}

// runHistoryAlignRight is the index of the first right-aligned column; the
// count and duration columns are numeric.
const runHistoryAlignRight = 3

// renderRunTable renders run-history rows as a bordered table with the
// numeric columns right-aligned.
func renderRunTable(rows [][]string) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, len(runHistoryColumns))
	for i, column := range runHistoryColumns {
		header[i] = column
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, len(runHistoryColumns))
		for i := range runHistoryColumns {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	configs := make([]table.ColumnConfig, 0, len(runHistoryColumns))
	for i := range runHistoryColumns {
		align := text.AlignLeft
		if i >= runHistoryAlignRight {
			align = text.AlignRight
		}
		configs = append(configs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(configs)

	return tw.Render()
}
