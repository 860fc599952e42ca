package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"subtuner/internal/logging"
	"subtuner/internal/stats"
)

// renderReportTable renders one file's (or a batch's) statistics report,
// grouped the way original_source/.../statistics/reporter.py groups fields:
// duration, rebalance, anticipation, then validation repairs.
func renderReportTable(label string, r stats.Report) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.SetTitle(label)
	tw.AppendHeader(table.Row{"Metric", "Value"})

	tw.AppendRow(table.Row{"Cues (original → final)", fmt.Sprintf("%d → %d", r.OriginalCount, r.FinalCount)})
	tw.AppendSeparator()
	tw.AppendRow(table.Row{"Duration adjustments", r.DurationAdjustments})
	tw.AppendRow(table.Row{"Avg duration change (s)", fmt.Sprintf("%.3f", r.AvgDurationChange)})
	tw.AppendSeparator()
	tw.AppendRow(table.Row{"Rebalanced pairs", r.RebalancedPairs})
	tw.AppendRow(table.Row{"Avg time transferred (s)", fmt.Sprintf("%.3f", r.AvgTransfer)})
	tw.AppendSeparator()
	tw.AppendRow(table.Row{"Anticipated cues", r.AnticipatedCues})
	tw.AppendRow(table.Row{"Avg anticipation (s)", fmt.Sprintf("%.3f", r.AvgAnticipation)})
	tw.AppendSeparator()
	tw.AppendRow(table.Row{"Min-duration repairs", r.MinDurationRepairs})
	tw.AppendRow(table.Row{"Gap repairs", r.GapRepairs})
	tw.AppendRow(table.Row{"Chronology fixes", r.ChronologyFixes})
	tw.AppendRow(table.Row{"Structural removals", r.StructuralRemovals})
	tw.AppendSeparator()
	tw.AppendRow(table.Row{"Processing time", logging.FormatDurationHuman(r.ProcessingTime)})

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft},
		{Number: 2, Align: text.AlignRight},
	})

	return tw.Render()
}

// renderBatchFilesTable renders one row per file processed during a batch
// run, alongside how many cues each file's run adjusted.
func renderBatchFilesTable(rows []batchFileRow) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"File", "Cues", "Adjusted"})
	for _, row := range rows {
		tw.AppendRow(table.Row{row.Path, row.Report.FinalCount, row.Adjusted})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft},
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
	})
	return tw.Render()
}

type batchFileRow struct {
	Path     string
	Report   stats.Report
	Adjusted int
}
