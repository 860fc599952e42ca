package main

import (
	"context"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"subtuner/internal/runhistory"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect past optimize and batch runs",
	}
	historyCmd.AddCommand(newHistoryListCommand(ctx))
	historyCmd.AddCommand(newHistoryShowCommand(ctx))
	return historyCmd
}

func newHistoryListCommand(ctx *commandContext) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent runs, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			store, err := runhistory.Open(cfg.RunHistoryDBPath)
			if err != nil {
				return fmt.Errorf("open run history: %w", err)
			}
			defer store.Close()

			runs, err := store.ListRuns(context.Background(), limit)
			if err != nil {
				return fmt.Errorf("list runs: %w", err)
			}

			tw := table.NewWriter()
			tw.SetStyle(table.StyleRounded)
			tw.AppendHeader(table.Row{"ID", "Root", "Started", "Finished"})
			for _, run := range runs {
				tw.AppendRow(table.Row{run.ID, run.RootPath, run.StartedAt.Local().Format("2006-01-02 15:04:05"), run.FinishedAt.Local().Format("2006-01-02 15:04:05")})
			}
			tw.SetColumnConfigs([]table.ColumnConfig{{Number: 1, Align: text.AlignLeft}})
			fmt.Fprintln(cmd.OutOrStdout(), tw.Render())
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of runs to list")
	return cmd
}

func newHistoryShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show <run-id>",
		Short: "Show a run's per-file statistics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			store, err := runhistory.Open(cfg.RunHistoryDBPath)
			if err != nil {
				return fmt.Errorf("open run history: %w", err)
			}
			defer store.Close()

			run, err := store.GetRun(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("get run: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Run %s: %s (%s → %s)\n\n", run.ID, run.RootPath,
				run.StartedAt.Local().Format("2006-01-02 15:04:05"), run.FinishedAt.Local().Format("2006-01-02 15:04:05"))

			rows := make([]batchFileRow, 0, len(run.Files))
			for _, f := range run.Files {
				rows = append(rows, batchFileRow{Path: f.Path, Report: f.Report, Adjusted: adjustedCount(f.Report)})
			}
			fmt.Fprintln(out, renderBatchFilesTable(rows))
			return nil
		},
	}
}
