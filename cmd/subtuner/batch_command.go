package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"subtuner/internal/batchrun"
	"subtuner/internal/logging"
	"subtuner/internal/runhistory"
	"subtuner/internal/stats"
)

func newBatchCommand(ctx *commandContext) *cobra.Command {
	var dryRun bool
	var backupSuffix string
	var noProgress bool

	cmd := &cobra.Command{
		Use:   "batch <directory>",
		Short: "Walk a directory and optimize every subtitle file it finds",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			logger, err := ctx.newCLILogger(cfg)
			if err != nil {
				return err
			}

			root := args[0]
			var bar *progressbar.ProgressBar
			maxSet := false
			showProgress := !noProgress && isatty.IsTerminal(os.Stderr.Fd())
			if showProgress {
				bar = progressbar.NewOptions(0,
					progressbar.OptionSetDescription("optimizing"),
					progressbar.OptionSetWriter(os.Stderr),
					progressbar.OptionShowCount(),
					progressbar.OptionClearOnFinish(),
				)
			}

			// Logged progress is rate-limited the same way the teacher
			// throttles encode progress: one line per stage change or per
			// 5% bucket crossed, regardless of how many files that spans.
			sampler := logging.NewProgressSampler(5)

			result, err := batchrun.Run(batchrun.Options{
				Root:         root,
				Config:       cfg.Optimizer,
				DryRun:       dryRun,
				BackupSuffix: backupSuffix,
				OnFile: func(path string, index, total int) {
					if bar != nil {
						if !maxSet {
							bar.ChangeMax(total)
							maxSet = true
						}
						_ = bar.Set(index)
					}
					percent := 100 * float64(index) / float64(total)
					if sampler.ShouldLog(percent, "batch", path) {
						logger.Info("batch progress",
							logging.Args(
								logging.Float64("progress_percent", percent),
								logging.Int("files_done", index),
								logging.Int("files_total", total),
								logging.String("current_file", path),
							)...,
						)
					}
				},
			})
			if err != nil {
				return fmt.Errorf("batch run over %s: %w", root, err)
			}
			if bar != nil {
				_ = bar.Finish()
			}

			if !dryRun {
				store, err := runhistory.Open(cfg.RunHistoryDBPath)
				if err != nil {
					return fmt.Errorf("open run history: %w", err)
				}
				defer store.Close()

				files := make([]runhistory.FileResult, 0, len(result.Files))
				for _, f := range result.Files {
					files = append(files, runhistory.FileResult{Path: f.Path, Report: f.Report})
				}
				if _, err := store.RecordRun(context.Background(), root, result.StartedAt(), result.FinishedAt(), files); err != nil {
					return fmt.Errorf("record run history: %w", err)
				}
			}

			return renderBatchResult(cmd, ctx, result)
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report what would change without writing output or recording history")
	cmd.Flags().StringVar(&backupSuffix, "backup-suffix", "", "Copy each original file to path+suffix before overwriting it")
	cmd.Flags().BoolVar(&noProgress, "no-progress", false, "Disable the progress bar even on a terminal")
	return cmd
}

func renderBatchResult(cmd *cobra.Command, ctx *commandContext, result batchrun.Result) error {
	out := cmd.OutOrStdout()
	if ctx.jsonMode() {
		encoded, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("encode result: %w", err)
		}
		fmt.Fprintln(out, string(encoded))
		return nil
	}

	rows := make([]batchFileRow, 0, len(result.Files))
	for _, f := range result.Files {
		rows = append(rows, batchFileRow{Path: f.Path, Report: f.Report, Adjusted: adjustedCount(f.Report)})
	}
	fmt.Fprintln(out, renderBatchFilesTable(rows))
	fmt.Fprintln(out, renderReportTable("Batch total", result.Report))
	fmt.Fprintln(out, batchrun.Summary(result))
	for _, fileErr := range result.Errors {
		fmt.Fprintf(cmd.ErrOrStderr(), "error: %s: %v\n", fileErr.Path, fileErr.Err)
	}
	for _, dup := range result.Duplicates {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s and %s look like duplicate content (similarity %.2f)\n",
			dup.PathA, dup.PathB, dup.Similarity)
	}
	return nil
}

// adjustedCount sums every pass's touch count for one file's report, for
// the per-file "Adjusted" column in the batch table.
func adjustedCount(r stats.Report) int {
	return r.DurationAdjustments + r.RebalancedPairs + r.AnticipatedCues +
		r.MinDurationRepairs + r.GapRepairs + r.ChronologyFixes + r.StructuralRemovals
}
