package main

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"subtuner/internal/asscodec"
	"subtuner/internal/cue"
	"subtuner/internal/optimize"
	"subtuner/internal/runhistory"
	"subtuner/internal/srtcodec"
	"subtuner/internal/stats"
	"subtuner/internal/vttcodec"
)

func newOptimizeCommand(ctx *commandContext) *cobra.Command {
	var dryRun bool
	var outPath string

	cmd := &cobra.Command{
		Use:   "optimize <file>",
		Short: "Optimize a single subtitle file's cue timing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			startedAt := time.Now()
			path := args[0]
			parse, write, err := codecForExt(path)
			if err != nil {
				return err
			}

			cues, err := parse(path)
			if err != nil {
				return fmt.Errorf("parse %s: %w", path, err)
			}

			optimized, report, err := optimize.Run(cues, cfg.Optimizer)
			if err != nil {
				return fmt.Errorf("optimize %s: %w", path, err)
			}

			if !dryRun {
				target := strings.TrimSpace(outPath)
				if target == "" {
					target = path
				}
				if err := write(target, optimized); err != nil {
					return fmt.Errorf("write %s: %w", target, err)
				}

				store, err := runhistory.Open(cfg.RunHistoryDBPath)
				if err != nil {
					return fmt.Errorf("open run history: %w", err)
				}
				defer store.Close()
				files := []runhistory.FileResult{{Path: path, Report: report}}
				if _, err := store.RecordRun(context.Background(), path, startedAt, time.Now(), files); err != nil {
					return fmt.Errorf("record run history: %w", err)
				}
			}

			return renderOptimizeResult(cmd, ctx, path, report)
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report what would change without writing output or recording history")
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "Write the optimized file here instead of overwriting the input")
	return cmd
}

func renderOptimizeResult(cmd *cobra.Command, ctx *commandContext, path string, report stats.Report) error {
	out := cmd.OutOrStdout()
	if ctx.jsonMode() {
		encoded, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("encode report: %w", err)
		}
		fmt.Fprintln(out, string(encoded))
		return nil
	}
	fmt.Fprintln(out, renderReportTable(filepath.Base(path), report))
	return nil
}

// codecForExt returns the parse/write pair for path's extension, grounded
// on the same extension dispatch internal/batchrun uses, kept independent
// here so a single-file optimize never needs a directory walk.
func codecForExt(path string) (func(string) ([]cue.Cue, error), func(string, []cue.Cue) error, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".srt":
		return srtcodec.Parse, srtcodec.Write, nil
	case ".vtt":
		return vttcodec.Parse, vttcodec.Write, nil
	case ".ass", ".ssa":
		return asscodec.Parse, asscodec.Write, nil
	default:
		return nil, nil, fmt.Errorf("unrecognized subtitle extension %q", filepath.Ext(path))
	}
}
