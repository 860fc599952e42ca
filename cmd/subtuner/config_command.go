package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"subtuner/internal/config"
)

func newConfigCommand(ctx *commandContext) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration utilities",
	}
	configCmd.AddCommand(newConfigInitCommand())
	configCmd.AddCommand(newConfigShowCommand(ctx))
	return configCmd
}

func newConfigInitCommand() *cobra.Command {
	var targetPath string
	var overwrite bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a sample configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			target := strings.TrimSpace(targetPath)
			if target == "" {
				defaultPath, err := config.DefaultConfigPath()
				if err != nil {
					return fmt.Errorf("determine default config path: %w", err)
				}
				target = defaultPath
			} else {
				expanded, err := config.ExpandPath(target)
				if err != nil {
					return fmt.Errorf("resolve config path: %w", err)
				}
				target = expanded
			}

			if !overwrite {
				if _, err := os.Stat(target); err == nil {
					return fmt.Errorf("config file already exists at %s (use --overwrite to replace it)", target)
				} else if err != nil && !os.IsNotExist(err) {
					return fmt.Errorf("check config path: %w", err)
				}
			}

			if err := config.CreateSample(target); err != nil {
				return fmt.Errorf("create sample config: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Wrote sample configuration to %s\n", target)
			return nil
		},
	}

	cmd.Flags().StringVarP(&targetPath, "path", "p", "", "Destination for the configuration file")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Overwrite existing configuration if present")
	return cmd
}

func newConfigShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the resolved configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "chars_per_sec:      %v\n", cfg.Optimizer.CharsPerSec)
			fmt.Fprintf(out, "min_duration:       %v\n", cfg.Optimizer.MinDuration)
			fmt.Fprintf(out, "max_duration:       %v\n", cfg.Optimizer.MaxDuration)
			fmt.Fprintf(out, "min_gap:            %v\n", cfg.Optimizer.MinGap)
			fmt.Fprintf(out, "short_threshold:    %v\n", cfg.Optimizer.ShortThreshold)
			fmt.Fprintf(out, "long_threshold:     %v\n", cfg.Optimizer.LongThreshold)
			fmt.Fprintf(out, "max_anticipation:   %v\n", cfg.Optimizer.MaxAnticipation)
			fmt.Fprintln(out)
			fmt.Fprintf(out, "output_dir:         %s\n", cfg.OutputDir)
			fmt.Fprintf(out, "log_dir:            %s\n", cfg.LogDir)
			fmt.Fprintf(out, "log_format:         %s\n", cfg.LogFormat)
			fmt.Fprintf(out, "log_level:          %s\n", cfg.LogLevel)
			fmt.Fprintf(out, "run_history_db:     %s\n", cfg.RunHistoryDBPath)
			fmt.Fprintf(out, "batch_concurrency:  %d\n", cfg.BatchConcurrency)
			return nil
		},
	}
}
