package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var logLevel string
	var jsonOutput bool

	root := &cobra.Command{
		Use:           "subtuner",
		Short:         "Optimize subtitle cue timing",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configFlag, "config", "", "Path to a subtuner.toml configuration file")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "Override the configured log level (debug, info, warn, error)")
	root.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Emit machine-readable JSON instead of tables")

	ctx := newCommandContext(&configFlag, &logLevel, &jsonOutput)

	root.AddCommand(newOptimizeCommand(ctx))
	root.AddCommand(newBatchCommand(ctx))
	root.AddCommand(newConfigCommand(ctx))
	root.AddCommand(newHistoryCommand(ctx))

	return root
}
