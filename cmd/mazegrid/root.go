package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var verbose bool

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "mazegrid",
		Short:         "Grid-maze search comparisons and n-queens hill climbing",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	cmd.AddCommand(runCmd(), queensCmd())
	return cmd
}

// newLogger builds the CLI logger: human-readable, debug level when verbose.
func newLogger() (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	return cfg.Build()
}
