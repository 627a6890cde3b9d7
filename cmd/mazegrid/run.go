package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/mazegrid/mazetext"
	"github.com/katalvlaran/mazegrid/report"
)

func runCmd() *cobra.Command {
	var (
		mazePath  string
		suitePath string
		outPath   string
		repeats   int
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a comparison suite over a maze file and print the table",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger()
			if err != nil {
				return err
			}
			defer logger.Sync()

			m, err := mazetext.ParseFile(mazePath)
			if err != nil {
				return err
			}
			logger.Info("maze loaded",
				zap.String("file", mazePath),
				zap.Int("rows", m.Rows()),
				zap.Int("cols", m.Cols()),
				zap.Any("start", m.Start()),
				zap.Any("goal", m.Goal()))

			suite := report.DefaultSuite()
			if suitePath != "" {
				suite, err = report.LoadSuiteFile(suitePath)
				if err != nil {
					return err
				}
			}
			if repeats > 0 {
				suite.Repeats = repeats
			}
			logger.Info("executing suite",
				zap.String("name", suite.Name),
				zap.Int("runs", len(suite.Runs)),
				zap.Int("repeats", suite.Repeats))

			records, err := report.Execute(m, suite)
			if err != nil {
				return err
			}

			table := report.Table(records)
			if outPath != "" {
				if err := os.WriteFile(outPath, []byte(table), 0o644); err != nil {
					return fmt.Errorf("writing %s: %w", outPath, err)
				}
				logger.Info("table written", zap.String("file", outPath))
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), table)
			return nil
		},
	}

	cmd.Flags().StringVarP(&mazePath, "maze", "m", "", "maze file to load (required)")
	cmd.Flags().StringVarP(&suitePath, "suite", "s", "", "YAML suite file (default: classic comparison)")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "write the table to a file instead of stdout")
	cmd.Flags().IntVarP(&repeats, "repeats", "r", 0, "override the suite repeat count")
	_ = cmd.MarkFlagRequired("maze")
	return cmd
}
