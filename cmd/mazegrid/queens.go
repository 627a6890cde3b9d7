package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/mazegrid/queens"
)

func queensCmd() *cobra.Command {
	var (
		size     int
		seed     int64
		restarts int
		sideways int
	)

	cmd := &cobra.Command{
		Use:   "queens",
		Short: "Solve the n-queens puzzle with random-restart hill climbing",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger()
			if err != nil {
				return err
			}
			defer logger.Sync()

			opts := []queens.Option{
				queens.WithMaxRestarts(restarts),
				queens.WithMaxSideways(sideways),
			}
			if cmd.Flags().Changed("seed") {
				opts = append(opts, queens.WithSeed(seed))
			}

			res, err := queens.RandomRestart(size, opts...)
			if err != nil {
				return err
			}
			logger.Info("climb finished",
				zap.Bool("success", res.Success),
				zap.Int("steps", res.Steps),
				zap.Int("sideways", res.Sideways),
				zap.Int("restarts", res.Restarts),
				zap.Int("conflicts", res.FinalConflicts),
				zap.Duration("elapsed", res.Elapsed))

			out := cmd.OutOrStdout()
			fmt.Fprint(out, res.Board)
			if res.Success {
				color.New(color.FgGreen).Fprintln(out, "solved")
				return nil
			}
			color.New(color.FgRed).Fprintf(out, "stuck with %d conflicts\n", res.FinalConflicts)
			return nil
		},
	}

	cmd.Flags().IntVarP(&size, "size", "n", 8, "board size")
	cmd.Flags().Int64Var(&seed, "seed", 0, "pseudo-random seed (default: wall clock)")
	cmd.Flags().IntVar(&restarts, "restarts", queens.DefaultMaxRestarts, "maximum random restarts")
	cmd.Flags().IntVar(&sideways, "sideways", queens.DefaultMaxSideways, "maximum consecutive sideways moves")
	return cmd
}
