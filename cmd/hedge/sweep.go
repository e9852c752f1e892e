package main

import (
	"fmt"

	"github.com/fystack/range-hedge/internal/sweep"
	"github.com/fystack/range-hedge/pkg/common/logger"
	"github.com/spf13/cobra"
)

func newSweepCmd(root *rootOptions) *cobra.Command {
	var (
		workers         int
		chunkSize       int
		summary         bool
		strictPartition bool
	)

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Evaluate the return for every integer winning number the ranges span",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := resolveSession(cmd, root)
			if err != nil {
				return err
			}
			if err := checkPartition(s.input.Ranges, strictPartition); err != nil {
				return err
			}

			opts := sweep.Options{Workers: workers, ChunkSize: chunkSize, Policy: s.policy}
			if s.cfg != nil {
				if !cmd.Flags().Changed("workers") {
					opts.Workers = s.cfg.Sweep.Workers
				}
				if !cmd.Flags().Changed("chunk-size") {
					opts.ChunkSize = s.cfg.Sweep.ChunkSize
				}
			}

			report, err := sweep.Run(cmd.Context(), s.input, opts)
			if err != nil {
				return fmt.Errorf("sweep: %w", err)
			}
			logger.Info("Sweep finished",
				"covered", report.Covered,
				"uncovered", report.Uncovered,
			)

			return renderSweep(cmd.OutOrStdout(), s.format, newSweepView(s.input, report, !summary))
		},
	}

	cmd.Flags().IntVar(&workers, "workers", 0, "Concurrent workers (default 4)")
	cmd.Flags().IntVar(&chunkSize, "chunk-size", 0, "Winning numbers per work item (default 64)")
	cmd.Flags().BoolVar(&summary, "summary", false, "Only print the summary, not every number")
	cmd.Flags().BoolVar(&strictPartition, "strict-partition", false, "Refuse ranges that overlap or leave gaps")
	return cmd
}
