package main

import (
	"fmt"

	"github.com/fystack/range-hedge/pkg/common/logger"
	"github.com/fystack/range-hedge/pkg/hedge"
	"github.com/spf13/cobra"
)

func newCalcCmd(root *rootOptions) *cobra.Command {
	var strictPartition bool

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Allocate the stake and evaluate the return for one winning number",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := resolveSession(cmd, root)
			if err != nil {
				return err
			}

			if err := checkPartition(s.input.Ranges, strictPartition); err != nil {
				return err
			}

			res, err := hedge.Calculate(s.input, hedge.WithPolicy(s.policy))
			if err != nil {
				return fmt.Errorf("calculate: %w", err)
			}
			logger.Debug("Calculated",
				"winning_index", res.WinningIndex,
				"total_return", res.TotalReturn,
			)

			return renderCalc(cmd.OutOrStdout(), s.format, newCalcView(s.input, s.policy, res))
		},
	}

	cmd.Flags().BoolVar(&strictPartition, "strict-partition", false, "Refuse ranges that overlap or leave gaps")
	return cmd
}

// checkPartition logs partition issues and, when strict, turns them into an
// error. Overlaps are otherwise legal: the first listed range wins.
func checkPartition(ranges []hedge.Range, strict bool) error {
	issues := hedge.CheckPartition(ranges)
	for _, issue := range issues {
		logger.Warn("Range partition issue", "kind", issue.Kind, "detail", issue.Detail)
	}
	if strict && len(issues) > 0 {
		return fmt.Errorf("ranges do not form a partition: %d issue(s)", len(issues))
	}
	return nil
}
