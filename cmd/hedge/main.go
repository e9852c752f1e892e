package main

import (
	"log/slog"
	"time"

	"github.com/fystack/range-hedge/pkg/common/logger"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	configPath string
	sheet      string
	policy     string
	format     string
	ranges     []string
	total      float64
	winning    float64
	debug      bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "hedge",
		Short: "Split a stake across numeric ranges in inverse proportion to their odds",
		Long: `hedge allocates a total stake across ranges of winning numbers so that
every range pays back the same amount, then evaluates the return for a
given winning number.

Ranges are written start-end@odds, for example:
  hedge calc --range 1-10@2 --range 11-20@3 --total 1000 --winning 5
  hedge sweep --config sheets.yaml --sheet weekend
  hedge check --range 1-10@2 --range 12-20@3`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if opts.debug {
				level = slog.LevelDebug
			}
			logger.Init(&logger.Options{
				Level:      level,
				Writer:     cmd.ErrOrStderr(),
				TimeFormat: time.TimeOnly,
			})
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "Path to a YAML sheet file")
	flags.StringVar(&opts.sheet, "sheet", "", "Sheet name inside the config file")
	flags.StringVar(&opts.policy, "policy", "", "Invalid number policy: strict or propagate (default strict)")
	flags.StringVar(&opts.format, "format", "table", "Output format: table, json, yaml")
	flags.StringArrayVarP(&opts.ranges, "range", "r", nil, "Range as start-end@odds, repeatable")
	flags.Float64Var(&opts.total, "total", 0, "Total stake (default 1000)")
	flags.Float64Var(&opts.winning, "winning", 0, "Winning number (default 5)")
	flags.BoolVar(&opts.debug, "debug", false, "Enable debug logs")

	cmd.AddCommand(
		newCalcCmd(opts),
		newSweepCmd(opts),
		newCheckCmd(opts),
		newRangesCmd(opts),
	)
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logger.Fatal("Command failed", "err", err)
	}
}
