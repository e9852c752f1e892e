package main

import (
	"fmt"

	"github.com/fystack/range-hedge/internal/config"
	"github.com/fystack/range-hedge/pkg/common/enum"
	"github.com/fystack/range-hedge/pkg/common/logger"
	"github.com/fystack/range-hedge/pkg/hedge"
	"github.com/spf13/cobra"
)

// session is what a subcommand works on once flags and the config file have
// been merged. Flags win over the file.
type session struct {
	input  hedge.Input
	policy enum.Policy
	format enum.OutputFormat
	cfg    *config.Config
}

func resolveSession(cmd *cobra.Command, opts *rootOptions) (*session, error) {
	s := &session{
		input:  hedge.NewSheet().Input(),
		policy: enum.PolicyStrict,
	}

	if opts.configPath != "" {
		cfg, err := config.Load(opts.configPath)
		if err != nil {
			return nil, fmt.Errorf("load config %s: %w", opts.configPath, err)
		}
		name := opts.sheet
		if name == "" {
			names := cfg.SheetNames()
			if len(names) != 1 {
				return nil, fmt.Errorf("config has %d sheets %v, pick one with --sheet", len(names), names)
			}
			name = names[0]
		}
		in, err := cfg.Sheet(name)
		if err != nil {
			return nil, err
		}
		s.input = in
		s.policy = cfg.Policy
		s.cfg = cfg
		logger.Debug("Config loaded", "path", opts.configPath, "sheet", name, "ranges", len(in.Ranges))
	} else if opts.sheet != "" {
		return nil, fmt.Errorf("--sheet needs --config")
	}

	flags := cmd.Flags()
	if len(opts.ranges) > 0 {
		ranges, err := hedge.ParseRanges(opts.ranges)
		if err != nil {
			return nil, err
		}
		s.input.Ranges = ranges
	}
	if flags.Changed("total") {
		s.input.TotalAmount = opts.total
	}
	if flags.Changed("winning") {
		s.input.WinningNumber = opts.winning
	}
	if flags.Changed("policy") {
		p, err := enum.ParsePolicy(opts.policy)
		if err != nil {
			return nil, err
		}
		s.policy = p
	}

	format, err := enum.ParseOutputFormat(opts.format)
	if err != nil {
		return nil, err
	}
	s.format = format

	logger.Debug("Input resolved",
		"ranges", len(s.input.Ranges),
		"total", s.input.TotalAmount,
		"winning", s.input.WinningNumber,
		"policy", s.policy,
	)
	return s, nil
}
