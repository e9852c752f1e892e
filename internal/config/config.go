package config

import (
	"fmt"
	"os"
	"slices"

	"github.com/fystack/range-hedge/pkg/common/constant"
	"github.com/fystack/range-hedge/pkg/common/enum"
	"github.com/fystack/range-hedge/pkg/hedge"
	"github.com/go-playground/validator/v10"
	"github.com/imdario/mergo"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

var validate = validator.New()

type Config struct {
	Policy   enum.Policy            `yaml:"policy"   validate:"omitempty,oneof=strict propagate"`
	Defaults SheetConfig            `yaml:"defaults"`
	Sweep    SweepConfig            `yaml:"sweep"`
	Sheets   map[string]SheetConfig `yaml:"sheets"   validate:"required,min=1"`
}

// SheetConfig is one named set of ranges. Nil fields fall back to the
// file's defaults block, then to the built-in constants.
type SheetConfig struct {
	TotalAmount   *float64      `yaml:"total_amount"`
	WinningNumber *float64      `yaml:"winning_number"`
	Odds          *float64      `yaml:"odds"           validate:"omitempty,gt=0"`
	Ranges        []RangeConfig `yaml:"ranges"         validate:"omitempty,dive"`
}

type RangeConfig struct {
	Start float64  `yaml:"start" validate:"ltefield=End"`
	End   float64  `yaml:"end"`
	Odds  *float64 `yaml:"odds"  validate:"omitempty,gt=0"`
}

type SweepConfig struct {
	Workers   int `yaml:"workers"    validate:"gte=0,lte=256"`
	ChunkSize int `yaml:"chunk_size" validate:"gte=0"`
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if cfg.Policy == "" {
		cfg.Policy = enum.PolicyStrict
	}
	if cfg.Sweep.Workers == 0 {
		cfg.Sweep.Workers = constant.DefaultSweepWorkers
	}
	if cfg.Sweep.ChunkSize == 0 {
		cfg.Sweep.ChunkSize = constant.DefaultSweepChunkSize
	}

	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("struct validation failed: %w", err)
	}

	for name, sheet := range cfg.Sheets {
		if err := mergo.Merge(&sheet, cfg.Defaults); err != nil {
			return nil, fmt.Errorf("sheet %s: merge defaults: %w", name, err)
		}
		if len(sheet.Ranges) == 0 {
			return nil, fmt.Errorf("sheet %s has no ranges", name)
		}
		if err := validate.Struct(sheet); err != nil {
			return nil, fmt.Errorf("sheet %s validation failed: %w", name, err)
		}
		cfg.Sheets[name] = sheet
	}

	return &cfg, nil
}

// SheetNames returns the configured sheet names in sorted order.
func (c *Config) SheetNames() []string {
	names := lo.Keys(c.Sheets)
	slices.Sort(names)
	return names
}

// Sheet resolves a named sheet into a calculator input.
func (c *Config) Sheet(name string) (hedge.Input, error) {
	sheet, ok := c.Sheets[name]
	if !ok {
		return hedge.Input{}, fmt.Errorf("sheet %q not found (have %v)", name, c.SheetNames())
	}
	return sheet.Input(), nil
}

func (s SheetConfig) Input() hedge.Input {
	odds := lo.FromPtrOr(s.Odds, constant.DefaultOdds)
	return hedge.Input{
		Ranges: lo.Map(s.Ranges, func(r RangeConfig, _ int) hedge.Range {
			return hedge.Range{
				Start: r.Start,
				End:   r.End,
				Odds:  lo.FromPtrOr(r.Odds, odds),
			}
		}),
		TotalAmount:   lo.FromPtrOr(s.TotalAmount, constant.DefaultTotalAmount),
		WinningNumber: lo.FromPtrOr(s.WinningNumber, constant.DefaultWinningNumber),
	}
}
