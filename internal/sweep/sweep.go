package sweep

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/fystack/range-hedge/pkg/common/constant"
	"github.com/fystack/range-hedge/pkg/common/enum"
	"github.com/fystack/range-hedge/pkg/common/logger"
	"github.com/fystack/range-hedge/pkg/common/utils"
	"github.com/fystack/range-hedge/pkg/hedge"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

var (
	ErrNoIntegers = errors.New("ranges contain no integer winning numbers")
	ErrSpanTooBig = errors.New("sweep span too large")
)

type Options struct {
	Workers   int
	ChunkSize int
	Policy    enum.Policy
	// MaxPoints caps the number of winning numbers; 0 means constant.MaxSweepPoints.
	MaxPoints int64
}

func (o Options) withDefaults() Options {
	if o.Workers <= 0 {
		o.Workers = constant.DefaultSweepWorkers
	}
	if o.ChunkSize <= 0 {
		o.ChunkSize = constant.DefaultSweepChunkSize
	}
	if o.Policy == "" {
		o.Policy = enum.PolicyStrict
	}
	if o.MaxPoints <= 0 {
		o.MaxPoints = constant.MaxSweepPoints
	}
	return o
}

// Point is the evaluation of one winning number.
type Point struct {
	WinningNumber float64 `json:"winning_number" yaml:"winning_number"`
	RangeIndex    int     `json:"range_index"    yaml:"range_index"`
	Return        float64 `json:"return"         yaml:"return"`
}

type Report struct {
	From        float64   `json:"from"        yaml:"from"`
	To          float64   `json:"to"          yaml:"to"`
	Allocations []float64 `json:"allocations" yaml:"allocations"`
	Points      []Point   `json:"points"      yaml:"points"`
	Covered     int       `json:"covered"     yaml:"covered"`
	Uncovered   int       `json:"uncovered"   yaml:"uncovered"`
	MinReturn   float64   `json:"min_return"  yaml:"min_return"`
	MaxReturn   float64   `json:"max_return"  yaml:"max_return"`
}

// Run evaluates the hedge for every integer winning number between the
// lowest range start and the highest range end. The stake is allocated once;
// the span is cut into chunks that are evaluated concurrently.
func Run(ctx context.Context, in hedge.Input, opts Options) (*Report, error) {
	opts = opts.withDefaults()

	if len(in.Ranges) == 0 {
		return &Report{Allocations: []float64{}, Points: []Point{}}, nil
	}
	if opts.Policy != enum.PolicyPropagate {
		if err := in.Validate(); err != nil {
			return nil, err
		}
	}

	odds := hedge.Odds(in.Ranges)
	allocations, err := hedge.DistributeBetsWith(opts.Policy, odds, in.TotalAmount)
	if err != nil {
		return nil, err
	}

	low := lo.MinBy(in.Ranges, func(a, b hedge.Range) bool { return a.Start < b.Start }).Start
	high := lo.MaxBy(in.Ranges, func(a, b hedge.Range) bool { return a.End > b.End }).End
	// Checked in float64 so spans wider than int64 never reach a conversion.
	if span := math.Floor(high) - math.Ceil(low) + 1; !math.IsNaN(span) && !math.IsInf(span, 0) && span > float64(opts.MaxPoints) {
		return nil, fmt.Errorf("%w: %v numbers, limit %d", ErrSpanTooBig, span, opts.MaxPoints)
	}
	first, last, count, ok := utils.IntegerSpan(low, high)
	if !ok {
		return nil, fmt.Errorf("%w: [%v, %v]", ErrNoIntegers, low, high)
	}
	if count > opts.MaxPoints {
		return nil, fmt.Errorf("%w: %d numbers, limit %d", ErrSpanTooBig, count, opts.MaxPoints)
	}

	numbers := make([]float64, count)
	for i := range numbers {
		numbers[i] = float64(first + int64(i))
	}
	points := make([]Point, count)
	chunks := utils.ChunkBySize(numbers, opts.ChunkSize)

	log := logger.With("from", first, "to", last)
	log.Debug("Starting sweep",
		"points", count,
		"chunks", len(chunks),
		"workers", opts.Workers,
	)
	startTime := time.Now()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)
	for k, chunk := range chunks {
		offset := k * opts.ChunkSize
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			for j, n := range chunk {
				ret, err := hedge.CalculateTotalReturnWith(opts.Policy, in.Ranges, odds, in.TotalAmount, n, allocations)
				if err != nil {
					return fmt.Errorf("winning number %v: %w", n, err)
				}
				points[offset+j] = Point{
					WinningNumber: n,
					RangeIndex:    hedge.MatchIndex(in.Ranges, n),
					Return:        ret,
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	covered := lo.CountBy(points, func(p Point) bool { return p.RangeIndex >= 0 })
	returns := lo.Map(points, func(p Point, _ int) float64 { return p.Return })

	log.Debug("Sweep completed",
		"points", count,
		"covered", covered,
		"elapsed", time.Since(startTime),
	)

	return &Report{
		From:        float64(first),
		To:          float64(last),
		Allocations: allocations,
		Points:      points,
		Covered:     covered,
		Uncovered:   len(points) - covered,
		MinReturn:   lo.Min(returns),
		MaxReturn:   lo.Max(returns),
	}, nil
}
