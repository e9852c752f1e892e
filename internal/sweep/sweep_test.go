package sweep

import (
	"context"
	"math"
	"testing"

	"github.com/fystack/range-hedge/pkg/common/enum"
	"github.com/fystack/range-hedge/pkg/hedge"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoRanges() hedge.Input {
	return hedge.Input{
		Ranges: []hedge.Range{
			{Start: 1, End: 10, Odds: 2},
			{Start: 11, End: 20, Odds: 3},
		},
		TotalAmount:   1000,
		WinningNumber: 5,
	}
}

func TestRun_CoversEveryNumber(t *testing.T) {
	report, err := Run(context.Background(), twoRanges(), Options{Workers: 3, ChunkSize: 4})
	require.NoError(t, err)

	assert.Equal(t, 1.0, report.From)
	assert.Equal(t, 20.0, report.To)
	require.Len(t, report.Points, 20)
	assert.Equal(t, 20, report.Covered)
	assert.Equal(t, 0, report.Uncovered)

	for i, p := range report.Points {
		assert.Equal(t, float64(i+1), p.WinningNumber)
		if p.WinningNumber <= 10 {
			assert.Equal(t, 0, p.RangeIndex)
		} else {
			assert.Equal(t, 1, p.RangeIndex)
		}
		assert.InDelta(t, 1200, p.Return, 1e-9)
	}
	assert.InDelta(t, 1200, report.MinReturn, 1e-9)
	assert.InDelta(t, 1200, report.MaxReturn, 1e-9)
	assert.InDelta(t, 600, report.Allocations[0], 1e-9)
}

func TestRun_MatchesSequentialEvaluation(t *testing.T) {
	in := hedge.Input{
		Ranges: []hedge.Range{
			{Start: 1, End: 30, Odds: 1.8},
			{Start: 20, End: 60, Odds: 2.5},
			{Start: 80, End: 99, Odds: 9},
		},
		TotalAmount: 250,
	}

	report, err := Run(context.Background(), in, Options{Workers: 8, ChunkSize: 7})
	require.NoError(t, err)

	for _, p := range report.Points {
		local := in
		local.WinningNumber = p.WinningNumber
		res, err := hedge.Calculate(local)
		require.NoError(t, err)
		assert.Equal(t, res.TotalReturn, p.Return, "winning number %v", p.WinningNumber)
		assert.Equal(t, res.WinningIndex, p.RangeIndex)
	}
	assert.Equal(t, 99, len(report.Points))
	assert.Equal(t, 19, report.Uncovered)
	assert.Zero(t, report.MinReturn)
}

func TestRun_EmptyRanges(t *testing.T) {
	report, err := Run(context.Background(), hedge.Input{TotalAmount: 10}, Options{})
	require.NoError(t, err)
	assert.Empty(t, report.Points)
	assert.Empty(t, report.Allocations)
}

func TestRun_StrictRejectsBadOdds(t *testing.T) {
	in := twoRanges()
	in.Ranges[1].Odds = 0

	_, err := Run(context.Background(), in, Options{})
	assert.ErrorIs(t, err, hedge.ErrValidation)
}

func TestRun_PropagateKeepsSpecialValues(t *testing.T) {
	in := twoRanges()
	in.Ranges[1].Odds = 0

	report, err := Run(context.Background(), in, Options{Policy: enum.PolicyPropagate})
	require.NoError(t, err)
	assert.Equal(t, 0.0, report.Points[0].Return)
	assert.True(t, math.IsNaN(report.Points[19].Return))
}

func TestRun_NoIntegers(t *testing.T) {
	in := hedge.Input{Ranges: []hedge.Range{{Start: 1.2, End: 1.8, Odds: 2}}, TotalAmount: 10}
	_, err := Run(context.Background(), in, Options{})
	assert.ErrorIs(t, err, ErrNoIntegers)
}

func TestRun_SpanTooBig(t *testing.T) {
	in := hedge.Input{Ranges: []hedge.Range{{Start: 1, End: 1000, Odds: 2}}, TotalAmount: 10}
	_, err := Run(context.Background(), in, Options{MaxPoints: 100})
	assert.ErrorIs(t, err, ErrSpanTooBig)
}

func TestRun_SpanWiderThanInt64(t *testing.T) {
	in := hedge.Input{Ranges: []hedge.Range{{Start: -5e18, End: 5e18, Odds: 2}}, TotalAmount: 1000}
	require.NoError(t, in.Validate())

	_, err := Run(context.Background(), in, Options{})
	assert.ErrorIs(t, err, ErrSpanTooBig)
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, twoRanges(), Options{Workers: 1, ChunkSize: 1})
	assert.ErrorIs(t, err, context.Canceled)
}
