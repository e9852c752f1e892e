package hedge

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "600.00", FormatAmount(600.0000000000001))
	assert.Equal(t, "333.33", FormatAmount(1000.0/3))
	assert.Equal(t, "666.67", FormatAmount(2000.0/3))
	assert.Equal(t, "-12.50", FormatAmount(-12.5))
	assert.Equal(t, "0.00", FormatAmount(0))
	assert.Equal(t, "NaN", FormatAmount(math.NaN()))
	assert.Equal(t, "+Inf", FormatAmount(math.Inf(1)))
	assert.Equal(t, "-Inf", FormatAmount(math.Inf(-1)))
}

func TestToCents_AddsUpToTotal(t *testing.T) {
	allocations, err := DistributeBets([]float64{3, 3, 3}, 100)
	assert.NoError(t, err)

	cents := ToCents(allocations, 100)
	sum := decimal.Sum(cents[0], cents[1:]...)
	assert.True(t, sum.Equal(decimal.NewFromInt(100)), "sum %s", sum)
}

func TestToCents_NonFinite(t *testing.T) {
	cents := ToCents([]float64{math.NaN(), 10}, math.NaN())
	assert.True(t, cents[0].IsZero())
	assert.Equal(t, "10", cents[1].String())

	cents = ToCents([]float64{math.NaN(), math.Inf(1)}, 100)
	assert.True(t, cents[0].IsZero(), "got %s", cents[0])
	assert.True(t, cents[1].IsZero(), "got %s", cents[1])

	cents = ToCents([]float64{math.NaN(), 40, 59.99}, 100)
	assert.True(t, cents[0].IsZero(), "got %s", cents[0])
	assert.Equal(t, "40", cents[1].String())
	assert.Equal(t, "60", cents[2].String())
}

func TestToCents_RemainderOnLargest(t *testing.T) {
	cents := ToCents([]float64{1000.0 / 3, 1000.0 / 3, 1000.0 / 3}, 1000)
	assert.Equal(t, "333.34", cents[0].StringFixed(2))
	assert.Equal(t, "333.33", cents[1].StringFixed(2))
	assert.Equal(t, "333.33", cents[2].StringFixed(2))
}

func TestToCents_Empty(t *testing.T) {
	assert.Empty(t, ToCents(nil, 100))
}
