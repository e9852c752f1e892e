package hedge

import (
	"math"

	"github.com/fystack/range-hedge/pkg/common/constant"
	"github.com/shopspring/decimal"
)

// FormatAmount renders v with two decimal places. Special values that the
// propagate policy lets through are spelled out instead of panicking.
func FormatAmount(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "+Inf"
	case math.IsInf(v, -1):
		return "-Inf"
	}
	return decimal.NewFromFloat(v).StringFixed(constant.DisplayPlaces)
}

// ToCents rounds allocations to cents and pushes the rounding remainder onto
// the largest finite allocation, so the rounded amounts add up to the rounded
// total. Non-finite allocations are returned as zero and never take the
// remainder; with no finite allocation there is nothing to adjust.
func ToCents(allocations []float64, totalAmount float64) []decimal.Decimal {
	out := make([]decimal.Decimal, len(allocations))

	sum := decimal.Zero
	maxIdx := -1
	for i, a := range allocations {
		if !finite(a) {
			out[i] = decimal.Zero
			continue
		}
		out[i] = decimal.NewFromFloat(a).Round(constant.DisplayPlaces)
		sum = sum.Add(out[i])
		if maxIdx < 0 || out[i].Abs().GreaterThan(out[maxIdx].Abs()) {
			maxIdx = i
		}
	}
	if maxIdx < 0 || !finite(totalAmount) {
		return out
	}

	diff := decimal.NewFromFloat(totalAmount).Round(constant.DisplayPlaces).Sub(sum)
	if !diff.IsZero() {
		out[maxIdx] = out[maxIdx].Add(diff)
	}
	return out
}
