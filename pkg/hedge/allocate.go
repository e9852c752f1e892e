package hedge

import (
	"github.com/fystack/range-hedge/pkg/common/enum"
	"github.com/samber/lo"
)

// DistributeBets splits totalAmount across ranges in inverse proportion to
// their odds, so that allocation_i * odds_i is the same for every i. The
// result is parallel to odds and sums to totalAmount up to rounding.
//
// Odds must be positive and finite and totalAmount finite, otherwise a
// *ValidationError is returned. Use DistributeBetsWith(enum.PolicyPropagate,
// ...) to get unchecked IEEE-754 arithmetic instead.
func DistributeBets(odds []float64, totalAmount float64) ([]float64, error) {
	return DistributeBetsWith(enum.PolicyStrict, odds, totalAmount)
}

func DistributeBetsWith(policy enum.Policy, odds []float64, totalAmount float64) ([]float64, error) {
	if len(odds) == 0 {
		return []float64{}, nil
	}
	if policy == enum.PolicyPropagate {
		return distributeRaw(odds, totalAmount), nil
	}

	var errs ValidationErrors
	for i, o := range odds {
		errs.Add(checkOdds(i, o))
	}
	errs.Add(checkTotal(totalAmount))
	if err := errs.Err(); err != nil {
		return nil, err
	}
	return distributeInverse(odds, totalAmount), nil
}

// distributeInverse weights each range by 1/o. The weights do not depend on
// totalAmount, so a zero stake yields zeros rather than 0/0.
func distributeInverse(odds []float64, totalAmount float64) []float64 {
	weights := lo.Map(odds, func(o float64, _ int) float64 {
		return 1 / o
	})
	sum := lo.Sum(weights)

	allocations := make([]float64, len(odds))
	for i, w := range weights {
		allocations[i] = totalAmount * (w / sum)
	}
	return allocations
}

// distributeRaw is the unchecked formula: w_i = 2T/o_i, a_i = T*w_i/Σw.
// The factor 2 cancels; it is kept so propagated special values match.
func distributeRaw(odds []float64, totalAmount float64) []float64 {
	raw := lo.Map(odds, func(o float64, _ int) float64 {
		return (2 * totalAmount) / o
	})
	sum := lo.Sum(raw)

	allocations := make([]float64, len(raw))
	for i, w := range raw {
		allocations[i] = (totalAmount * w) / sum
	}
	return allocations
}
