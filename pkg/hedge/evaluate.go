package hedge

import (
	"github.com/fystack/range-hedge/pkg/common/enum"
)

// MatchIndex returns the index of the first range containing n, or -1.
// Overlapping ranges resolve to whichever comes first.
func MatchIndex(ranges []Range, n float64) int {
	for i, r := range ranges {
		if r.Contains(n) {
			return i
		}
	}
	return -1
}

// CalculateTotalReturn pays allocations[i] * odds[i] for the first range i
// containing winningNumber, or 0 when no range does.
//
// totalAmount is not used by the computation. It stays in the signature so
// callers can pass the same arguments they gave DistributeBets.
func CalculateTotalReturn(ranges []Range, odds []float64, totalAmount, winningNumber float64, allocations []float64) (float64, error) {
	return CalculateTotalReturnWith(enum.PolicyStrict, ranges, odds, totalAmount, winningNumber, allocations)
}

func CalculateTotalReturnWith(policy enum.Policy, ranges []Range, odds []float64, _ float64, winningNumber float64, allocations []float64) (float64, error) {
	if len(odds) != len(ranges) {
		return 0, invalid("odds", -1, "has %d entries for %d ranges", len(odds), len(ranges))
	}
	if len(allocations) != len(ranges) {
		return 0, invalid("allocations", -1, "has %d entries for %d ranges", len(allocations), len(ranges))
	}
	if policy != enum.PolicyPropagate && !finite(winningNumber) {
		return 0, invalid("winning_number", -1, "must be finite, got %v", winningNumber)
	}

	i := MatchIndex(ranges, winningNumber)
	if i < 0 {
		return 0, nil
	}
	return allocations[i] * odds[i], nil
}
