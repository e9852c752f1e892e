package hedge

import (
	"github.com/fystack/range-hedge/pkg/common/enum"
)

type options struct {
	policy enum.Policy
}

type Option func(*options)

// WithPolicy selects how invalid numbers are treated. The default is
// enum.PolicyStrict.
func WithPolicy(p enum.Policy) Option {
	return func(o *options) {
		if p != "" {
			o.policy = p
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{policy: enum.PolicyStrict}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Calculate allocates in.TotalAmount across in.Ranges and evaluates the
// return for in.WinningNumber.
func Calculate(in Input, opts ...Option) (*Result, error) {
	o := buildOptions(opts)

	if o.policy != enum.PolicyPropagate {
		if err := in.Validate(); err != nil {
			return nil, err
		}
	}

	odds := Odds(in.Ranges)
	allocations, err := DistributeBetsWith(o.policy, odds, in.TotalAmount)
	if err != nil {
		return nil, err
	}

	totalReturn, err := CalculateTotalReturnWith(o.policy, in.Ranges, odds, in.TotalAmount, in.WinningNumber, allocations)
	if err != nil {
		return nil, err
	}

	return &Result{
		Allocations:  allocations,
		TotalReturn:  totalReturn,
		WinningIndex: MatchIndex(in.Ranges, in.WinningNumber),
		Outcomes:     Outcomes(in.Ranges, odds, allocations, in.TotalAmount),
	}, nil
}

// Outcomes lists, for every range, what it pays if it wins and the net
// against the whole stake. With a hedge allocation all payouts are equal.
// The three slices must be parallel; extra entries are ignored.
func Outcomes(ranges []Range, odds, allocations []float64, totalAmount float64) []Outcome {
	n := min(len(ranges), len(odds), len(allocations))
	out := make([]Outcome, n)
	for i := 0; i < n; i++ {
		payout := allocations[i] * odds[i]
		out[i] = Outcome{
			Range:      ranges[i],
			Allocation: allocations[i],
			Payout:     payout,
			Net:        payout - totalAmount,
		}
	}
	return out
}
