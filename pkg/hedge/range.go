// Package hedge splits a stake across numeric ranges in inverse proportion
// to their odds and evaluates the payout once a winning number is known.
//
// Every function in this package is pure: it reads its arguments, allocates
// fresh output and never logs, so it is safe for concurrent use.
package hedge

import (
	"fmt"

	"github.com/samber/lo"
)

// Range is an inclusive interval [Start, End] paying Odds times the stake
// placed on it when the winning number falls inside.
type Range struct {
	Start float64 `json:"start" yaml:"start"`
	End   float64 `json:"end"   yaml:"end"`
	Odds  float64 `json:"odds"  yaml:"odds"`
}

// Contains reports whether n lies in [Start, End]. Both bounds are inclusive.
func (r Range) Contains(n float64) bool {
	return n >= r.Start && n <= r.End
}

func (r Range) String() string {
	return fmt.Sprintf("%g-%g@%g", r.Start, r.End, r.Odds)
}

// Input is everything one calculation needs. It is passed by value; callers
// that keep an editable sheet own that state themselves (see Sheet).
type Input struct {
	Ranges        []Range `json:"ranges"         yaml:"ranges"`
	TotalAmount   float64 `json:"total_amount"   yaml:"total_amount"`
	WinningNumber float64 `json:"winning_number" yaml:"winning_number"`
}

// Outcome is what a single range pays if it turns out to be the winner.
type Outcome struct {
	Range      Range   `json:"range"      yaml:"range"`
	Allocation float64 `json:"allocation" yaml:"allocation"`
	Payout     float64 `json:"payout"     yaml:"payout"`
	Net        float64 `json:"net"        yaml:"net"`
}

// Result is the allocation and evaluation of one Input.
type Result struct {
	Allocations  []float64 `json:"allocations"   yaml:"allocations"`
	TotalReturn  float64   `json:"total_return"  yaml:"total_return"`
	WinningIndex int       `json:"winning_index" yaml:"winning_index"` // -1 when no range matched
	Outcomes     []Outcome `json:"outcomes"      yaml:"outcomes"`
}

// Matched reports whether the winning number fell inside any range.
func (r *Result) Matched() bool {
	return r.WinningIndex >= 0
}

// Odds extracts the odds column of ranges, keeping order.
func Odds(ranges []Range) []float64 {
	return lo.Map(ranges, func(r Range, _ int) float64 {
		return r.Odds
	})
}
