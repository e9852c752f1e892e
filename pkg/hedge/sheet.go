package hedge

import (
	"fmt"
	"slices"

	"github.com/fystack/range-hedge/pkg/common/constant"
)

type Field string

const (
	FieldStart Field = "start"
	FieldEnd   Field = "end"
	FieldOdds  Field = "odds"
)

// NextRange proposes the range to append after ranges: it starts one past
// the last end, covers DefaultRangeWidth integers and pays DefaultOdds.
func NextRange(ranges []Range) Range {
	start := float64(constant.FirstRangeStart)
	if len(ranges) > 0 {
		start = ranges[len(ranges)-1].End + 1
	}
	return Range{
		Start: start,
		End:   start + constant.DefaultRangeWidth - 1,
		Odds:  constant.DefaultOdds,
	}
}

// Sheet is an editable list of ranges with the stake and winning number.
// Edits never modify the receiver; they return the edited copy.
type Sheet struct {
	ranges        []Range
	TotalAmount   float64
	WinningNumber float64
}

// NewSheet returns the starting sheet: one range [1, 10] at odds 2, a stake
// of 1000 and winning number 5.
func NewSheet() Sheet {
	return Sheet{
		ranges:        []Range{NextRange(nil)},
		TotalAmount:   constant.DefaultTotalAmount,
		WinningNumber: constant.DefaultWinningNumber,
	}
}

func SheetFromInput(in Input) Sheet {
	return Sheet{
		ranges:        slices.Clone(in.Ranges),
		TotalAmount:   in.TotalAmount,
		WinningNumber: in.WinningNumber,
	}
}

func (s Sheet) Ranges() []Range {
	return slices.Clone(s.ranges)
}

func (s Sheet) Len() int {
	return len(s.ranges)
}

func (s Sheet) Input() Input {
	return Input{
		Ranges:        s.Ranges(),
		TotalAmount:   s.TotalAmount,
		WinningNumber: s.WinningNumber,
	}
}

// Add appends NextRange.
func (s Sheet) Add() Sheet {
	s.ranges = append(slices.Clone(s.ranges), NextRange(s.ranges))
	return s
}

// Remove drops range i. A sheet always keeps at least one range.
func (s Sheet) Remove(i int) (Sheet, error) {
	if i < 0 || i >= len(s.ranges) {
		return s, fmt.Errorf("remove %d of %d: %w", i, len(s.ranges), ErrIndexOutOfRange)
	}
	if len(s.ranges) == 1 {
		return s, ErrLastRange
	}
	s.ranges = slices.Delete(slices.Clone(s.ranges), i, i+1)
	return s, nil
}

// Update sets one field of range i.
func (s Sheet) Update(i int, field Field, value float64) (Sheet, error) {
	if i < 0 || i >= len(s.ranges) {
		return s, fmt.Errorf("update %d of %d: %w", i, len(s.ranges), ErrIndexOutOfRange)
	}
	ranges := slices.Clone(s.ranges)
	switch field {
	case FieldStart:
		ranges[i].Start = value
	case FieldEnd:
		ranges[i].End = value
	case FieldOdds:
		ranges[i].Odds = value
	default:
		return s, fmt.Errorf("unknown range field %q", field)
	}
	s.ranges = ranges
	return s, nil
}
