package hedge

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fystack/range-hedge/pkg/common/constant"
)

// ParseRange reads "start-end@odds", e.g. "1-10@2" or "-5--1@1.5". The odds
// part may be omitted and defaults to constant.DefaultOdds.
func ParseRange(spec string) (Range, error) {
	s := strings.TrimSpace(spec)
	bounds, oddsPart, hasOdds := strings.Cut(s, "@")

	sep := boundSeparator(bounds)
	if sep < 0 {
		return Range{}, fmt.Errorf("%w %q: want start-end@odds", ErrInvalidRangeSpec, spec)
	}

	start, err := strconv.ParseFloat(strings.TrimSpace(bounds[:sep]), 64)
	if err != nil {
		return Range{}, fmt.Errorf("%w %q: start: %v", ErrInvalidRangeSpec, spec, err)
	}
	end, err := strconv.ParseFloat(strings.TrimSpace(bounds[sep+1:]), 64)
	if err != nil {
		return Range{}, fmt.Errorf("%w %q: end: %v", ErrInvalidRangeSpec, spec, err)
	}

	odds := float64(constant.DefaultOdds)
	if hasOdds {
		odds, err = strconv.ParseFloat(strings.TrimSpace(oddsPart), 64)
		if err != nil {
			return Range{}, fmt.Errorf("%w %q: odds: %v", ErrInvalidRangeSpec, spec, err)
		}
	}

	return Range{Start: start, End: end, Odds: odds}, nil
}

func ParseRanges(specs []string) ([]Range, error) {
	ranges := make([]Range, 0, len(specs))
	for _, spec := range specs {
		r, err := ParseRange(spec)
		if err != nil {
			return nil, err
		}
		ranges = append(ranges, r)
	}
	return ranges, nil
}

// boundSeparator finds the dash between start and end: the first '-' that
// follows a digit or a dot, so signs and exponents are skipped.
func boundSeparator(s string) int {
	for i := 1; i < len(s); i++ {
		if s[i] != '-' {
			continue
		}
		prev := s[i-1]
		if (prev >= '0' && prev <= '9') || prev == '.' || prev == ' ' {
			return i
		}
	}
	return -1
}
