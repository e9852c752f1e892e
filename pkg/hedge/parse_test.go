package hedge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRange(t *testing.T) {
	tests := []struct {
		spec string
		want Range
	}{
		{"1-10@2", Range{Start: 1, End: 10, Odds: 2}},
		{" 11 - 20 @ 3.5 ", Range{Start: 11, End: 20, Odds: 3.5}},
		{"-5--1@1.5", Range{Start: -5, End: -1, Odds: 1.5}},
		{"-5-5@4", Range{Start: -5, End: 5, Odds: 4}},
		{"0.5-1.5@2", Range{Start: 0.5, End: 1.5, Odds: 2}},
		{"1e-3-2@2", Range{Start: 0.001, End: 2, Odds: 2}},
		{"1-10", Range{Start: 1, End: 10, Odds: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			got, err := ParseRange(tt.spec)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseRange_Invalid(t *testing.T) {
	for _, spec := range []string{"", "10", "a-b@2", "1-10@x", "1-@2", "-5@2"} {
		t.Run(spec, func(t *testing.T) {
			_, err := ParseRange(spec)
			assert.ErrorIs(t, err, ErrInvalidRangeSpec)
		})
	}
}

func TestParseRanges(t *testing.T) {
	ranges, err := ParseRanges([]string{"1-10@2", "11-20@3"})
	require.NoError(t, err)
	assert.Equal(t, []Range{{Start: 1, End: 10, Odds: 2}, {Start: 11, End: 20, Odds: 3}}, ranges)

	_, err = ParseRanges([]string{"1-10@2", "bad"})
	assert.ErrorIs(t, err, ErrInvalidRangeSpec)
}
