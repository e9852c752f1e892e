package hedge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckPartition_Clean(t *testing.T) {
	issues := CheckPartition([]Range{
		{Start: 11, End: 20, Odds: 3},
		{Start: 1, End: 10, Odds: 2},
		{Start: 21, End: 21, Odds: 30},
	})
	assert.Empty(t, issues)
}

func TestCheckPartition_Overlap(t *testing.T) {
	issues := CheckPartition([]Range{
		{Start: 1, End: 10, Odds: 2},
		{Start: 5, End: 15, Odds: 3},
	})
	require.Len(t, issues, 1)
	assert.Equal(t, IssueOverlap, issues[0].Kind)
	assert.Equal(t, 0, issues[0].Index)
	assert.Equal(t, 1, issues[0].Other)
}

func TestCheckPartition_SharedBoundaryIsOverlap(t *testing.T) {
	issues := CheckPartition([]Range{
		{Start: 1, End: 10, Odds: 2},
		{Start: 10, End: 20, Odds: 3},
	})
	require.Len(t, issues, 1)
	assert.Equal(t, IssueOverlap, issues[0].Kind)
}

func TestCheckPartition_Gap(t *testing.T) {
	issues := CheckPartition([]Range{
		{Start: 1, End: 10, Odds: 2},
		{Start: 15, End: 20, Odds: 3},
	})
	require.Len(t, issues, 1)
	assert.Equal(t, IssueGap, issues[0].Kind)
	assert.Contains(t, issues[0].Detail, "11 to 14")
}

func TestCheckPartition_NestedRangeHidesNoGap(t *testing.T) {
	issues := CheckPartition([]Range{
		{Start: 1, End: 30, Odds: 2},
		{Start: 5, End: 6, Odds: 3},
		{Start: 31, End: 40, Odds: 3},
	})
	require.Len(t, issues, 1)
	assert.Equal(t, IssueOverlap, issues[0].Kind)
}

func TestCheckPartition_Inverted(t *testing.T) {
	issues := CheckPartition([]Range{
		{Start: 10, End: 1, Odds: 2},
	})
	require.Len(t, issues, 1)
	assert.Equal(t, IssueInverted, issues[0].Kind)
	assert.Equal(t, -1, issues[0].Other)
}

func TestCheckPartition_Empty(t *testing.T) {
	assert.Empty(t, CheckPartition(nil))
}
