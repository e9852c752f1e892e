package hedge

import (
	"cmp"
	"fmt"
	"slices"
)

type IssueKind string

const (
	IssueInverted IssueKind = "inverted"
	IssueOverlap  IssueKind = "overlap"
	IssueGap      IssueKind = "gap"
)

// Issue is a partition problem between range Index and range Other (Other is
// -1 for single-range issues). Indices refer to the caller's order.
type Issue struct {
	Kind   IssueKind `json:"kind"   yaml:"kind"`
	Index  int       `json:"index"  yaml:"index"`
	Other  int       `json:"other"  yaml:"other"`
	Detail string    `json:"detail" yaml:"detail"`
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %s", i.Kind, i.Detail)
}

// CheckPartition reports whether ranges tile the integers between their
// lowest start and highest end with no overlap. The calculator itself never
// calls this: overlapping ranges are legal and resolve to the first match.
func CheckPartition(ranges []Range) []Issue {
	var issues []Issue

	for i, r := range ranges {
		if r.Start > r.End {
			issues = append(issues, Issue{
				Kind:   IssueInverted,
				Index:  i,
				Other:  -1,
				Detail: fmt.Sprintf("range %d (%s) starts after it ends", i, r),
			})
		}
	}

	for i := 0; i < len(ranges); i++ {
		for j := i + 1; j < len(ranges); j++ {
			a, b := ranges[i], ranges[j]
			if a.Start > a.End || b.Start > b.End {
				continue
			}
			if a.Start <= b.End && b.Start <= a.End {
				issues = append(issues, Issue{
					Kind:   IssueOverlap,
					Index:  i,
					Other:  j,
					Detail: fmt.Sprintf("range %d (%s) overlaps range %d (%s); range %d wins", i, a, j, b, i),
				})
			}
		}
	}

	order := make([]int, 0, len(ranges))
	for i, r := range ranges {
		if r.Start <= r.End {
			order = append(order, i)
		}
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return cmp.Compare(ranges[a].Start, ranges[b].Start)
	})

	reach := 0.0
	for k, idx := range order {
		r := ranges[idx]
		if k > 0 && r.Start > reach+1 {
			issues = append(issues, Issue{
				Kind:   IssueGap,
				Index:  order[k-1],
				Other:  idx,
				Detail: fmt.Sprintf("numbers %g to %g are not covered", reach+1, r.Start-1),
			})
		}
		if k == 0 || r.End > reach {
			reach = r.End
		}
	}

	return issues
}
