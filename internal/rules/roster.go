package rules

import (
	"sort"
	"strings"

	"biblebee/internal/app"
	"biblebee/internal/domain"
)

// bucketOrder ranks status buckets for sorting: unfinished work floats up.
var bucketOrder = map[domain.ProgressBucket]int{
	domain.BucketNotStarted: 0,
	domain.BucketInProgress: 1,
	domain.BucketComplete:   2,
}

// SortRoster orders summaries in place by the requested key, with child name
// as the stable tiebreaker. Unknown keys fall back to name order.
func SortRoster(summaries []app.ProgressSummary, key app.RosterSortKey) {
	byName := func(i, j int) bool {
		return strings.ToLower(summaries[i].ChildName) < strings.ToLower(summaries[j].ChildName)
	}
	switch key {
	case app.SortByDivision:
		sort.SliceStable(summaries, func(i, j int) bool {
			if summaries[i].DivisionName != summaries[j].DivisionName {
				return summaries[i].DivisionName < summaries[j].DivisionName
			}
			return byName(i, j)
		})
	case app.SortByStatus:
		sort.SliceStable(summaries, func(i, j int) bool {
			bi, bj := bucketOrder[summaries[i].Bucket], bucketOrder[summaries[j].Bucket]
			if bi != bj {
				return bi < bj
			}
			return byName(i, j)
		})
	default:
		sort.SliceStable(summaries, byName)
	}
}

// FilterRoster returns the summaries matching the request's division and
// status filters. It is a pure transform; it never re-fetches.
func FilterRoster(summaries []app.ProgressSummary, division string, status domain.ProgressBucket) []app.ProgressSummary {
	if division == "" && status == "" {
		return summaries
	}
	filtered := make([]app.ProgressSummary, 0, len(summaries))
	for _, s := range summaries {
		if division != "" && !strings.EqualFold(s.DivisionName, division) {
			continue
		}
		if status != "" && s.Bucket != status {
			continue
		}
		filtered = append(filtered, s)
	}
	return filtered
}
