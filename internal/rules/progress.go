package rules

import "biblebee/internal/domain"

// CompletedUnit is the slice of an assignment the progress math needs:
// whether it is complete and how many units it counts for.
type CompletedUnit struct {
	Completed bool
	CountsFor int
}

// CompletedUnits sums counts-for weights over completed assignments. A
// catalog entry with counts_for = 2 contributes 2, not 1.
func CompletedUnits(units []CompletedUnit) int {
	var total int
	for _, u := range units {
		if !u.Completed {
			continue
		}
		w := u.CountsFor
		if w <= 0 {
			w = 1
		}
		total += w
	}
	return total
}

// Percent computes completion percent. Zero required yields zero; overshoot
// past 100 is preserved.
func Percent(completed, required int) float64 {
	if required <= 0 {
		return 0
	}
	return float64(completed) / float64(required) * 100
}

// Bonus is the count of completed units beyond the required threshold.
func Bonus(completed, required int) int {
	if completed <= required {
		return 0
	}
	return completed - required
}

// Bucket assigns the filtering bucket for a child's progress. Essay-only
// children (zero required scriptures) bucket on submission state.
func Bucket(completed, required int, essayStatus *domain.EssayStatus) domain.ProgressBucket {
	if required == 0 && essayStatus != nil {
		if *essayStatus == domain.EssaySubmitted {
			return domain.BucketComplete
		}
		return domain.BucketNotStarted
	}
	switch {
	case completed >= required && required > 0:
		return domain.BucketComplete
	case completed > 0:
		return domain.BucketInProgress
	default:
		return domain.BucketNotStarted
	}
}
