package app

import (
	"time"

	"biblebee/internal/domain"
)

// RosterSortKey selects the ordering of a roster response.
type RosterSortKey string

const (
	SortByName     RosterSortKey = "name"
	SortByDivision RosterSortKey = "division"
	SortByStatus   RosterSortKey = "status"
)

// ProgressRequest scopes a roster computation. ChildIDs, Division, and
// Status are optional filters; the zero value means "everyone in the cycle".
type ProgressRequest struct {
	CycleID  string
	ChildIDs []string
	Division string
	Status   domain.ProgressBucket
	SortKey  RosterSortKey
}

func NewProgressRequest(cycleID string) ProgressRequest {
	return ProgressRequest{CycleID: cycleID, SortKey: SortByName}
}

// ProgressSummary is the derived per-child view. It is never persisted;
// aggregation always recomputes it from freshly materialized assignments.
type ProgressSummary struct {
	ChildID       string
	ChildName     string
	Grade         string
	DivisionName  string
	EssayStatus   *domain.EssayStatus
	Bucket        domain.ProgressBucket
	Requirement   domain.RequirementKind

	RequiredScriptures  int
	CompletedScriptures int
	TotalScriptures     int
	Bonus               int
	Percent             float64
}

// DisplayPercent is the percent shown to users. Essay-only children switch
// to binary semantics: 0 until submitted, 100 after. The numeric fields are
// untouched by this; it is display-only.
func (s ProgressSummary) DisplayPercent() float64 {
	if s.RequiredScriptures == 0 && s.EssayStatus != nil {
		if *s.EssayStatus == domain.EssaySubmitted {
			return 100
		}
		return 0
	}
	return s.Percent
}

type RosterResponse struct {
	GeneratedAt time.Time
	CycleID     string
	CycleName   string
	Summaries   []ProgressSummary

	// Warnings carries degraded-but-non-blocking failures, e.g. a division
	// name that could not be resolved for display.
	Warnings []string
}
