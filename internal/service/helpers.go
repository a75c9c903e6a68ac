package service

import (
	"biblebee/internal/app"
	"biblebee/internal/domain"
	"biblebee/internal/rules"
)

// buildSummary computes one child's derived progress view from freshly read
// assignments. Pure; all persistence happens before this is called.
func buildSummary(
	child *domain.Child,
	childName string,
	division *domain.Division,
	gradeRules []*domain.GradeRule,
	catalogSize int,
	set *app.AssignmentSet,
) app.ProgressSummary {
	requirement := rules.ResolveRequirement(division, gradeRules, child.GradeNumber(), catalogSize)

	units := make([]rules.CompletedUnit, len(set.Scriptures))
	for i, v := range set.Scriptures {
		units[i] = rules.CompletedUnit{Completed: v.Assignment.Completed, CountsFor: v.CountsFor}
	}
	completed := rules.CompletedUnits(units)

	var essayStatus *domain.EssayStatus
	if len(set.Essays) > 0 {
		status := set.Essays[0].Assignment.Status
		essayStatus = &status
	}

	summary := app.ProgressSummary{
		ChildID:             child.ID,
		ChildName:           childName,
		Grade:               child.Grade,
		EssayStatus:         essayStatus,
		Requirement:         requirement.Kind,
		RequiredScriptures:  requirement.Count,
		CompletedScriptures: completed,
		TotalScriptures:     len(set.Scriptures),
		Bonus:               rules.Bonus(completed, requirement.Count),
		Percent:             rules.Percent(completed, requirement.Count),
	}
	if division != nil {
		summary.DivisionName = division.Name
	}
	summary.Bucket = rules.Bucket(completed, requirement.Count, essayStatus)
	return summary
}
