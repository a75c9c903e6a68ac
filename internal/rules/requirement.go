package rules

import "biblebee/internal/domain"

// Requirement is the resolved scripture requirement for one child in one
// cycle, tagged with where the number came from.
type Requirement struct {
	Kind  domain.RequirementKind
	Count int
}

// ResolveRequirement runs the prioritized requirement lookup:
//  1. the division's required_count, when the division defines one;
//  2. the legacy grade-rule target for the child's grade;
//  3. the whole-catalog size.
//
// An essay-track division (nil required_count) deliberately falls through to
// the legacy rules and then the catalog: a child on the essay track can still
// carry scripture assignments from a legacy enrollment, and those are scored
// against the fallback, not against a zero requirement.
func ResolveRequirement(division *domain.Division, gradeRules []*domain.GradeRule, grade int, catalogSize int) Requirement {
	if division != nil && division.RequiredCount != nil {
		return Requirement{Kind: domain.RequirementDivision, Count: *division.RequiredCount}
	}
	if grade >= 0 {
		for _, r := range gradeRules {
			if r.ContainsGrade(grade) {
				return Requirement{Kind: domain.RequirementGradeRule, Count: r.TargetCount}
			}
		}
	}
	return Requirement{Kind: domain.RequirementCatalog, Count: catalogSize}
}
