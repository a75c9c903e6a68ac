package rules

import "biblebee/internal/domain"

// ResolveDivision picks the division whose grade range contains the child's
// numeric grade. Returns nil when no division matches; callers degrade to the
// catalog fallback rather than failing.
func ResolveDivision(grade int, divisions []*domain.Division) *domain.Division {
	if grade < 0 {
		return nil
	}
	for _, d := range divisions {
		if d.ContainsGrade(grade) {
			return d
		}
	}
	return nil
}
