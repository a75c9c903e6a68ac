package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseGrade converts a grade code to its numeric value. Kindergarten
// ("K", "k", "kindergarten") maps to 0; "1" through "12" map to themselves.
func ParseGrade(code string) (int, error) {
	c := strings.TrimSpace(strings.ToLower(code))
	if c == "k" || c == "kindergarten" {
		return 0, nil
	}
	c = strings.TrimSuffix(c, "th")
	c = strings.TrimSuffix(c, "st")
	c = strings.TrimSuffix(c, "nd")
	c = strings.TrimSuffix(c, "rd")
	n, err := strconv.Atoi(c)
	if err != nil {
		return 0, fmt.Errorf("unrecognized grade code %q", code)
	}
	if n < 0 || n > 12 {
		return 0, fmt.Errorf("grade %d out of range", n)
	}
	return n, nil
}

// GradeLabel renders a numeric grade back to its display form.
func GradeLabel(grade int) string {
	if grade == 0 {
		return "K"
	}
	return strconv.Itoa(grade)
}
