package domain

import "time"

type Household struct {
	ID   string
	Name string

	// PreferredTranslation is the household's preferred scripture
	// translation code (e.g. "NIV"). Empty means no preference.
	PreferredTranslation string

	CreatedAt time.Time
	UpdatedAt time.Time
}

type Child struct {
	ID          string
	HouseholdID string
	FirstName   string
	LastName    string

	// Grade is the raw grade code as registered ("K", "3", ...).
	Grade string

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (c *Child) Name() string {
	if c.FirstName == "" {
		return c.LastName
	}
	if c.LastName == "" {
		return c.FirstName
	}
	return c.FirstName + " " + c.LastName
}

// GradeNumber parses the child's grade code. Unparseable codes resolve to -1,
// which no division range contains.
func (c *Child) GradeNumber() int {
	n, err := ParseGrade(c.Grade)
	if err != nil {
		return -1
	}
	return n
}
