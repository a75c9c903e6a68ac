package domain

import "time"

// Scripture is one catalog entry within a cycle.
type Scripture struct {
	ID        string
	CycleID   string
	Reference string
	SortOrder int

	// CountsFor is the weight a completion contributes toward the required
	// total. A multi-verse passage may count for more than one unit.
	CountsFor int

	// Texts maps translation code to verse text.
	Texts map[string]string

	CreatedAt time.Time
	UpdatedAt time.Time
}
