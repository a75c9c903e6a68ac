package domain

import "time"

// Enrollment links a child to a cycle. DivisionID is resolved lazily on
// first materialization, not at registration time.
type Enrollment struct {
	ID         string
	ChildID    string
	CycleID    string
	DivisionID *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
