package domain

import (
	"errors"
	"time"
)

// ErrEssayAlreadySubmitted is returned when submitting an essay assignment
// that is already in the submitted state.
var ErrEssayAlreadySubmitted = errors.New("essay already submitted")

// ScriptureAssignment is the materialized per-(child, scripture) record.
// At most one exists per key within a cycle; the unique index on
// (child_id, scripture_id) enforces it.
type ScriptureAssignment struct {
	ID          string
	ChildID     string
	ScriptureID string
	CycleID     string

	Completed   bool
	CompletedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// SetCompletion toggles the completion flag, stamping or clearing the
// completion time. Setting the current state again is a no-op.
func (a *ScriptureAssignment) SetCompletion(complete bool, now time.Time) {
	if a.Completed == complete {
		return
	}
	a.Completed = complete
	if complete {
		t := now
		a.CompletedAt = &t
	} else {
		a.CompletedAt = nil
	}
	a.UpdatedAt = now
}

// EssayAssignment is the materialized per-(child, essay-prompt) record.
type EssayAssignment struct {
	ID            string
	ChildID       string
	EssayPromptID string
	CycleID       string

	Status      EssayStatus
	SubmittedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Submit moves the assignment to submitted.
func (a *EssayAssignment) Submit(now time.Time) error {
	if a.Status == EssaySubmitted {
		return ErrEssayAlreadySubmitted
	}
	a.Status = EssaySubmitted
	t := now
	a.SubmittedAt = &t
	a.UpdatedAt = now
	return nil
}
