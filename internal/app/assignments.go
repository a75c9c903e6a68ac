package app

import (
	"time"

	"biblebee/internal/domain"
)

// ScriptureAssignmentView enriches an assignment with the catalog entry's
// display fields: resolved text, translation code, and counts-for weight.
type ScriptureAssignmentView struct {
	Assignment      domain.ScriptureAssignment
	Reference       string
	DisplayText     string
	TranslationCode string
	CountsFor       int
}

// EssayAssignmentView enriches an essay assignment with its prompt.
type EssayAssignmentView struct {
	Assignment  domain.EssayAssignment
	PromptTitle string
	Prompt      string
	DueDate     *time.Time
}

// AssignmentSet is the result of reading a child's materialized assignments.
type AssignmentSet struct {
	Scriptures []ScriptureAssignmentView
	Essays     []EssayAssignmentView
}

// MaterializeResult reports what EnsureMaterialized created.
type MaterializeResult struct {
	ScripturesCreated int
	EssaysCreated     int
	DivisionID        *string
}

// ChildProgress is the single-child detail view: summary plus the full
// assignment list behind it.
type ChildProgress struct {
	Summary     ProgressSummary
	Assignments AssignmentSet
}
