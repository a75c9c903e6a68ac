package service

import (
	"context"

	"biblebee/internal/app"
)

// MaterializerService is the two-phase assignment materializer: a single
// side-effecting EnsureMaterialized step followed by pure reads. Callers run
// EnsureMaterialized once per visit, then read as often as they like.
type MaterializerService interface {
	EnsureMaterialized(ctx context.Context, childID, cycleID string) (*app.MaterializeResult, error)
	ReadAssignments(ctx context.Context, childID, cycleID string) (*app.AssignmentSet, error)
}

// ProgressService aggregates per-child and roster progress views.
type ProgressService interface {
	GetProgressForCycle(ctx context.Context, req app.ProgressRequest) (*app.RosterResponse, error)
	GetProgressForChild(ctx context.Context, childID, cycleID string) (*app.ChildProgress, error)
}

// CompletionService mutates assignment completion and submission state.
// Concurrent completions of the same assignment from different sessions race
// last-write-wins; that is the accepted behavior, not a defect to paper over.
type CompletionService interface {
	SetScriptureCompletion(ctx context.Context, assignmentID string, complete bool) error
	SubmitEssay(ctx context.Context, childID, cycleID string) error
}

// RegistrationService is the thin write surface the surrounding application
// (registration forms, season setup) uses to stand up competition data. The
// engine itself only reads these entities.
type RegistrationService interface {
	CreateCycle(ctx context.Context, name, primaryTranslation string, active bool) (string, error)
	AddDivision(ctx context.Context, cycleID, name string, minGrade, maxGrade int, requiredCount *int, essayPromptID *string) (string, error)
	AddGradeRule(ctx context.Context, cycleID string, minGrade, maxGrade, targetCount int) (string, error)
	AddScripture(ctx context.Context, cycleID, reference string, sortOrder, countsFor int, texts map[string]string) (string, error)
	AddEssayPrompt(ctx context.Context, cycleID, title, prompt string) (string, error)
	RegisterHousehold(ctx context.Context, name, preferredTranslation string) (string, error)
	RegisterChild(ctx context.Context, householdID, firstName, lastName, grade string) (string, error)
	Enroll(ctx context.Context, childID, cycleID string) (string, error)
}
