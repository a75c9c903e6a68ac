package repository

import (
	"context"

	"biblebee/internal/domain"
)

// RosterCandidate is a joined view of an enrolled child with the household
// context the progress roster needs: display name, grade, and the
// household's preferred translation.
type RosterCandidate struct {
	Child                domain.Child
	HouseholdName        string
	PreferredTranslation string
	DivisionID           *string
}

type HouseholdRepo interface {
	Create(ctx context.Context, h *domain.Household) error
	GetByID(ctx context.Context, id string) (*domain.Household, error)
}

type ChildRepo interface {
	Create(ctx context.Context, c *domain.Child) error
	GetByID(ctx context.Context, id string) (*domain.Child, error)
	ListByHousehold(ctx context.Context, householdID string) ([]*domain.Child, error)
}

type CycleRepo interface {
	Create(ctx context.Context, c *domain.Cycle) error
	GetByID(ctx context.Context, id string) (*domain.Cycle, error)
	GetActive(ctx context.Context) (*domain.Cycle, error)
	List(ctx context.Context) ([]*domain.Cycle, error)
}

type DivisionRepo interface {
	Create(ctx context.Context, d *domain.Division) error
	GetByID(ctx context.Context, id string) (*domain.Division, error)
	ListByCycle(ctx context.Context, cycleID string) ([]*domain.Division, error)
}

type GradeRuleRepo interface {
	Create(ctx context.Context, r *domain.GradeRule) error
	ListByCycle(ctx context.Context, cycleID string) ([]*domain.GradeRule, error)
}

type ScriptureRepo interface {
	Create(ctx context.Context, s *domain.Scripture) error
	GetByID(ctx context.Context, id string) (*domain.Scripture, error)
	ListByCycle(ctx context.Context, cycleID string) ([]*domain.Scripture, error)
	CountByCycle(ctx context.Context, cycleID string) (int, error)
}

type EssayPromptRepo interface {
	Create(ctx context.Context, p *domain.EssayPrompt) error
	GetByID(ctx context.Context, id string) (*domain.EssayPrompt, error)
	ListByCycle(ctx context.Context, cycleID string) ([]*domain.EssayPrompt, error)
}

type EnrollmentRepo interface {
	Create(ctx context.Context, e *domain.Enrollment) error
	GetByChildAndCycle(ctx context.Context, childID, cycleID string) (*domain.Enrollment, error)
	ListByChild(ctx context.Context, childID string) ([]*domain.Enrollment, error)
	ListCandidatesByCycle(ctx context.Context, cycleID string) ([]RosterCandidate, error)
	SetDivision(ctx context.Context, enrollmentID string, divisionID *string) error
}

type ScriptureAssignmentRepo interface {
	// CreateIfAbsent inserts the assignment unless one already exists for
	// the (child, scripture) key. Reports whether a row was created.
	CreateIfAbsent(ctx context.Context, a *domain.ScriptureAssignment) (bool, error)
	GetByID(ctx context.Context, id string) (*domain.ScriptureAssignment, error)
	ListByChildAndCycle(ctx context.Context, childID, cycleID string) ([]*domain.ScriptureAssignment, error)
	Update(ctx context.Context, a *domain.ScriptureAssignment) error
}

type EssayAssignmentRepo interface {
	// CreateIfAbsent inserts the assignment unless one already exists for
	// the (child, essay-prompt) key. Reports whether a row was created.
	CreateIfAbsent(ctx context.Context, a *domain.EssayAssignment) (bool, error)
	GetByID(ctx context.Context, id string) (*domain.EssayAssignment, error)
	GetByChildAndCycle(ctx context.Context, childID, cycleID string) (*domain.EssayAssignment, error)
	Update(ctx context.Context, a *domain.EssayAssignment) error
}
