package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"biblebee/internal/app"
	"biblebee/internal/db"
	"biblebee/internal/domain"
	"biblebee/internal/repository"
	"biblebee/internal/rules"
	"github.com/google/uuid"
)

type materializerService struct {
	enrollments          repository.EnrollmentRepo
	children             repository.ChildRepo
	households           repository.HouseholdRepo
	cycles               repository.CycleRepo
	divisions            repository.DivisionRepo
	scriptures           repository.ScriptureRepo
	prompts              repository.EssayPromptRepo
	scriptureAssignments repository.ScriptureAssignmentRepo
	essayAssignments     repository.EssayAssignmentRepo
	uow                  db.UnitOfWork
}

// NewMaterializerService creates the assignment materializer.
func NewMaterializerService(
	enrollments repository.EnrollmentRepo,
	children repository.ChildRepo,
	households repository.HouseholdRepo,
	cycles repository.CycleRepo,
	divisions repository.DivisionRepo,
	scriptures repository.ScriptureRepo,
	prompts repository.EssayPromptRepo,
	scriptureAssignments repository.ScriptureAssignmentRepo,
	essayAssignments repository.EssayAssignmentRepo,
	uow db.UnitOfWork,
) MaterializerService {
	return &materializerService{
		enrollments:          enrollments,
		children:             children,
		households:           households,
		cycles:               cycles,
		divisions:            divisions,
		scriptures:           scriptures,
		prompts:              prompts,
		scriptureAssignments: scriptureAssignments,
		essayAssignments:     essayAssignments,
		uow:                  uow,
	}
}

// EnsureMaterialized creates any missing assignment rows for the child in the
// cycle. The whole batch runs in one transaction: a failure on any row rolls
// everything back, so partial materialization is never left behind. A child
// with no enrollment gets an empty result and no rows.
func (m *materializerService) EnsureMaterialized(ctx context.Context, childID, cycleID string) (*app.MaterializeResult, error) {
	enrollment, err := m.enrollments.GetByChildAndCycle(ctx, childID, cycleID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return &app.MaterializeResult{}, nil
		}
		return nil, fmt.Errorf("loading enrollment: %w", err)
	}

	child, err := m.children.GetByID(ctx, childID)
	if err != nil {
		return nil, fmt.Errorf("loading child: %w", err)
	}

	divisions, err := m.divisions.ListByCycle(ctx, cycleID)
	if err != nil {
		return nil, fmt.Errorf("loading divisions: %w", err)
	}
	division := rules.ResolveDivision(child.GradeNumber(), divisions)

	scriptures, err := m.scriptures.ListByCycle(ctx, cycleID)
	if err != nil {
		return nil, fmt.Errorf("loading scripture catalog: %w", err)
	}

	result := &app.MaterializeResult{}
	now := time.Now().UTC()

	err = m.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txScriptureAssignments := repository.NewSQLiteScriptureAssignmentRepo(tx)
		txEssayAssignments := repository.NewSQLiteEssayAssignmentRepo(tx)
		txEnrollments := repository.NewSQLiteEnrollmentRepo(tx)

		if division != nil {
			if enrollment.DivisionID == nil || *enrollment.DivisionID != division.ID {
				if err := txEnrollments.SetDivision(ctx, enrollment.ID, &division.ID); err != nil {
					return err
				}
			}
			result.DivisionID = &division.ID
		}

		for _, s := range scriptures {
			created, err := txScriptureAssignments.CreateIfAbsent(ctx, &domain.ScriptureAssignment{
				ID:          uuid.New().String(),
				ChildID:     childID,
				ScriptureID: s.ID,
				CycleID:     cycleID,
				CreatedAt:   now,
				UpdatedAt:   now,
			})
			if err != nil {
				return err
			}
			if created {
				result.ScripturesCreated++
			}
		}

		if division != nil && division.EssayPromptID != nil {
			created, err := txEssayAssignments.CreateIfAbsent(ctx, &domain.EssayAssignment{
				ID:            uuid.New().String(),
				ChildID:       childID,
				EssayPromptID: *division.EssayPromptID,
				CycleID:       cycleID,
				Status:        domain.EssayAssigned,
				CreatedAt:     now,
				UpdatedAt:     now,
			})
			if err != nil {
				return err
			}
			if created {
				result.EssaysCreated++
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("materializing assignments: %w", err)
	}
	return result, nil
}

// ReadAssignments is the pure read phase: it joins existing assignment rows
// with catalog display data and never creates anything.
func (m *materializerService) ReadAssignments(ctx context.Context, childID, cycleID string) (*app.AssignmentSet, error) {
	set := &app.AssignmentSet{}

	if _, err := m.enrollments.GetByChildAndCycle(ctx, childID, cycleID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return set, nil
		}
		return nil, fmt.Errorf("loading enrollment: %w", err)
	}

	preferred, primary, err := m.translationContext(ctx, childID, cycleID)
	if err != nil {
		return nil, err
	}

	scriptures, err := m.scriptures.ListByCycle(ctx, cycleID)
	if err != nil {
		return nil, fmt.Errorf("loading scripture catalog: %w", err)
	}
	byID := make(map[string]*domain.Scripture, len(scriptures))
	for _, s := range scriptures {
		byID[s.ID] = s
	}

	assignments, err := m.scriptureAssignments.ListByChildAndCycle(ctx, childID, cycleID)
	if err != nil {
		return nil, fmt.Errorf("loading scripture assignments: %w", err)
	}
	for _, a := range assignments {
		view := app.ScriptureAssignmentView{Assignment: *a, CountsFor: 1}
		if s, ok := byID[a.ScriptureID]; ok {
			view.Reference = s.Reference
			view.CountsFor = s.CountsFor
			view.DisplayText, view.TranslationCode = rules.ResolveDisplayText(s, preferred, primary)
		}
		set.Scriptures = append(set.Scriptures, view)
	}

	essay, err := m.essayAssignments.GetByChildAndCycle(ctx, childID, cycleID)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("loading essay assignment: %w", err)
		}
		return set, nil
	}
	view := app.EssayAssignmentView{Assignment: *essay}
	if prompt, err := m.prompts.GetByID(ctx, essay.EssayPromptID); err == nil {
		view.PromptTitle = prompt.Title
		view.Prompt = prompt.Prompt
		view.DueDate = prompt.DueDate
	}
	set.Essays = append(set.Essays, view)
	return set, nil
}

// translationContext resolves the household preference and cycle primary
// translation codes for display-text resolution.
func (m *materializerService) translationContext(ctx context.Context, childID, cycleID string) (preferred, primary string, err error) {
	child, err := m.children.GetByID(ctx, childID)
	if err != nil {
		return "", "", fmt.Errorf("loading child: %w", err)
	}
	household, err := m.households.GetByID(ctx, child.HouseholdID)
	if err != nil {
		return "", "", fmt.Errorf("loading household: %w", err)
	}
	cycle, err := m.cycles.GetByID(ctx, cycleID)
	if err != nil {
		return "", "", fmt.Errorf("loading cycle: %w", err)
	}
	return household.PreferredTranslation, cycle.PrimaryTranslation, nil
}
