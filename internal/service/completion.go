package service

import (
	"context"
	"fmt"
	"time"

	"biblebee/internal/db"
	"biblebee/internal/repository"
)

type completionService struct {
	uow      db.UnitOfWork
	observer UseCaseObserver
}

// NewCompletionService creates the completion tracker.
func NewCompletionService(uow db.UnitOfWork, observers ...UseCaseObserver) CompletionService {
	return &completionService{uow: uow, observer: useCaseObserverOrNoop(observers)}
}

func (s *completionService) SetScriptureCompletion(ctx context.Context, assignmentID string, complete bool) error {
	started := time.Now()
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		assignments := repository.NewSQLiteScriptureAssignmentRepo(tx)
		a, err := assignments.GetByID(ctx, assignmentID)
		if err != nil {
			return err
		}
		a.SetCompletion(complete, time.Now().UTC())
		return assignments.Update(ctx, a)
	})
	s.observe(ctx, "set_scripture_completion", started, err, map[string]any{
		"assignment_id": assignmentID,
		"complete":      complete,
	})
	if err != nil {
		return fmt.Errorf("setting scripture completion: %w", err)
	}
	return nil
}

func (s *completionService) SubmitEssay(ctx context.Context, childID, cycleID string) error {
	started := time.Now()
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		assignments := repository.NewSQLiteEssayAssignmentRepo(tx)
		a, err := assignments.GetByChildAndCycle(ctx, childID, cycleID)
		if err != nil {
			return err
		}
		if err := a.Submit(time.Now().UTC()); err != nil {
			return err
		}
		return assignments.Update(ctx, a)
	})
	s.observe(ctx, "submit_essay", started, err, map[string]any{
		"child_id": childID,
		"cycle_id": cycleID,
	})
	if err != nil {
		return fmt.Errorf("submitting essay: %w", err)
	}
	return nil
}

func (s *completionService) observe(ctx context.Context, name string, started time.Time, err error, fields map[string]any) {
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		Duration:  time.Since(started),
		Success:   err == nil,
		Err:       err,
		Fields:    fields,
		StartedAt: started,
	})
}
