package service

import (
	"context"
	"fmt"
	"time"

	"biblebee/internal/app"
	"biblebee/internal/repository"
	"biblebee/internal/rules"
)

type progressService struct {
	materializer MaterializerService
	enrollments  repository.EnrollmentRepo
	children     repository.ChildRepo
	cycles       repository.CycleRepo
	divisions    repository.DivisionRepo
	gradeRules   repository.GradeRuleRepo
	scriptures   repository.ScriptureRepo
	observer     UseCaseObserver
}

// NewProgressService creates the progress aggregator.
func NewProgressService(
	materializer MaterializerService,
	enrollments repository.EnrollmentRepo,
	children repository.ChildRepo,
	cycles repository.CycleRepo,
	divisions repository.DivisionRepo,
	gradeRules repository.GradeRuleRepo,
	scriptures repository.ScriptureRepo,
	observers ...UseCaseObserver,
) ProgressService {
	return &progressService{
		materializer: materializer,
		enrollments:  enrollments,
		children:     children,
		cycles:       cycles,
		divisions:    divisions,
		gradeRules:   gradeRules,
		scriptures:   scriptures,
		observer:     useCaseObserverOrNoop(observers),
	}
}

// GetProgressForCycle computes the roster view. Each child is ensured
// materialized, then read and summarized; filters and sorting are applied
// afterwards as pure transforms over the summaries, never as re-fetches.
func (s *progressService) GetProgressForCycle(ctx context.Context, req app.ProgressRequest) (*app.RosterResponse, error) {
	started := time.Now()
	resp, err := s.getProgressForCycle(ctx, req)
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      "get_progress_for_cycle",
		Duration:  time.Since(started),
		Success:   err == nil,
		Err:       err,
		Fields:    map[string]any{"cycle_id": req.CycleID},
		StartedAt: started,
	})
	return resp, err
}

func (s *progressService) getProgressForCycle(ctx context.Context, req app.ProgressRequest) (*app.RosterResponse, error) {
	cycle, err := s.cycles.GetByID(ctx, req.CycleID)
	if err != nil {
		return nil, fmt.Errorf("loading cycle: %w", err)
	}

	candidates, err := s.enrollments.ListCandidatesByCycle(ctx, req.CycleID)
	if err != nil {
		return nil, fmt.Errorf("loading roster candidates: %w", err)
	}
	candidates = scopeCandidates(candidates, req.ChildIDs)

	divisions, err := s.divisions.ListByCycle(ctx, req.CycleID)
	if err != nil {
		return nil, fmt.Errorf("loading divisions: %w", err)
	}
	gradeRules, err := s.gradeRules.ListByCycle(ctx, req.CycleID)
	if err != nil {
		return nil, fmt.Errorf("loading grade rules: %w", err)
	}
	catalogSize, err := s.scriptures.CountByCycle(ctx, req.CycleID)
	if err != nil {
		return nil, fmt.Errorf("counting scripture catalog: %w", err)
	}

	resp := &app.RosterResponse{
		GeneratedAt: time.Now().UTC(),
		CycleID:     cycle.ID,
		CycleName:   cycle.Name,
	}

	for _, cand := range candidates {
		if _, err := s.materializer.EnsureMaterialized(ctx, cand.Child.ID, req.CycleID); err != nil {
			return nil, fmt.Errorf("materializing child %s: %w", cand.Child.ID, err)
		}
		set, err := s.materializer.ReadAssignments(ctx, cand.Child.ID, req.CycleID)
		if err != nil {
			return nil, fmt.Errorf("reading assignments for child %s: %w", cand.Child.ID, err)
		}

		division := rules.ResolveDivision(cand.Child.GradeNumber(), divisions)
		if division == nil && cand.DivisionID != nil {
			// Stale division reference on the enrollment; degrade to the
			// grade-based resolution and keep the roster usable.
			resp.Warnings = append(resp.Warnings,
				fmt.Sprintf("child %s: enrolled division %s no longer matches grade", cand.Child.ID, *cand.DivisionID))
		}

		child := cand.Child
		resp.Summaries = append(resp.Summaries,
			buildSummary(&child, child.Name(), division, gradeRules, catalogSize, set))
	}

	resp.Summaries = rules.FilterRoster(resp.Summaries, req.Division, req.Status)
	rules.SortRoster(resp.Summaries, req.SortKey)
	return resp, nil
}

// GetProgressForChild computes the single-child detail view.
func (s *progressService) GetProgressForChild(ctx context.Context, childID, cycleID string) (*app.ChildProgress, error) {
	started := time.Now()
	detail, err := s.getProgressForChild(ctx, childID, cycleID)
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      "get_progress_for_child",
		Duration:  time.Since(started),
		Success:   err == nil,
		Err:       err,
		Fields:    map[string]any{"child_id": childID, "cycle_id": cycleID},
		StartedAt: started,
	})
	return detail, err
}

func (s *progressService) getProgressForChild(ctx context.Context, childID, cycleID string) (*app.ChildProgress, error) {
	child, err := s.children.GetByID(ctx, childID)
	if err != nil {
		return nil, fmt.Errorf("loading child: %w", err)
	}

	if _, err := s.materializer.EnsureMaterialized(ctx, childID, cycleID); err != nil {
		return nil, err
	}
	set, err := s.materializer.ReadAssignments(ctx, childID, cycleID)
	if err != nil {
		return nil, err
	}

	divisions, err := s.divisions.ListByCycle(ctx, cycleID)
	if err != nil {
		return nil, fmt.Errorf("loading divisions: %w", err)
	}
	gradeRules, err := s.gradeRules.ListByCycle(ctx, cycleID)
	if err != nil {
		return nil, fmt.Errorf("loading grade rules: %w", err)
	}
	catalogSize, err := s.scriptures.CountByCycle(ctx, cycleID)
	if err != nil {
		return nil, fmt.Errorf("counting scripture catalog: %w", err)
	}

	division := rules.ResolveDivision(child.GradeNumber(), divisions)
	summary := buildSummary(child, child.Name(), division, gradeRules, catalogSize, set)

	return &app.ChildProgress{Summary: summary, Assignments: *set}, nil
}

// scopeCandidates keeps only candidates whose child ID is in scope. Empty
// scope keeps everyone.
func scopeCandidates(candidates []repository.RosterCandidate, scope []string) []repository.RosterCandidate {
	if len(scope) == 0 {
		return candidates
	}
	scopeSet := make(map[string]bool, len(scope))
	for _, id := range scope {
		scopeSet[id] = true
	}
	var filtered []repository.RosterCandidate
	for _, c := range candidates {
		if scopeSet[c.Child.ID] {
			filtered = append(filtered, c)
		}
	}
	return filtered
}
