package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"biblebee/internal/domain"
	"biblebee/internal/repository"
)

// CycleOverview is the cycle detail view: divisions and catalog size.
type CycleOverview struct {
	Cycle       domain.Cycle
	Divisions   []*domain.Division
	CatalogSize int
	Enrolled    int
}

// CatalogService provides the read-only cycle lookups the CLI needs:
// listing cycles, showing one, and resolving loose user references (name,
// ID, ID prefix, or "active") to concrete IDs.
type CatalogService interface {
	ListCycles(ctx context.Context) ([]*domain.Cycle, error)
	GetCycleOverview(ctx context.Context, cycleID string) (*CycleOverview, error)
	ResolveCycle(ctx context.Context, ref string) (*domain.Cycle, error)
	ResolveChild(ctx context.Context, cycleID, ref string) (string, error)
}

type catalogService struct {
	cycles      repository.CycleRepo
	divisions   repository.DivisionRepo
	scriptures  repository.ScriptureRepo
	enrollments repository.EnrollmentRepo
}

// NewCatalogService creates the cycle lookup service.
func NewCatalogService(
	cycles repository.CycleRepo,
	divisions repository.DivisionRepo,
	scriptures repository.ScriptureRepo,
	enrollments repository.EnrollmentRepo,
) CatalogService {
	return &catalogService{
		cycles:      cycles,
		divisions:   divisions,
		scriptures:  scriptures,
		enrollments: enrollments,
	}
}

func (s *catalogService) ListCycles(ctx context.Context) ([]*domain.Cycle, error) {
	return s.cycles.List(ctx)
}

func (s *catalogService) GetCycleOverview(ctx context.Context, cycleID string) (*CycleOverview, error) {
	cycle, err := s.cycles.GetByID(ctx, cycleID)
	if err != nil {
		return nil, fmt.Errorf("loading cycle: %w", err)
	}
	divisions, err := s.divisions.ListByCycle(ctx, cycleID)
	if err != nil {
		return nil, fmt.Errorf("loading divisions: %w", err)
	}
	size, err := s.scriptures.CountByCycle(ctx, cycleID)
	if err != nil {
		return nil, fmt.Errorf("counting scripture catalog: %w", err)
	}
	candidates, err := s.enrollments.ListCandidatesByCycle(ctx, cycleID)
	if err != nil {
		return nil, fmt.Errorf("loading enrollments: %w", err)
	}
	return &CycleOverview{
		Cycle:       *cycle,
		Divisions:   divisions,
		CatalogSize: size,
		Enrolled:    len(candidates),
	}, nil
}

// ResolveCycle turns a loose cycle reference into the cycle. An empty ref or
// "active" resolves to the active cycle; otherwise exact name match wins,
// then exact ID, then unambiguous ID prefix.
func (s *catalogService) ResolveCycle(ctx context.Context, ref string) (*domain.Cycle, error) {
	if ref == "" || strings.EqualFold(ref, "active") {
		cycle, err := s.cycles.GetActive(ctx)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, errors.New("no active cycle; pass a cycle name or ID")
			}
			return nil, err
		}
		return cycle, nil
	}

	cycles, err := s.cycles.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, c := range cycles {
		if strings.EqualFold(c.Name, ref) {
			return c, nil
		}
	}
	for _, c := range cycles {
		if c.ID == ref {
			return c, nil
		}
	}
	var matches []*domain.Cycle
	for _, c := range cycles {
		if strings.HasPrefix(c.ID, ref) {
			matches = append(matches, c)
		}
	}
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("cycle not found: %q", ref)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("cycle reference %q is ambiguous (%d matches)", ref, len(matches))
	}
}

// ResolveChild turns a loose child reference into a child ID within a cycle:
// exact name match first, then exact ID, then unambiguous ID prefix.
func (s *catalogService) ResolveChild(ctx context.Context, cycleID, ref string) (string, error) {
	if ref == "" {
		return "", errors.New("child reference is required")
	}
	candidates, err := s.enrollments.ListCandidatesByCycle(ctx, cycleID)
	if err != nil {
		return "", err
	}
	for _, c := range candidates {
		if strings.EqualFold(c.Child.Name(), ref) || strings.EqualFold(c.Child.FirstName, ref) {
			return c.Child.ID, nil
		}
	}
	for _, c := range candidates {
		if c.Child.ID == ref {
			return c.Child.ID, nil
		}
	}
	var matches []string
	for _, c := range candidates {
		if strings.HasPrefix(c.Child.ID, ref) {
			matches = append(matches, c.Child.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("no enrolled child matches %q", ref)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("child reference %q is ambiguous (%d matches)", ref, len(matches))
	}
}
