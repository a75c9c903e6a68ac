package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"biblebee/internal/domain"
	"biblebee/internal/repository"
)

type registrationService struct {
	households  repository.HouseholdRepo
	children    repository.ChildRepo
	cycles      repository.CycleRepo
	divisions   repository.DivisionRepo
	gradeRules  repository.GradeRuleRepo
	scriptures  repository.ScriptureRepo
	prompts     repository.EssayPromptRepo
	enrollments repository.EnrollmentRepo
}

// NewRegistrationService creates the season-setup and registration writer.
func NewRegistrationService(
	households repository.HouseholdRepo,
	children repository.ChildRepo,
	cycles repository.CycleRepo,
	divisions repository.DivisionRepo,
	gradeRules repository.GradeRuleRepo,
	scriptures repository.ScriptureRepo,
	prompts repository.EssayPromptRepo,
	enrollments repository.EnrollmentRepo,
) RegistrationService {
	return &registrationService{
		households:  households,
		children:    children,
		cycles:      cycles,
		divisions:   divisions,
		gradeRules:  gradeRules,
		scriptures:  scriptures,
		prompts:     prompts,
		enrollments: enrollments,
	}
}

func (s *registrationService) CreateCycle(ctx context.Context, name, primaryTranslation string, active bool) (string, error) {
	if name == "" {
		return "", errors.New("cycle name is required")
	}
	now := time.Now().UTC()
	c := &domain.Cycle{
		ID:                 uuid.NewString(),
		Name:               name,
		PrimaryTranslation: primaryTranslation,
		Active:             active,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := s.cycles.Create(ctx, c); err != nil {
		return "", fmt.Errorf("create cycle: %w", err)
	}
	return c.ID, nil
}

func (s *registrationService) AddDivision(ctx context.Context, cycleID, name string, minGrade, maxGrade int, requiredCount *int, essayPromptID *string) (string, error) {
	if name == "" {
		return "", errors.New("division name is required")
	}
	if minGrade > maxGrade {
		return "", fmt.Errorf("invalid grade range %d-%d", minGrade, maxGrade)
	}
	if _, err := s.cycles.GetByID(ctx, cycleID); err != nil {
		return "", fmt.Errorf("look up cycle: %w", err)
	}
	now := time.Now().UTC()
	d := &domain.Division{
		ID:            uuid.NewString(),
		CycleID:       cycleID,
		Name:          name,
		MinGrade:      minGrade,
		MaxGrade:      maxGrade,
		RequiredCount: requiredCount,
		EssayPromptID: essayPromptID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.divisions.Create(ctx, d); err != nil {
		return "", fmt.Errorf("create division: %w", err)
	}
	return d.ID, nil
}

func (s *registrationService) AddGradeRule(ctx context.Context, cycleID string, minGrade, maxGrade, targetCount int) (string, error) {
	if minGrade > maxGrade {
		return "", fmt.Errorf("invalid grade range %d-%d", minGrade, maxGrade)
	}
	if targetCount < 0 {
		return "", fmt.Errorf("invalid target count %d", targetCount)
	}
	if _, err := s.cycles.GetByID(ctx, cycleID); err != nil {
		return "", fmt.Errorf("look up cycle: %w", err)
	}
	r := &domain.GradeRule{
		ID:          uuid.NewString(),
		CycleID:     cycleID,
		MinGrade:    minGrade,
		MaxGrade:    maxGrade,
		TargetCount: targetCount,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.gradeRules.Create(ctx, r); err != nil {
		return "", fmt.Errorf("create grade rule: %w", err)
	}
	return r.ID, nil
}

func (s *registrationService) AddScripture(ctx context.Context, cycleID, reference string, sortOrder, countsFor int, texts map[string]string) (string, error) {
	if reference == "" {
		return "", errors.New("scripture reference is required")
	}
	if countsFor < 1 {
		countsFor = 1
	}
	if _, err := s.cycles.GetByID(ctx, cycleID); err != nil {
		return "", fmt.Errorf("look up cycle: %w", err)
	}
	now := time.Now().UTC()
	sc := &domain.Scripture{
		ID:        uuid.NewString(),
		CycleID:   cycleID,
		Reference: reference,
		SortOrder: sortOrder,
		CountsFor: countsFor,
		Texts:     texts,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.scriptures.Create(ctx, sc); err != nil {
		return "", fmt.Errorf("create scripture: %w", err)
	}
	return sc.ID, nil
}

func (s *registrationService) AddEssayPrompt(ctx context.Context, cycleID, title, prompt string) (string, error) {
	if title == "" {
		return "", errors.New("essay prompt title is required")
	}
	if _, err := s.cycles.GetByID(ctx, cycleID); err != nil {
		return "", fmt.Errorf("look up cycle: %w", err)
	}
	now := time.Now().UTC()
	p := &domain.EssayPrompt{
		ID:        uuid.NewString(),
		CycleID:   cycleID,
		Title:     title,
		Prompt:    prompt,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.prompts.Create(ctx, p); err != nil {
		return "", fmt.Errorf("create essay prompt: %w", err)
	}
	return p.ID, nil
}

func (s *registrationService) RegisterHousehold(ctx context.Context, name, preferredTranslation string) (string, error) {
	if name == "" {
		return "", errors.New("household name is required")
	}
	now := time.Now().UTC()
	h := &domain.Household{
		ID:                   uuid.NewString(),
		Name:                 name,
		PreferredTranslation: preferredTranslation,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	if err := s.households.Create(ctx, h); err != nil {
		return "", fmt.Errorf("create household: %w", err)
	}
	return h.ID, nil
}

func (s *registrationService) RegisterChild(ctx context.Context, householdID, firstName, lastName, grade string) (string, error) {
	if firstName == "" && lastName == "" {
		return "", errors.New("child name is required")
	}
	if _, err := domain.ParseGrade(grade); err != nil {
		return "", fmt.Errorf("parse grade: %w", err)
	}
	if _, err := s.households.GetByID(ctx, householdID); err != nil {
		return "", fmt.Errorf("look up household: %w", err)
	}
	now := time.Now().UTC()
	c := &domain.Child{
		ID:          uuid.NewString(),
		HouseholdID: householdID,
		FirstName:   firstName,
		LastName:    lastName,
		Grade:       grade,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.children.Create(ctx, c); err != nil {
		return "", fmt.Errorf("create child: %w", err)
	}
	return c.ID, nil
}

func (s *registrationService) Enroll(ctx context.Context, childID, cycleID string) (string, error) {
	if _, err := s.children.GetByID(ctx, childID); err != nil {
		return "", fmt.Errorf("look up child: %w", err)
	}
	if _, err := s.cycles.GetByID(ctx, cycleID); err != nil {
		return "", fmt.Errorf("look up cycle: %w", err)
	}
	existing, err := s.enrollments.GetByChildAndCycle(ctx, childID, cycleID)
	if err == nil {
		return existing.ID, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return "", fmt.Errorf("look up enrollment: %w", err)
	}
	now := time.Now().UTC()
	e := &domain.Enrollment{
		ID:        uuid.NewString(),
		ChildID:   childID,
		CycleID:   cycleID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.enrollments.Create(ctx, e); err != nil {
		return "", fmt.Errorf("create enrollment: %w", err)
	}
	return e.ID, nil
}
