package testutil

import (
	"time"

	"biblebee/internal/domain"
	"github.com/google/uuid"
)

// Household options

type HouseholdOption func(*domain.Household)

func WithPreferredTranslation(code string) HouseholdOption {
	return func(h *domain.Household) {
		h.PreferredTranslation = code
	}
}

func NewTestHousehold(name string, opts ...HouseholdOption) *domain.Household {
	now := time.Now().UTC()
	h := &domain.Household{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Child options

type ChildOption func(*domain.Child)

func WithGrade(grade string) ChildOption {
	return func(c *domain.Child) {
		c.Grade = grade
	}
}

func WithLastName(name string) ChildOption {
	return func(c *domain.Child) {
		c.LastName = name
	}
}

func NewTestChild(householdID, firstName string, opts ...ChildOption) *domain.Child {
	now := time.Now().UTC()
	c := &domain.Child{
		ID:          uuid.New().String(),
		HouseholdID: householdID,
		FirstName:   firstName,
		LastName:    "Tester",
		Grade:       "4",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Cycle options

type CycleOption func(*domain.Cycle)

func WithActive() CycleOption {
	return func(c *domain.Cycle) {
		c.Active = true
	}
}

func WithPrimaryTranslation(code string) CycleOption {
	return func(c *domain.Cycle) {
		c.PrimaryTranslation = code
	}
}

func NewTestCycle(name string, opts ...CycleOption) *domain.Cycle {
	now := time.Now().UTC()
	c := &domain.Cycle{
		ID:                 uuid.New().String(),
		Name:               name,
		PrimaryTranslation: "NIV",
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Division options

type DivisionOption func(*domain.Division)

func WithRequiredCount(n int) DivisionOption {
	return func(d *domain.Division) {
		d.RequiredCount = &n
	}
}

func WithEssayPrompt(promptID string) DivisionOption {
	return func(d *domain.Division) {
		d.EssayPromptID = &promptID
	}
}

func NewTestDivision(cycleID, name string, minGrade, maxGrade int, opts ...DivisionOption) *domain.Division {
	now := time.Now().UTC()
	d := &domain.Division{
		ID:        uuid.New().String(),
		CycleID:   cycleID,
		Name:      name,
		MinGrade:  minGrade,
		MaxGrade:  maxGrade,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func NewTestGradeRule(cycleID string, minGrade, maxGrade, target int) *domain.GradeRule {
	return &domain.GradeRule{
		ID:          uuid.New().String(),
		CycleID:     cycleID,
		MinGrade:    minGrade,
		MaxGrade:    maxGrade,
		TargetCount: target,
		CreatedAt:   time.Now().UTC(),
	}
}

// Scripture options

type ScriptureOption func(*domain.Scripture)

func WithCountsFor(n int) ScriptureOption {
	return func(s *domain.Scripture) {
		s.CountsFor = n
	}
}

func WithSortOrder(n int) ScriptureOption {
	return func(s *domain.Scripture) {
		s.SortOrder = n
	}
}

func WithTexts(texts map[string]string) ScriptureOption {
	return func(s *domain.Scripture) {
		s.Texts = texts
	}
}

func NewTestScripture(cycleID, reference string, opts ...ScriptureOption) *domain.Scripture {
	now := time.Now().UTC()
	s := &domain.Scripture{
		ID:        uuid.New().String(),
		CycleID:   cycleID,
		Reference: reference,
		CountsFor: 1,
		Texts:     map[string]string{"NIV": reference + " text"},
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func NewTestEssayPrompt(cycleID, title string) *domain.EssayPrompt {
	now := time.Now().UTC()
	return &domain.EssayPrompt{
		ID:        uuid.New().String(),
		CycleID:   cycleID,
		Title:     title,
		Prompt:    "Write about " + title,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func NewTestEnrollment(childID, cycleID string) *domain.Enrollment {
	now := time.Now().UTC()
	return &domain.Enrollment{
		ID:        uuid.New().String(),
		ChildID:   childID,
		CycleID:   cycleID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
