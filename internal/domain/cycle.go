package domain

import "time"

// Cycle is a bounded competition period (e.g. "2025-2026"). Divisions,
// scriptures, prompts, and assignments are all scoped to one cycle.
type Cycle struct {
	ID   string
	Name string

	// PrimaryTranslation is the default translation code for display text
	// when a household has no usable preference.
	PrimaryTranslation string

	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Division is a grade-range bracket within a cycle. RequiredCount nil means
// the division is an essay track with no scripture minimum.
type Division struct {
	ID       string
	CycleID  string
	Name     string
	MinGrade int
	MaxGrade int

	RequiredCount *int
	EssayPromptID *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ContainsGrade reports whether the numeric grade falls in [MinGrade, MaxGrade].
func (d *Division) ContainsGrade(grade int) bool {
	return grade >= d.MinGrade && grade <= d.MaxGrade
}

// IsEssayTrack reports whether the division carries an essay prompt with no
// scripture minimum.
func (d *Division) IsEssayTrack() bool {
	return d.RequiredCount == nil && d.EssayPromptID != nil
}

// GradeRule is the legacy per-grade requirement system that predates
// per-division required counts. Kept because historical cycles still carry
// rules instead of division minimums.
type GradeRule struct {
	ID          string
	CycleID     string
	MinGrade    int
	MaxGrade    int
	TargetCount int

	CreatedAt time.Time
}

func (r *GradeRule) ContainsGrade(grade int) bool {
	return grade >= r.MinGrade && grade <= r.MaxGrade
}

type EssayPrompt struct {
	ID      string
	CycleID string
	Title   string
	Prompt  string
	DueDate *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}
