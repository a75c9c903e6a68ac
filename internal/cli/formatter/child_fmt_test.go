package formatter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"biblebee/internal/app"
	"biblebee/internal/domain"
)

func TestFormatChildProgress(t *testing.T) {
	detail := &app.ChildProgress{
		Summary: app.ProgressSummary{
			ChildID:             "child-1",
			ChildName:           "Abby Smith",
			Grade:               "K",
			DivisionName:        "Primary",
			Bucket:              domain.BucketInProgress,
			RequiredScriptures:  8,
			CompletedScriptures: 3,
			Percent:             37.5,
		},
		Assignments: app.AssignmentSet{
			Scriptures: []app.ScriptureAssignmentView{
				{
					Assignment:      domain.ScriptureAssignment{ID: "a1", Completed: true},
					Reference:       "John 3:16",
					DisplayText:     "For God so loved the world",
					TranslationCode: "NIV",
				},
				{
					Assignment: domain.ScriptureAssignment{ID: "a2"},
					Reference:  "Psalm 23:1",
					CountsFor:  2,
				},
			},
		},
	}

	out := FormatChildProgress(detail)
	assert.Contains(t, out, "ABBY SMITH")
	assert.Contains(t, out, "K")
	assert.Contains(t, out, "John 3:16")
	assert.Contains(t, out, "[x]")
	assert.Contains(t, out, "[ ]")
	assert.Contains(t, out, "counts for 2")
	assert.Contains(t, out, "3/8")
}

func TestFormatChildProgress_Essay(t *testing.T) {
	submittedAt := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	status := domain.EssaySubmitted
	detail := &app.ChildProgress{
		Summary: app.ProgressSummary{
			ChildName:   "Ben Jones",
			Grade:       "10",
			EssayStatus: &status,
			Bucket:      domain.BucketComplete,
		},
		Assignments: app.AssignmentSet{
			Essays: []app.EssayAssignmentView{
				{
					Assignment: domain.EssayAssignment{
						Status:      domain.EssaySubmitted,
						SubmittedAt: &submittedAt,
					},
					PromptTitle: "Faithfulness",
					Prompt:      "Write about faithfulness.",
				},
			},
		},
	}

	out := FormatChildProgress(detail)
	assert.Contains(t, out, "Faithfulness")
	assert.Contains(t, out, "Submitted 2026-02-01")
	assert.Contains(t, out, "essay: submitted")
}

func TestBucketIndicator(t *testing.T) {
	assert.Contains(t, BucketIndicator(domain.BucketComplete), "COMPLETE")
	assert.Contains(t, BucketIndicator(domain.BucketInProgress), "IN PROGRESS")
	assert.Contains(t, BucketIndicator(domain.BucketNotStarted), "NOT STARTED")
}

func TestRenderProgress(t *testing.T) {
	tests := []struct {
		name string
		pct  float64
	}{
		{"zero", 0},
		{"half", 50},
		{"full", 100},
		{"overshoot", 250},
		{"negative clamps", -10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RenderProgress(tt.pct, 10)
			assert.Contains(t, got, "[")
			assert.Contains(t, got, "%")
		})
	}

	// Overshoot keeps the label but fills the bar completely.
	over := RenderProgress(250, 4)
	assert.Contains(t, over, "250%")
	assert.NotContains(t, over, emptyBlock)
}
