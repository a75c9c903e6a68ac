package formatter

import (
	"fmt"
	"strings"

	"biblebee/internal/app"
	"biblebee/internal/domain"
)

// FormatChildProgress renders the single-child detail view: the summary,
// a progress bar, and the per-scripture checklist.
func FormatChildProgress(detail *app.ChildProgress) string {
	s := detail.Summary

	var b strings.Builder
	b.WriteString(Header(s.ChildName))
	b.WriteString("\n\n")

	division := s.DivisionName
	if division == "" {
		division = "none"
	}
	b.WriteString(fmt.Sprintf("%s %s   %s %s   %s\n",
		Dim("Grade:"), gradeDisplay(s.Grade),
		Dim("Division:"), division,
		BucketIndicator(s.Bucket)))
	b.WriteString(fmt.Sprintf("%s %s  %d/%d",
		Dim("Progress:"), RenderProgress(s.DisplayPercent(), 20),
		s.CompletedScriptures, s.RequiredScriptures))
	if s.Bonus > 0 {
		b.WriteString(StyleBlue.Render(fmt.Sprintf("  +%d bonus", s.Bonus)))
	}
	b.WriteString("\n")
	if badge := EssayBadge(s.EssayStatus); badge != "" {
		b.WriteString(badge + "\n")
	}

	if len(detail.Assignments.Scriptures) > 0 {
		b.WriteString("\n" + Header("Scriptures") + "\n\n")
		for _, v := range detail.Assignments.Scriptures {
			mark := StyleDim.Render("[ ]")
			if v.Assignment.Completed {
				mark = StyleGreen.Render("[x]")
			}
			line := fmt.Sprintf("%s %s", mark, Bold(v.Reference))
			if v.CountsFor > 1 {
				line += StyleBlue.Render(fmt.Sprintf(" (counts for %d)", v.CountsFor))
			}
			if v.DisplayText != "" {
				line += "\n    " + Dim(fmt.Sprintf("%s (%s)", truncate(v.DisplayText, 70), v.TranslationCode))
			}
			b.WriteString(line + "\n")
		}
	}

	for _, e := range detail.Assignments.Essays {
		b.WriteString("\n" + Header("Essay") + "\n\n")
		b.WriteString(Bold(e.PromptTitle) + "\n")
		if e.Prompt != "" {
			b.WriteString(Dim(e.Prompt) + "\n")
		}
		if e.Assignment.Status == domain.EssaySubmitted && e.Assignment.SubmittedAt != nil {
			b.WriteString(StyleGreen.Render("Submitted "+e.Assignment.SubmittedAt.Format("2006-01-02")) + "\n")
		} else {
			b.WriteString(StyleYellow.Render("Not yet submitted") + "\n")
		}
	}
	return b.String()
}

// gradeDisplay normalizes a grade code for display, keeping the raw code
// when it cannot be parsed.
func gradeDisplay(grade string) string {
	n, err := domain.ParseGrade(grade)
	if err != nil {
		return grade
	}
	return domain.GradeLabel(n)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
