package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"biblebee/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// BucketColor returns the style for a progress status bucket.
func BucketColor(bucket domain.ProgressBucket) lipgloss.Style {
	switch bucket {
	case domain.BucketComplete:
		return StyleGreen
	case domain.BucketInProgress:
		return StyleYellow
	case domain.BucketNotStarted:
		return StyleRed
	default:
		return StyleDim
	}
}

// BucketIndicator returns a colored status string such as "● COMPLETE".
func BucketIndicator(bucket domain.ProgressBucket) string {
	switch bucket {
	case domain.BucketComplete:
		return StyleGreen.Render("● COMPLETE")
	case domain.BucketInProgress:
		return StyleYellow.Render("● IN PROGRESS")
	case domain.BucketNotStarted:
		return StyleRed.Render("● NOT STARTED")
	default:
		return StyleDim.Render("● UNKNOWN")
	}
}

// EssayBadge renders an essay status badge, or an empty string when the
// child has no essay assignment.
func EssayBadge(status *domain.EssayStatus) string {
	if status == nil {
		return ""
	}
	if *status == domain.EssaySubmitted {
		return StyleGreen.Render("essay: submitted")
	}
	return StyleYellow.Render("essay: assigned")
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
