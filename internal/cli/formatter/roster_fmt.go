package formatter

import (
	"fmt"
	"strings"

	"biblebee/internal/app"
)

// FormatRoster renders the multi-child roster view as a table with a
// progress bar per child.
func FormatRoster(resp *app.RosterResponse) string {
	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("Roster: %s", resp.CycleName)))
	b.WriteString("\n\n")

	if len(resp.Summaries) == 0 {
		b.WriteString(Dim("No enrolled children match.") + "\n")
		return b.String()
	}

	headers := []string{"Name", "Grade", "Division", "Progress", "Done/Req", "Bonus", "Essay", "Status"}
	rows := make([][]string, 0, len(resp.Summaries))
	for _, s := range resp.Summaries {
		division := s.DivisionName
		if division == "" {
			division = Dim("none")
		}
		essay := ""
		if s.EssayStatus != nil {
			essay = string(*s.EssayStatus)
		}
		bonus := ""
		if s.Bonus > 0 {
			bonus = StyleBlue.Render(fmt.Sprintf("+%d", s.Bonus))
		}
		rows = append(rows, []string{
			s.ChildName,
			s.Grade,
			division,
			RenderProgress(s.DisplayPercent(), 10),
			fmt.Sprintf("%d/%d", s.CompletedScriptures, s.RequiredScriptures),
			bonus,
			essay,
			BucketIndicator(s.Bucket),
		})
	}
	b.WriteString(RenderTable(headers, rows))

	for _, w := range resp.Warnings {
		b.WriteString(StyleYellow.Render("warning: "+w) + "\n")
	}
	return b.String()
}
