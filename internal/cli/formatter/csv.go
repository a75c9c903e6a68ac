package formatter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"biblebee/internal/app"
)

// WriteRosterCSV exports roster summaries as CSV, one row per child. The
// export is a pure transform over the already-computed summaries.
func WriteRosterCSV(w io.Writer, resp *app.RosterResponse) error {
	cw := csv.NewWriter(w)
	header := []string{
		"child_id", "child_name", "grade", "division",
		"completed", "required", "total", "bonus", "percent",
		"essay_status", "status",
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}

	for _, s := range resp.Summaries {
		essay := ""
		if s.EssayStatus != nil {
			essay = string(*s.EssayStatus)
		}
		row := []string{
			s.ChildID,
			s.ChildName,
			s.Grade,
			s.DivisionName,
			strconv.Itoa(s.CompletedScriptures),
			strconv.Itoa(s.RequiredScriptures),
			strconv.Itoa(s.TotalScriptures),
			strconv.Itoa(s.Bonus),
			strconv.FormatFloat(s.DisplayPercent(), 'f', 1, 64),
			essay,
			string(s.Bucket),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
