package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"biblebee/internal/app"
	"biblebee/internal/cli/formatter"
)

func newRosterCmd(cliApp *App) *cobra.Command {
	var division, csvPath string
	status := &bucketFlag{}
	sortKey := &sortKeyFlag{key: app.SortByName}

	cmd := &cobra.Command{
		Use:   "roster [cycle]",
		Short: "Show every enrolled child's progress for a cycle",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref := ""
			if len(args) > 0 {
				ref = args[0]
			}
			cycle, err := cliApp.Catalog.ResolveCycle(cmd.Context(), ref)
			if err != nil {
				return err
			}

			req := app.NewProgressRequest(cycle.ID)
			req.Division = division
			req.Status = status.bucket
			req.SortKey = sortKey.key

			resp, err := cliApp.Progress.GetProgressForCycle(cmd.Context(), req)
			if err != nil {
				return err
			}

			if csvPath != "" {
				if csvPath == "-" {
					return formatter.WriteRosterCSV(cmd.OutOrStdout(), resp)
				}
				f, err := os.Create(csvPath)
				if err != nil {
					return fmt.Errorf("creating %s: %w", csvPath, err)
				}
				defer f.Close()
				if err := formatter.WriteRosterCSV(f, resp); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d rows to %s\n", len(resp.Summaries), csvPath)
				return nil
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatRoster(resp))
			return nil
		},
	}

	cmd.Flags().StringVar(&division, "division", "", "Filter by division name")
	cmd.Flags().Var(status, "status", "Filter by status (not_started, in_progress, complete)")
	cmd.Flags().Var(sortKey, "sort", "Sort by name, division, or status")
	cmd.Flags().StringVar(&csvPath, "csv", "", "Export as CSV to a file, or - for stdout")
	return cmd
}
