package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"biblebee/internal/cli/formatter"
)

func newChildCmd(app *App) *cobra.Command {
	var cycleRef string

	cmd := &cobra.Command{
		Use:   "child <name or ID>",
		Short: "Show one child's assignments and progress",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cycle, err := app.Catalog.ResolveCycle(cmd.Context(), cycleRef)
			if err != nil {
				return err
			}
			childID, err := app.Catalog.ResolveChild(cmd.Context(), cycle.ID, args[0])
			if err != nil {
				return err
			}

			detail, err := app.Progress.GetProgressForChild(cmd.Context(), childID, cycle.ID)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatChildProgress(detail))
			return nil
		},
	}

	cmd.Flags().StringVar(&cycleRef, "cycle", "", "Cycle name or ID (default: active)")
	return cmd
}
