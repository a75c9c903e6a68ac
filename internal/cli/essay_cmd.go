package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newEssayCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "essay",
		Short: "Manage essay assignments",
	}
	cmd.AddCommand(newEssaySubmitCmd(app))
	return cmd
}

func newEssaySubmitCmd(app *App) *cobra.Command {
	var cycleRef string

	cmd := &cobra.Command{
		Use:   "submit <child>",
		Short: "Record a child's essay as submitted",
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
			if err := app.Completion.SubmitEssay(cmd.Context(), childID, cycle.ID); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Essay recorded as submitted.")
			return nil
		},
	}

	cmd.Flags().StringVar(&cycleRef, "cycle", "", "Cycle name or ID (default: active)")
	return cmd
}
