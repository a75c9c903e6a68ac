package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newMaterializeCmd(app *App) *cobra.Command {
	var cycleRef string

	cmd := &cobra.Command{
		Use:   "materialize <child>",
		Short: "Create any missing assignment records for a child",
		Long: "Resolve the child's division and create any missing scripture and\n" +
			"essay assignment records for the cycle. Progress views do this\n" +
			"automatically; the command exists for explicit runs after catalog\n" +
			"changes.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cycle, err := app.Catalog.ResolveCycle(cmd.Context(), cycleRef)
			if err != nil {
				return err
			}
			childID, err := app.Catalog.ResolveChild(cmd.Context(), cycle.ID, args[0])
			if err != nil {
				return err
			}

			result, err := app.Materializer.EnsureMaterialized(cmd.Context(), childID, cycle.ID)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %d scripture and %d essay assignments.\n",
				result.ScripturesCreated, result.EssaysCreated)
			return nil
		},
	}

	cmd.Flags().StringVar(&cycleRef, "cycle", "", "Cycle name or ID (default: active)")
	return cmd
}
