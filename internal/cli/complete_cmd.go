package cli

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"biblebee/internal/app"
	"biblebee/internal/cli/formatter"
	"biblebee/internal/service"
)

func newCompleteCmd(cliApp *App) *cobra.Command {
	var childRef, cycleRef string
	var undo bool

	cmd := &cobra.Command{
		Use:   "complete [assignment-id]",
		Short: "Mark a scripture assignment complete (or undo it)",
		Long: "Mark a scripture assignment complete. With an assignment ID the change\n" +
			"is applied directly; with --child and no ID an interactive picker is\n" +
			"shown over that child's assignments.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				if err := cliApp.Completion.SetScriptureCompletion(cmd.Context(), args[0], !undo); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), completionMessage(undo))
				return nil
			}

			if childRef == "" {
				return errors.New("pass an assignment ID or --child to pick interactively")
			}
			if !cliApp.interactive() {
				return errors.New("interactive picker needs a terminal; pass an assignment ID instead")
			}
			return runCompletePicker(cmd, cliApp, childRef, cycleRef, undo)
		},
	}

	cmd.Flags().StringVar(&childRef, "child", "", "Child name or ID for the interactive picker")
	cmd.Flags().StringVar(&cycleRef, "cycle", "", "Cycle name or ID (default: active)")
	cmd.Flags().BoolVar(&undo, "undo", false, "Clear the completion instead of setting it")
	return cmd
}

// runCompletePicker shows a huh picker over the child's assignments and
// applies the chosen completion through the optimistic summary cache, so the
// printed progress reflects the change without a second aggregation.
func runCompletePicker(cmd *cobra.Command, cliApp *App, childRef, cycleRef string, undo bool) error {
	ctx := cmd.Context()

	cycle, err := cliApp.Catalog.ResolveCycle(ctx, cycleRef)
	if err != nil {
		return err
	}
	childID, err := cliApp.Catalog.ResolveChild(ctx, cycle.ID, childRef)
	if err != nil {
		return err
	}
	detail, err := cliApp.Progress.GetProgressForChild(ctx, childID, cycle.ID)
	if err != nil {
		return err
	}

	var options []huh.Option[string]
	countsByID := make(map[string]int)
	for _, v := range detail.Assignments.Scriptures {
		if v.Assignment.Completed != undo {
			continue
		}
		label := v.Reference
		if v.CountsFor > 1 {
			label = fmt.Sprintf("%s (counts for %d)", v.Reference, v.CountsFor)
		}
		options = append(options, huh.NewOption(label, v.Assignment.ID))
		countsByID[v.Assignment.ID] = v.CountsFor
	}
	if len(options) == 0 {
		if undo {
			fmt.Fprintln(cmd.OutOrStdout(), "Nothing completed yet.")
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), "Everything is already complete.")
		}
		return nil
	}

	title := "Which scripture did " + detail.Summary.ChildName + " finish?"
	if undo {
		title = "Which completion should be cleared?"
	}
	var assignmentID string
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().Title(title).Options(options...).Value(&assignmentID),
	))
	if err := form.Run(); err != nil {
		return err
	}

	opt := service.NewOptimisticCompletion(cliApp.Completion, service.NewSummaryCache())
	opt.Cache().Prime([]app.ProgressSummary{detail.Summary})
	if err := opt.SetScriptureCompletion(ctx, childID, assignmentID, !undo, countsByID[assignmentID]); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, completionMessage(undo))
	if summary, ok := opt.Cache().Get(childID); ok {
		fmt.Fprintf(out, "%s %s  %d/%d\n",
			formatter.Dim("Progress:"),
			formatter.RenderProgress(summary.DisplayPercent(), 20),
			summary.CompletedScriptures, summary.RequiredScriptures)
	}
	return nil
}

func completionMessage(undo bool) string {
	if undo {
		return "Completion cleared."
	}
	return "Marked complete."
}
