package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"biblebee/internal/cli/formatter"
	"biblebee/internal/domain"
)

func newCycleCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cycle",
		Short: "Manage competition cycles",
	}

	cmd.AddCommand(
		newCycleListCmd(app),
		newCycleShowCmd(app),
		newCycleCreateCmd(app),
		newCycleAddDivisionCmd(app),
		newCycleAddRuleCmd(app),
		newCycleAddScriptureCmd(app),
		newCycleAddPromptCmd(app),
	)

	return cmd
}

func newCycleListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all cycles",
		RunE: func(cmd *cobra.Command, args []string) error {
			cycles, err := app.Catalog.ListCycles(cmd.Context())
			if err != nil {
				return err
			}
			if len(cycles) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No cycles yet. Create one with: biblebee cycle create")
				return nil
			}

			rows := make([][]string, 0, len(cycles))
			for _, c := range cycles {
				active := ""
				if c.Active {
					active = formatter.StyleGreen.Render("active")
				}
				rows = append(rows, []string{shortID(c.ID), c.Name, c.PrimaryTranslation, active})
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderTable(
				[]string{"ID", "Name", "Translation", "Status"}, rows))
			return nil
		},
	}
}

func newCycleShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show [cycle]",
		Short: "Show a cycle's divisions and scripture catalog",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref := ""
			if len(args) > 0 {
				ref = args[0]
			}
			cycle, err := app.Catalog.ResolveCycle(cmd.Context(), ref)
			if err != nil {
				return err
			}
			overview, err := app.Catalog.GetCycleOverview(cmd.Context(), cycle.ID)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.Header(overview.Cycle.Name))
			fmt.Fprintf(out, "\n%s %s   %s %d   %s %d\n",
				formatter.Dim("Primary translation:"), overview.Cycle.PrimaryTranslation,
				formatter.Dim("Scriptures:"), overview.CatalogSize,
				formatter.Dim("Enrolled:"), overview.Enrolled)

			if len(overview.Divisions) == 0 {
				fmt.Fprintln(out, formatter.Dim("No divisions."))
				return nil
			}
			rows := make([][]string, 0, len(overview.Divisions))
			for _, d := range overview.Divisions {
				required := formatter.Dim("essay track")
				if d.RequiredCount != nil {
					required = strconv.Itoa(*d.RequiredCount)
				}
				rows = append(rows, []string{
					d.Name,
					fmt.Sprintf("%s-%s", domain.GradeLabel(d.MinGrade), domain.GradeLabel(d.MaxGrade)),
					required,
				})
			}
			fmt.Fprintln(out)
			fmt.Fprint(out, formatter.RenderTable([]string{"Division", "Grades", "Required"}, rows))
			return nil
		},
	}
}

func newCycleCreateCmd(app *App) *cobra.Command {
	var name, translation string
	var active bool

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new cycle",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := app.Registration.CreateCycle(cmd.Context(), name, translation, active)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created cycle %s [%s]\n", name, shortID(id))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Cycle name, e.g. 2025-2026")
	cmd.Flags().StringVar(&translation, "translation", "NIV", "Primary translation code")
	cmd.Flags().BoolVar(&active, "active", false, "Mark this cycle active")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newCycleAddDivisionCmd(app *App) *cobra.Command {
	var cycleRef, name, minGrade, maxGrade, promptID string
	var required int

	cmd := &cobra.Command{
		Use:   "add-division",
		Short: "Add a grade-range division to a cycle",
		RunE: func(cmd *cobra.Command, args []string) error {
			cycle, err := app.Catalog.ResolveCycle(cmd.Context(), cycleRef)
			if err != nil {
				return err
			}
			lo, err := domain.ParseGrade(minGrade)
			if err != nil {
				return err
			}
			hi, err := domain.ParseGrade(maxGrade)
			if err != nil {
				return err
			}

			var requiredCount *int
			if cmd.Flags().Changed("required") {
				requiredCount = &required
			}
			var prompt *string
			if promptID != "" {
				prompt = &promptID
			}
			id, err := app.Registration.AddDivision(cmd.Context(), cycle.ID, name, lo, hi, requiredCount, prompt)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added division %s [%s]\n", name, shortID(id))
			return nil
		},
	}

	cmd.Flags().StringVar(&cycleRef, "cycle", "", "Cycle name or ID (default: active)")
	cmd.Flags().StringVar(&name, "name", "", "Division name")
	cmd.Flags().StringVar(&minGrade, "min-grade", "", "Lowest grade (K-12)")
	cmd.Flags().StringVar(&maxGrade, "max-grade", "", "Highest grade (K-12)")
	cmd.Flags().IntVar(&required, "required", 0, "Required scripture count (omit for essay track)")
	cmd.Flags().StringVar(&promptID, "essay-prompt", "", "Essay prompt ID for essay-track divisions")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("min-grade")
	_ = cmd.MarkFlagRequired("max-grade")
	return cmd
}

func newCycleAddRuleCmd(app *App) *cobra.Command {
	var cycleRef, minGrade, maxGrade string
	var target int

	cmd := &cobra.Command{
		Use:   "add-rule",
		Short: "Add a legacy grade rule to a cycle",
		RunE: func(cmd *cobra.Command, args []string) error {
			cycle, err := app.Catalog.ResolveCycle(cmd.Context(), cycleRef)
			if err != nil {
				return err
			}
			lo, err := domain.ParseGrade(minGrade)
			if err != nil {
				return err
			}
			hi, err := domain.ParseGrade(maxGrade)
			if err != nil {
				return err
			}
			id, err := app.Registration.AddGradeRule(cmd.Context(), cycle.ID, lo, hi, target)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added grade rule [%s]\n", shortID(id))
			return nil
		},
	}

	cmd.Flags().StringVar(&cycleRef, "cycle", "", "Cycle name or ID (default: active)")
	cmd.Flags().StringVar(&minGrade, "min-grade", "", "Lowest grade (K-12)")
	cmd.Flags().StringVar(&maxGrade, "max-grade", "", "Highest grade (K-12)")
	cmd.Flags().IntVar(&target, "target", 0, "Target scripture count")
	_ = cmd.MarkFlagRequired("min-grade")
	_ = cmd.MarkFlagRequired("max-grade")
	_ = cmd.MarkFlagRequired("target")
	return cmd
}

func newCycleAddScriptureCmd(app *App) *cobra.Command {
	var cycleRef, reference string
	var order, countsFor int
	var texts []string

	cmd := &cobra.Command{
		Use:   "add-scripture",
		Short: "Add a scripture to a cycle's catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			cycle, err := app.Catalog.ResolveCycle(cmd.Context(), cycleRef)
			if err != nil {
				return err
			}
			textMap := make(map[string]string, len(texts))
			for _, entry := range texts {
				code, text, ok := strings.Cut(entry, "=")
				if !ok {
					return fmt.Errorf("invalid --text %q, expected CODE=text", entry)
				}
				textMap[strings.ToUpper(code)] = text
			}
			id, err := app.Registration.AddScripture(cmd.Context(), cycle.ID, reference, order, countsFor, textMap)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added scripture %s [%s]\n", reference, shortID(id))
			return nil
		},
	}

	cmd.Flags().StringVar(&cycleRef, "cycle", "", "Cycle name or ID (default: active)")
	cmd.Flags().StringVar(&reference, "ref", "", "Scripture reference, e.g. \"John 3:16\"")
	cmd.Flags().IntVar(&order, "order", 0, "Sort order within the catalog")
	cmd.Flags().IntVar(&countsFor, "counts-for", 1, "Units this entry counts for")
	cmd.Flags().StringArrayVar(&texts, "text", nil, "Translation text as CODE=text (repeatable)")
	_ = cmd.MarkFlagRequired("ref")
	return cmd
}

func newCycleAddPromptCmd(app *App) *cobra.Command {
	var cycleRef, title, prompt string

	cmd := &cobra.Command{
		Use:   "add-prompt",
		Short: "Add an essay prompt to a cycle",
		RunE: func(cmd *cobra.Command, args []string) error {
			cycle, err := app.Catalog.ResolveCycle(cmd.Context(), cycleRef)
			if err != nil {
				return err
			}
			id, err := app.Registration.AddEssayPrompt(cmd.Context(), cycle.ID, title, prompt)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added essay prompt %s [%s]\n", title, shortID(id))
			return nil
		},
	}

	cmd.Flags().StringVar(&cycleRef, "cycle", "", "Cycle name or ID (default: active)")
	cmd.Flags().StringVar(&title, "title", "", "Prompt title")
	cmd.Flags().StringVar(&prompt, "prompt", "", "Prompt text")
	_ = cmd.MarkFlagRequired("title")
	return cmd
}

// shortID truncates a UUID for display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
