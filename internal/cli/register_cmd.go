package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRegisterCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register households, children, and enrollments",
	}

	cmd.AddCommand(
		newRegisterHouseholdCmd(app),
		newRegisterChildCmd(app),
		newRegisterEnrollCmd(app),
	)
	return cmd
}

func newRegisterHouseholdCmd(app *App) *cobra.Command {
	var name, translation string

	cmd := &cobra.Command{
		Use:   "household",
		Short: "Register a household",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := app.Registration.RegisterHousehold(cmd.Context(), name, translation)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Registered household %s [%s]\n", name, shortID(id))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Household name")
	cmd.Flags().StringVar(&translation, "translation", "", "Preferred translation code")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newRegisterChildCmd(app *App) *cobra.Command {
	var householdID, first, last, grade string

	cmd := &cobra.Command{
		Use:   "child",
		Short: "Register a child in a household",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := app.Registration.RegisterChild(cmd.Context(), householdID, first, last, grade)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Registered %s %s [%s]\n", first, last, shortID(id))
			return nil
		},
	}

	cmd.Flags().StringVar(&householdID, "household", "", "Household ID")
	cmd.Flags().StringVar(&first, "first", "", "First name")
	cmd.Flags().StringVar(&last, "last", "", "Last name")
	cmd.Flags().StringVar(&grade, "grade", "", "Grade (K-12)")
	_ = cmd.MarkFlagRequired("household")
	_ = cmd.MarkFlagRequired("first")
	_ = cmd.MarkFlagRequired("grade")
	return cmd
}

func newRegisterEnrollCmd(app *App) *cobra.Command {
	var childID, cycleRef string

	cmd := &cobra.Command{
		Use:   "enroll",
		Short: "Enroll a child in a cycle",
		RunE: func(cmd *cobra.Command, args []string) error {
			cycle, err := app.Catalog.ResolveCycle(cmd.Context(), cycleRef)
			if err != nil {
				return err
			}
			id, err := app.Registration.Enroll(cmd.Context(), childID, cycle.ID)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Enrolled [%s]\n", shortID(id))
			return nil
		},
	}

	cmd.Flags().StringVar(&childID, "child", "", "Child ID")
	cmd.Flags().StringVar(&cycleRef, "cycle", "", "Cycle name or ID (default: active)")
	_ = cmd.MarkFlagRequired("child")
	return cmd
}
