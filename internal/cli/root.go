package cli

import (
	"github.com/spf13/cobra"

	"biblebee/internal/service"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Catalog      service.CatalogService
	Progress     service.ProgressService
	Materializer service.MaterializerService
	Completion   service.CompletionService
	Registration service.RegistrationService

	// IsInteractive reports whether stdin is a terminal; interactive
	// pickers are only offered when it returns true.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "biblebee" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "biblebee",
		Short:         "Bible Bee assignment and progress tracker",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newCycleCmd(app),
		newRosterCmd(app),
		newChildCmd(app),
		newCompleteCmd(app),
		newEssayCmd(app),
		newMaterializeCmd(app),
		newRegisterCmd(app),
	)

	return root
}
