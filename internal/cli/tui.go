package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/friskycodeur/folio/internal/app"
	"github.com/spf13/cobra"
)

func runTUI(cmd *cobra.Command, a *App) error {
	logger, err := a.logger()
	if err != nil {
		return err
	}

	model := app.New(a.Config, app.WithLogger(logger))

	opts := []tea.ProgramOption{
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	}
	if a.Config.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if a.Config.UI.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}

	logger.Info("starting")
	final, err := tea.NewProgram(model, opts...).Run()
	if m, ok := final.(app.Model); ok {
		m.Teardown()
	}
	if err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	logger.Info("exited")
	return nil
}
