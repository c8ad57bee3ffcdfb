// Package cli wires the command line: the root command runs the TUI and
// the subcommands print the same content without a terminal program.
package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/friskycodeur/folio/internal/config"
	"github.com/friskycodeur/folio/internal/content"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

// App holds the state shared by every command
type App struct {
	EnvFile     string
	NoAnimation bool
	NoMouse     bool
	NoColor     bool
	LogFile     string
	LogLevel    string

	Config *config.Config

	logClose io.Closer
}

// NewRootCmd builds the folio command tree
func NewRootCmd() *cobra.Command {
	app := &App{}
	meta := content.Metadata()

	cmd := &cobra.Command{
		Use:          "folio",
		Short:        meta.Title,
		Long:         meta.Description,
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Browse the profile
  folio

  # Print the page without the interactive program
  folio render --width 100

  # Show the details of the second project
  folio show projects 2
`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, app)
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return app.load(cmd)
	}
	cmd.PersistentPostRunE = func(cmd *cobra.Command, args []string) error {
		return app.close()
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&app.EnvFile, "env-file", config.DefaultEnvFile, "Dotenv file read before the environment")
	flags.BoolVar(&app.NoAnimation, "no-animation", false, "Show and hide the detail panel without animating")
	flags.BoolVar(&app.NoMouse, "no-mouse", false, "Disable mouse input")
	flags.BoolVar(&app.NoColor, "no-color", false, "Render without colour")
	flags.StringVar(&app.LogFile, "log-file", "", "Append logs to this file (default: discard)")
	flags.StringVar(&app.LogLevel, "log-level", "", "Log level (debug|info|warn|error)")

	cmd.AddCommand(newValidateCmd(app))
	cmd.AddCommand(newRenderCmd(app))
	cmd.AddCommand(newShowCmd(app))
	cmd.AddCommand(newVersionCmd(app))

	return cmd
}

// load reads the configuration and applies command-line overrides
func (a *App) load(cmd *cobra.Command) error {
	cfg, err := config.Load(a.EnvFile)
	if err != nil {
		return err
	}

	if a.NoAnimation {
		cfg.UI.Animate = false
	}
	if a.NoMouse {
		cfg.UI.Mouse = false
	}
	if cmd.Flags().Changed("log-file") {
		cfg.Log.File = a.LogFile
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = a.LogLevel
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if a.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	a.Config = cfg
	return nil
}

func (a *App) close() error {
	if a.logClose == nil {
		return nil
	}
	err := a.logClose.Close()
	a.logClose = nil
	return err
}
