package cli

import (
	"fmt"
	"strconv"

	"github.com/friskycodeur/folio/internal/app"
	"github.com/friskycodeur/folio/internal/content"
	"github.com/friskycodeur/folio/internal/ui/overlay"
	"github.com/friskycodeur/folio/internal/ui/styles"
	"github.com/spf13/cobra"
)

const defaultWidth = 100

func newRenderCmd(a *App) *cobra.Command {
	var width int
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print the page to stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if width <= 0 {
				return fmt.Errorf("width must be positive, got %d", width)
			}
			fmt.Fprintln(cmd.OutOrStdout(), app.Render(a.Config, width))
			return nil
		},
	}
	cmd.Flags().IntVar(&width, "width", defaultWidth, "Columns to lay the page out in")
	return cmd
}

func newShowCmd(a *App) *cobra.Command {
	var width int
	cmd := &cobra.Command{
		Use:   "show <experience|projects> <n>",
		Short: "Print the details panel for one item (n starts at 1)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := content.Lookup(args[0])
			if err != nil {
				return err
			}
			n, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("item number %q: %w", args[1], err)
			}
			if n < 1 || n > len(items) {
				return fmt.Errorf("item %d out of range (1-%d)", n, len(items))
			}

			panel := overlay.RenderPanel(items[n-1], overlay.PanelWidth(width), 1, styles.New())
			fmt.Fprintln(cmd.OutOrStdout(), panel)
			return nil
		},
	}
	cmd.Flags().IntVar(&width, "width", defaultWidth, "Terminal width the panel is sized for")
	return cmd
}
