package cli

import (
	"fmt"

	"github.com/friskycodeur/folio/internal/content"
	"github.com/spf13/cobra"
)

func newValidateCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the page content for missing fields",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := content.Validate(); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, sec := range content.Sections() {
				fmt.Fprintf(out, "%-12s %d items\n", sec.Name, len(sec.Items))
			}
			fmt.Fprintln(out, "ok")
			return nil
		},
	}
}
