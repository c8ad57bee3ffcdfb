// Command folio is a personal profile page for the terminal.
//
// Usage:
//
//	folio [flags]
//	folio render --width 100
//	folio show projects 2
package main

import (
	"os"

	"github.com/friskycodeur/folio/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
