package statusbar_test

import (
	"fmt"

	"github.com/friskycodeur/folio/internal/types"
	"github.com/friskycodeur/folio/internal/ui/statusbar"
	"github.com/friskycodeur/folio/internal/ui/styles"
)

// Example demonstrates how to use the StatusBar
func Example() {
	style := styles.New()

	sb := statusbar.New(types.ModeBrowse, 80, style).WithSection("Projects")

	// Render it (output will include ANSI codes for styling)
	rendered := sb.Render()

	fmt.Println(len(rendered) > 0)
	// Output: true
}
