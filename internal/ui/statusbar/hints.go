package statusbar

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/friskycodeur/folio/internal/types"
	"github.com/friskycodeur/folio/internal/ui/keys"
)

// KeyMapFor returns the bindings to advertise in the given mode
func KeyMapFor(mode types.Mode) help.KeyMap {
	switch mode {
	case types.ModeDetail:
		return keys.Detail
	default:
		return keys.Browse
	}
}
