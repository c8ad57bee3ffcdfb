// Package toast renders short-lived notifications, such as the result of
// opening or copying a link, stacked in the page's bottom-right corner.
package toast

import (
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/friskycodeur/folio/internal/types"
	"github.com/friskycodeur/folio/internal/ui/styles"
)

// maxWidth caps a toast's outer width
const maxWidth = 40

// Renderer handles rendering of toast notifications
type Renderer struct {
	styles *styles.Styles
}

// New creates a new Renderer with the given styles
func New(s *styles.Styles) *Renderer {
	return &Renderer{styles: s}
}

// Render renders the toasts still live at now as a right-aligned stack.
// Returns empty string if there is nothing to show.
func (r *Renderer) Render(toasts []types.Toast, width int, now time.Time) string {
	toastWidth := min(width/3, maxWidth)
	if toastWidth < 12 {
		toastWidth = min(width, 12)
	}

	var rendered []string
	for _, t := range toasts {
		if t.Expired(now) {
			continue
		}
		style := r.styleForLevel(t.Level)
		// lipgloss widths exclude the border
		rendered = append(rendered, style.Width(toastWidth-2).Render(t.Message))
	}
	if len(rendered) == 0 {
		return ""
	}

	return lipgloss.JoinVertical(lipgloss.Right, rendered...)
}

// Origin returns where the stack's top-left corner goes so that it sits
// in the bottom-right corner of a width x height screen, one cell in.
func Origin(stack string, width, height int) (x, y int) {
	x = max(width-lipgloss.Width(stack)-1, 0)
	y = max(height-lipgloss.Height(stack)-1, 0)
	return x, y
}

// styleForLevel returns the appropriate style for a toast level
func (r *Renderer) styleForLevel(level types.ToastLevel) lipgloss.Style {
	switch level {
	case types.ToastSuccess:
		return r.styles.ToastSuccess
	case types.ToastWarning:
		return r.styles.ToastWarning
	case types.ToastError:
		return r.styles.ToastError
	default:
		return r.styles.ToastInfo
	}
}
