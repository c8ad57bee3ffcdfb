// Package statusbar renders the one-line bar at the bottom of the page:
// a mode badge, the focused section and the key hints for the mode.
package statusbar

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
	"github.com/friskycodeur/folio/internal/types"
	"github.com/friskycodeur/folio/internal/ui/styles"
)

// StatusBar represents the status bar at the bottom of the page
type StatusBar struct {
	mode    types.Mode
	width   int
	section string
	styles  *styles.Styles
	help    help.Model
}

// New creates a new StatusBar with the given mode, width, and styles
func New(mode types.Mode, width int, s *styles.Styles) StatusBar {
	h := help.New()
	h.Styles.ShortKey = s.StatusHint.Bold(true)
	h.Styles.ShortDesc = s.StatusHint
	h.Styles.ShortSeparator = s.StatusHint
	h.Styles.FullKey = s.StatusHint.Bold(true)
	h.Styles.FullDesc = s.StatusHint
	h.Styles.FullSeparator = s.StatusHint
	h.Styles.Ellipsis = s.StatusHint

	return StatusBar{
		mode:   mode,
		width:  width,
		styles: s,
		help:   h,
	}
}

// WithSection returns a copy showing the focused section's name
func (sb StatusBar) WithSection(name string) StatusBar {
	sb.section = name
	return sb
}

// WithFullHelp returns a copy that lists every binding instead of the short set
func (sb StatusBar) WithFullHelp(full bool) StatusBar {
	sb.help.ShowAll = full
	return sb
}

// Render renders the status bar as a string
func (sb StatusBar) Render() string {
	modeBadge := sb.styles.StatusMode.Render(sb.mode.String())
	parts := []string{modeBadge}

	if sb.section != "" {
		parts = append(parts, sb.styles.StatusHint.Render(" "+sb.section))
	}

	separator := sb.styles.StatusHint.Render(" │ ")
	used := lipgloss.Width(lipgloss.JoinHorizontal(lipgloss.Top, parts...)) + lipgloss.Width(separator)
	// StatusBar padding takes one cell each side
	sb.help.Width = max(sb.width-used-2, 0)
	hints := sb.help.View(KeyMapFor(sb.mode))
	if hints != "" {
		parts = append(parts, separator, hints)
	}

	content := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	return sb.styles.StatusBar.Width(sb.width).Render(content)
}
