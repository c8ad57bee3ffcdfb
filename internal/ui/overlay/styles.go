package overlay

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/friskycodeur/folio/internal/ui/styles"
)

// panelStyles holds the detail panel styles at a given opacity
type panelStyles struct {
	frame    lipgloss.Style
	label    lipgloss.Style
	close    lipgloss.Style
	title    lipgloss.Style
	subtitle lipgloss.Style
	metrics  lipgloss.Style
	bullet   lipgloss.Style
	marker   lipgloss.Style
	scroll   lipgloss.Style
}

// newPanelStyles derives the panel styles from the page styles, faded
// towards the backdrop by opacity (0 = invisible, 1 = fully drawn).
func newPanelStyles(s *styles.Styles, opacity float64) panelStyles {
	fade := func(c lipgloss.Color) lipgloss.Color {
		return styles.Fade(c, styles.Backdrop, opacity)
	}

	return panelStyles{
		frame: s.Overlay.
			BorderForeground(fade(styles.Accent)).
			Background(fade(styles.Mantle)),

		label: lipgloss.NewStyle().
			Foreground(fade(styles.Overlay1)).
			Bold(true),

		close: lipgloss.NewStyle().
			Foreground(fade(styles.Red)).
			Bold(true),

		title: s.OverlayTitle.
			Foreground(fade(styles.Text)),

		subtitle: lipgloss.NewStyle().
			Foreground(fade(styles.Subtext1)),

		metrics: lipgloss.NewStyle().
			Foreground(fade(styles.Green)),

		bullet: lipgloss.NewStyle().
			Foreground(fade(styles.Subtext0)),

		marker: lipgloss.NewStyle().
			Foreground(fade(styles.Accent)),

		scroll: lipgloss.NewStyle().
			Foreground(fade(styles.Overlay0)),
	}
}

// backdropStyle is the dimmed page behind an open panel
func backdropStyle(opacity float64) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(styles.Blend(styles.Subtext0, styles.Surface1, opacity))
}
