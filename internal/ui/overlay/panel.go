package overlay

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/friskycodeur/folio/internal/domain"
	"github.com/friskycodeur/folio/internal/ui/styles"
)

// Label heads every panel
const Label = "DETAILS"

// CloseGlyph is the panel's close control
const CloseGlyph = "✕"

// Panel geometry
const (
	// MaxPanelWidth caps the panel's outer width
	MaxPanelWidth = 72
	minPanelWidth = 24

	// frame: 1 border + 2 padding on each side, 1 border + 1 padding top and bottom
	frameWidth  = 6
	frameHeight = 4
)

// PanelWidth returns the panel's outer width for a terminal width
func PanelWidth(termWidth int) int {
	w := min(MaxPanelWidth, termWidth-4)
	return max(w, minPanelWidth)
}

// RenderPanel renders item as a fully expanded panel of the given outer
// width, with every bullet visible.
func RenderPanel(item domain.DetailItem, width int, opacity float64, s *styles.Styles) string {
	ps := newPanelStyles(s, opacity)
	inner := max(width-frameWidth, 1)
	header := headerLines(item, inner, ps)
	body := bodyLines(item, inner, ps)
	return framePanel(header, body, width, ps)
}

func framePanel(header, body []string, width int, ps panelStyles) string {
	lines := make([]string, 0, len(header)+len(body)+1)
	lines = append(lines, header...)
	if len(body) > 0 {
		lines = append(lines, "")
		lines = append(lines, body...)
	}
	return ps.frame.Width(width - 2).Render(strings.Join(lines, "\n"))
}

// headerLines renders the label row with the close control, the
// icon-prefixed title and whichever optional fields are present.
func headerLines(item domain.DetailItem, inner int, ps panelStyles) []string {
	label := ps.label.Render(Label)
	closeCtl := ps.close.Render(CloseGlyph)
	gap := max(inner-ansi.StringWidth(label)-ansi.StringWidth(closeCtl), 1)

	lines := []string{
		label + strings.Repeat(" ", gap) + closeCtl,
		"",
	}
	lines = append(lines, wrap(ps.title, item.DisplayTitle(), inner)...)
	if item.Subtitle != "" {
		lines = append(lines, wrap(ps.subtitle, item.Subtitle, inner)...)
	}
	if item.Metrics != "" {
		lines = append(lines, wrap(ps.metrics, item.Metrics, inner)...)
	}
	return lines
}

// bodyLines renders the bullets in order with a hanging indent
func bodyLines(item domain.DetailItem, inner int, ps panelStyles) []string {
	var lines []string
	marker := ps.marker.Render("• ")
	indent := strings.Repeat(" ", lipgloss.Width(marker))
	for _, d := range item.Details {
		for i, l := range wrap(ps.bullet, d, max(inner-lipgloss.Width(marker), 1)) {
			if i == 0 {
				lines = append(lines, marker+l)
				continue
			}
			lines = append(lines, indent+l)
		}
	}
	return lines
}

func wrap(st lipgloss.Style, text string, width int) []string {
	return strings.Split(st.Width(width).Render(text), "\n")
}
