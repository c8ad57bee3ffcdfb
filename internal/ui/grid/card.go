package grid

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/friskycodeur/folio/internal/domain"
	"github.com/friskycodeur/folio/internal/ui/styles"
)

// Hint is the affordance line shown on every card
const Hint = "Enter or click to view details"

// cardContent renders the inside of a card, wrapped to innerWidth
func cardContent(item domain.DetailItem, isFocused bool, innerWidth int, s *styles.Styles) string {
	marker := ""
	if isFocused {
		marker = "▶ "
	}

	wrap := lipgloss.NewStyle().Width(max(innerWidth, 1))

	lines := []string{wrap.Render(s.CardTitle.Render(marker + item.Title))}
	if item.Subtitle != "" {
		lines = append(lines, wrap.Render(s.CardSubtitle.Render(item.Subtitle)))
	}
	if item.Metrics != "" {
		lines = append(lines, wrap.Render(s.CardMetrics.Render(item.Metrics)))
	}
	lines = append(lines, wrap.Render(s.CardHint.Render(Hint)))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// RenderCard renders a summary card for item, width columns wide
// (borders included). innerHeight pads the card body; 0 means natural height.
func RenderCard(item domain.DetailItem, isFocused bool, width, innerHeight int, s *styles.Styles) string {
	style := s.CardFor(isFocused)
	frameW := style.GetHorizontalFrameSize()
	inner := width - frameW

	style = style.Width(max(width-style.GetHorizontalBorderSize(), 1))
	if innerHeight > 0 {
		style = style.Height(innerHeight)
	}

	return style.Render(cardContent(item, isFocused, inner, s))
}
