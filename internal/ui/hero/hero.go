// Package hero renders the top of the page (name, headline, summary and
// link buttons) and the footer.
package hero

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/friskycodeur/folio/internal/domain"
	"github.com/friskycodeur/folio/internal/ui/styles"
)

// maxSummaryWidth keeps the summary readable on wide terminals
const maxSummaryWidth = 72

// Hero is the profile header with its row of link buttons. When focused,
// one button is highlighted and can be opened or copied.
type Hero struct {
	profile domain.Profile
	styles  *styles.Styles
	mdStyle string
	width   int
	focused bool
	cursor  int
}

// New creates a Hero for p. mdStyle names a glamour style for the summary.
func New(p domain.Profile, s *styles.Styles, mdStyle string) *Hero {
	return &Hero{
		profile: p,
		styles:  s,
		mdStyle: mdStyle,
		width:   80,
	}
}

// Profile returns the profile shown
func (h *Hero) Profile() domain.Profile { return h.profile }

// SetWidth sets the page width the hero centres within
func (h *Hero) SetWidth(w int) { h.width = max(w, 1) }

// SetFocused highlights the link row
func (h *Hero) SetFocused(f bool) { h.focused = f }

// Focused reports whether the link row has focus
func (h *Hero) Focused() bool { return h.focused }

// Cursor returns the highlighted link index
func (h *Hero) Cursor() int { return h.cursor }

// Move shifts the highlighted link by dx. It reports whether the cursor
// changed; moving past either end does nothing.
func (h *Hero) Move(dx int) bool {
	next := h.cursor + dx
	if next < 0 || next >= len(h.profile.Links) {
		return false
	}
	h.cursor = next
	return true
}

// SetCursor highlights link i, clamped to the available links
func (h *Hero) SetCursor(i int) {
	h.cursor = max(min(i, len(h.profile.Links)-1), 0)
}

// Selected returns the highlighted link
func (h *Hero) Selected() (domain.Link, bool) {
	if h.cursor < 0 || h.cursor >= len(h.profile.Links) {
		return domain.Link{}, false
	}
	return h.profile.Links[h.cursor], true
}

func (h *Hero) header() []string {
	lines := []string{
		h.styles.HeroName.Render(h.profile.Name),
		h.styles.HeroHeadline.Render(h.profile.Headline),
	}
	if summary := renderMarkdown(h.profile.Summary, h.mdStyle, min(h.width-4, maxSummaryWidth)); summary != "" {
		lines = append(lines, "")
		lines = append(lines, strings.Split(summary, "\n")...)
	}
	return append(lines, "")
}

func (h *Hero) buttons() []string {
	out := make([]string, len(h.profile.Links))
	for i, l := range h.profile.Links {
		st := h.styles.LinkButton
		if h.focused && i == h.cursor {
			st = h.styles.LinkButtonActive
		}
		out[i] = st.Render(l.Kind.Icon() + " " + l.Label)
	}
	return out
}

// buttonRow joins the buttons with a gap and returns the row together with
// the left edge of each button inside it.
func (h *Hero) buttonRow() (string, []int) {
	buttons := h.buttons()
	var b strings.Builder
	edges := make([]int, len(buttons))
	x := 0
	for i, btn := range buttons {
		if i > 0 {
			b.WriteString("  ")
			x += 2
		}
		edges[i] = x
		b.WriteString(btn)
		x += lipgloss.Width(btn)
	}
	return b.String(), edges
}

// View renders the hero centred in its width
func (h *Hero) View() string {
	lines := h.header()
	row, _ := h.buttonRow()
	lines = append(lines, row)
	return lipgloss.PlaceHorizontal(h.width, lipgloss.Center, strings.Join(lines, "\n"))
}

// Height returns the number of lines View produces
func (h *Hero) Height() int {
	return len(h.header()) + 1
}

// LinkAt returns the index of the link button at (x, y), relative to the
// hero's top-left corner.
func (h *Hero) LinkAt(x, y int) (int, bool) {
	if y != len(h.header()) {
		return 0, false
	}
	row, edges := h.buttonRow()
	left := max((h.width-lipgloss.Width(row))/2, 0)
	for i := len(edges) - 1; i >= 0; i-- {
		start := left + edges[i]
		if x < start {
			continue
		}
		if x < start+lipgloss.Width(h.buttons()[i]) {
			return i, true
		}
		return 0, false
	}
	return 0, false
}
