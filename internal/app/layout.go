package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/friskycodeur/folio/internal/config"
	"github.com/friskycodeur/folio/internal/services/navigation"
	"github.com/friskycodeur/folio/internal/ui/hero"
	"github.com/friskycodeur/folio/internal/ui/overlay"
	"github.com/friskycodeur/folio/internal/ui/statusbar"
	"github.com/friskycodeur/folio/internal/ui/toast"
)

const (
	// maxContentWidth keeps lines readable on very wide terminals
	maxContentWidth = 110
	sectionGap      = 1
)

// sectionOrder is the top-to-bottom order of the card sections
var sectionOrder = []navigation.Target{navigation.TargetExperience, navigation.TargetProjects}

// contentWidth returns the width the page content is laid out in
func (m Model) contentWidth() int {
	return max(min(m.width-2, maxContentWidth), 20)
}

// marginLeft returns the column where the page content starts
func (m Model) marginLeft() int {
	return max((m.width-m.contentWidth())/2, 0)
}

func (m Model) statusBar() statusbar.StatusBar {
	sb := statusbar.New(m.Mode(), m.width, m.styles).WithFullHelp(m.showHelp)
	if !m.controller.IsOpen() {
		sb = sb.WithSection(m.focus.Current().String())
	}
	return sb
}

// pageHeight is the number of rows the scrolling page gets
func (m Model) pageHeight() int {
	return max(m.height-lipgloss.Height(m.statusBar().Render()), 1)
}

// sectionTop returns the page line at which target starts
func (m Model) sectionTop(target navigation.Target) int {
	y := m.hero.Height() + sectionGap
	for _, t := range sectionOrder {
		if t == target {
			return y
		}
		if g := m.sections[t]; g != nil {
			y += g.Height() + sectionGap
		}
	}
	return y
}

// applyFocus pushes the focus ring's state into the components
func (m *Model) applyFocus() {
	current := m.focus.Current()
	m.hero.SetFocused(current == navigation.TargetLinks)
	for t, g := range m.sections {
		g.SetFocused(t == current)
	}
}

// refresh re-lays out the page after a size, focus or cursor change
func (m *Model) refresh() {
	w := m.contentWidth()
	m.hero.SetWidth(w)
	for _, g := range m.sections {
		g.SetWidth(w)
	}

	m.page.Width = m.width
	m.page.Height = m.pageHeight()
	offset := m.page.YOffset
	m.page.SetContent(m.renderPage())
	m.page.SetYOffset(offset)
}

// renderPage lays out everything that scrolls
func (m Model) renderPage() string {
	parts := []string{m.hero.View()}
	for _, t := range sectionOrder {
		if g := m.sections[t]; g != nil {
			parts = append(parts, "", g.View())
		}
	}
	parts = append(parts, "", hero.Footer(m.hero.Profile(), m.now().Year(), m.contentWidth(), m.styles))

	page := strings.Join(parts, "\n")
	return lipgloss.NewStyle().PaddingLeft(m.marginLeft()).Render(page)
}

// scrollIntoView scrolls the page so lines [top, top+h) are visible
func (m *Model) scrollIntoView(top, h int) {
	switch {
	case top < m.page.YOffset:
		m.page.SetYOffset(top)
	case top+h > m.page.YOffset+m.page.Height:
		m.page.SetYOffset(min(top, top+h-m.page.Height))
	}
}

// revealFocus scrolls the focused element into view
func (m *Model) revealFocus() {
	switch t := m.focus.Current(); t {
	case navigation.TargetLinks:
		m.scrollIntoView(0, m.hero.Height())
	default:
		g := m.sections[t]
		if g == nil {
			return
		}
		top := m.sectionTop(t)
		if g.Cursor() == 0 {
			// include the heading
			r, _ := g.CardRect(0)
			m.scrollIntoView(top, r.Y+r.H)
			return
		}
		if r, ok := g.CardRect(g.Cursor()); ok {
			m.scrollIntoView(top+r.Y, r.H)
		}
	}
}

// View renders the page, the status bar, toasts and the overlay
func (m Model) View() string {
	view := m.page.View() + "\n" + m.statusBar().Render()

	view = m.controller.View(view)

	renderer := toast.New(m.styles)
	if stack := renderer.Render(m.toasts, m.width, m.now()); stack != "" {
		x, y := toast.Origin(stack, m.width, m.pageHeight())
		view = overlay.Composite(view, stack, x, y)
	}
	return view
}

// Render lays out the whole page at width, without scrolling, the status
// bar or the overlay. It backs non-interactive output.
func Render(cfg *config.Config, width int, opts ...Option) string {
	m := New(cfg, opts...)
	m.width = max(width, 1)
	m.refresh()
	return m.renderPage()
}
