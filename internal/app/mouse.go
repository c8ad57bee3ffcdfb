package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/friskycodeur/folio/internal/services/navigation"
)

// handleMouse routes mouse input. While the overlay is open it gets every
// event; otherwise a left press activates whatever is under the pointer
// and the wheel scrolls the page.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.controller.IsOpen() {
		return m, m.controller.Update(msg)
	}

	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		var cmd tea.Cmd
		m.page, cmd = m.page.Update(msg)
		return m, cmd
	}

	if msg.Y >= m.page.Height {
		return m, nil
	}
	x := msg.X - m.marginLeft()
	y := msg.Y + m.page.YOffset

	if i, ok := m.hero.LinkAt(x, y); ok {
		m.focus.Focus(navigation.TargetLinks)
		m.hero.SetCursor(i)
		m.applyFocus()
		m.refresh()
		link, _ := m.hero.Selected()
		return m, m.openLinkCmd(link)
	}

	for _, t := range sectionOrder {
		g := m.sections[t]
		if g == nil {
			continue
		}
		top := m.sectionTop(t)
		if y < top || y >= top+g.Height() {
			continue
		}
		cmd := g.ActivateAt(x, y-top)
		if cmd == nil {
			return m, nil
		}
		m.focus.Focus(t)
		m.applyFocus()
		m.refresh()
		return m, cmd
	}
	return m, nil
}
