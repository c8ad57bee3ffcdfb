package app

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/friskycodeur/folio/internal/services/navigation"
	"github.com/friskycodeur/folio/internal/ui/keys"
)

// handleKey routes a key press. Order: force quit, document-level
// listeners, the open overlay, then the focused part of the page.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.Detail.ForceQuit) {
		return m.quit()
	}

	if cmd, handled := m.dispatcher.Dispatch(msg); handled {
		return m, cmd
	}

	if m.controller.IsOpen() {
		if key.Matches(msg, keys.Detail.Help) {
			m.toggleHelp()
			return m, nil
		}
		return m, m.controller.Update(msg)
	}

	return m.handleBrowseKey(msg)
}

func (m Model) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	km := keys.Browse

	switch {
	case key.Matches(msg, km.Quit):
		return m.quit()

	case key.Matches(msg, km.Help):
		m.toggleHelp()
		return m, nil

	case key.Matches(msg, km.Next):
		m.focus.Next()
		m.afterFocusChange()
		return m, nil

	case key.Matches(msg, km.Prev):
		m.focus.Prev()
		m.afterFocusChange()
		return m, nil

	case key.Matches(msg, km.Top):
		m.page.GotoTop()
		return m, nil

	case key.Matches(msg, km.Bottom):
		m.page.GotoBottom()
		return m, nil

	case key.Matches(msg, km.Left):
		return m.move(-1, 0)
	case key.Matches(msg, km.Right):
		return m.move(1, 0)
	case key.Matches(msg, km.Up):
		return m.move(0, -1)
	case key.Matches(msg, km.Down):
		return m.move(0, 1)

	case key.Matches(msg, km.Activate):
		return m.activateFocused()

	case key.Matches(msg, km.Copy):
		if m.focus.Is(navigation.TargetLinks) {
			if link, ok := m.hero.Selected(); ok {
				return m, m.copyLinkCmd(link)
			}
		}
		return m, nil
	}

	// page scrolling (pgup/pgdown and friends)
	var cmd tea.Cmd
	m.page, cmd = m.page.Update(msg)
	return m, cmd
}

// move shifts the cursor inside the focused part. Moving vertically past
// its edge hands focus to the neighbouring part.
func (m Model) move(dx, dy int) (tea.Model, tea.Cmd) {
	current := m.focus.Current()

	moved := false
	if current == navigation.TargetLinks {
		if dx != 0 {
			moved = m.hero.Move(dx)
		}
	} else if g := m.sections[current]; g != nil {
		moved = g.Move(dx, dy)
	}

	if !moved && dy != 0 {
		m.crossSection(dy)
		return m, nil
	}
	if moved {
		m.refresh()
		m.revealFocus()
	}
	return m, nil
}

// crossSection moves focus to the next part up or down the page, landing
// on the nearest card.
func (m *Model) crossSection(dy int) {
	before := m.focus.Current()
	var after navigation.Target
	if dy > 0 {
		if before == navigation.TargetProjects {
			return
		}
		after = m.focus.Next()
	} else {
		if before == navigation.TargetLinks {
			return
		}
		after = m.focus.Prev()
	}
	if after == before {
		return
	}
	if g := m.sections[after]; g != nil && dy < 0 {
		g.SetCursor(g.Len() - 1)
	} else if g != nil {
		g.SetCursor(0)
	}
	m.afterFocusChange()
}

func (m *Model) afterFocusChange() {
	m.applyFocus()
	m.refresh()
	m.revealFocus()
}

func (m Model) activateFocused() (tea.Model, tea.Cmd) {
	current := m.focus.Current()
	if current == navigation.TargetLinks {
		link, ok := m.hero.Selected()
		if !ok {
			return m, nil
		}
		return m, m.openLinkCmd(link)
	}
	if g := m.sections[current]; g != nil {
		return m, g.ActivateFocused()
	}
	return m, nil
}

func (m *Model) toggleHelp() {
	m.showHelp = !m.showHelp
	m.refresh()
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.controller.Teardown()
	return m, tea.Quit
}
