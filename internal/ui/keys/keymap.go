package keys

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

// Escape dismisses the detail overlay
var Escape = key.NewBinding(
	key.WithKeys("esc"),
	key.WithHelp("esc", "close"),
)

// BrowseMap is the key map while no overlay is open
type BrowseMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Next     key.Binding
	Prev     key.Binding
	Activate key.Binding
	Copy     key.Binding
	Top      key.Binding
	Bottom   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// DetailMap is the key map while the detail overlay is open
type DetailMap struct {
	Close     key.Binding
	CloseAlt  key.Binding
	ScrollUp  key.Binding
	ScrollDn  key.Binding
	Help      key.Binding
	ForceQuit key.Binding
}

// Browse is the default BrowseMap
var Browse = BrowseMap{
	Up:       key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("↑/k", "up")),
	Down:     key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("↓/j", "down")),
	Left:     key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("←/h", "left")),
	Right:    key.NewBinding(key.WithKeys("l", "right"), key.WithHelp("→/l", "right")),
	Next:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next section")),
	Prev:     key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev section")),
	Activate: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "open")),
	Copy:     key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy link")),
	Top:      key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "top")),
	Bottom:   key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "bottom")),
	Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
	Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// Detail is the default DetailMap
var Detail = DetailMap{
	Close:     Escape,
	CloseAlt:  key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "close")),
	ScrollUp:  key.NewBinding(key.WithKeys("k", "up", "pgup"), key.WithHelp("↑/k", "scroll up")),
	ScrollDn:  key.NewBinding(key.WithKeys("j", "down", "pgdown"), key.WithHelp("↓/j", "scroll down")),
	Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
	ForceQuit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
}

var (
	_ help.KeyMap = BrowseMap{}
	_ help.KeyMap = DetailMap{}
)

// ShortHelp implements help.KeyMap
func (m BrowseMap) ShortHelp() []key.Binding {
	return []key.Binding{m.Activate, m.Next, m.Copy, m.Help, m.Quit}
}

// FullHelp implements help.KeyMap
func (m BrowseMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.Up, m.Down, m.Left, m.Right},
		{m.Next, m.Prev, m.Top, m.Bottom},
		{m.Activate, m.Copy, m.Help, m.Quit},
	}
}

// ShortHelp implements help.KeyMap
func (m DetailMap) ShortHelp() []key.Binding {
	return []key.Binding{m.Close, m.ScrollDn, m.Help}
}

// FullHelp implements help.KeyMap
func (m DetailMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.Close, m.CloseAlt},
		{m.ScrollUp, m.ScrollDn},
		{m.Help, m.ForceQuit},
	}
}
