package keys

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type firedMsg struct{ name string }

func fire(name string) Handler {
	return func(tea.KeyMsg) tea.Cmd {
		return func() tea.Msg { return firedMsg{name: name} }
	}
}

var escMsg = tea.KeyMsg{Type: tea.KeyEsc}

func TestDispatcher_Empty(t *testing.T) {
	d := NewDispatcher()

	cmd, handled := d.Dispatch(escMsg)
	assert.False(t, handled)
	assert.Nil(t, cmd)
	assert.Equal(t, 0, d.Len())
}

func TestDispatcher_MatchingListenerHandles(t *testing.T) {
	d := NewDispatcher()
	release := d.Listen(Escape, fire("overlay"))
	defer release()

	cmd, handled := d.Dispatch(escMsg)
	require.True(t, handled)
	require.NotNil(t, cmd)
	assert.Equal(t, firedMsg{name: "overlay"}, cmd())

	_, handled = d.Dispatch(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	assert.False(t, handled, "non-matching keys pass through")
}

func TestDispatcher_MostRecentFirst(t *testing.T) {
	d := NewDispatcher()
	d.Listen(Escape, fire("first"))
	d.Listen(Escape, fire("second"))

	cmd, handled := d.Dispatch(escMsg)
	require.True(t, handled)
	assert.Equal(t, firedMsg{name: "second"}, cmd())
}

func TestDispatcher_ReleaseIsIdempotent(t *testing.T) {
	d := NewDispatcher()
	keep := d.Listen(key.NewBinding(key.WithKeys("x")), fire("keep"))
	defer keep()
	release := d.Listen(Escape, fire("gone"))
	require.Equal(t, 2, d.Len())

	release()
	release()

	assert.Equal(t, 1, d.Len(), "a second release must not remove another listener")
	_, handled := d.Dispatch(escMsg)
	assert.False(t, handled)
}

func TestDispatcher_RepeatedCyclesDoNotLeak(t *testing.T) {
	d := NewDispatcher()

	for i := 0; i < 10; i++ {
		release := d.Listen(Escape, fire("cycle"))
		release()
	}

	assert.Equal(t, 0, d.Len())
}

func TestKeyMapsProvideHelp(t *testing.T) {
	assert.NotEmpty(t, Browse.ShortHelp())
	assert.Len(t, Browse.FullHelp(), 3)
	assert.Contains(t, Detail.ShortHelp(), Escape)
	assert.True(t, key.Matches(escMsg, Detail.Close))
}
