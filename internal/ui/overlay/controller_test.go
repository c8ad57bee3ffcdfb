package overlay

import (
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/friskycodeur/folio/internal/domain"
	"github.com/friskycodeur/folio/internal/ui/keys"
	"github.com/friskycodeur/folio/internal/ui/styles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	t time.Time
}

func (f *fakeClock) Now() time.Time { return f.t }

func (f *fakeClock) Advance(d time.Duration) { f.t = f.t.Add(d) }

// dismissRecorder counts dismissal callback invocations
type dismissRecorder struct {
	reasons []DismissReason
}

func (r *dismissRecorder) fn(reason DismissReason) tea.Cmd {
	r.reasons = append(r.reasons, reason)
	return EmitDismiss(reason)
}

var (
	itemX = domain.DetailItem{
		Title:   "X",
		Icon:    "🧪",
		Details: []string{"a", "b"},
	}
	itemY = domain.DetailItem{
		Title:    "Y",
		Subtitle: "Second",
		Metrics:  "2x faster",
		Details:  []string{"c"},
	}
)

func newTestController(t *testing.T, opts ...Option) (*Controller, *keys.Dispatcher, *fakeClock, *dismissRecorder) {
	t.Helper()
	clock := &fakeClock{t: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
	rec := &dismissRecorder{}
	d := keys.NewDispatcher()
	base := []Option{
		WithClock(clock.Now),
		WithOnDismiss(rec.fn),
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	}
	c := New(d, styles.New(), append(base, opts...)...)
	c.SetSize(100, 30)
	return c, d, clock, rec
}

// settle advances past the running transition and delivers its frame
func settle(c *Controller, clock *fakeClock) {
	clock.Advance(DefaultDuration)
	c.Update(frameMsg{tag: c.tag, at: clock.Now()})
}

func escKey() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyEsc}
}

func TestControllerStartsClosed(t *testing.T) {
	c, d, _, rec := newTestController(t)

	assert.Equal(t, Closed, c.State())
	assert.Equal(t, PhaseIdle, c.Phase())
	assert.False(t, c.IsOpen())
	assert.False(t, c.Listening())
	assert.Equal(t, 0, d.Len())
	assert.Equal(t, "page", c.View("page"))

	_, ok := c.Item()
	assert.False(t, ok)
	assert.Nil(t, c.Dismiss(ReasonEscape))
	assert.Empty(t, rec.reasons)
}

func TestControllerOpenPlaysEntry(t *testing.T) {
	c, d, clock, _ := newTestController(t)

	cmd := c.SetActive(&itemX)
	require.NotNil(t, cmd, "entry should schedule a frame")

	assert.Equal(t, Open, c.State())
	assert.Equal(t, PhaseEntering, c.Phase())
	assert.True(t, c.Listening())
	assert.Equal(t, 1, d.Len())
	assert.InDelta(t, 0, c.Progress(), 1e-9)

	clock.Advance(DefaultDuration / 2)
	assert.InDelta(t, 0.5, c.Progress(), 1e-9)
	next := c.Update(frameMsg{tag: c.tag})
	assert.NotNil(t, next, "unfinished entry should keep ticking")
	assert.Equal(t, PhaseEntering, c.Phase())

	clock.Advance(DefaultDuration / 2)
	assert.Nil(t, c.Update(frameMsg{tag: c.tag}))
	assert.Equal(t, PhaseVisible, c.Phase())
	assert.InDelta(t, 1, c.Progress(), 1e-9)
}

func TestControllerRendersActiveItem(t *testing.T) {
	c, _, clock, _ := newTestController(t)
	c.SetActive(&itemX)
	settle(c, clock)

	view := ansi.Strip(c.View("background"))
	assert.Contains(t, view, Label)
	assert.Contains(t, view, CloseGlyph)
	assert.Contains(t, view, "🧪 X")

	a := strings.Index(view, "• a")
	b := strings.Index(view, "• b")
	require.GreaterOrEqual(t, a, 0)
	require.GreaterOrEqual(t, b, 0)
	assert.Less(t, a, b, "bullets keep their order")
}

func TestControllerEscapeDismissesOnce(t *testing.T) {
	c, d, clock, rec := newTestController(t)
	c.SetActive(&itemX)
	settle(c, clock)

	cmd, handled := d.Dispatch(escKey())
	require.True(t, handled)
	require.NotNil(t, cmd)
	assert.Equal(t, DismissMsg{Reason: ReasonEscape}, cmd())

	// a second press before the page reacts must not re-invoke the callback
	cmd, handled = d.Dispatch(escKey())
	assert.True(t, handled)
	assert.Nil(t, cmd)
	assert.Equal(t, []DismissReason{ReasonEscape}, rec.reasons)
}

func TestControllerEscapeWhileClosedIsIgnored(t *testing.T) {
	_, d, _, rec := newTestController(t)

	cmd, handled := d.Dispatch(escKey())
	assert.False(t, handled)
	assert.Nil(t, cmd)
	assert.Empty(t, rec.reasons)
}

func TestControllerCloseReleasesListenerAndUnmounts(t *testing.T) {
	c, d, clock, rec := newTestController(t)
	c.SetActive(&itemX)
	settle(c, clock)

	cmd := c.SetActive(nil)
	require.NotNil(t, cmd)
	assert.Equal(t, Closed, c.State())
	assert.Equal(t, PhaseExiting, c.Phase())
	assert.False(t, c.Listening(), "listener is released when the exit starts")
	assert.Equal(t, 0, d.Len())

	// the exiting panel is still drawn
	item, ok := c.Item()
	require.True(t, ok)
	assert.Equal(t, "X", item.Title)

	_, handled := d.Dispatch(escKey())
	assert.False(t, handled)
	assert.Nil(t, c.Dismiss(ReasonEscape))

	settle(c, clock)
	assert.Equal(t, PhaseIdle, c.Phase())
	_, ok = c.Item()
	assert.False(t, ok)
	assert.Equal(t, "bg", c.View("bg"))
	assert.Empty(t, rec.reasons)
}

func TestControllerCloseWhenClosedIsNoop(t *testing.T) {
	c, _, _, _ := newTestController(t)

	assert.Nil(t, c.SetActive(nil))
	assert.Equal(t, Closed, c.State())
	assert.Equal(t, PhaseIdle, c.Phase())
}

func TestControllerMostRecentActivationWins(t *testing.T) {
	c, d, clock, _ := newTestController(t)
	c.SetActive(&itemX)
	settle(c, clock)

	cmd := c.SetActive(&itemY)
	assert.Nil(t, cmd, "switching items does not replay the entry")
	assert.Equal(t, PhaseVisible, c.Phase())
	assert.Equal(t, 1, d.Len())

	item, ok := c.Item()
	require.True(t, ok)
	assert.Equal(t, "Y", item.Title)

	view := ansi.Strip(c.View(""))
	assert.Contains(t, view, "Second")
	assert.Contains(t, view, "2x faster")
	assert.NotContains(t, view, "• a")
}

func TestControllerActivationDuringExitReverses(t *testing.T) {
	c, d, clock, _ := newTestController(t)
	c.SetActive(&itemX)
	settle(c, clock)

	c.SetActive(nil)
	staleTag := c.tag
	clock.Advance(DefaultDuration / 2)
	assert.InDelta(t, 0.5, c.Progress(), 1e-9)

	cmd := c.SetActive(&itemX)
	require.NotNil(t, cmd)
	assert.Equal(t, Open, c.State())
	assert.Equal(t, PhaseEntering, c.Phase())
	assert.InDelta(t, 0.5, c.Progress(), 1e-9)
	assert.True(t, c.Listening())
	assert.Equal(t, 1, d.Len())

	// a frame from the superseded exit must not finish anything
	clock.Advance(DefaultDuration)
	assert.Nil(t, c.Update(frameMsg{tag: staleTag}))
	assert.Equal(t, PhaseEntering, c.Phase())

	c.Update(frameMsg{tag: c.tag})
	assert.Equal(t, PhaseVisible, c.Phase())
}

func TestControllerReopenAfterDismissal(t *testing.T) {
	c, d, clock, rec := newTestController(t)
	c.SetActive(&itemX)
	settle(c, clock)

	require.NotNil(t, c.Dismiss(ReasonCloseControl))
	c.SetActive(nil)
	settle(c, clock)

	c.SetActive(&itemY)
	settle(c, clock)
	assert.Equal(t, 1, d.Len())

	cmd, handled := d.Dispatch(escKey())
	require.True(t, handled)
	require.NotNil(t, cmd)
	assert.Equal(t, []DismissReason{ReasonCloseControl, ReasonEscape}, rec.reasons)
}

func TestControllerSetOnDismissReregisters(t *testing.T) {
	c, d, clock, rec := newTestController(t)
	c.SetActive(&itemX)
	settle(c, clock)

	var got []DismissReason
	c.SetOnDismiss(func(r DismissReason) tea.Cmd {
		got = append(got, r)
		return nil
	})
	assert.Equal(t, 1, d.Len(), "old listener must be released")

	d.Dispatch(escKey())
	assert.Equal(t, []DismissReason{ReasonEscape}, got)
	assert.Empty(t, rec.reasons)
}

func TestControllerDismissRetriesWhenCallbackReturnsNil(t *testing.T) {
	c, _, clock, _ := newTestController(t)
	c.SetActive(&itemX)
	settle(c, clock)

	calls := 0
	c.SetOnDismiss(func(DismissReason) tea.Cmd {
		calls++
		return nil
	})

	assert.Nil(t, c.Dismiss(ReasonEscape))
	assert.Nil(t, c.Dismiss(ReasonBackdrop))
	assert.Equal(t, 2, calls)
	assert.True(t, c.IsOpen())
}

func TestControllerSetOnDismissWhileClosed(t *testing.T) {
	c, d, _, _ := newTestController(t)

	c.SetOnDismiss(nil)
	assert.Equal(t, 0, d.Len())
	assert.False(t, c.Listening())
}

func TestControllerTeardown(t *testing.T) {
	c, d, clock, rec := newTestController(t)
	c.SetActive(&itemX)
	settle(c, clock)

	c.Teardown()
	assert.False(t, c.Listening())
	assert.Equal(t, 0, d.Len())

	_, handled := d.Dispatch(escKey())
	assert.False(t, handled)
	assert.Empty(t, rec.reasons)

	// safe to call twice
	c.Teardown()
}

func TestControllerCloseKey(t *testing.T) {
	c, _, clock, rec := newTestController(t)
	c.SetActive(&itemX)
	settle(c, clock)

	cmd := c.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	require.NotNil(t, cmd)
	assert.Equal(t, DismissMsg{Reason: ReasonCloseControl}, cmd())
	assert.Equal(t, []DismissReason{ReasonCloseControl}, rec.reasons)
}

func TestControllerMouse(t *testing.T) {
	press := func(x, y int) tea.MouseMsg {
		return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	}

	t.Run("backdrop", func(t *testing.T) {
		c, _, clock, rec := newTestController(t)
		c.SetActive(&itemX)
		settle(c, clock)

		require.NotNil(t, c.Update(press(0, 0)))
		assert.Equal(t, []DismissReason{ReasonBackdrop}, rec.reasons)
	})

	t.Run("close control", func(t *testing.T) {
		c, _, clock, rec := newTestController(t)
		c.SetActive(&itemX)
		settle(c, clock)

		_, _, closeCtl := c.layout(1)
		require.NotNil(t, c.Update(press(closeCtl.x+1, closeCtl.y)))
		assert.Equal(t, []DismissReason{ReasonCloseControl}, rec.reasons)
	})

	t.Run("inside panel", func(t *testing.T) {
		c, _, clock, rec := newTestController(t)
		c.SetActive(&itemX)
		settle(c, clock)

		_, panel, _ := c.layout(1)
		assert.Nil(t, c.Update(press(panel.x+3, panel.y+panel.h-2)))
		assert.Empty(t, rec.reasons)
	})

	t.Run("ignored while closed", func(t *testing.T) {
		c, _, _, rec := newTestController(t)

		assert.Nil(t, c.Update(press(0, 0)))
		assert.Empty(t, rec.reasons)
	})
}

func TestControllerWithoutAnimation(t *testing.T) {
	c, d, _, _ := newTestController(t, WithDuration(0))

	assert.Nil(t, c.SetActive(&itemX))
	assert.Equal(t, PhaseVisible, c.Phase())
	assert.Equal(t, 1, d.Len())

	assert.Nil(t, c.SetActive(nil))
	assert.Equal(t, PhaseIdle, c.Phase())
	assert.Equal(t, 0, d.Len())
	_, ok := c.Item()
	assert.False(t, ok)
}

func TestControllerRequiredFieldsOnly(t *testing.T) {
	c, _, clock, _ := newTestController(t)
	minimal := domain.DetailItem{Title: "Only", Details: []string{"one"}}
	c.SetActive(&minimal)
	settle(c, clock)

	view := ansi.Strip(c.View(""))
	assert.Contains(t, view, "Only")
	assert.Contains(t, view, "• one")
}

func TestControllerScrollsLongBody(t *testing.T) {
	c, _, clock, _ := newTestController(t)
	c.SetSize(100, 16)

	long := domain.DetailItem{Title: "Long"}
	for i := 0; i < 30; i++ {
		long.Details = append(long.Details, "entry "+string(rune('A'+i%26)))
	}
	c.SetActive(&long)
	settle(c, clock)

	require.True(t, c.Scrollable())
	assert.Equal(t, 0, c.body.YOffset)

	c.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, c.body.YOffset)

	// switching items resets the scroll position
	c.SetActive(&itemY)
	assert.Equal(t, 0, c.body.YOffset)
}

func TestControllerFitsShortTerminal(t *testing.T) {
	c, _, clock, _ := newTestController(t)
	c.SetSize(100, 10)

	long := domain.DetailItem{Title: "Long"}
	for i := 0; i < 12; i++ {
		long.Details = append(long.Details, "entry "+string(rune('A'+i)))
	}
	c.SetActive(&long)
	settle(c, clock)

	require.True(t, c.Scrollable())
	assert.Equal(t, 1, c.body.Height)

	background := strings.Repeat("\n", 9)
	lines := strings.Split(c.View(background), "\n")
	assert.Len(t, lines, 10, "the panel must not run past the last row")
}

func TestControllerCopiesItem(t *testing.T) {
	c, _, _, _ := newTestController(t)
	item := domain.DetailItem{Title: "Mutable", Details: []string{"before"}}
	c.SetActive(&item)

	item.Details[0] = "after"
	got, ok := c.Item()
	require.True(t, ok)
	assert.Equal(t, []string{"before"}, got.Details)
}

func TestStateStrings(t *testing.T) {
	assert.Equal(t, "closed", Closed.String())
	assert.Equal(t, "open", Open.String())
	assert.Equal(t, "exiting", PhaseExiting.String())
	assert.Equal(t, "backdrop", ReasonBackdrop.String())
	assert.Equal(t, "unknown", State(9).String())
}
