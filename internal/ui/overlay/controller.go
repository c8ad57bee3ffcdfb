package overlay

import (
	"log/slog"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/friskycodeur/folio/internal/domain"
	"github.com/friskycodeur/folio/internal/ui/keys"
	"github.com/friskycodeur/folio/internal/ui/styles"
)

// DismissFunc is invoked when the viewer asks to close the overlay. The
// returned command should lead the page to clear its active item. Further
// requests are ignored until the item changes, unless the function returns
// nil, in which case the next request invokes it again.
type DismissFunc func(reason DismissReason) tea.Cmd

// EmitDismiss is the default DismissFunc: it sends a DismissMsg
func EmitDismiss(reason DismissReason) tea.Cmd {
	return func() tea.Msg { return DismissMsg{Reason: reason} }
}

// Option configures a Controller
type Option func(*Controller)

// WithDuration sets the entry and exit animation length.
// Zero or negative disables the animation.
func WithDuration(d time.Duration) Option {
	return func(c *Controller) { c.duration = d }
}

// WithFrameRate sets how many animation frames are scheduled per second
func WithFrameRate(fps int) Option {
	return func(c *Controller) {
		if fps > 0 {
			c.fps = fps
		}
	}
}

// WithClock replaces time.Now
func WithClock(now func() time.Time) Option {
	return func(c *Controller) {
		if now != nil {
			c.now = now
		}
	}
}

// WithOnDismiss sets the dismissal callback
func WithOnDismiss(fn DismissFunc) Option {
	return func(c *Controller) {
		if fn != nil {
			c.onDismiss = fn
		}
	}
}

// WithLogger sets the controller's logger
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// rect is a screen region in cells
type rect struct {
	x, y, w, h int
}

func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

// Controller presents the active item as an overlay and reports dismissal
// requests. It does not own the selection: the page tells it what is
// active through SetActive and clears the selection when it receives the
// dismissal callback's message.
type Controller struct {
	dispatcher *keys.Dispatcher
	styles     *styles.Styles
	logger     *slog.Logger
	onDismiss  DismissFunc
	now        func() time.Time
	duration   time.Duration
	fps        int

	state   State
	phase   Phase
	item    *domain.DetailItem // mounted item, kept through the exit animation
	anim    transition
	tag     int
	pending bool // a dismissal was requested and not yet acted on
	release func()

	width  int
	height int
	body   viewport.Model
}

// New creates a Closed controller that registers its Escape listener on
// dispatcher while Open.
func New(dispatcher *keys.Dispatcher, s *styles.Styles, opts ...Option) *Controller {
	if s == nil {
		s = styles.New()
	}
	c := &Controller{
		dispatcher: dispatcher,
		styles:     s,
		logger:     slog.Default(),
		onDismiss:  EmitDismiss,
		now:        time.Now,
		duration:   DefaultDuration,
		fps:        DefaultFrameRate,
		width:      80,
		height:     24,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.body = viewport.New(PanelWidth(c.width)-frameWidth, 1)
	return c
}

// State returns the logical state
func (c *Controller) State() State { return c.state }

// Phase returns the animation phase
func (c *Controller) Phase() Phase { return c.phase }

// IsOpen reports whether an item is active
func (c *Controller) IsOpen() bool { return c.state == Open }

// Listening reports whether the Escape listener is attached
func (c *Controller) Listening() bool { return c.release != nil }

// Item returns the mounted item, which during an exit is the item being
// closed. The second result is false when nothing is mounted.
func (c *Controller) Item() (domain.DetailItem, bool) {
	if c.item == nil {
		return domain.DetailItem{}, false
	}
	return c.item.Clone(), true
}

// Progress returns the linear presence in [0, 1]: 0 unmounted, 1 fully shown
func (c *Controller) Progress() float64 {
	switch c.phase {
	case PhaseEntering, PhaseExiting:
		return c.anim.progress(c.now())
	case PhaseVisible:
		return 1
	default:
		return 0
	}
}

// SetActive brings the overlay in line with the page's active item.
// nil closes it. The returned command drives the animation.
func (c *Controller) SetActive(item *domain.DetailItem) tea.Cmd {
	if item == nil {
		return c.close()
	}
	return c.open(*item)
}

func (c *Controller) open(item domain.DetailItem) tea.Cmd {
	c.pending = false
	c.attach()

	if c.state == Open {
		// swap content in place, the entry is not replayed
		if c.item == nil || !c.item.Equal(item) {
			c.mount(item)
			c.logger.Debug("overlay content swapped", "title", item.Title)
		}
		return nil
	}

	c.state = Open
	p := c.Progress()
	if c.item == nil || !c.item.Equal(item) {
		c.mount(item)
	}
	c.logger.Debug("overlay opened", "title", item.Title, "from", p)

	if c.duration <= 0 {
		c.phase = PhaseVisible
		return nil
	}
	c.phase = PhaseEntering
	return c.begin(p, 1)
}

func (c *Controller) close() tea.Cmd {
	if c.state == Closed {
		return nil
	}
	c.state = Closed
	c.pending = false
	c.detach()

	p := c.Progress()
	c.logger.Debug("overlay closing", "title", c.item.Title, "from", p)

	if c.duration <= 0 {
		c.unmount()
		return nil
	}
	c.phase = PhaseExiting
	return c.begin(p, 0)
}

// begin starts a transition from the current presence. Starting from a
// partial presence takes the matching share of the full duration.
func (c *Controller) begin(from, to float64) tea.Cmd {
	c.tag++
	c.anim = transition{
		from:     from,
		to:       to,
		start:    c.now(),
		duration: time.Duration(math.Abs(to-from) * float64(c.duration)),
	}
	return c.frame()
}

func (c *Controller) frame() tea.Cmd {
	tag := c.tag
	return tea.Tick(time.Second/time.Duration(c.fps), func(t time.Time) tea.Msg {
		return frameMsg{tag: tag, at: t}
	})
}

func (c *Controller) advance(msg frameMsg) tea.Cmd {
	if msg.tag != c.tag {
		return nil
	}
	if c.phase != PhaseEntering && c.phase != PhaseExiting {
		return nil
	}
	if !c.anim.done(c.now()) {
		return c.frame()
	}

	if c.phase == PhaseEntering {
		c.phase = PhaseVisible
		return nil
	}
	c.unmount()
	return nil
}

func (c *Controller) mount(item domain.DetailItem) {
	clone := item.Clone()
	c.item = &clone
	c.layoutBody()
	c.body.GotoTop()
}

func (c *Controller) unmount() {
	c.phase = PhaseIdle
	c.item = nil
	c.body.SetContent("")
	c.logger.Debug("overlay unmounted")
}

// Dismiss requests closure. It invokes the dismissal callback at most once
// per opening (see DismissFunc) and is a no-op while Closed.
func (c *Controller) Dismiss(reason DismissReason) tea.Cmd {
	if c.state != Open || c.pending {
		return nil
	}
	c.pending = true
	c.logger.Debug("overlay dismiss requested", "reason", reason.String())
	cmd := c.onDismiss(reason)
	if cmd == nil {
		// nothing will act on the request
		c.pending = false
	}
	return cmd
}

// SetOnDismiss replaces the dismissal callback. An attached Escape
// listener is re-registered so it reaches the new callback.
func (c *Controller) SetOnDismiss(fn DismissFunc) {
	if fn == nil {
		fn = EmitDismiss
	}
	c.onDismiss = fn
	if c.release != nil {
		c.detach()
		c.attach()
	}
}

// Teardown releases the Escape listener regardless of state
func (c *Controller) Teardown() {
	c.detach()
}

func (c *Controller) attach() {
	if c.release != nil || c.dispatcher == nil {
		return
	}
	c.release = c.dispatcher.Listen(keys.Escape, func(tea.KeyMsg) tea.Cmd {
		return c.Dismiss(ReasonEscape)
	})
}

func (c *Controller) detach() {
	if c.release == nil {
		return
	}
	c.release()
	c.release = nil
}

// SetSize updates the terminal dimensions the overlay centres within
func (c *Controller) SetSize(width, height int) {
	c.width = width
	c.height = height
	if c.item != nil {
		c.layoutBody()
	}
}

// layoutBody sizes the scrollable body to the panel and terminal
func (c *Controller) layoutBody() {
	inner := c.innerWidth(1)
	ps := newPanelStyles(c.styles, 1)
	header := headerLines(*c.item, inner, ps)
	body := bodyLines(*c.item, inner, ps)

	avail := c.height - 2 - frameHeight - len(header) - 1
	h := max(min(len(body), avail), 1)

	offset := c.body.YOffset
	c.body.Width = inner
	c.body.Height = max(h, 1)
	c.body.SetContent(strings.Join(body, "\n"))
	c.body.SetYOffset(offset)
}

// Scrollable reports whether the body is taller than the space it has
func (c *Controller) Scrollable() bool {
	return c.item != nil && c.body.TotalLineCount() > c.body.Height
}

// Update handles animation frames, body scrolling and clicks. Escape is
// not handled here: it reaches the controller through the dispatcher.
func (c *Controller) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case frameMsg:
		return c.advance(msg)

	case tea.WindowSizeMsg:
		c.SetSize(msg.Width, msg.Height)
		return nil
	}

	if c.state != Open {
		return nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.Detail.CloseAlt) {
			return c.Dismiss(ReasonCloseControl)
		}
		var cmd tea.Cmd
		c.body, cmd = c.body.Update(msg)
		return cmd

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			return c.click(msg.X, msg.Y)
		}
		var cmd tea.Cmd
		c.body, cmd = c.body.Update(msg)
		return cmd
	}
	return nil
}

func (c *Controller) click(x, y int) tea.Cmd {
	_, panel, closeCtl := c.layout(c.eased())
	switch {
	case closeCtl.contains(x, y):
		return c.Dismiss(ReasonCloseControl)
	case !panel.contains(x, y):
		return c.Dismiss(ReasonBackdrop)
	}
	return nil
}

// eased returns the presence after easing
func (c *Controller) eased() float64 {
	return easeOutCubic(c.Progress())
}

func (c *Controller) innerWidth(scale float64) int {
	w := int(math.Round(float64(PanelWidth(c.width)) * scale))
	return max(w-frameWidth, 1)
}

// layout renders the panel at presence p and places it on screen. It also
// returns the panel's and close control's screen regions.
func (c *Controller) layout(p float64) (string, rect, rect) {
	scale := scaleAt(p)
	inner := c.innerWidth(scale)
	width := inner + frameWidth
	ps := newPanelStyles(c.styles, p)

	header := headerLines(*c.item, inner, ps)
	var body []string
	if inner == c.body.Width && p >= 1 {
		body = strings.Split(c.body.View(), "\n")
	} else {
		all := bodyLines(*c.item, inner, ps)
		from := min(c.body.YOffset, len(all))
		to := min(from+c.body.Height, len(all))
		body = all[from:to]
	}
	if c.Scrollable() {
		pct := int(math.Round(c.body.ScrollPercent() * 100))
		header[0] = c.scrollLabel(header[0], pct, inner, ps)
	}

	panel := framePanel(header, body, width, ps)
	h := lipgloss.Height(panel)
	x := max((c.width-width)/2, 0)
	y := max((c.height-h)/2, 0) + offsetAt(p)

	panelRect := rect{x: x, y: y, w: width, h: h}
	// the glyph sits inside the right border and padding on the label row;
	// the hit box is widened by one cell each side
	closeRect := rect{x: x + width - 4, y: y + 2, w: 3, h: 1}
	return panel, panelRect, closeRect
}

// scrollLabel puts the scroll position between the label and the close control
func (c *Controller) scrollLabel(row string, pct, inner int, ps panelStyles) string {
	label := ps.label.Render(Label)
	pos := ps.scroll.Render(strings.Repeat(" ", 2) + strconv.Itoa(pct) + "%")
	closeCtl := ps.close.Render(CloseGlyph)
	gap := inner - lipgloss.Width(label) - lipgloss.Width(pos) - lipgloss.Width(closeCtl)
	if gap < 1 {
		return row
	}
	return label + pos + strings.Repeat(" ", gap) + closeCtl
}

// View draws the overlay over background. When nothing is mounted the
// background is returned unchanged.
func (c *Controller) View(background string) string {
	if c.item == nil || c.phase == PhaseIdle {
		return background
	}
	p := c.eased()
	panel, r, _ := c.layout(p)
	return Composite(Dim(background, p), panel, r.x, r.y)
}
