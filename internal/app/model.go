// Package app contains the page model: the top-level Bubble Tea program
// that lays out the hero, the card sections and the footer, owns the
// active item and drives the detail overlay.
package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/friskycodeur/folio/internal/config"
	"github.com/friskycodeur/folio/internal/content"
	"github.com/friskycodeur/folio/internal/domain"
	"github.com/friskycodeur/folio/internal/services/navigation"
	"github.com/friskycodeur/folio/internal/services/opener"
	"github.com/friskycodeur/folio/internal/types"
	"github.com/friskycodeur/folio/internal/ui/grid"
	"github.com/friskycodeur/folio/internal/ui/hero"
	"github.com/friskycodeur/folio/internal/ui/keys"
	"github.com/friskycodeur/folio/internal/ui/overlay"
	"github.com/friskycodeur/folio/internal/ui/styles"
)

// LinkOpener opens or copies a profile link's target
type LinkOpener interface {
	Open(ctx context.Context, link domain.Link) error
	Copy(link domain.Link) error
}

// Model is the page
type Model struct {
	// Content
	meta     domain.Metadata
	sections map[navigation.Target]*grid.Grid
	hero     *hero.Hero

	// Active item and its presentation
	selection  types.Selection
	dispatcher *keys.Dispatcher
	controller *overlay.Controller

	// Focus and scrolling
	focus *navigation.Service
	page  viewport.Model

	// Toasts
	toasts      []types.Toast
	toastTicker bool

	// Terminal size
	width  int
	height int

	showHelp bool

	styles *styles.Styles
	config *config.Config
	opener LinkOpener
	now    func() time.Time
	logger *slog.Logger
}

// Option configures a Model
type Option func(*Model)

// WithLogger sets the model's logger
func WithLogger(logger *slog.Logger) Option {
	return func(m *Model) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithOpener replaces the link opener
func WithOpener(o LinkOpener) Option {
	return func(m *Model) {
		if o != nil {
			m.opener = o
		}
	}
}

// WithClock replaces time.Now for toasts, the footer year and animations
func WithClock(now func() time.Time) Option {
	return func(m *Model) {
		if now != nil {
			m.now = now
		}
	}
}

// WithSections replaces the registry's experience and project items
func WithSections(experience, projects []domain.DetailItem) Option {
	return func(m *Model) {
		m.sections[navigation.TargetExperience] = grid.New("Experience", experience, grid.Activate, m.styles)
		m.sections[navigation.TargetProjects] = grid.New("Projects", projects, grid.Activate, m.styles)
	}
}

// New creates the page model with the given config
func New(cfg *config.Config, opts ...Option) Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	s := styles.New()

	m := Model{
		meta:       content.Metadata(),
		sections:   make(map[navigation.Target]*grid.Grid, 2),
		selection:  types.Selection{},
		dispatcher: keys.NewDispatcher(),
		focus:      navigation.NewService(),
		styles:     s,
		config:     cfg,
		now:        time.Now,
		logger:     slog.Default(),
		width:      80,
		height:     24,
	}
	for _, sec := range content.Sections() {
		switch sec.Collection {
		case content.CollectionExperience:
			m.sections[navigation.TargetExperience] = grid.New(sec.Name, sec.Items, grid.Activate, s)
		case content.CollectionProjects:
			m.sections[navigation.TargetProjects] = grid.New(sec.Name, sec.Items, grid.Activate, s)
		}
	}
	for _, opt := range opts {
		opt(&m)
	}
	if m.opener == nil {
		m.opener = opener.NewService(m.logger)
	}

	profile := content.WithResume(content.Profile(), cfg.Content.ResumePath)
	m.hero = hero.New(profile, s, cfg.UI.MarkdownStyle)

	m.controller = overlay.New(m.dispatcher, s,
		overlay.WithDuration(cfg.Duration()),
		overlay.WithFrameRate(cfg.UI.FPS),
		overlay.WithClock(m.now),
		overlay.WithLogger(m.logger),
	)

	sections := m.sections
	m.focus.SetSkip(func(t navigation.Target) bool {
		if t == navigation.TargetLinks {
			return len(profile.Links) == 0
		}
		g := sections[t]
		return g == nil || g.Len() == 0
	})
	if len(profile.Links) == 0 {
		m.focus.Next()
	}

	m.page = viewport.New(m.width, m.pageHeight())
	m.applyFocus()
	m.refresh()
	return m
}

// Init sets the terminal window title
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle(m.meta.Title)
}

// Selection returns the active item, if any
func (m Model) Selection() (domain.DetailItem, bool) {
	return m.selection.Active()
}

// Controller exposes the detail overlay
func (m Model) Controller() *overlay.Controller {
	return m.controller
}

// Dispatcher exposes the document-level key dispatcher
func (m Model) Dispatcher() *keys.Dispatcher {
	return m.dispatcher
}

// Focus returns the focused part of the page
func (m Model) Focus() navigation.Target {
	return m.focus.Current()
}

// Toasts returns the toasts currently queued
func (m Model) Toasts() []types.Toast {
	return m.toasts
}

// Mode returns what the page is doing
func (m Model) Mode() types.Mode {
	if m.controller.IsOpen() {
		return types.ModeDetail
	}
	return types.ModeBrowse
}

// Teardown releases resources held on behalf of the terminal
func (m Model) Teardown() {
	m.controller.Teardown()
}

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.controller.SetSize(msg.Width, msg.Height)
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case grid.ActivateMsg:
		return m.activate(msg.Item)

	case overlay.DismissMsg:
		return m.dismiss(msg.Reason)

	case linkResultMsg:
		return m.handleLinkResult(msg)

	case toastTickMsg:
		m.toasts = types.PruneToasts(m.toasts, m.now())
		if len(m.toasts) == 0 {
			m.toastTicker = false
			return m, nil
		}
		return m, toastTick()
	}

	// animation frames and anything else the overlay understands
	return m, m.controller.Update(msg)
}

// activate makes item the active item and shows it
func (m Model) activate(item domain.DetailItem) (tea.Model, tea.Cmd) {
	m.selection.Set(item)
	m.logger.Info("item activated", "title", item.Title)
	cmd := m.controller.SetActive(m.selection.Ref())
	return m, cmd
}

// dismiss clears the active item and closes the overlay
func (m Model) dismiss(reason overlay.DismissReason) (tea.Model, tea.Cmd) {
	if !m.selection.Clear() {
		return m, nil
	}
	m.logger.Info("item dismissed", "reason", reason.String())
	return m, m.controller.SetActive(nil)
}

// addToast queues a toast and makes sure the expiry ticker runs
func (m *Model) addToast(level types.ToastLevel, message string) tea.Cmd {
	m.toasts = append(m.toasts, types.Toast{
		Level:   level,
		Message: message,
		Expires: m.now().Add(toastLifetime),
	})
	if m.toastTicker {
		return nil
	}
	m.toastTicker = true
	return toastTick()
}
