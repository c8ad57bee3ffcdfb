// Package grid renders a titled collection of DetailItems as clickable
// summary cards. A Grid never owns selection state: activating a card only
// invokes the ActivateFunc it was constructed with.
package grid

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/friskycodeur/folio/internal/domain"
	"github.com/friskycodeur/folio/internal/ui/styles"
)

const (
	// WideBreakpoint is the width at which the grid switches to two columns
	WideBreakpoint = 80
	gap            = 2
	rowGap         = 1
)

// ActivateFunc is invoked exactly once per card activation
type ActivateFunc func(item domain.DetailItem) tea.Cmd

// ActivateMsg asks the page to make Item the active item
type ActivateMsg struct {
	Item domain.DetailItem
}

// Activate is the default ActivateFunc: it emits an ActivateMsg
func Activate(item domain.DetailItem) tea.Cmd {
	return func() tea.Msg { return ActivateMsg{Item: item} }
}

// Rect is a cell's position relative to the grid's top-left corner
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether (x, y) lies inside r
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

type layout struct {
	heading string
	rows    []string
	cells   []Rect
	height  int
}

// Grid is the card grid presenter for one section
type Grid struct {
	title    string
	items    []domain.DetailItem
	activate ActivateFunc
	styles   *styles.Styles

	width   int
	focused bool
	cursor  int
}

// New creates a grid over items, kept in the given order
func New(title string, items []domain.DetailItem, activate ActivateFunc, s *styles.Styles) *Grid {
	if activate == nil {
		activate = Activate
	}
	owned := make([]domain.DetailItem, len(items))
	for i, item := range items {
		owned[i] = item.Clone()
	}
	return &Grid{
		title:    title,
		items:    owned,
		activate: activate,
		styles:   s,
		width:    WideBreakpoint,
	}
}

// Title returns the section title
func (g *Grid) Title() string { return g.title }

// Len returns the number of cards
func (g *Grid) Len() int { return len(g.items) }

// Cursor returns the index of the focused card
func (g *Grid) Cursor() int { return g.cursor }

// Focused reports whether the grid has keyboard focus
func (g *Grid) Focused() bool { return g.focused }

// SetFocused gives or takes keyboard focus
func (g *Grid) SetFocused(focused bool) { g.focused = focused }

// SetWidth sets the available width
func (g *Grid) SetWidth(width int) { g.width = max(width, 1) }

// SetCursor moves the focus to index, clamped to the card range
func (g *Grid) SetCursor(index int) {
	if len(g.items) == 0 {
		g.cursor = 0
		return
	}
	g.cursor = min(max(index, 0), len(g.items)-1)
}

// Items returns a copy of the cards' items in display order
func (g *Grid) Items() []domain.DetailItem {
	out := make([]domain.DetailItem, len(g.items))
	for i, item := range g.items {
		out[i] = item.Clone()
	}
	return out
}

// Columns returns how many cards share a row at the current width
func (g *Grid) Columns() int {
	if g.width >= WideBreakpoint {
		return 2
	}
	return 1
}

// CardWidth returns the outer width of a single card
func (g *Grid) CardWidth() int {
	cols := g.Columns()
	return max((g.width-gap*(cols-1))/cols, 1)
}

// Move shifts the focus by dx columns and dy rows. It reports false when
// the move would leave the grid, so the caller can hand focus on.
func (g *Grid) Move(dx, dy int) bool {
	if len(g.items) == 0 {
		return false
	}
	cols := g.Columns()
	row, col := g.cursor/cols, g.cursor%cols

	if dx != 0 {
		col += dx
		idx := row*cols + col
		if col < 0 || col >= cols || idx >= len(g.items) {
			return false
		}
		g.cursor = idx
		return true
	}

	if dy != 0 {
		row += dy
		first := row * cols
		if row < 0 || first >= len(g.items) {
			return false
		}
		g.cursor = min(first+col, len(g.items)-1)
		return true
	}

	return false
}

// ActivateFocused activates the focused card
func (g *Grid) ActivateFocused() tea.Cmd {
	if len(g.items) == 0 {
		return nil
	}
	return g.activate(g.items[g.cursor].Clone())
}

// ActivateAt activates the card under (x, y), relative to the grid origin.
// A miss returns nil and invokes nothing.
func (g *Grid) ActivateAt(x, y int) tea.Cmd {
	idx, ok := g.HitTest(x, y)
	if !ok {
		return nil
	}
	g.cursor = idx
	return g.activate(g.items[idx].Clone())
}

// HitTest returns the index of the card under (x, y)
func (g *Grid) HitTest(x, y int) (int, bool) {
	for i, r := range g.layout().cells {
		if r.Contains(x, y) {
			return i, true
		}
	}
	return 0, false
}

// CardRect returns the position of card index
func (g *Grid) CardRect(index int) (Rect, bool) {
	cells := g.layout().cells
	if index < 0 || index >= len(cells) {
		return Rect{}, false
	}
	return cells[index], true
}

// Height returns the rendered height in lines
func (g *Grid) Height() int {
	return g.layout().height
}

// View renders the heading and the cards
func (g *Grid) View() string {
	l := g.layout()
	parts := append([]string{l.heading}, l.rows...)
	return strings.Join(parts, "\n")
}

func (g *Grid) layout() layout {
	heading := g.styles.Heading(g.focused).Render(g.title)
	l := layout{heading: heading}
	y := lipgloss.Height(heading)

	cols := g.Columns()
	cardW := g.CardWidth()
	spacer := strings.Repeat(" ", gap)

	for start := 0; start < len(g.items); start += cols {
		end := min(start+cols, len(g.items))

		// Equalise heights within the row
		innerH := 0
		for i := start; i < end; i++ {
			natural := RenderCard(g.items[i], g.isCursor(i), cardW, 0, g.styles)
			innerH = max(innerH, lipgloss.Height(natural)-g.styles.Card.GetVerticalBorderSize())
		}

		var cards []string
		x := 0
		rowH := 0
		for i := start; i < end; i++ {
			card := RenderCard(g.items[i], g.isCursor(i), cardW, innerH, g.styles)
			h := lipgloss.Height(card)
			rowH = max(rowH, h)
			l.cells = append(l.cells, Rect{X: x, Y: y, W: cardW, H: h})
			if len(cards) > 0 {
				cards = append(cards, spacer)
			}
			cards = append(cards, card)
			x += cardW + gap
		}

		row := lipgloss.JoinHorizontal(lipgloss.Top, cards...)
		if end < len(g.items) {
			row += strings.Repeat("\n", rowGap)
		}
		l.rows = append(l.rows, row)
		y += rowH
		if end < len(g.items) {
			y += rowGap
		}
	}

	l.height = y
	return l
}

func (g *Grid) isCursor(i int) bool {
	return g.focused && i == g.cursor
}
