// Package keys holds the page's key bindings and the process-wide key
// dispatcher. Components that need to hear every key press (the detail
// overlay's Escape handler) register a listener here for as long as they
// are mounted and release it when they go away.
package keys

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Handler reacts to a key press that matched its binding
type Handler func(msg tea.KeyMsg) tea.Cmd

type listener struct {
	id      uint64
	binding key.Binding
	handler Handler
}

// Dispatcher is the document-level key listener registry.
// Listeners are tried most recent first; the first match handles the key.
type Dispatcher struct {
	listeners []listener
	nextID    uint64
}

// NewDispatcher creates an empty dispatcher
func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// Listen attaches fn for keys matching binding. The returned release
// detaches it; calling release more than once is a no-op.
func (d *Dispatcher) Listen(binding key.Binding, fn Handler) (release func()) {
	d.nextID++
	id := d.nextID
	d.listeners = append(d.listeners, listener{id: id, binding: binding, handler: fn})

	released := false
	return func() {
		if released {
			return
		}
		released = true
		d.remove(id)
	}
}

// Dispatch offers msg to the attached listeners. It reports whether one
// of them handled the key.
func (d *Dispatcher) Dispatch(msg tea.KeyMsg) (tea.Cmd, bool) {
	for i := len(d.listeners) - 1; i >= 0; i-- {
		l := d.listeners[i]
		if !key.Matches(msg, l.binding) {
			continue
		}
		return l.handler(msg), true
	}
	return nil, false
}

// Len returns the number of attached listeners
func (d *Dispatcher) Len() int {
	return len(d.listeners)
}

func (d *Dispatcher) remove(id uint64) {
	for i, l := range d.listeners {
		if l.id == id {
			d.listeners = append(d.listeners[:i], d.listeners[i+1:]...)
			return
		}
	}
}
