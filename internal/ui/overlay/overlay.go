// Package overlay implements the detail overlay: a dimmed backdrop with a
// centred panel that expands the page's active item.
//
// The Controller mirrors the page's selection state. It is Closed while no
// item is active and Open while one is. Opening plays a short entry
// animation, closing plays the mirrored exit before the panel unmounts.
// While Open, the controller holds an Escape listener on the shared key
// dispatcher and releases it on every exit path.
package overlay

import "time"

// State is the controller's logical state
type State int

const (
	Closed State = iota
	Open
)

// String returns the string representation of the state
func (s State) String() string {
	switch s {
	case Closed:
		return "closed"
	case Open:
		return "open"
	default:
		return "unknown"
	}
}

// Phase is the animation phase, orthogonal to State
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseEntering
	PhaseVisible
	PhaseExiting
)

// String returns the string representation of the phase
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseEntering:
		return "entering"
	case PhaseVisible:
		return "visible"
	case PhaseExiting:
		return "exiting"
	default:
		return "unknown"
	}
}

// DismissReason records what asked the overlay to close
type DismissReason int

const (
	ReasonEscape DismissReason = iota
	ReasonCloseControl
	ReasonBackdrop
)

// String returns the string representation of the reason
func (r DismissReason) String() string {
	switch r {
	case ReasonEscape:
		return "escape"
	case ReasonCloseControl:
		return "close-control"
	case ReasonBackdrop:
		return "backdrop"
	default:
		return "unknown"
	}
}

// DismissMsg asks the page to clear the active item
type DismissMsg struct {
	Reason DismissReason
}

// frameMsg advances a running animation. Frames whose tag does not match
// the controller's current transition are stale and dropped.
type frameMsg struct {
	tag int
	at  time.Time
}

// Defaults for the entry/exit animation
const (
	DefaultDuration  = 200 * time.Millisecond
	DefaultFrameRate = 60
)
