// Package types contains shared types used across the application.
package types

// Mode represents what the page is currently doing
type Mode int

const (
	ModeBrowse Mode = iota
	ModeDetail
)

// String returns the string representation of the mode
func (m Mode) String() string {
	switch m {
	case ModeBrowse:
		return "BROWSE"
	case ModeDetail:
		return "DETAIL"
	default:
		return "UNKNOWN"
	}
}
