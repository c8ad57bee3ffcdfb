package domain

import "strings"

// LinkKind identifies an outbound link on the profile
type LinkKind string

const (
	LinkLinkedIn LinkKind = "linkedin"
	LinkGitHub   LinkKind = "github"
	LinkDocument LinkKind = "document"
	LinkEmail    LinkKind = "email"
)

// Icon returns a terminal-friendly glyph for the link kind
func (k LinkKind) Icon() string {
	switch k {
	case LinkLinkedIn:
		return "in"
	case LinkGitHub:
		return "⌥"
	case LinkDocument:
		return "▤"
	case LinkEmail:
		return "✉"
	default:
		return "→"
	}
}

// Link is a static outbound link. It carries no state.
type Link struct {
	Kind  LinkKind
	Label string
	Href  string
}

// Target returns what should be handed to the OS opener.
// Email links become mailto: URLs.
func (l Link) Target() string {
	if l.Kind == LinkEmail && !strings.HasPrefix(l.Href, "mailto:") {
		return "mailto:" + l.Href
	}
	return l.Href
}

// Profile is the hero section content
type Profile struct {
	Name     string
	Headline string
	Summary  string // Markdown
	Links    []Link
}

// Metadata is set once at startup: window title and CLI description
type Metadata struct {
	Title       string
	Description string
}
