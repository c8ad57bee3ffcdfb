// Package navigation tracks which part of the page holds keyboard focus.
// The page is a ring of focus targets (the link row and each card
// section); tab and shift+tab walk the ring and wrap at either end.
package navigation

// Target names a focusable part of the page
type Target int

const (
	TargetLinks Target = iota
	TargetExperience
	TargetProjects
)

// String returns the display name of the target
func (t Target) String() string {
	switch t {
	case TargetLinks:
		return "Links"
	case TargetExperience:
		return "Experience"
	case TargetProjects:
		return "Projects"
	default:
		return "Unknown"
	}
}

// DefaultRing is the page's focus order, top to bottom
var DefaultRing = []Target{TargetLinks, TargetExperience, TargetProjects}

// Service manages the focus ring
type Service struct {
	ring    []Target
	current int
	skip    func(Target) bool
}

// NewService creates a focus ring over targets, focused on the first one.
// An empty ring falls back to DefaultRing.
func NewService(targets ...Target) *Service {
	if len(targets) == 0 {
		targets = DefaultRing
	}
	return &Service{ring: append([]Target(nil), targets...)}
}

// SetSkip sets a predicate for targets that cannot take focus right now,
// such as a section with no cards. Next and Prev step over them.
func (s *Service) SetSkip(skip func(Target) bool) {
	s.skip = skip
}

// Current returns the focused target
func (s *Service) Current() Target {
	return s.ring[s.current]
}

// Is reports whether t has focus
func (s *Service) Is(t Target) bool {
	return s.Current() == t
}

// Next moves focus forward, wrapping at the end
func (s *Service) Next() Target {
	return s.step(1)
}

// Prev moves focus backward, wrapping at the start
func (s *Service) Prev() Target {
	return s.step(-1)
}

// Focus moves focus to t. It reports false, leaving focus alone, when t
// is not in the ring.
func (s *Service) Focus(t Target) bool {
	for i, r := range s.ring {
		if r == t {
			s.current = i
			return true
		}
	}
	return false
}

// Len returns the number of targets in the ring
func (s *Service) Len() int {
	return len(s.ring)
}

func (s *Service) step(delta int) Target {
	n := len(s.ring)
	for i := 1; i <= n; i++ {
		next := ((s.current+delta*i)%n + n) % n
		if s.skip != nil && s.skip(s.ring[next]) {
			continue
		}
		s.current = next
		break
	}
	return s.Current()
}
