package types

import "github.com/friskycodeur/folio/internal/domain"

// Selection is the single active-item slot of the page.
// The zero value is empty. Only the page model holds one; the card grids
// write to it through their activate callback and the overlay reads it.
type Selection struct {
	item   domain.DetailItem
	active bool
}

// Set makes item the active item, replacing any previous one
func (s *Selection) Set(item domain.DetailItem) {
	s.item = item.Clone()
	s.active = true
}

// Clear empties the slot. It reports whether anything was active.
func (s *Selection) Clear() bool {
	was := s.active
	s.item = domain.DetailItem{}
	s.active = false
	return was
}

// Active returns the active item, if any
func (s Selection) Active() (domain.DetailItem, bool) {
	if !s.active {
		return domain.DetailItem{}, false
	}
	return s.item.Clone(), true
}

// Ref returns a pointer to a copy of the active item, or nil when empty
func (s Selection) Ref() *domain.DetailItem {
	item, ok := s.Active()
	if !ok {
		return nil
	}
	return &item
}

// IsEmpty reports whether no item is active
func (s Selection) IsEmpty() bool {
	return !s.active
}
