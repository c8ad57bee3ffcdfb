package domain

import (
	"errors"
	"fmt"
	"strings"
)

// DetailItem is the record shared by every card and by the detail overlay.
// Experience and project entries use the same shape.
type DetailItem struct {
	Title    string   `json:"title"`
	Subtitle string   `json:"subtitle,omitempty"`
	Icon     string   `json:"icon,omitempty"`
	Metrics  string   `json:"metrics,omitempty"`
	Details  []string `json:"details"`
}

// Validate checks the item against the schema. All defects are reported,
// each as a *ValidationError joined with errors.Join.
func (d DetailItem) Validate() error {
	var errs []error

	if strings.TrimSpace(d.Title) == "" {
		errs = append(errs, &ValidationError{Index: -1, Field: "title", Err: ErrEmptyTitle})
	}

	seen := make(map[string]int, len(d.Details))
	for i, bullet := range d.Details {
		field := fmt.Sprintf("details[%d]", i)
		key := strings.TrimSpace(bullet)
		if key == "" {
			errs = append(errs, &ValidationError{Index: -1, Field: field, Err: ErrEmptyDetail})
			continue
		}
		if first, dup := seen[key]; dup {
			errs = append(errs, &ValidationError{
				Index: -1,
				Field: field,
				Err:   fmt.Errorf("%w (same as details[%d])", ErrDuplicateDetail, first),
			})
			continue
		}
		seen[key] = i
	}

	return errors.Join(errs...)
}

// DisplayTitle returns the title prefixed with the icon when one is set
func (d DetailItem) DisplayTitle() string {
	if d.Icon == "" {
		return d.Title
	}
	return d.Icon + " " + d.Title
}

// Clone returns a deep copy so callers cannot alias the details slice
func (d DetailItem) Clone() DetailItem {
	out := d
	if d.Details != nil {
		out.Details = append([]string(nil), d.Details...)
	}
	return out
}

// Equal reports whether two items carry the same content
func (d DetailItem) Equal(other DetailItem) bool {
	if d.Title != other.Title ||
		d.Subtitle != other.Subtitle ||
		d.Icon != other.Icon ||
		d.Metrics != other.Metrics ||
		len(d.Details) != len(other.Details) {
		return false
	}
	for i := range d.Details {
		if d.Details[i] != other.Details[i] {
			return false
		}
	}
	return true
}
