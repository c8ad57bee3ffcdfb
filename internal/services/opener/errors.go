package opener

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupported is returned when the platform has no known opener
	ErrUnsupported = errors.New("no opener for this platform")
	// ErrMissingFile is returned when a local document link points nowhere
	ErrMissingFile = errors.New("file not found")
	// ErrEmptyTarget is returned for links without a target
	ErrEmptyTarget = errors.New("empty link target")
)

// OpenError records a failed open or copy of a link target
type OpenError struct {
	Op     string // "open" or "copy"
	Target string
	Err    error
}

func (e *OpenError) Error() string {
	if e.Target == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Target, e.Err)
}

func (e *OpenError) Unwrap() error {
	return e.Err
}
