package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	ErrEmptyTitle      = errors.New("title is empty")
	ErrEmptyDetail     = errors.New("detail bullet is empty")
	ErrDuplicateDetail = errors.New("detail bullet is duplicated")
	ErrUnknownSection  = errors.New("unknown section")
)

// ValidationError reports a content-authoring defect in a DetailItem
type ValidationError struct {
	Collection string // Registry collection: "experience", "projects"
	Index      int    // Position within the collection, -1 when unknown
	Field      string // Offending field: "title", "details[2]", ...
	Err        error  // Underlying sentinel
}

func (e *ValidationError) Error() string {
	if e.Collection != "" && e.Index >= 0 {
		return fmt.Sprintf("%s[%d] %s: %v", e.Collection, e.Index, e.Field, e.Err)
	}
	if e.Field != "" {
		return fmt.Sprintf("%s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("invalid item: %v", e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// At returns a copy of the error located at collection[index]
func (e *ValidationError) At(collection string, index int) *ValidationError {
	return &ValidationError{
		Collection: collection,
		Index:      index,
		Field:      e.Field,
		Err:        e.Err,
	}
}
