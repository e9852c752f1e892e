package hedge

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrValidation matches every *ValidationError and ValidationErrors via errors.Is.
	ErrValidation       = errors.New("validation failed")
	ErrLastRange        = errors.New("cannot remove the last remaining range")
	ErrIndexOutOfRange  = errors.New("range index out of bounds")
	ErrInvalidRangeSpec = errors.New("invalid range spec")
)

// ValidationError describes one rejected input value. Index is the position
// in the range/odds sequence, or -1 for scalar fields.
type ValidationError struct {
	Field  string
	Index  int
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("%s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("%s[%d]: %s", e.Field, e.Index, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func invalid(field string, index int, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Index: index, Reason: fmt.Sprintf(format, args...)}
}

// ValidationErrors collects every problem found in an input instead of
// stopping at the first one.
type ValidationErrors struct {
	Errors []*ValidationError
}

func (m *ValidationErrors) Error() string {
	msgs := make([]string, len(m.Errors))
	for i, err := range m.Errors {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}

func (m *ValidationErrors) Add(err *ValidationError) {
	if err == nil {
		return
	}
	m.Errors = append(m.Errors, err)
}

func (m *ValidationErrors) IsEmpty() bool {
	return len(m.Errors) == 0
}

func (m *ValidationErrors) Is(target error) bool {
	return target == ErrValidation
}

// Unwrap exposes the individual errors to errors.As.
func (m *ValidationErrors) Unwrap() []error {
	errs := make([]error, len(m.Errors))
	for i, err := range m.Errors {
		errs[i] = err
	}
	return errs
}

// Err returns nil when nothing was collected, the single error when there is
// exactly one, and the aggregate otherwise.
func (m *ValidationErrors) Err() error {
	if m.IsEmpty() {
		return nil
	}
	if len(m.Errors) == 1 {
		return m.Errors[0]
	}
	return m
}
