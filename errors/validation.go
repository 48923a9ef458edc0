package errors

import (
	stderrors "errors"
	"fmt"
	"sort"
	"strings"
)

// ValidationError carries per-field validation messages reported by a server
// (HTTP 422) or produced by client-side record validation. Fields maps an
// attribute name to the messages recorded against it.
type ValidationError struct {
	Fields map[string][]string `json:"errors"`
}

// NewValidationError creates a ValidationError from a field-message map.
func NewValidationError(fields map[string][]string) *ValidationError {
	if fields == nil {
		fields = make(map[string][]string)
	}
	return &ValidationError{Fields: fields}
}

// Error returns a deterministic, field-ordered summary of the messages.
func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "record is invalid"
	}

	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s %s", name, strings.Join(e.Fields[name], ", ")))
	}
	return "record is invalid: " + strings.Join(parts, "; ")
}

// Add records a message against a field and returns the receiver.
func (e *ValidationError) Add(field, message string) *ValidationError {
	if e.Fields == nil {
		e.Fields = make(map[string][]string)
	}
	e.Fields[field] = append(e.Fields[field], message)
	return e
}

// HasField reports whether any message was recorded against field.
func (e *ValidationError) HasField(field string) bool {
	return len(e.Fields[field]) > 0
}

// IsValidation checks if an error is a *ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return stderrors.As(err, &v)
}

// AsValidation converts an error to a *ValidationError if possible.
func AsValidation(err error) (*ValidationError, bool) {
	var v *ValidationError
	if stderrors.As(err, &v) {
		return v, true
	}
	return nil, false
}
