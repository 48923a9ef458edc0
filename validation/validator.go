package validation

import (
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/restkit/restkit/errors"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Validator collects ad-hoc field validation errors.
type Validator struct {
	err *errors.ValidationError
}

// New creates a new Validator.
func New() *Validator {
	return &Validator{err: errors.NewValidationError(nil)}
}

// AddError records a message against a field.
func (v *Validator) AddError(field, message string) {
	v.err.Add(field, message)
}

// HasErrors returns true if there are validation errors.
func (v *Validator) HasErrors() bool {
	return len(v.err.Fields) > 0
}

// Validate returns a *errors.ValidationError if there are validation errors,
// nil otherwise.
func (v *Validator) Validate() error {
	if !v.HasErrors() {
		return nil
	}
	return v.err
}

// Required checks that a string is non-empty.
func (v *Validator) Required(field, value string) *Validator {
	if strings.TrimSpace(value) == "" {
		v.AddError(field, "is required")
	}
	return v
}

// RequiredUUID checks that a string is a valid non-nil UUID.
func (v *Validator) RequiredUUID(field, value string) *Validator {
	if strings.TrimSpace(value) == "" {
		v.AddError(field, "is required")
		return v
	}
	id, err := uuid.Parse(value)
	if err != nil || id == uuid.Nil {
		v.AddError(field, "must be a valid UUID")
	}
	return v
}

// Email checks that a non-empty string looks like an email address.
func (v *Validator) Email(field, value string) *Validator {
	if value != "" && !emailPattern.MatchString(value) {
		v.AddError(field, "must be a valid email address")
	}
	return v
}

// MaxLen checks that a string does not exceed n characters.
func (v *Validator) MaxLen(field, value string, n int) *Validator {
	if len(value) > n {
		v.AddError(field, "is too long")
	}
	return v
}
