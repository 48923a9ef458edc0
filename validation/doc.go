// Package validation provides client-side record and config validation.
// Struct validation uses go-playground/validator tags and reports failures
// as *errors.ValidationError with underscored field names, matching the
// shape a server reports on HTTP 422. The fluent Validator collects ad-hoc
// field checks for code paths where struct tags are not enough.
package validation
