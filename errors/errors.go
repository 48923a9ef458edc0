package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// Error is the structured client error type.
type Error struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// StatusCode is the HTTP status that produced the error (0 when the
	// failure happened before a response was received).
	StatusCode int `json:"-"`
	// Retryable indicates if the operation can be retried.
	Retryable bool `json:"retryable"`
	// Cause is the underlying error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *Error) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause and returns the receiver.
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

// New creates a new Error with automatic retryable detection.
func New(code ErrorCode, message string) *Error {
	return &Error{
		Code:      code,
		Message:   message,
		Retryable: IsRetryableCode(code),
	}
}

// --- Common Error Constructors ---

// NotFound creates an Error for a record that was not found.
func NotFound() *Error {
	return &Error{
		Code: ErrCodeNotFound, Message: "the requested record was not found",
		StatusCode: 404, Retryable: false,
	}
}

// Conflict creates an Error for a state conflict reported by the server.
func Conflict(reason string) *Error {
	return &Error{
		Code: ErrCodeConflict, Message: reason,
		StatusCode: 409, Retryable: false,
	}
}

// Unauthorized creates an Error for a request that lacks valid credentials.
func Unauthorized() *Error {
	return &Error{
		Code: ErrCodeUnauthorized, Message: "authentication is required",
		StatusCode: 401, Retryable: false,
	}
}

// Forbidden creates an Error for a request the credentials do not permit.
func Forbidden() *Error {
	return &Error{
		Code: ErrCodeForbidden, Message: "access to the record was denied",
		StatusCode: 403, Retryable: false,
	}
}

// InvalidRecord creates an Error for a record rejected by server-side
// validation when no field-level detail is available.
func InvalidRecord() *Error {
	return &Error{
		Code: ErrCodeInvalidRecord, Message: "the record failed server-side validation",
		StatusCode: 422, Retryable: false,
	}
}

// RateLimited creates an Error for a rate-limited request.
func RateLimited() *Error {
	return &Error{
		Code: ErrCodeRateLimited, Message: "the API rate limit was exceeded",
		StatusCode: 429, Retryable: true,
	}
}

// ServerError creates an Error for a 5xx response.
func ServerError(status int) *Error {
	return &Error{
		Code: ErrCodeServerError, Message: fmt.Sprintf("the API reported a server error (HTTP %d)", status),
		StatusCode: status, Retryable: true,
	}
}

// Timeout creates an Error for an operation that timed out.
func Timeout(operation string) *Error {
	return &Error{
		Code: ErrCodeTimeout, Message: fmt.Sprintf("%s timed out", operation),
		Retryable: true,
	}
}

// ConnectionFailed creates an Error for a failed connection.
func ConnectionFailed(cause error) *Error {
	return &Error{
		Code: ErrCodeConnectionFailed, Message: "unable to reach the API",
		Retryable: true, Cause: cause,
	}
}

// Serialization creates an Error for a serialize/normalize failure.
func Serialization(msg string, cause error) *Error {
	return &Error{
		Code: ErrCodeSerialization, Message: msg,
		Retryable: false, Cause: cause,
	}
}

// FromStatus maps a failed HTTP status to a structured Error wrapping cause.
// Statuses without a dedicated code return nil so callers can keep their
// baseline error.
func FromStatus(status int, cause error) *Error {
	var e *Error
	switch {
	case status == http.StatusUnauthorized:
		e = Unauthorized()
	case status == http.StatusForbidden:
		e = Forbidden()
	case status == http.StatusNotFound:
		e = NotFound()
	case status == http.StatusConflict:
		e = Conflict("the record conflicts with the current state on the server")
	case status == http.StatusUnprocessableEntity:
		e = InvalidRecord()
	case status == http.StatusTooManyRequests:
		e = RateLimited()
	case status == http.StatusRequestTimeout || status == http.StatusGatewayTimeout:
		e = Timeout("the request")
	case status >= 500:
		e = ServerError(status)
	default:
		return nil
	}
	e.StatusCode = status
	return e.WithCause(cause)
}

// IsError checks if an error is a structured *Error.
func IsError(err error) bool {
	var e *Error
	return stderrors.As(err, &e)
}

// AsError converts an error to a structured *Error if possible.
func AsError(err error) (*Error, bool) {
	var e *Error
	if stderrors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// IsRetryable reports whether err is a structured error marked retryable.
func IsRetryable(err error) bool {
	if e, ok := AsError(err); ok {
		return e.Retryable
	}
	return false
}
