package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Transport/availability errors (retryable).
const (
	// ErrCodeTimeout indicates the request timed out.
	ErrCodeTimeout ErrorCode = "TIMEOUT"
	// ErrCodeConnectionFailed indicates a failed connection to the API.
	ErrCodeConnectionFailed ErrorCode = "CONNECTION_FAILED"
	// ErrCodeRateLimited indicates the client is rate limited.
	ErrCodeRateLimited ErrorCode = "RATE_LIMITED"
	// ErrCodeServerError indicates a server-side (5xx) failure.
	ErrCodeServerError ErrorCode = "SERVER_ERROR"
)

// Resource errors.
const (
	// ErrCodeNotFound indicates the requested record was not found.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
	// ErrCodeConflict indicates a conflict with the current state of the record.
	ErrCodeConflict ErrorCode = "CONFLICT"
)

// Request errors.
const (
	// ErrCodeUnauthorized indicates the request is unauthorized.
	ErrCodeUnauthorized ErrorCode = "UNAUTHORIZED"
	// ErrCodeForbidden indicates the request is forbidden.
	ErrCodeForbidden ErrorCode = "FORBIDDEN"
	// ErrCodeInvalidRecord indicates the record failed validation.
	ErrCodeInvalidRecord ErrorCode = "INVALID_RECORD"
	// ErrCodeSerialization indicates a record could not be serialized or
	// a payload could not be normalized.
	ErrCodeSerialization ErrorCode = "SERIALIZATION_ERROR"
)

var retryableCodes = map[ErrorCode]bool{
	ErrCodeTimeout:          true,
	ErrCodeConnectionFailed: true,
	ErrCodeRateLimited:      true,
	ErrCodeServerError:      true,
}

// IsRetryableCode returns true if the error code indicates a retryable error.
func IsRetryableCode(code ErrorCode) bool {
	return retryableCodes[code]
}
