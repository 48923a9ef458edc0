// Package errors provides the client-facing error taxonomy for restkit.
// It defines structured error types with machine-readable codes, retryable
// detection, and the ValidationError variant carrying per-field messages
// reported by a server on semantically invalid requests.
package errors
