// Package apperr defines the error taxonomy shared by the services and the
// HTTP layer. Every failure a handler can return is one of these kinds; the
// server's error handler maps kinds to status codes and only ever sends the
// client-safe message, never the underlying cause.
package apperr

import (
	"errors"
	"net/http"
)

var (
	// ErrInvalidRequest covers malformed or missing input fields.
	ErrInvalidRequest = errors.New("invalid request")
	// ErrNotFound covers lookups of events, churches and other records.
	ErrNotFound = errors.New("not found")
	// ErrProviderNotConfigured means a deployment gap (missing credentials),
	// not a user error.
	ErrProviderNotConfigured = errors.New("not configured")
	// ErrSignatureInvalid means an inbound webhook failed verification.
	ErrSignatureInvalid = errors.New("invalid signature")
	// ErrProviderError is an upstream payment-provider failure.
	ErrProviderError = errors.New("provider error")
	// ErrStorageError is a local persistence failure.
	ErrStorageError = errors.New("storage error")
	// ErrUnauthorized covers failed admin sign-in and bad tokens.
	ErrUnauthorized = errors.New("unauthorized")
)

type Error struct {
	kind    error
	message string
	cause   error
}

func New(kind error, message string) *Error {
	return &Error{kind: kind, message: message}
}

func Wrap(kind error, message string, cause error) *Error {
	return &Error{kind: kind, message: message, cause: cause}
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.message + ": " + e.cause.Error()
	}
	return e.message
}

// Message is the client-safe description of the failure.
func (e *Error) Message() string { return e.message }

func (e *Error) Is(target error) bool { return errors.Is(e.kind, target) }

func (e *Error) Unwrap() error { return e.cause }

// Status maps an error to the HTTP status code the taxonomy assigns it.
// Unknown errors map to 500.
func Status(err error) int {
	switch {
	case errors.Is(err, ErrInvalidRequest), errors.Is(err, ErrSignatureInvalid):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrProviderNotConfigured):
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}
