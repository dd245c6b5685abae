// Package apperr defines the error kinds shared by the providers, the search
// pipeline and the HTTP layer.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an error for propagation and display.
type Kind string

const (
	KindUnknown            Kind = "unknown"
	KindInvalidInput       Kind = "invalid_input"
	KindNotFound           Kind = "not_found"
	KindProviderError      Kind = "provider_error"
	KindProviderOverloaded Kind = "provider_overloaded"
	// KindStaleResult marks a completed operation that belongs to a superseded
	// search generation. It is never shown to users.
	KindStaleResult  Kind = "stale_result"
	KindUnauthorized Kind = "unauthorized"
)

// Error carries a Kind alongside a user-facing message and the raw cause.
type Error struct {
	Kind    Kind
	Message string
	Op      string
	Err     error
}

func (e *Error) Error() string {
	msg := e.Message
	if e.Op != "" {
		msg = fmt.Sprintf("%s: %s", e.Op, msg)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// HTTPStatus returns the response status for the error kind.
func (e *Error) HTTPStatus() int {
	return StatusOf(e.Kind)
}

// StatusOf maps a kind to an HTTP status code.
func StatusOf(kind Kind) int {
	switch kind {
	case KindInvalidInput:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindProviderError:
		return http.StatusBadGateway
	case KindProviderOverloaded:
		return http.StatusServiceUnavailable
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindStaleResult:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// New creates an error of the given kind.
func New(kind Kind, op, message string) *Error {
	return &Error{Kind: kind, Op: op, Message: message}
}

// Wrap creates an error of the given kind around a cause.
func Wrap(kind Kind, op, message string, err error) *Error {
	return &Error{Kind: kind, Op: op, Message: message, Err: err}
}

func InvalidInput(op, message string) *Error {
	return New(KindInvalidInput, op, message)
}

func NotFound(op, message string) *Error {
	return New(KindNotFound, op, message)
}

func ProviderError(op string, err error) *Error {
	return Wrap(KindProviderError, op, "provider request failed", err)
}

func ProviderOverloaded(op string, status int) *Error {
	return New(KindProviderOverloaded, op, fmt.Sprintf("provider overloaded (status %d)", status))
}

func Unauthorized(op, message string) *Error {
	return New(KindUnauthorized, op, message)
}

// Stale reports that generation got superseded by current.
func Stale(op string, generation, current uint64) *Error {
	return New(KindStaleResult, op, fmt.Sprintf("generation %d superseded by %d", generation, current))
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// Message returns the user-facing message of err, falling back to err.Error().
// The op prefix and the cause are not part of it.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// Cause returns the text of the raw cause behind the first *Error in err's
// chain, or "" when there is none.
func Cause(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Err != nil {
		return e.Err.Error()
	}
	return ""
}
