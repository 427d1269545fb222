// Package apperrors defines the stable error kinds raised by operation
// handlers. Callers branch on the kind; the message is what users see.
package apperrors

import (
	"errors"
	"net/http"
)

type Kind string

const (
	KindUnauthorized    Kind = "unauthorized"
	KindNotFound        Kind = "not_found"
	KindPolicyViolation Kind = "policy_violation"
	KindOutOfRange      Kind = "out_of_range"
	KindInvalid         Kind = "invalid"
)

type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Unauthorized(message string) *Error    { return New(KindUnauthorized, message) }
func NotFound(message string) *Error        { return New(KindNotFound, message) }
func PolicyViolation(message string) *Error { return New(KindPolicyViolation, message) }
func OutOfRange(message string) *Error      { return New(KindOutOfRange, message) }
func Invalid(message string) *Error         { return New(KindInvalid, message) }

// KindOf returns the kind of err, or "" when err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

func IsKind(err error, kind Kind) bool { return KindOf(err) == kind }

// HTTPStatus maps an error to the status its kind is served with.
// Ownership failures intentionally share 401 with unauthenticated calls:
// the operation surface exposes a single Unauthorized signal.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	case KindPolicyViolation:
		return http.StatusConflict
	case KindOutOfRange, KindInvalid:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
