// Package apperr defines the domain error taxonomy. Handlers and
// middleware construct these; a single translator at the API boundary
// maps each kind to an HTTP status and the wrapper response shape.
package apperr

import (
	"errors"
	"net/http"
	"strings"
)

type Kind int

const (
	Unauthenticated Kind = iota + 1
	AccessDenied
	Validation
	Pagination
	NotFound
	// Conflict is a soft failure: duplicate bookmark, taken username.
	// It is reported with 200 and an error message, not a 4xx.
	Conflict
	Internal
)

// HTTPStatus maps a kind to the status code carried by the wrapper.
func (k Kind) HTTPStatus() int {
	switch k {
	case Unauthenticated:
		return http.StatusUnauthorized
	case AccessDenied:
		return http.StatusForbidden
	case Validation, Pagination:
		return http.StatusBadRequest
	case NotFound:
		return http.StatusNotFound
	case Conflict:
		return http.StatusOK
	default:
		return http.StatusInternalServerError
	}
}

type Error struct {
	Kind     Kind
	Messages []string
	Err      error
}

func (e *Error) Error() string {
	if len(e.Messages) > 0 {
		return strings.Join(e.Messages, "; ")
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "internal error"
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates an error of the given kind with client-visible messages.
func New(kind Kind, msgs ...string) *Error {
	return &Error{Kind: kind, Messages: msgs}
}

// Wrap attaches a kind and client-visible messages to an underlying
// cause; the cause is for server-side logs only.
func Wrap(kind Kind, err error, msgs ...string) *Error {
	return &Error{Kind: kind, Messages: msgs, Err: err}
}

// KindOf extracts the kind from err, or Internal when err carries none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Internal
}

// MessagesOf extracts the client-visible messages from err. Internal
// errors never expose their cause.
func MessagesOf(err error) []string {
	var e *Error
	if errors.As(err, &e) && e.Kind != Internal && len(e.Messages) > 0 {
		return e.Messages
	}
	return []string{"Something really bad just happened..."}
}
