package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusUnauthorized, Unauthenticated.HTTPStatus())
	assert.Equal(t, http.StatusForbidden, AccessDenied.HTTPStatus())
	assert.Equal(t, http.StatusBadRequest, Validation.HTTPStatus())
	assert.Equal(t, http.StatusBadRequest, Pagination.HTTPStatus())
	assert.Equal(t, http.StatusNotFound, NotFound.HTTPStatus())
	// Soft-failure convention: conflicts report 200 with an error list.
	assert.Equal(t, http.StatusOK, Conflict.HTTPStatus())
	assert.Equal(t, http.StatusInternalServerError, Internal.HTTPStatus())
}

func TestKindOfThroughWrapping(t *testing.T) {
	err := New(NotFound, "No recipe with such id was found.")
	wrapped := fmt.Errorf("handling request: %w", err)

	assert.Equal(t, NotFound, KindOf(wrapped))
	assert.Equal(t, []string{"No recipe with such id was found."}, MessagesOf(wrapped))
}

func TestUnknownErrorIsInternal(t *testing.T) {
	err := errors.New("pq: connection refused")
	assert.Equal(t, Internal, KindOf(err))
	// The cause never reaches the client.
	assert.Equal(t, []string{"Something really bad just happened..."}, MessagesOf(err))
}

func TestInternalMessagesNeverLeak(t *testing.T) {
	err := Wrap(Internal, errors.New("secret detail"), "secret detail")
	assert.NotContains(t, MessagesOf(err)[0], "secret")
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := Wrap(Validation, cause, "The `score` field must be between 1 and 5.")
	assert.ErrorIs(t, err, cause)
}
