package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusCode(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"validation", New(Validation, "bad input"), http.StatusBadRequest},
		{"conflict", New(Conflict, "already exists"), http.StatusBadRequest},
		{"not found", New(NotFound, "missing"), http.StatusNotFound},
		{"unauthorized", New(Unauthorized, "nope"), http.StatusUnauthorized},
		{"upstream", Wrap(Upstream, "db down", errors.New("conn refused")), http.StatusInternalServerError},
		{"plain error", errors.New("boom"), http.StatusInternalServerError},
		{"nil-ish wrapped", fmt.Errorf("outer: %w", New(NotFound, "missing")), http.StatusNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, StatusCode(tc.err))
		})
	}
}

func TestMessageMasksInternals(t *testing.T) {
	assert.Equal(t, "bad input", Message(New(Validation, "bad input")))
	assert.Equal(t, "internal server error", Message(Wrap(Upstream, "db exploded", errors.New("secret dsn"))))
	assert.Equal(t, "internal server error", Message(errors.New("raw error")))
}

func TestIsKind(t *testing.T) {
	err := fmt.Errorf("handler: %w", New(Conflict, "dup"))
	assert.True(t, IsKind(err, Conflict))
	assert.False(t, IsKind(err, NotFound))
	assert.False(t, IsKind(errors.New("plain"), Conflict))
}

func TestErrorStringIncludesCause(t *testing.T) {
	cause := errors.New("unique constraint")
	err := Wrap(Conflict, "email already registered", cause)
	assert.Contains(t, err.Error(), "email already registered")
	assert.Contains(t, err.Error(), "unique constraint")
	assert.ErrorIs(t, err, cause)
}
