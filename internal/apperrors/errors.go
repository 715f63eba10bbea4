package apperrors

import (
	"errors"
	"net/http"
)

// Kind classifies a failure so the HTTP boundary can map it to a status code
// without inspecting error strings.
type Kind int

const (
	Validation Kind = iota
	Conflict
	NotFound
	Unauthorized
	Upstream
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

var statusByKind = map[Kind]int{
	Validation:   http.StatusBadRequest,
	Conflict:     http.StatusBadRequest,
	NotFound:     http.StatusNotFound,
	Unauthorized: http.StatusUnauthorized,
	Upstream:     http.StatusInternalServerError,
}

// StatusCode resolves an error to its HTTP status. Errors outside the
// taxonomy map to 500.
func StatusCode(err error) int {
	var e *Error
	if errors.As(err, &e) {
		if code, ok := statusByKind[e.Kind]; ok {
			return code
		}
	}
	return http.StatusInternalServerError
}

// Message returns the client-facing message for an error. Upstream and
// unclassified errors are masked.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Kind != Upstream {
		return e.Message
	}
	return "internal server error"
}

// IsKind reports whether err belongs to the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}
