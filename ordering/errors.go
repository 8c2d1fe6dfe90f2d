package ordering

import (
	"errors"
	"fmt"
)

// Sentinel categories for the package's failures. Handlers translate them
// to HTTP status codes with errors.Is.
var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
)

// Error pairs a client-facing message with one of the sentinel categories.
type Error struct {
	kind error
	msg  string
}

func (e *Error) Error() string { return e.msg }
func (e *Error) Unwrap() error { return e.kind }

func notFoundf(format string, args ...interface{}) error {
	return &Error{kind: ErrNotFound, msg: fmt.Sprintf(format, args...)}
}

func invalidf(format string, args ...interface{}) error {
	return &Error{kind: ErrInvalidInput, msg: fmt.Sprintf(format, args...)}
}
