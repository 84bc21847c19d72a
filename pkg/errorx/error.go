package errorx

import (
	"errors"
	"fmt"
)

// Error is the single failure shape surfaced by every layer of the client.
// Code carries either one of the canonical codes of this package or a code
// passed through verbatim from the backend's error envelope.
type Error struct {
	Code    string
	Message string
	Details string
	Status  int
}

func (e Error) Error() string {
	return e.Message
}

func New(code string, format string, a ...any) Error {
	return Error{Code: code, Message: fmt.Sprintf(format, a...)}
}

// NewHTTP builds an error that also remembers the HTTP status it came with.
func NewHTTP(status int, code string, format string, a ...any) Error {
	return Error{Code: code, Message: fmt.Sprintf(format, a...), Status: status}
}

// Normalize returns err unchanged if it already is an Error, otherwise wraps
// it as UnknownError. It never returns a zero Error for a non-nil err.
func Normalize(err error) Error {
	var errx Error
	if errors.As(err, &errx) {
		return errx
	}

	return Error{Code: UnknownError, Message: err.Error()}
}
