package errors

import (
	"errors"
	"fmt"
)

// ErrInvalidURLFormat is matched by every InvalidURLFormatError.
var ErrInvalidURLFormat = errors.New("invalid URL format")

/*
InvalidURLFormatError is returned when a plan URL matches neither accepted
shape. The message lists both shapes and echoes the rejected input.
*/
type InvalidURLFormatError struct {
	URL    string
	Shapes []string
}

func NewInvalidURLFormatError(url string, shapes ...string) *InvalidURLFormatError {
	return &InvalidURLFormatError{URL: url, Shapes: shapes}
}

func (e *InvalidURLFormatError) Error() string {
	msg := "invalid URL format. expected one of:"

	for _, shape := range e.Shapes {
		msg += "\n  - " + shape
	}

	return msg + fmt.Sprintf("\ngot: %s", e.URL)
}

func (e *InvalidURLFormatError) Is(target error) bool {
	return target == ErrInvalidURLFormat
}
