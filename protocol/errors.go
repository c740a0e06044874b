package protocol

import (
	"errors"
	"fmt"
)

// ResponseError represents a response line the parser rejected.
// Contains the raw line so callers can log exactly what the device said.
type ResponseError struct {
	// Op is the operation whose response was rejected
	Op string

	// Line is a copy of the raw response line
	Line []byte

	// Reason describes what made the line invalid
	Reason string
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("%s: malformed response %q: %s", e.Op, e.Line, e.Reason)
}

// IsResponseError returns true if the error is or wraps a ResponseError.
func IsResponseError(err error) bool {
	var re *ResponseError
	return errors.As(err, &re)
}

// newResponseError builds a ResponseError with a private copy of the line.
// Response lines live in a reusable buffer, so the copy keeps the error
// stable after the next read.
func newResponseError(op string, line []byte, format string, args ...interface{}) *ResponseError {
	return &ResponseError{
		Op:     op,
		Line:   append([]byte(nil), line...),
		Reason: fmt.Sprintf(format, args...),
	}
}
