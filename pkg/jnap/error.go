package jnap

import (
	"errors"
	"strconv"
)

var (
	ErrTimeout   = errors.New("timeout")
	ErrTransport = errors.New("transport failure")
	ErrStatus    = errors.New("non-success status")
	ErrMalformed = errors.New("malformed response")
)

// Error classifies a failed transaction. Match it with errors.Is against
// ErrTimeout, ErrTransport, ErrStatus or ErrMalformed.
type Error struct {
	Kind   error
	Status int
	Reason string
	Err    error
}

func (e *Error) Error() string {
	msg := "jnap: " + e.Kind.Error()
	if e.Status != 0 {
		msg += " " + strconv.Itoa(e.Status)
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Is(target error) bool {
	return target == e.Kind
}

func (e *Error) Unwrap() error {
	return e.Err
}

func itoa(i int) string {
	return strconv.Itoa(i)
}
