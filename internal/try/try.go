// Package try turns panics raised by user supplied functions into errors.
package try

import (
	"errors"
	"fmt"
)

type PanicError struct {
	Value any
}

func (e PanicError) Error() string {
	return fmt.Sprintf("recovered from panic: %v", e.Value)
}

func (e PanicError) Unwrap() error {
	err, ok := e.Value.(error)
	if !ok {
		return nil
	}
	return err
}

// Recover must be deferred. A recovered panic is stored in err, joined with
// any error already there.
func Recover(err *error) {
	r := recover()
	if r == nil {
		return
	}

	perr := PanicError{
		Value: r,
	}
	if *err == nil {
		*err = perr
		return
	}
	*err = errors.Join(*err, perr)
}

// Call runs f with u, reporting a panic in f as a PanicError.
func Call[U, V any](f func(U) (V, error), u U) (v V, err error) {
	defer Recover(&err)
	return f(u)
}
