package rop

import (
	"errors"
	"fmt"
)

var (
	ErrNilCause         = errors.New("rop: failure without cause")
	ErrNoResult         = errors.New("rop: no result produced")
	ErrPropagateSuccess = errors.New("rop: cannot propagate a success result")
)

// UserError is the error view of an Error result.
type UserError struct {
	Code    Code
	Message string
}

func (e UserError) Error() string {
	if e.Code.IsSet() {
		return fmt.Sprintf("[%s] %s", e.Code, e.Message)
	}
	return e.Message
}

// PanicError records a panic recovered at a Try boundary.
type PanicError struct {
	Value any
}

func (e PanicError) Error() string {
	return fmt.Sprintf("recovered from panic: %v", e.Value)
}

func (e PanicError) Unwrap() error {
	err, _ := e.Value.(error)
	return err
}

// RecoverInto must be deferred directly. It turns a panic into a Failure
// stored in res.
func RecoverInto[T any](res *Result[T]) {
	r := recover()
	if r == nil {
		return
	}
	*res = Failure[T](PanicError{Value: r})
}
