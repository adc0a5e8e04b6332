package rop

import (
	"context"
	"errors"
	"reflect"
	"strings"
)

func IsNil(i interface{}) bool {
	if i == nil || (reflect.ValueOf(i).Kind() == reflect.Ptr && reflect.ValueOf(i).IsNil()) {
		return true
	}
	return false
}

func GetErrors(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	if errs, ok := unwrapJoined(err); ok {
		return errs
	}

	return []error{err}
}

func unwrapJoined(err error) ([]error, bool) {
	e, ok := err.(interface{ Unwrap() []error })
	if !ok {
		return nil, false
	}
	return e.Unwrap(), true
}

func IsCancellationError(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}

// IsCancelled reports whether r is a Failure caused by context cancellation
// or deadline.
func IsCancelled[T any](r Result[T]) bool {
	return r.IsFailure() && IsCancellationError(r.cause)
}

// CauseMessage is the default failure projection: the cause's own message.
func CauseMessage(cause error) string {
	if IsNil(cause) {
		return ""
	}
	return cause.Error()
}

// JoinedMessage flattens aggregates built with errors.Join into a single
// "; " separated line. Nested aggregates are flattened too.
func JoinedMessage(cause error) string {
	parts := make([]string, 0)
	var walk func(err error)
	walk = func(err error) {
		if _, joined := unwrapJoined(err); !joined {
			if !IsNil(err) {
				parts = append(parts, err.Error())
			}
			return
		}
		for _, e := range GetErrors(err) {
			walk(e)
		}
	}
	walk(cause)
	return strings.Join(parts, "; ")
}
