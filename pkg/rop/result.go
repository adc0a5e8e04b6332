package rop

import (
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Kind names the active variant of a Result.
type Kind uint8

const (
	KindSuccess Kind = iota + 1
	KindError
	KindFailure
)

func (k Kind) String() string {
	switch k {
	case KindSuccess:
		return "success"
	case KindFailure:
		return "failure"
	default:
		return "error"
	}
}

// Code is an optional error code. The zero Code means "no code supplied",
// which is distinct from CodeOf(0).
type Code struct {
	value int
	set   bool
}

func NoCode() Code {
	return Code{}
}

func CodeOf(v int) Code {
	return Code{value: v, set: true}
}

// Value returns the code and whether one was supplied.
func (c Code) Value() (int, bool) {
	return c.value, c.set
}

func (c Code) IsSet() bool {
	return c.set
}

func (c Code) String() string {
	if !c.set {
		return "none"
	}
	return strconv.Itoa(c.value)
}

// Result is an immutable three-way outcome: Success carries a value, Error
// carries an optional code and a message, Failure carries a non-nil cause.
// The zero Result is an Error with no code and an empty message.
type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	kind      Kind
	result    T
	code      Code
	message   string
	cause     error
}

func Success[T any](r T) Result[T] {
	return Result[T]{
		kind:      KindSuccess,
		result:    r,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Error[T any](message string) Result[T] {
	return ErrorFrom[T](NoCode(), message)
}

func ErrorWithCode[T any](code int, message string) Result[T] {
	return ErrorFrom[T](CodeOf(code), message)
}

func ErrorFrom[T any](code Code, message string) Result[T] {
	return Result[T]{
		kind:      KindError,
		code:      code,
		message:   message,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Failure wraps a system-level cause. A nil cause is replaced by ErrNilCause.
func Failure[T any](cause error) Result[T] {
	if IsNil(cause) {
		cause = ErrNilCause
	}
	return Result[T]{
		kind:      KindFailure,
		cause:     cause,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func FromValue[T any](v T) Result[T] {
	return Success(v)
}

func FromUserError[T any](e UserError) Result[T] {
	return ErrorFrom[T](e.Code, e.Message)
}

func FromCause[T any](cause error) Result[T] {
	return Failure[T](cause)
}

// FromTuple bridges the (T, error) convention: a non-nil error becomes a
// Failure, unless it wraps a UserError, which becomes an Error.
func FromTuple[T any](v T, err error) Result[T] {
	if IsNil(err) {
		return Success(v)
	}
	var ue UserError
	if errors.As(err, &ue) {
		return FromUserError[T](ue)
	}
	return Failure[T](err)
}

// Propagate retags a non-success result to another value type, keeping its
// payload, id and creation time. A success cannot be retagged and yields a
// Failure carrying ErrPropagateSuccess.
func Propagate[In, Out any](from Result[In]) Result[Out] {
	if from.IsSuccess() {
		return Failure[Out](ErrPropagateSuccess)
	}
	return Result[Out]{
		kind:      from.Kind(),
		code:      from.code,
		message:   from.message,
		cause:     from.cause,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

// Match applies exactly one handler, selected by the variant of r.
func Match[T, Out any](r Result[T],
	onSuccess func(v T) Out,
	onError func(code Code, message string) Out,
	onFailure func(cause error) Out) Out {

	switch r.Kind() {
	case KindSuccess:
		return onSuccess(r.result)
	case KindFailure:
		return onFailure(r.cause)
	default:
		return onError(r.code, r.message)
	}
}

// Handle is the action form of Match.
func (r Result[T]) Handle(onSuccess func(v T), onError func(code Code, message string),
	onFailure func(cause error)) {

	switch r.Kind() {
	case KindSuccess:
		onSuccess(r.result)
	case KindFailure:
		onFailure(r.cause)
	default:
		onError(r.code, r.message)
	}
}

func (r Result[T]) Kind() Kind {
	if r.kind == 0 {
		return KindError
	}
	return r.kind
}

func (r Result[T]) IsSuccess() bool {
	return r.kind == KindSuccess
}

func (r Result[T]) IsError() bool {
	return r.Kind() == KindError
}

func (r Result[T]) IsFailure() bool {
	return r.kind == KindFailure
}

// Result returns the success value, or the zero T for other variants.
func (r Result[T]) Result() T {
	return r.result
}

func (r Result[T]) Code() Code {
	return r.code
}

func (r Result[T]) Message() string {
	return r.message
}

func (r Result[T]) Cause() error {
	return r.cause
}

// Err returns nil on success, a UserError on Error and the cause on Failure.
func (r Result[T]) Err() error {
	switch r.Kind() {
	case KindSuccess:
		return nil
	case KindFailure:
		return r.cause
	default:
		return UserError{Code: r.code, Message: r.message}
	}
}

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}
