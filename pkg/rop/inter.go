package rop

import (
	"time"

	"github.com/google/uuid"
)

// ValueProvider exposes the success value of a result.
type ValueProvider[T any] interface {
	// Result returns the successful result value
	Result() T
}

// Outcome is a variant-agnostic view of a result, implemented by every
// Result[T]. Observers such as loggers and tracers depend on it so they do
// not need to know T.
type Outcome interface {
	// Id unique identifier assigned at construction
	Id() uuid.UUID
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
	// Kind reports the active variant
	Kind() Kind
	// Code of an Error result, NoCode otherwise
	Code() Code
	// Message of an Error result, empty otherwise
	Message() string
	// Cause of a Failure result, nil otherwise
	Cause() error
}

var (
	_ Outcome            = Result[struct{}]{}
	_ ValueProvider[int] = Result[int]{}
)
