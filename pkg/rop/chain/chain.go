package chain

import (
	"context"

	"github.com/ib-77/railway/pkg/rop"
	"github.com/ib-77/railway/pkg/rop/solo"
)

// Chain wraps a rop.Result with context to enable fluent chaining
type Chain[T any] struct {
	ctx    context.Context
	result rop.Result[T]
}

// Start creates a new chain from a rop.Result
func Start[T any](ctx context.Context, result rop.Result[T]) *Chain[T] {
	return &Chain[T]{
		ctx:    ctx,
		result: result,
	}
}

// FromValue creates a new chain from a successful value
func FromValue[T any](ctx context.Context, value T) *Chain[T] {
	return Start(ctx, rop.Success(value))
}

// Result returns the underlying rop.Result
func (c *Chain[T]) Result() rop.Result[T] {
	return c.result
}

// Then binds a step that keeps the value type
func (c *Chain[T]) Then(onSuccess func(context.Context, T) rop.Result[T]) *Chain[T] {
	return Bind(c, onSuccess)
}

// Recover hands an Error or Failure to onError, see solo.BindError
func (c *Chain[T]) Recover(onError func(context.Context, rop.Code, string) rop.Result[T],
	failureMessage func(error) string, failureCode rop.Code) *Chain[T] {
	return c.next(solo.BindError(c.ctx, c.result, onError, failureMessage, failureCode))
}

// OrElse replaces any non-success with the alternative's result
func (c *Chain[T]) OrElse(alternative func(context.Context) rop.Result[T]) *Chain[T] {
	return c.next(solo.IfError(c.ctx, c.result, alternative))
}

// Ensure performs a side effect on success without changing the result
func (c *Chain[T]) Ensure(onSuccess func(context.Context, T)) *Chain[T] {
	return c.next(solo.Use(c.ctx, c.result, onSuccess))
}

// EnsureError performs a side effect on Error or Failure without changing the result
func (c *Chain[T]) EnsureError(onError func(context.Context, rop.Code, string),
	failureMessage func(error) string, failureCode rop.Code) *Chain[T] {
	return c.next(solo.UseError(c.ctx, c.result, onError, failureMessage, failureCode))
}

func (c *Chain[T]) next(result rop.Result[T]) *Chain[T] {
	return &Chain[T]{ctx: c.ctx, result: result}
}

// Bind chains a function that returns rop.Result[U]
func Bind[T, U any](c *Chain[T], onSuccess func(context.Context, T) rop.Result[U]) *Chain[U] {
	return &Chain[U]{
		ctx:    c.ctx,
		result: solo.Bind[T, U](c.ctx, c.result, onSuccess),
	}
}

// TryMap chains a function that returns (U, error)
func TryMap[T, U any](c *Chain[T], tryOnSuccess func(context.Context, T) (U, error)) *Chain[U] {
	return &Chain[U]{
		ctx:    c.ctx,
		result: solo.TryMap[T, U](c.ctx, c.result, tryOnSuccess),
	}
}

// Map chains a pure transformation function
func Map[T, U any](c *Chain[T], onSuccess func(context.Context, T) U) *Chain[U] {
	return &Chain[U]{
		ctx:    c.ctx,
		result: solo.Map[T, U](c.ctx, c.result, onSuccess),
	}
}

// Finally collapses the chain through rop.Match
func Finally[T, U any](c *Chain[T], onSuccess func(T) U,
	onError func(rop.Code, string) U, onFailure func(error) U) U {
	return rop.Match(c.result, onSuccess, onError, onFailure)
}
