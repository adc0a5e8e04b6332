package mass

import (
	"context"

	"github.com/ib-77/railway/pkg/rop"
	"github.com/ib-77/railway/pkg/rop/solo"
)

// Ready lifts an already computed result into a resolved awaitable.
func Ready[T any](r rop.Result[T]) <-chan rop.Result[T] {
	out := make(chan rop.Result[T], 1)
	out <- r
	close(out)
	return out
}

// Go runs produce in its own goroutine and returns its awaitable result.
func Go[T any](ctx context.Context, produce func(ctx context.Context) rop.Result[T]) <-chan rop.Result[T] {
	return resolve(func() rop.Result[T] {
		return produce(ctx)
	})
}

// Await blocks until input yields a result. A done ctx yields
// Failure(ctx.Err()); a nil or closed-empty channel yields
// Failure(rop.ErrNoResult).
func Await[T any](ctx context.Context, input <-chan rop.Result[T]) rop.Result[T] {
	if input == nil {
		return rop.Failure[T](rop.ErrNoResult)
	}

	// prefer a ready value over a concurrently cancelled ctx
	select {
	case r, ok := <-input:
		return received(r, ok)
	default:
	}

	select {
	case r, ok := <-input:
		return received(r, ok)
	case <-ctx.Done():
		return rop.Failure[T](ctx.Err())
	}
}

// BindAsync binds a synchronous source to an asynchronous continuation.
// Dispatch happens before returning; only awaiting happens in the background.
func BindAsync[In, Out any](ctx context.Context, input rop.Result[In],
	bind func(ctx context.Context, r In) <-chan rop.Result[Out]) <-chan rop.Result[Out] {

	if !input.IsSuccess() {
		return Ready(rop.Propagate[In, Out](input))
	}

	next := bind(ctx, input.Result())
	return resolve(func() rop.Result[Out] {
		return Await(ctx, next)
	})
}

// Binding awaits input and binds it to a synchronous continuation.
func Binding[In, Out any](ctx context.Context, input <-chan rop.Result[In],
	bind func(ctx context.Context, r In) rop.Result[Out]) <-chan rop.Result[Out] {

	return resolve(func() rop.Result[Out] {
		return solo.Bind(ctx, Await(ctx, input), bind)
	})
}

// BindingAsync awaits input, then awaits the continuation it binds to.
func BindingAsync[In, Out any](ctx context.Context, input <-chan rop.Result[In],
	bind func(ctx context.Context, r In) <-chan rop.Result[Out]) <-chan rop.Result[Out] {

	return resolve(func() rop.Result[Out] {
		r := Await(ctx, input)
		if !r.IsSuccess() {
			return rop.Propagate[In, Out](r)
		}
		return Await(ctx, bind(ctx, r.Result()))
	})
}

func Mapping[In, Out any](ctx context.Context, input <-chan rop.Result[In],
	mapOnSuccess func(ctx context.Context, r In) Out) <-chan rop.Result[Out] {

	return resolve(func() rop.Result[Out] {
		return solo.Map(ctx, Await(ctx, input), mapOnSuccess)
	})
}

func BindingError[T any](ctx context.Context, input <-chan rop.Result[T],
	onError func(ctx context.Context, code rop.Code, message string) rop.Result[T],
	failureMessage func(cause error) string,
	failureCode rop.Code) <-chan rop.Result[T] {

	return resolve(func() rop.Result[T] {
		return solo.BindError(ctx, Await(ctx, input), onError, failureMessage, failureCode)
	})
}

func BindingErrorAsync[T any](ctx context.Context, input <-chan rop.Result[T],
	onError func(ctx context.Context, code rop.Code, message string) <-chan rop.Result[T],
	failureMessage func(cause error) string,
	failureCode rop.Code) <-chan rop.Result[T] {

	return resolve(func() rop.Result[T] {
		return solo.BindError(ctx, Await(ctx, input),
			func(ctx context.Context, code rop.Code, message string) rop.Result[T] {
				return Await(ctx, onError(ctx, code, message))
			},
			failureMessage, failureCode)
	})
}

func BindingErrorMessage[T any](ctx context.Context, input <-chan rop.Result[T],
	onError func(ctx context.Context, message string) rop.Result[T],
	failureMessage func(cause error) string) <-chan rop.Result[T] {

	return resolve(func() rop.Result[T] {
		return solo.BindErrorMessage(ctx, Await(ctx, input), onError, failureMessage)
	})
}

func IfErroring[T any](ctx context.Context, input <-chan rop.Result[T],
	alternative func(ctx context.Context) rop.Result[T]) <-chan rop.Result[T] {

	return resolve(func() rop.Result[T] {
		return solo.IfError(ctx, Await(ctx, input), alternative)
	})
}

func IfErroringAsync[T any](ctx context.Context, input <-chan rop.Result[T],
	alternative func(ctx context.Context) <-chan rop.Result[T]) <-chan rop.Result[T] {

	return resolve(func() rop.Result[T] {
		return solo.IfError(ctx, Await(ctx, input), func(ctx context.Context) rop.Result[T] {
			return Await(ctx, alternative(ctx))
		})
	})
}

// Trying runs f in the background under the capture rules of solo.Try. A
// panic or error raised by f, and a cancellation of ctx while waiting for f,
// all end up as Failure.
func Trying[T any](ctx context.Context,
	onTryExecute func(ctx context.Context) (T, error)) <-chan rop.Result[T] {

	inner := make(chan rop.Result[T], 1)
	go func() {
		defer close(inner)
		inner <- solo.Try(ctx, onTryExecute)
	}()

	return resolve(func() rop.Result[T] {
		return Await(ctx, inner)
	})
}

func TryMapping[In, Out any](ctx context.Context, input <-chan rop.Result[In],
	onTryExecute func(ctx context.Context, r In) (Out, error)) <-chan rop.Result[Out] {

	return resolve(func() rop.Result[Out] {
		r := Await(ctx, input)
		if !r.IsSuccess() {
			return rop.Propagate[In, Out](r)
		}
		return Await(ctx, Trying(ctx, func(ctx context.Context) (Out, error) {
			return onTryExecute(ctx, r.Result())
		}))
	})
}

func Using[T any](ctx context.Context, input <-chan rop.Result[T],
	sideEffect func(ctx context.Context, r T)) <-chan rop.Result[T] {

	return resolve(func() rop.Result[T] {
		return solo.Use(ctx, Await(ctx, input), sideEffect)
	})
}

// UsingAsync awaits the side effect's done channel before handing the source
// on. A cancelled ctx stops the wait but still hands the source on unchanged.
func UsingAsync[T any](ctx context.Context, input <-chan rop.Result[T],
	sideEffect func(ctx context.Context, r T) <-chan struct{}) <-chan rop.Result[T] {

	return resolve(func() rop.Result[T] {
		return solo.Use(ctx, Await(ctx, input), func(ctx context.Context, r T) {
			wait(ctx, sideEffect(ctx, r))
		})
	})
}

func UsingError[T any](ctx context.Context, input <-chan rop.Result[T],
	sideEffect func(ctx context.Context, code rop.Code, message string),
	failureMessage func(cause error) string,
	failureCode rop.Code) <-chan rop.Result[T] {

	return resolve(func() rop.Result[T] {
		return solo.UseError(ctx, Await(ctx, input), sideEffect, failureMessage, failureCode)
	})
}

func UsingErrorAsync[T any](ctx context.Context, input <-chan rop.Result[T],
	sideEffect func(ctx context.Context, code rop.Code, message string) <-chan struct{},
	failureMessage func(cause error) string,
	failureCode rop.Code) <-chan rop.Result[T] {

	return resolve(func() rop.Result[T] {
		return solo.UseError(ctx, Await(ctx, input),
			func(ctx context.Context, code rop.Code, message string) {
				wait(ctx, sideEffect(ctx, code, message))
			},
			failureMessage, failureCode)
	})
}

// Matching awaits input and then the output of the single handler selected
// by its variant. A cancelled wait for input reaches onFailure like any other
// Failure. If the handler returns a nil channel, its channel closes empty, or
// ctx is done while waiting for it, the returned channel closes without a value.
func Matching[In, Out any](ctx context.Context, input <-chan rop.Result[In],
	onSuccess func(ctx context.Context, r In) <-chan Out,
	onError func(ctx context.Context, code rop.Code, message string) <-chan Out,
	onFailure func(ctx context.Context, cause error) <-chan Out) <-chan Out {

	out := make(chan Out, 1)

	go func() {
		defer close(out)

		handlerCh := rop.Match(Await(ctx, input),
			func(r In) <-chan Out { return onSuccess(ctx, r) },
			func(code rop.Code, message string) <-chan Out { return onError(ctx, code, message) },
			func(cause error) <-chan Out { return onFailure(ctx, cause) })
		if handlerCh == nil {
			return
		}

		select {
		case v, ok := <-handlerCh:
			if ok {
				out <- v
			}
			return
		default:
		}

		select {
		case v, ok := <-handlerCh:
			if ok {
				out <- v
			}
		case <-ctx.Done():
		}
	}()

	return out
}

func resolve[T any](f func() rop.Result[T]) <-chan rop.Result[T] {
	out := make(chan rop.Result[T], 1)

	go func() {
		defer close(out)
		out <- f()
	}()

	return out
}

func received[T any](r rop.Result[T], ok bool) rop.Result[T] {
	if !ok {
		return rop.Failure[T](rop.ErrNoResult)
	}
	return r
}

func wait(ctx context.Context, done <-chan struct{}) {
	if done == nil {
		return
	}
	select {
	case <-done:
	case <-ctx.Done():
	}
}
