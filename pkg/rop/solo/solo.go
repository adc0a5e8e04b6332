package solo

import (
	"context"

	"github.com/ib-77/railway/pkg/rop"
)

func Succeed[T any](input T) rop.Result[T] {
	return rop.Success(input)
}

func Fail[T any](message string) rop.Result[T] {
	return rop.Error[T](message)
}

func FailWithCode[T any](code int, message string) rop.Result[T] {
	return rop.ErrorWithCode[T](code, message)
}

func Crash[T any](cause error) rop.Result[T] {
	return rop.Failure[T](cause)
}

func Validate[T any](ctx context.Context, input T,
	validate func(ctx context.Context, in T) (isValid bool, errMsg string)) rop.Result[T] {
	return AndValidate(ctx, Succeed(input), validate)
}

// AndValidate turns a rejected value into a user Error carrying errMsg.
func AndValidate[T any](ctx context.Context, input rop.Result[T],
	validate func(ctx context.Context, in T) (valid bool, errMsg string)) rop.Result[T] {

	if input.IsSuccess() {
		if isValid, errMsg := validate(ctx, input.Result()); !isValid {
			return rop.Error[T](errMsg)
		}
	}
	return input
}

func Bind[In any, Out any](ctx context.Context,
	input rop.Result[In],
	onSuccess func(ctx context.Context, r In) rop.Result[Out]) rop.Result[Out] {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Result())
	}
	return rop.Propagate[In, Out](input)
}

func Map[In any, Out any](ctx context.Context,
	input rop.Result[In],
	onSuccess func(ctx context.Context, r In) Out) rop.Result[Out] {

	if input.IsSuccess() {
		return rop.Success(onSuccess(ctx, input.Result()))
	}
	return rop.Propagate[In, Out](input)
}

// BindError recovers from a non-success result. An Error is handed to onError
// as is; a Failure is handed to onError with failureCode and the message
// projected from its cause. A nil failureMessage means rop.CauseMessage.
func BindError[T any](ctx context.Context,
	input rop.Result[T],
	onError func(ctx context.Context, code rop.Code, message string) rop.Result[T],
	failureMessage func(cause error) string,
	failureCode rop.Code) rop.Result[T] {

	switch input.Kind() {
	case rop.KindSuccess:
		return input
	case rop.KindFailure:
		return onError(ctx, failureCode, project(failureMessage, input.Cause()))
	default:
		return onError(ctx, input.Code(), input.Message())
	}
}

// BindErrorMessage is BindError for handlers that ignore the code. Incoming
// codes are discarded.
func BindErrorMessage[T any](ctx context.Context,
	input rop.Result[T],
	onError func(ctx context.Context, message string) rop.Result[T],
	failureMessage func(cause error) string) rop.Result[T] {

	return BindError(ctx, input,
		func(ctx context.Context, _ rop.Code, message string) rop.Result[T] {
			return onError(ctx, message)
		},
		failureMessage, rop.NoCode())
}

func IfError[T any](ctx context.Context,
	input rop.Result[T],
	alternative func(ctx context.Context) rop.Result[T]) rop.Result[T] {

	if input.IsSuccess() {
		return input
	}
	return alternative(ctx)
}

// Try runs f and captures both a returned error and a panic as a Failure.
// A typed-nil error counts as no error, as in rop.FromTuple.
func Try[T any](ctx context.Context,
	onTryExecute func(ctx context.Context) (T, error)) (res rop.Result[T]) {

	defer rop.RecoverInto(&res)

	out, err := onTryExecute(ctx)
	if !rop.IsNil(err) {
		return rop.Failure[T](err)
	}
	return rop.Success(out)
}

// TryMap binds a (Out, error) function with the capture rules of Try.
func TryMap[In any, Out any](ctx context.Context, input rop.Result[In],
	onTryExecute func(ctx context.Context, r In) (Out, error)) rop.Result[Out] {

	if !input.IsSuccess() {
		return rop.Propagate[In, Out](input)
	}

	return Try(ctx, func(ctx context.Context) (Out, error) {
		return onTryExecute(ctx, input.Result())
	})
}

func Use[T any](ctx context.Context,
	input rop.Result[T],
	onSuccess func(ctx context.Context, r T)) rop.Result[T] {

	if input.IsSuccess() {
		onSuccess(ctx, input.Result())
	}
	return input
}

// UseError observes an Error or Failure with the same code and message
// substitution as BindError. The input is always returned unchanged.
func UseError[T any](ctx context.Context,
	input rop.Result[T],
	onError func(ctx context.Context, code rop.Code, message string),
	failureMessage func(cause error) string,
	failureCode rop.Code) rop.Result[T] {

	switch input.Kind() {
	case rop.KindSuccess:
	case rop.KindFailure:
		onError(ctx, failureCode, project(failureMessage, input.Cause()))
	default:
		onError(ctx, input.Code(), input.Message())
	}
	return input
}

func UseErrorMessage[T any](ctx context.Context,
	input rop.Result[T],
	onError func(ctx context.Context, message string),
	failureMessage func(cause error) string) rop.Result[T] {

	return UseError(ctx, input,
		func(ctx context.Context, _ rop.Code, message string) {
			onError(ctx, message)
		},
		failureMessage, rop.NoCode())
}

// All runs producers in order and collects their values. The first
// non-success stops the fold and becomes the result; later producers are
// never called.
func All[T any](ctx context.Context,
	producers ...func(ctx context.Context) rop.Result[T]) rop.Result[[]T] {

	values := make([]T, 0, len(producers))
	for _, produce := range producers {
		r := produce(ctx)
		if !r.IsSuccess() {
			return rop.Propagate[T, []T](r)
		}
		values = append(values, r.Result())
	}
	return rop.Success(values)
}

// Any runs producers in order and returns the first success. When none
// succeeds the last non-success is returned; with no producers at all the
// result is an Error with an empty message.
func Any[T any](ctx context.Context,
	producers ...func(ctx context.Context) rop.Result[T]) rop.Result[T] {

	last := rop.Error[T]("")
	for _, produce := range producers {
		last = produce(ctx)
		if last.IsSuccess() {
			return last
		}
	}
	return last
}

func project(failureMessage func(cause error) string, cause error) string {
	if failureMessage == nil {
		return rop.CauseMessage(cause)
	}
	return failureMessage(cause)
}
