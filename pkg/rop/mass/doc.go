// Package mass provides the asynchronous forms of the solo combinators. An
// awaitable is a <-chan rop.Result[T] that yields one value and is closed.
//
// Naming:
// - Xing (Binding, Mapping, Using, ...): await an awaitable source, then apply a synchronous handler
// - XingAsync: await the source, then await the handler's awaitable
// - BindAsync: synchronous source, asynchronous continuation
//
// Dispatch never suspends; only awaiting does, and every wait also watches
// ctx. A wait cut short by ctx becomes Failure(ctx.Err()), so cancellation
// flows down the pipeline like any other Failure.
//
// All and Any are concurrent counterparts of solo.All and solo.Any bounded
// by core.WorkerLimit.
package mass
