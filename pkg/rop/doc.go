// Package rop defines Result[T], a closed three-variant outcome used for
// railway-oriented composition of fallible operations:
// - Success: the operation completed and owns a value
// - Error: an expected, caller-induced failure with an optional Code and a message
// - Failure: an unexpected fault that owns its cause
//
// Results are immutable values. Match dispatches to exactly one of three
// handlers. Combinators live in subpackages: solo (synchronous), mass
// (channel-based asynchronous forms) and chain (fluent wrapper). Logging and
// tracing hooks are in roplog and roptrace; this package never logs.
package rop
