// Package chain provides a fluent, context-aware wrapper over rop.Result
// built on package solo.
//
// Key APIs:
// - Start/FromValue: create a Chain
// - Then/Bind/Map/TryMap: compose steps; Error and Failure skip them
// - Recover/OrElse: get back on the success track
// - Ensure/EnsureError: side effects that keep the result as is
// - Finally: reduce to a concrete value via rop.Match
package chain
