// Package solo contains single-value, synchronous ROP primitives that operate
// on Result[T]. These functions form the core building blocks for error-aware
// pipelines without channels.
//
// Highlights:
// - Succeed/Fail/FailWithCode/Crash: construct Result[T]
// - Validate/AndValidate: turn a rejected value into a user Error
// - Bind/Map: move from Result[In] to Result[Out], propagating Error and Failure
// - BindError/BindErrorMessage/IfError: recover from Error or Failure
// - Try/TryMap: convert a returned error or a panic into Failure
// - Use/UseError/UseErrorMessage: side effects that never change the result
// - All/Any: sequential, short-circuiting aggregation
//
// Match itself lives in package rop.
package solo
