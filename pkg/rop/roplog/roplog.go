// Package roplog provides zap based side effects for solo.Use, solo.UseError
// and their chain and mass counterparts. The rop packages never log on their
// own; wiring these hooks into a pipeline is the caller's decision.
package roplog

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ib-77/railway/pkg/rop"
)

// Fields describes an outcome as structured zap fields.
func Fields(o rop.Outcome) []zap.Field {
	fields := []zap.Field{
		zap.Stringer("result_id", o.Id()),
		zap.Stringer("result_kind", o.Kind()),
	}

	switch o.Kind() {
	case rop.KindError:
		if code, ok := o.Code().Value(); ok {
			fields = append(fields, zap.Int("result_code", code))
		}
		fields = append(fields, zap.String("result_message", o.Message()))
	case rop.KindFailure:
		fields = append(fields, zap.Error(o.Cause()))
	}
	return fields
}

// Level picks the log level for an outcome: info for success, warn for a
// user error and error for a failure.
func Level(o rop.Outcome) zapcore.Level {
	switch o.Kind() {
	case rop.KindSuccess:
		return zapcore.InfoLevel
	case rop.KindFailure:
		return zapcore.ErrorLevel
	default:
		return zapcore.WarnLevel
	}
}

// Log writes one entry for r and returns r unchanged.
func Log[T any](logger *zap.Logger, msg string, r rop.Result[T]) rop.Result[T] {
	if ce := logger.Check(Level(r), msg); ce != nil {
		ce.Write(Fields(r)...)
	}
	return r
}

// Stage returns a pipeline step that logs every result passing through it.
func Stage[T any](logger *zap.Logger, msg string) func(ctx context.Context, r rop.Result[T]) rop.Result[T] {
	return func(_ context.Context, r rop.Result[T]) rop.Result[T] {
		return Log(logger, msg, r)
	}
}

// Success returns a side effect for solo.Use that logs the value at info level.
func Success[T any](logger *zap.Logger, msg string) func(ctx context.Context, v T) {
	return func(_ context.Context, v T) {
		logger.Info(msg, zap.Any("value", v))
	}
}

// Error returns a side effect for solo.UseError that logs at warn level.
func Error(logger *zap.Logger, msg string) func(ctx context.Context, code rop.Code, message string) {
	return func(_ context.Context, code rop.Code, message string) {
		fields := []zap.Field{zap.String("result_message", message)}
		if v, ok := code.Value(); ok {
			fields = append(fields, zap.Int("result_code", v))
		}
		logger.Warn(msg, fields...)
	}
}
