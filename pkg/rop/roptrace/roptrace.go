// Package roptrace records results on OpenTelemetry spans.
package roptrace

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/ib-77/railway/pkg/rop"
)

const (
	KindKey    = attribute.Key("rop.kind")
	CodeKey    = attribute.Key("rop.code")
	MessageKey = attribute.Key("rop.message")
	IdKey      = attribute.Key("rop.id")
)

// Attributes describes an outcome as span attributes.
func Attributes(o rop.Outcome) []attribute.KeyValue {
	attrs := []attribute.KeyValue{
		IdKey.String(o.Id().String()),
		KindKey.String(o.Kind().String()),
	}
	if o.Kind() == rop.KindError {
		if code, ok := o.Code().Value(); ok {
			attrs = append(attrs, CodeKey.Int(code))
		}
		attrs = append(attrs, MessageKey.String(o.Message()))
	}
	return attrs
}

// Record annotates the span stored in ctx with r and returns r unchanged.
// A Failure marks the span as errored and records its cause; a user Error
// only adds attributes.
func Record[T any](ctx context.Context, r rop.Result[T]) rop.Result[T] {
	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return r
	}

	span.SetAttributes(Attributes(r)...)
	if r.IsFailure() {
		span.RecordError(r.Cause())
		span.SetStatus(codes.Error, r.Cause().Error())
	}
	return r
}

// Traced runs produce inside a new span named name and records its result.
func Traced[T any](ctx context.Context, tracer trace.Tracer, name string,
	produce func(ctx context.Context) rop.Result[T]) rop.Result[T] {

	spanCtx, span := tracer.Start(ctx, name)
	defer span.End()

	return Record(spanCtx, produce(spanCtx))
}
