package middleware

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// TracerName is the instrumentation scope name for schedstore tracing.
const TracerName = "github.com/xraph/schedstore"

// SpanName returns the span name for operations of kind k, e.g.
// "schedstore.storage.read".
func SpanName(k Kind) string { return "schedstore.storage." + string(k) }

// Tracing returns middleware that wraps each operation in an OpenTelemetry
// span using the global TracerProvider. Without one the noop tracer is used.
func Tracing() Middleware {
	return TracingWithTracer(otel.Tracer(TracerName))
}

// TracingWithTracer returns tracing middleware using the provided tracer.
func TracingWithTracer(tracer trace.Tracer) Middleware {
	return func(ctx context.Context, op Op, next Handler) error {
		ctx, span := tracer.Start(ctx, SpanName(op.Kind),
			trace.WithAttributes(
				attribute.String("schedstore.storage", op.Storage),
				attribute.String("schedstore.operation", string(op.Kind)),
			),
			trace.WithSpanKind(trace.SpanKindInternal),
		)
		defer span.End()

		err := next(ctx)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		} else {
			span.SetStatus(codes.Ok, "")
		}

		return err
	}
}
