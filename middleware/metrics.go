package middleware

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metrics returns middleware that records per-operation metrics using the
// global MeterProvider. Without one, noop instruments are used.
//
// Instruments:
//   - schedstore.storage.duration (Float64Histogram): operation time in
//     seconds, with attributes storage, kind, status ("ok" or "error")
//   - schedstore.storage.operations (Int64Counter): total operations, with
//     the same attributes
func Metrics() Middleware {
	return MetricsWithMeter(otel.Meter(TracerName))
}

// MetricsWithMeter returns metrics middleware using the provided meter.
func MetricsWithMeter(meter metric.Meter) Middleware {
	// On error the API returns noop instruments.
	duration, _ := meter.Float64Histogram(
		"schedstore.storage.duration",
		metric.WithDescription("Duration of storage operations in seconds"),
		metric.WithUnit("s"),
	)
	operations, _ := meter.Int64Counter(
		"schedstore.storage.operations",
		metric.WithDescription("Total number of storage operations"),
		metric.WithUnit("{operation}"),
	)

	return func(ctx context.Context, op Op, next Handler) error {
		start := time.Now()
		err := next(ctx)
		elapsed := time.Since(start).Seconds()

		status := "ok"
		if err != nil {
			status = "error"
		}

		attrs := metric.WithAttributes(
			attribute.String("storage", op.Storage),
			attribute.String("kind", string(op.Kind)),
			attribute.String("status", status),
		)
		duration.Record(ctx, elapsed, attrs)
		operations.Add(ctx, 1, attrs)

		return err
	}
}
