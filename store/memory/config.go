package memory

import (
	"log/slog"

	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/xraph/schedstore/middleware"
)

// Config holds configuration for the in-memory stores.
type Config struct {
	// MaxTaskEvents caps the status history kept per task. Older events are
	// dropped first. Zero keeps every event.
	MaxTaskEvents int
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		MaxTaskEvents: 100,
	}
}

// Option configures a Module.
type Option func(*Module)

// WithConfig sets the store configuration.
func WithConfig(cfg Config) Option {
	return func(m *Module) {
		m.config = cfg
	}
}

// WithLogger sets the structured logger for composition and storage.
func WithLogger(l *slog.Logger) Option {
	return func(m *Module) {
		m.logger = l
	}
}

// WithTracer sets the tracer used for composition and storage spans.
func WithTracer(t trace.Tracer) Option {
	return func(m *Module) {
		m.tracer = t
	}
}

// WithMeter sets the meter used for storage operation metrics.
func WithMeter(mt metric.Meter) Option {
	return func(m *Module) {
		m.meter = mt
	}
}

// WithMiddleware appends middleware to the storage operation chain. It runs
// inside the built-in logging, recovery, tracing and metrics middleware.
func WithMiddleware(mws ...middleware.Middleware) Option {
	return func(m *Module) {
		m.middleware = append(m.middleware, mws...)
	}
}
