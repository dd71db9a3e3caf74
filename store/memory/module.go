package memory

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	otelattribute "go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/xraph/schedstore/attribute"
	"github.com/xraph/schedstore/binding"
	"github.com/xraph/schedstore/job"
	"github.com/xraph/schedstore/middleware"
	"github.com/xraph/schedstore/quota"
	"github.com/xraph/schedstore/scheduler"
	"github.com/xraph/schedstore/store"
	"github.com/xraph/schedstore/task"
	"github.com/xraph/schedstore/update"
)

// ComposeSpanName is the span recorded around Module.Compose.
const ComposeSpanName = "schedstore.storage.compose"

// Module composes the in-memory storage subsystem. It binds the aggregate
// Storage facade and the six stores, and exposes only their restricted
// capabilities plus the volatile storage alias.
//
// A Module composes at most once. Separate Modules share nothing.
type Module struct {
	config     Config
	logger     *slog.Logger
	tracer     trace.Tracer
	meter      metric.Meter
	middleware []middleware.Middleware
	registry   *binding.Registry
}

// NewModule returns a Module configured by opts.
func NewModule(opts ...Option) *Module {
	m := &Module{
		config: DefaultConfig(),
		logger: slog.Default(),
		tracer: otel.Tracer(middleware.TracerName),
		meter:  otel.Meter(middleware.TracerName),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.registry = binding.NewRegistry(m.logger)
	return m
}

// Compose binds the storage subsystem, builds it, and returns the exposed
// keys. keys decides the key under which each exposed capability is
// published; the volatile storage alias is published regardless.
//
// A second call fails with binding.ErrAlreadyComposed, as does any call
// after a failed build. A nil keys is rejected with binding.ErrNilKeyFactory
// before composition starts, so the Module can still be composed afterwards.
func (m *Module) Compose(ctx context.Context, keys binding.KeyFactory) (*binding.Boundary, error) {
	ctx, span := m.tracer.Start(ctx, ComposeSpanName, trace.WithSpanKind(trace.SpanKindInternal))
	defer span.End()

	b, err := binding.Compose(ctx, m.registry, keys, m.configure)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("memory: compose storage: %w", err)
	}

	span.SetAttributes(otelattribute.Int("schedstore.exposed_keys", b.Len()))
	span.SetStatus(codes.Ok, "")
	m.logger.Info("memory: storage composed", slog.Int("exposed_keys", b.Len()))
	return b, nil
}

func (m *Module) configure(b *binding.Binder) error {
	storage := binding.NewImplementation("memory.Storage", m.provideStorage)
	if err := binding.BindFacade(b, store.Capability, store.VolatileTag, storage); err != nil {
		return err
	}

	if err := binding.BindStore(b, scheduler.Role, binding.NewImplementation("memory.SchedulerStore",
		func(binding.Injector) (*SchedulerStore, error) { return NewSchedulerStore(), nil })); err != nil {
		return err
	}
	if err := binding.BindStore(b, job.Role, binding.NewImplementation("memory.JobStore",
		func(binding.Injector) (*JobStore, error) { return NewJobStore(), nil })); err != nil {
		return err
	}
	if err := binding.BindStore(b, task.Role, binding.NewImplementation("memory.TaskStore",
		func(binding.Injector) (*TaskStore, error) { return NewTaskStore(m.config.MaxTaskEvents), nil })); err != nil {
		return err
	}
	if err := binding.BindStore(b, update.Role, binding.NewImplementation("memory.UpdateStore",
		func(binding.Injector) (*UpdateStore, error) { return NewUpdateStore(), nil })); err != nil {
		return err
	}
	if err := binding.BindStore(b, quota.Role, binding.NewImplementation("memory.QuotaStore",
		func(binding.Injector) (*QuotaStore, error) { return NewQuotaStore(), nil })); err != nil {
		return err
	}
	return binding.BindStore(b, attribute.Role, binding.NewImplementation("memory.AttributeStore",
		func(binding.Injector) (*AttributeStore, error) { return NewAttributeStore(), nil }))
}

// provideStorage builds the facade from the mutable store singletons, so the
// facade and the exposed store keys share instances.
func (m *Module) provideStorage(in binding.Injector) (*Storage, error) {
	var (
		stores Stores
		err    error
	)
	if stores.Scheduler, err = binding.Inject(in, scheduler.MutableCapability); err != nil {
		return nil, err
	}
	if stores.Jobs, err = binding.Inject(in, job.MutableCapability); err != nil {
		return nil, err
	}
	if stores.Tasks, err = binding.Inject(in, task.MutableCapability); err != nil {
		return nil, err
	}
	if stores.Updates, err = binding.Inject(in, update.MutableCapability); err != nil {
		return nil, err
	}
	if stores.Quotas, err = binding.Inject(in, quota.MutableCapability); err != nil {
		return nil, err
	}
	if stores.Attributes, err = binding.Inject(in, attribute.MutableCapability); err != nil {
		return nil, err
	}

	mws := append([]middleware.Middleware{
		middleware.Logging(m.logger),
		middleware.Recover(m.logger),
		middleware.TracingWithTracer(m.tracer),
		middleware.MetricsWithMeter(m.meter),
	}, m.middleware...)
	return NewStorage(stores, m.logger, mws...), nil
}
