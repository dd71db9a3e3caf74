package memory

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/xraph/schedstore"
	"github.com/xraph/schedstore/attribute"
	"github.com/xraph/schedstore/job"
	"github.com/xraph/schedstore/middleware"
	"github.com/xraph/schedstore/quota"
	"github.com/xraph/schedstore/scheduler"
	"github.com/xraph/schedstore/store"
	"github.com/xraph/schedstore/task"
	"github.com/xraph/schedstore/update"
)

// storageName identifies this implementation in logs, spans and metrics.
const storageName = "memory"

var _ store.Storage = (*Storage)(nil)

// Stores holds the six mutable stores behind a Storage.
type Stores struct {
	Scheduler  scheduler.Mutable
	Jobs       job.Mutable
	Tasks      task.Mutable
	Updates    update.Mutable
	Quotas     quota.Mutable
	Attributes attribute.Mutable
}

// Storage is the in-memory aggregate storage facade. Read and Write calls
// run through a middleware chain.
type Storage struct {
	stores Stores
	chain  middleware.Middleware
	logger *slog.Logger
	closed atomic.Bool
}

// NewStorage returns a Storage over stores. Every Read and Write runs
// through mws, outermost first.
func NewStorage(stores Stores, logger *slog.Logger, mws ...middleware.Middleware) *Storage {
	if logger == nil {
		logger = slog.Default()
	}
	return &Storage{
		stores: stores,
		chain:  middleware.Chain(mws...),
		logger: logger,
	}
}

// Read calls fn with read access to every store.
func (s *Storage) Read(ctx context.Context, fn func(store.StoreProvider) error) error {
	return s.run(ctx, middleware.KindRead, func() error {
		return fn(readProvider{s.stores})
	})
}

// Write calls fn with write access to every store. Mutations made before fn
// fails are kept.
func (s *Storage) Write(ctx context.Context, fn func(store.MutableStoreProvider) error) error {
	return s.run(ctx, middleware.KindWrite, func() error {
		return fn(writeProvider{s.stores})
	})
}

// Ping reports whether the storage is open.
func (s *Storage) Ping(ctx context.Context) error {
	if s.closed.Load() {
		return schedstore.ErrStoreClosed
	}
	return ctx.Err()
}

// Close marks the storage closed. Closing twice is a no-op.
func (s *Storage) Close() error {
	if s.closed.CompareAndSwap(false, true) {
		s.logger.Debug("memory: storage closed")
	}
	return nil
}

func (s *Storage) run(ctx context.Context, kind middleware.Kind, fn func() error) error {
	if s.closed.Load() {
		return schedstore.ErrStoreClosed
	}
	op := middleware.Op{Kind: kind, Storage: storageName}
	return s.chain(ctx, op, func(ctx context.Context) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		return fn()
	})
}

type readProvider struct{ s Stores }

func (p readProvider) Scheduler() scheduler.Store { return p.s.Scheduler }
func (p readProvider) Jobs() job.Store { return p.s.Jobs }
func (p readProvider) Tasks() task.Store { return p.s.Tasks }
func (p readProvider) Updates() update.Store { return p.s.Updates }
func (p readProvider) Quotas() quota.Store { return p.s.Quotas }
func (p readProvider) Attributes() attribute.Store { return p.s.Attributes }

type writeProvider struct{ s Stores }

func (p writeProvider) Scheduler() scheduler.Mutable { return p.s.Scheduler }
func (p writeProvider) Jobs() job.Mutable { return p.s.Jobs }
func (p writeProvider) Tasks() task.Mutable { return p.s.Tasks }
func (p writeProvider) Updates() update.Mutable { return p.s.Updates }
func (p writeProvider) Quotas() quota.Mutable { return p.s.Quotas }
func (p writeProvider) Attributes() attribute.Mutable { return p.s.Attributes }
