// Package store defines the aggregate storage facade. Each store role
// (scheduler, job, task, update, quota, attribute) defines its own store
// interface; Storage gives access to all six.
package store

import (
	"context"

	"github.com/xraph/schedstore/attribute"
	"github.com/xraph/schedstore/binding"
	"github.com/xraph/schedstore/job"
	"github.com/xraph/schedstore/quota"
	"github.com/xraph/schedstore/scheduler"
	"github.com/xraph/schedstore/task"
	"github.com/xraph/schedstore/update"
)

// StoreProvider gives read access to every store.
type StoreProvider interface {
	Scheduler() scheduler.Store
	Jobs() job.Store
	Tasks() task.Store
	Updates() update.Store
	Quotas() quota.Store
	Attributes() attribute.Store
}

// MutableStoreProvider gives write access to every store.
type MutableStoreProvider interface {
	Scheduler() scheduler.Mutable
	Jobs() job.Mutable
	Tasks() task.Mutable
	Updates() update.Mutable
	Quotas() quota.Mutable
	Attributes() attribute.Mutable
}

// Storage is the aggregate storage facade.
//
// Read and Write hand fn the stores; neither is transactional. A Write whose
// fn fails part way keeps the mutations made before the failure.
type Storage interface {
	// Read calls fn with read access to every store.
	Read(ctx context.Context, fn func(StoreProvider) error) error

	// Write calls fn with write access to every store.
	Write(ctx context.Context, fn func(MutableStoreProvider) error) error

	// Ping reports whether the storage is usable.
	Ping(ctx context.Context) error

	// Close releases the storage. Later calls fail with
	// schedstore.ErrStoreClosed.
	Close() error
}

// VolatileTag tags the key under which in-memory storage is always
// reachable, whatever key strategy the composition uses.
const VolatileTag = "volatile"

// Capability is the aggregate storage capability.
var Capability = binding.NewCapability[Storage]("store.Storage")
