package task

import (
	"context"

	"github.com/xraph/schedstore/binding"
	"github.com/xraph/schedstore/id"
	"github.com/xraph/schedstore/job"
)

// Store is the read-only view of scheduled tasks.
type Store interface {
	// FetchTasks returns copies of every task matching q, ordered by job
	// key, then instance ID, then task ID.
	FetchTasks(ctx context.Context, q Query) ([]*Task, error)

	// FetchTask returns one task by ID.
	FetchTask(ctx context.Context, taskID id.TaskID) (*Task, error)
}

// Mutable extends Store with writes. It is internal to the storage
// subsystem.
type Mutable interface {
	Store

	// SaveTasks inserts or replaces tasks by ID.
	SaveTasks(ctx context.Context, tasks ...*Task) error

	// DeleteTasks removes the given tasks. Unknown IDs are ignored.
	DeleteTasks(ctx context.Context, taskIDs ...id.TaskID) error

	// DeleteAllTasks removes every task.
	DeleteAllTasks(ctx context.Context) error

	// MutateTasks applies fn to every task matching q and returns copies of
	// the mutated tasks. fn must not change task IDs.
	MutateTasks(ctx context.Context, q Query, fn func(*Task)) ([]*Task, error)

	// UnsafeModifyInPlace replaces the configuration of one task without a
	// status transition. It reports whether the task existed.
	UnsafeModifyInPlace(ctx context.Context, taskID id.TaskID, cfg job.TaskConfig) (bool, error)
}

var (
	Capability        = binding.NewCapability[Store]("task.Store")
	MutableCapability = binding.NewInternalCapability[Mutable]("task.Mutable")
	Role              = binding.NewRole(Capability, MutableCapability)
)
