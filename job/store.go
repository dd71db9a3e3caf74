package job

import (
	"context"

	"github.com/xraph/schedstore/binding"
)

// Store is the read-only view of accepted jobs.
type Store interface {
	// FetchManagerIDs returns the IDs of managers that own at least one job,
	// sorted.
	FetchManagerIDs(ctx context.Context) ([]string, error)

	// FetchJobs returns the jobs owned by managerID, sorted by key. An
	// unknown manager has no jobs.
	FetchJobs(ctx context.Context, managerID string) ([]*Configuration, error)

	// FetchJob returns one job owned by managerID.
	FetchJob(ctx context.Context, managerID string, key Key) (*Configuration, error)
}

// Mutable extends Store with writes. It is internal to the storage
// subsystem.
type Mutable interface {
	Store

	// SaveAcceptedJob files cfg under managerID, replacing any configuration
	// with the same key under any manager.
	SaveAcceptedJob(ctx context.Context, managerID string, cfg *Configuration) error

	// RemoveJob removes the job with key from whichever manager owns it.
	RemoveJob(ctx context.Context, key Key) error

	// DeleteJobs removes every job.
	DeleteJobs(ctx context.Context) error
}

var (
	Capability        = binding.NewCapability[Store]("job.Store")
	MutableCapability = binding.NewInternalCapability[Mutable]("job.Mutable")
	Role              = binding.NewRole(Capability, MutableCapability)
)
