// Package scheduler defines the store for scheduler-wide metadata, currently
// the framework ID the scheduler registered with.
package scheduler

import (
	"context"

	"github.com/xraph/schedstore/binding"
)

// Store is the read-only view of scheduler metadata.
type Store interface {
	// FetchFrameworkID returns the stored framework ID, or
	// schedstore.ErrFrameworkIDNotFound if none has been saved.
	FetchFrameworkID(ctx context.Context) (string, error)
}

// Mutable extends Store with writes. It is internal to the storage
// subsystem.
type Mutable interface {
	Store

	// SaveFrameworkID stores the framework ID, replacing any previous one.
	SaveFrameworkID(ctx context.Context, frameworkID string) error
}

var (
	Capability        = binding.NewCapability[Store]("scheduler.Store")
	MutableCapability = binding.NewInternalCapability[Mutable]("scheduler.Mutable")
	Role              = binding.NewRole(Capability, MutableCapability)
)
