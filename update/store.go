// Package update defines in-flight job update configurations and the store
// that holds them. At most one update is in flight per job.
package update

import (
	"context"
	"slices"

	"github.com/xraph/schedstore"
	"github.com/xraph/schedstore/binding"
	"github.com/xraph/schedstore/id"
	"github.com/xraph/schedstore/job"
)

// InstanceUpdate describes the change to one instance. A nil Old means the
// instance is being added; a nil New means it is being removed.
type InstanceUpdate struct {
	InstanceID int             `json:"instance_id"`
	Old        *job.TaskConfig `json:"old,omitempty"`
	New        *job.TaskConfig `json:"new,omitempty"`
}

// Configuration is an in-flight job update, identified by its token.
type Configuration struct {
	schedstore.Entity

	JobKey    job.Key          `json:"job_key"`
	Token     id.UpdateID      `json:"token"`
	Instances []InstanceUpdate `json:"instances"`
}

// Clone returns a deep copy of c.
func (c *Configuration) Clone() *Configuration {
	cp := *c
	cp.Instances = slices.Clone(c.Instances)
	for i, in := range cp.Instances {
		if in.Old != nil {
			old := in.Old.Clone()
			cp.Instances[i].Old = &old
		}
		if in.New != nil {
			nw := in.New.Clone()
			cp.Instances[i].New = &nw
		}
	}
	return &cp
}

// Store is the read-only view of job updates.
type Store interface {
	// FetchJobUpdateConfig returns the update in flight for key.
	FetchJobUpdateConfig(ctx context.Context, key job.Key) (*Configuration, error)

	// FetchUpdatingRoles returns the sorted roles with at least one update in
	// flight.
	FetchUpdatingRoles(ctx context.Context) ([]string, error)

	// FetchUpdateConfigs returns the updates in flight for role, sorted by
	// job key.
	FetchUpdateConfigs(ctx context.Context, role string) ([]*Configuration, error)
}

// Mutable extends Store with writes. It is internal to the storage
// subsystem.
type Mutable interface {
	Store

	// SaveJobUpdateConfig stores a copy of cfg, replacing any update for the
	// same job. If cfg.Token is nil a new token is generated and written
	// into cfg itself, so the caller learns the token; no other field of cfg
	// is modified.
	SaveJobUpdateConfig(ctx context.Context, cfg *Configuration) error

	// RemoveShardUpdateConfigs removes the update in flight for key.
	RemoveShardUpdateConfigs(ctx context.Context, key job.Key) error

	// DeleteShardUpdateConfigs removes every update.
	DeleteShardUpdateConfigs(ctx context.Context) error
}

var (
	Capability        = binding.NewCapability[Store]("update.Store")
	MutableCapability = binding.NewInternalCapability[Mutable]("update.Mutable")
	Role              = binding.NewRole(Capability, MutableCapability)
)
