// Package quota defines per-role resource quotas and the store that holds
// them.
package quota

import (
	"context"
	"fmt"

	"github.com/xraph/schedstore"
	"github.com/xraph/schedstore/binding"
)

// Quota is an aggregate resource allowance.
type Quota struct {
	NumCPUs float64 `json:"num_cpus"`
	RAMMB   int64   `json:"ram_mb"`
	DiskMB  int64   `json:"disk_mb"`
}

// Validate rejects negative components.
func (q Quota) Validate() error {
	if q.NumCPUs < 0 || q.RAMMB < 0 || q.DiskMB < 0 {
		return fmt.Errorf("%w: %+v", schedstore.ErrInvalidQuota, q)
	}
	return nil
}

// Add returns the component-wise sum of q and o.
func (q Quota) Add(o Quota) Quota {
	return Quota{
		NumCPUs: q.NumCPUs + o.NumCPUs,
		RAMMB:   q.RAMMB + o.RAMMB,
		DiskMB:  q.DiskMB + o.DiskMB,
	}
}

// Exceeds reports whether any component of q is greater than limit's.
func (q Quota) Exceeds(limit Quota) bool {
	return q.NumCPUs > limit.NumCPUs || q.RAMMB > limit.RAMMB || q.DiskMB > limit.DiskMB
}

// Store is the read-only view of quotas.
type Store interface {
	// FetchQuota returns the quota of role.
	FetchQuota(ctx context.Context, role string) (Quota, error)

	// FetchQuotas returns every stored quota keyed by role.
	FetchQuotas(ctx context.Context) (map[string]Quota, error)
}

// Mutable extends Store with writes. It is internal to the storage
// subsystem.
type Mutable interface {
	Store

	// SaveQuota sets the quota of role.
	SaveQuota(ctx context.Context, role string, q Quota) error

	// RemoveQuota removes the quota of role, if any.
	RemoveQuota(ctx context.Context, role string) error

	// DeleteQuotas removes every quota.
	DeleteQuotas(ctx context.Context) error
}

var (
	Capability        = binding.NewCapability[Store]("quota.Store")
	MutableCapability = binding.NewInternalCapability[Mutable]("quota.Mutable")
	Role              = binding.NewRole(Capability, MutableCapability)
)
