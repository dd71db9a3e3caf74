// Package attribute defines host attributes and maintenance modes, and the
// store that holds them.
package attribute

import (
	"context"
	"slices"

	"github.com/xraph/schedstore/binding"
)

// MaintenanceMode is the maintenance state of a host.
type MaintenanceMode string

const (
	ModeNone      MaintenanceMode = "none"
	ModeScheduled MaintenanceMode = "scheduled"
	ModeDraining  MaintenanceMode = "draining"
	ModeDrained   MaintenanceMode = "drained"
)

// Attribute is a named, multi-valued host attribute, e.g. rack or zone.
type Attribute struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

// HostAttributes is everything known about one host.
type HostAttributes struct {
	Host       string          `json:"host"`
	SlaveID    string          `json:"slave_id,omitempty"`
	Attributes []Attribute     `json:"attributes,omitempty"`
	Mode       MaintenanceMode `json:"mode,omitempty"`
}

// Clone returns a deep copy of h.
func (h *HostAttributes) Clone() *HostAttributes {
	cp := *h
	cp.Attributes = slices.Clone(h.Attributes)
	for i := range cp.Attributes {
		cp.Attributes[i].Values = slices.Clone(cp.Attributes[i].Values)
	}
	return &cp
}

// Values returns the values of the named attribute.
func (h *HostAttributes) Values(name string) []string {
	for _, a := range h.Attributes {
		if a.Name == name {
			return a.Values
		}
	}
	return nil
}

// Store is the read-only view of host attributes.
type Store interface {
	// GetHostAttributes returns the attributes of host.
	GetHostAttributes(ctx context.Context, host string) (*HostAttributes, error)

	// GetAllHostAttributes returns every host, sorted by host name.
	GetAllHostAttributes(ctx context.Context) ([]*HostAttributes, error)
}

// Mutable extends Store with writes. It is internal to the storage
// subsystem.
type Mutable interface {
	Store

	// SaveHostAttributes stores attrs. A record without a mode keeps the
	// host's current mode, or ModeNone for a new host.
	SaveHostAttributes(ctx context.Context, attrs *HostAttributes) error

	// SetMaintenanceMode sets the mode of a known host and reports whether
	// the host was found.
	SetMaintenanceMode(ctx context.Context, host string, mode MaintenanceMode) (bool, error)

	// DeleteHostAttributes removes every host.
	DeleteHostAttributes(ctx context.Context) error
}

var (
	Capability        = binding.NewCapability[Store]("attribute.Store")
	MutableCapability = binding.NewInternalCapability[Mutable]("attribute.Mutable")
	Role              = binding.NewRole(Capability, MutableCapability)
)
