package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/xraph/schedstore"
	"github.com/xraph/schedstore/attribute"
)

var _ attribute.Mutable = (*AttributeStore)(nil)

// AttributeStore is the in-memory host attribute store.
type AttributeStore struct {
	mu    sync.RWMutex
	hosts map[string]*attribute.HostAttributes
}

// NewAttributeStore returns an empty AttributeStore.
func NewAttributeStore() *AttributeStore {
	return &AttributeStore{hosts: make(map[string]*attribute.HostAttributes)}
}

// GetHostAttributes returns the attributes of host.
func (s *AttributeStore) GetHostAttributes(_ context.Context, host string) (*attribute.HostAttributes, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	h, ok := s.hosts[host]
	if !ok {
		return nil, fmt.Errorf("%w: %s", schedstore.ErrHostNotFound, host)
	}
	return h.Clone(), nil
}

// GetAllHostAttributes returns every host sorted by name.
func (s *AttributeStore) GetAllHostAttributes(_ context.Context) ([]*attribute.HostAttributes, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*attribute.HostAttributes, 0, len(s.hosts))
	for _, h := range s.hosts {
		result = append(result, h.Clone())
	}
	sort.Slice(result, func(i, k int) bool { return result[i].Host < result[k].Host })
	return result, nil
}

// SaveHostAttributes stores attrs, keeping the current mode when attrs has
// none.
func (s *AttributeStore) SaveHostAttributes(_ context.Context, attrs *attribute.HostAttributes) error {
	if attrs == nil || attrs.Host == "" {
		return schedstore.ErrInvalidHost
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cp := attrs.Clone()
	if cp.Mode == "" {
		cp.Mode = attribute.ModeNone
		if prev, ok := s.hosts[cp.Host]; ok {
			cp.Mode = prev.Mode
		}
	}
	s.hosts[cp.Host] = cp
	return nil
}

// SetMaintenanceMode sets the mode of a known host.
func (s *AttributeStore) SetMaintenanceMode(_ context.Context, host string, mode attribute.MaintenanceMode) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	h, ok := s.hosts[host]
	if !ok {
		return false, nil
	}
	cp := h.Clone()
	cp.Mode = mode
	s.hosts[host] = cp
	return true, nil
}

// DeleteHostAttributes removes every host.
func (s *AttributeStore) DeleteHostAttributes(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hosts = make(map[string]*attribute.HostAttributes)
	return nil
}
