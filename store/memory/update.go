package memory

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/xraph/schedstore"
	"github.com/xraph/schedstore/id"
	"github.com/xraph/schedstore/job"
	"github.com/xraph/schedstore/update"
)

var _ update.Mutable = (*UpdateStore)(nil)

// UpdateStore is the in-memory store of in-flight job updates.
type UpdateStore struct {
	mu      sync.RWMutex
	updates map[job.Key]*update.Configuration
}

// NewUpdateStore returns an empty UpdateStore.
func NewUpdateStore() *UpdateStore {
	return &UpdateStore{updates: make(map[job.Key]*update.Configuration)}
}

// FetchJobUpdateConfig returns the update in flight for key.
func (s *UpdateStore) FetchJobUpdateConfig(_ context.Context, key job.Key) (*update.Configuration, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cfg, ok := s.updates[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", schedstore.ErrUpdateNotFound, key)
	}
	return cfg.Clone(), nil
}

// FetchUpdatingRoles returns the sorted roles with updates in flight.
func (s *UpdateStore) FetchUpdatingRoles(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	roles := make([]string, 0, len(s.updates))
	for key := range s.updates {
		roles = append(roles, key.Role)
	}
	slices.Sort(roles)
	return slices.Compact(roles), nil
}

// FetchUpdateConfigs returns the updates in flight for role.
func (s *UpdateStore) FetchUpdateConfigs(_ context.Context, role string) ([]*update.Configuration, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*update.Configuration
	for key, cfg := range s.updates {
		if key.Role == role {
			result = append(result, cfg.Clone())
		}
	}
	sort.Slice(result, func(i, k int) bool {
		return result[i].JobKey.String() < result[k].JobKey.String()
	})
	return result, nil
}

// SaveJobUpdateConfig stores a copy of cfg. A nil cfg.Token is replaced
// with a new token in the caller's cfg before the copy is taken.
func (s *UpdateStore) SaveJobUpdateConfig(_ context.Context, cfg *update.Configuration) error {
	if cfg == nil {
		return fmt.Errorf("%w: nil configuration", schedstore.ErrInvalidJobKey)
	}
	if err := cfg.JobKey.Validate(); err != nil {
		return err
	}
	if cfg.Token.IsNil() {
		cfg.Token = id.NewUpdateID()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cp := cfg.Clone()
	now := time.Now().UTC()
	if prev, ok := s.updates[cfg.JobKey]; ok {
		cp.CreatedAt = prev.CreatedAt
	} else if cp.CreatedAt.IsZero() {
		cp.CreatedAt = now
	}
	cp.UpdatedAt = now
	s.updates[cfg.JobKey] = cp
	return nil
}

// RemoveShardUpdateConfigs removes the update in flight for key.
func (s *UpdateStore) RemoveShardUpdateConfigs(_ context.Context, key job.Key) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.updates[key]; !ok {
		return fmt.Errorf("%w: %s", schedstore.ErrUpdateNotFound, key)
	}
	delete(s.updates, key)
	return nil
}

// DeleteShardUpdateConfigs removes every update.
func (s *UpdateStore) DeleteShardUpdateConfigs(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.updates = make(map[job.Key]*update.Configuration)
	return nil
}
