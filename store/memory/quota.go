package memory

import (
	"context"
	"fmt"
	"maps"
	"sync"

	"github.com/xraph/schedstore"
	"github.com/xraph/schedstore/quota"
)

var _ quota.Mutable = (*QuotaStore)(nil)

// QuotaStore is the in-memory quota store.
type QuotaStore struct {
	mu     sync.RWMutex
	quotas map[string]quota.Quota
}

// NewQuotaStore returns an empty QuotaStore.
func NewQuotaStore() *QuotaStore {
	return &QuotaStore{quotas: make(map[string]quota.Quota)}
}

// FetchQuota returns the quota of role.
func (s *QuotaStore) FetchQuota(_ context.Context, role string) (quota.Quota, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q, ok := s.quotas[role]
	if !ok {
		return quota.Quota{}, fmt.Errorf("%w: %s", schedstore.ErrQuotaNotFound, role)
	}
	return q, nil
}

// FetchQuotas returns every quota keyed by role.
func (s *QuotaStore) FetchQuotas(_ context.Context) (map[string]quota.Quota, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return maps.Clone(s.quotas), nil
}

// SaveQuota sets the quota of role.
func (s *QuotaStore) SaveQuota(_ context.Context, role string, q quota.Quota) error {
	if role == "" {
		return fmt.Errorf("%w: empty role", schedstore.ErrInvalidQuota)
	}
	if err := q.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.quotas[role] = q
	return nil
}

// RemoveQuota removes the quota of role.
func (s *QuotaStore) RemoveQuota(_ context.Context, role string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.quotas, role)
	return nil
}

// DeleteQuotas removes every quota.
func (s *QuotaStore) DeleteQuotas(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.quotas = make(map[string]quota.Quota)
	return nil
}
