package memory

import (
	"context"
	"sync"

	"github.com/xraph/schedstore"
	"github.com/xraph/schedstore/scheduler"
)

var _ scheduler.Mutable = (*SchedulerStore)(nil)

// SchedulerStore is the in-memory scheduler metadata store.
type SchedulerStore struct {
	mu          sync.RWMutex
	frameworkID string
}

// NewSchedulerStore returns an empty SchedulerStore.
func NewSchedulerStore() *SchedulerStore {
	return &SchedulerStore{}
}

// FetchFrameworkID returns the stored framework ID.
func (s *SchedulerStore) FetchFrameworkID(_ context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.frameworkID == "" {
		return "", schedstore.ErrFrameworkIDNotFound
	}
	return s.frameworkID, nil
}

// SaveFrameworkID stores the framework ID.
func (s *SchedulerStore) SaveFrameworkID(_ context.Context, frameworkID string) error {
	if frameworkID == "" {
		return schedstore.ErrInvalidFrameworkID
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.frameworkID = frameworkID
	return nil
}
