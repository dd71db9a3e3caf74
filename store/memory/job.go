package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/xraph/schedstore"
	"github.com/xraph/schedstore/job"
)

var _ job.Mutable = (*JobStore)(nil)

// JobStore is the in-memory store of accepted jobs.
type JobStore struct {
	mu sync.RWMutex

	// managers maps manager ID to the jobs it owns.
	managers map[string]map[job.Key]*job.Configuration
	// owners maps each job key to its manager ID.
	owners map[job.Key]string
}

// NewJobStore returns an empty JobStore.
func NewJobStore() *JobStore {
	return &JobStore{
		managers: make(map[string]map[job.Key]*job.Configuration),
		owners:   make(map[job.Key]string),
	}
}

// FetchManagerIDs returns the sorted IDs of managers owning jobs.
func (s *JobStore) FetchManagerIDs(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.managers))
	for managerID := range s.managers {
		ids = append(ids, managerID)
	}
	sort.Strings(ids)
	return ids, nil
}

// FetchJobs returns the jobs owned by managerID, sorted by key.
func (s *JobStore) FetchJobs(_ context.Context, managerID string) ([]*job.Configuration, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	jobs := s.managers[managerID]
	result := make([]*job.Configuration, 0, len(jobs))
	for _, cfg := range jobs {
		result = append(result, cfg.Clone())
	}
	sort.Slice(result, func(i, k int) bool {
		return result[i].Key.String() < result[k].Key.String()
	})
	return result, nil
}

// FetchJob returns one job owned by managerID.
func (s *JobStore) FetchJob(_ context.Context, managerID string, key job.Key) (*job.Configuration, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cfg, ok := s.managers[managerID][key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", schedstore.ErrJobNotFound, key)
	}
	return cfg.Clone(), nil
}

// SaveAcceptedJob files cfg under managerID.
func (s *JobStore) SaveAcceptedJob(_ context.Context, managerID string, cfg *job.Configuration) error {
	if cfg == nil {
		return fmt.Errorf("%w: nil configuration", schedstore.ErrInvalidJobKey)
	}
	if err := cfg.Key.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cp := cfg.Clone()
	now := time.Now().UTC()
	if prev, ok := s.owners[cfg.Key]; ok {
		cp.CreatedAt = s.managers[prev][cfg.Key].CreatedAt
		s.remove(prev, cfg.Key)
	} else if cp.CreatedAt.IsZero() {
		cp.CreatedAt = now
	}
	cp.UpdatedAt = now

	jobs, ok := s.managers[managerID]
	if !ok {
		jobs = make(map[job.Key]*job.Configuration)
		s.managers[managerID] = jobs
	}
	jobs[cfg.Key] = cp
	s.owners[cfg.Key] = managerID
	return nil
}

// RemoveJob removes the job with key.
func (s *JobStore) RemoveJob(_ context.Context, key job.Key) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	managerID, ok := s.owners[key]
	if !ok {
		return fmt.Errorf("%w: %s", schedstore.ErrJobNotFound, key)
	}
	s.remove(managerID, key)
	return nil
}

// DeleteJobs removes every job.
func (s *JobStore) DeleteJobs(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.managers = make(map[string]map[job.Key]*job.Configuration)
	s.owners = make(map[job.Key]string)
	return nil
}

// remove drops key from managerID. Callers hold the write lock.
func (s *JobStore) remove(managerID string, key job.Key) {
	delete(s.managers[managerID], key)
	if len(s.managers[managerID]) == 0 {
		delete(s.managers, managerID)
	}
	delete(s.owners, key)
}
