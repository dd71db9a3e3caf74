package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/xraph/schedstore"
	"github.com/xraph/schedstore/id"
	"github.com/xraph/schedstore/job"
	"github.com/xraph/schedstore/task"
)

var _ task.Mutable = (*TaskStore)(nil)

// TaskStore is the in-memory task store.
type TaskStore struct {
	mu        sync.RWMutex
	tasks     map[string]*task.Task
	maxEvents int
}

// NewTaskStore returns an empty TaskStore keeping at most maxEvents events
// per task. Zero keeps every event.
func NewTaskStore(maxEvents int) *TaskStore {
	return &TaskStore{
		tasks:     make(map[string]*task.Task),
		maxEvents: maxEvents,
	}
}

// FetchTasks returns copies of every task matching q.
func (s *TaskStore) FetchTasks(_ context.Context, q task.Query) ([]*task.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*task.Task
	for _, t := range s.tasks {
		if q.Matches(t) {
			result = append(result, t.Clone())
		}
	}
	sortTasks(result)
	return result, nil
}

// FetchTask returns one task by ID.
func (s *TaskStore) FetchTask(_ context.Context, taskID id.TaskID) (*task.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.tasks[taskID.String()]
	if !ok {
		return nil, fmt.Errorf("%w: %s", schedstore.ErrTaskNotFound, taskID)
	}
	return t.Clone(), nil
}

// SaveTasks inserts or replaces tasks. Either every task is saved or none.
func (s *TaskStore) SaveTasks(_ context.Context, tasks ...*task.Task) error {
	for _, t := range tasks {
		if err := validateTask(t); err != nil {
			return err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range tasks {
		cp := t.Clone()
		s.trimEvents(cp)
		s.tasks[cp.ID.String()] = cp
	}
	return nil
}

// DeleteTasks removes the given tasks.
func (s *TaskStore) DeleteTasks(_ context.Context, taskIDs ...id.TaskID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, taskID := range taskIDs {
		delete(s.tasks, taskID.String())
	}
	return nil
}

// DeleteAllTasks removes every task.
func (s *TaskStore) DeleteAllTasks(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tasks = make(map[string]*task.Task)
	return nil
}

// MutateTasks applies fn to copies of the matching tasks and commits them
// only if every mutated task is still valid and kept its ID.
func (s *TaskStore) MutateTasks(_ context.Context, q task.Query, fn func(*task.Task)) ([]*task.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var mutated []*task.Task
	for key, t := range s.tasks {
		if !q.Matches(t) {
			continue
		}
		cp := t.Clone()
		fn(cp)
		if cp.ID.String() != key {
			return nil, fmt.Errorf("%w: mutation changed id %s to %s", schedstore.ErrInvalidTask, key, cp.ID)
		}
		if err := validateTask(cp); err != nil {
			return nil, err
		}
		s.trimEvents(cp)
		mutated = append(mutated, cp)
	}

	result := make([]*task.Task, 0, len(mutated))
	for _, t := range mutated {
		s.tasks[t.ID.String()] = t
		result = append(result, t.Clone())
	}
	sortTasks(result)
	return result, nil
}

// UnsafeModifyInPlace replaces the configuration of one task.
func (s *TaskStore) UnsafeModifyInPlace(_ context.Context, taskID id.TaskID, cfg job.TaskConfig) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tasks[taskID.String()]
	if !ok {
		return false, nil
	}
	cp := t.Clone()
	cp.Config = cfg.Clone()
	s.tasks[taskID.String()] = cp
	return true, nil
}

func (s *TaskStore) trimEvents(t *task.Task) {
	if s.maxEvents > 0 && len(t.Events) > s.maxEvents {
		t.Events = slices.Clone(t.Events[len(t.Events)-s.maxEvents:])
	}
}

func validateTask(t *task.Task) error {
	if t == nil {
		return fmt.Errorf("%w: nil task", schedstore.ErrInvalidTask)
	}
	if t.ID.IsNil() {
		return fmt.Errorf("%w: missing id", schedstore.ErrInvalidTask)
	}
	if err := t.JobKey.Validate(); err != nil {
		return fmt.Errorf("%w: task %s: %w", schedstore.ErrInvalidTask, t.ID, err)
	}
	return nil
}

func sortTasks(tasks []*task.Task) {
	slices.SortFunc(tasks, func(a, b *task.Task) int {
		return cmp.Or(
			cmp.Compare(a.JobKey.String(), b.JobKey.String()),
			cmp.Compare(a.InstanceID, b.InstanceID),
			cmp.Compare(a.ID.String(), b.ID.String()),
		)
	})
}
