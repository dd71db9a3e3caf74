package task

import (
	"slices"

	"github.com/xraph/schedstore/id"
	"github.com/xraph/schedstore/job"
)

// Query selects tasks. Zero-valued fields do not constrain the result; a
// zero Query matches every task.
type Query struct {
	// JobKey restricts to one job.
	JobKey *job.Key
	// Role restricts to jobs of one role.
	Role string
	// TaskIDs restricts to the given tasks.
	TaskIDs []id.TaskID
	// Statuses restricts to tasks in any of the given statuses.
	Statuses []Status
	// InstanceIDs restricts to the given instances.
	InstanceIDs []int
	// SlaveHost restricts to tasks placed on one host.
	SlaveHost string
}

// ByJob returns a query for every task of key.
func ByJob(key job.Key) Query { return Query{JobKey: &key} }

// ByID returns a query for the given tasks.
func ByID(ids ...id.TaskID) Query { return Query{TaskIDs: ids} }

// Active returns a query for every active task of key.
func Active(key job.Key) Query {
	q := ByJob(key)
	for _, s := range allStatuses {
		if s.IsActive() {
			q.Statuses = append(q.Statuses, s)
		}
	}
	return q
}

var allStatuses = []Status{
	StatusInit, StatusThrottled, StatusPending, StatusAssigned, StatusStarting,
	StatusRunning, StatusPreempting, StatusRestarting, StatusDraining, StatusKilling,
	StatusFinished, StatusFailed, StatusKilled, StatusLost,
}

// Matches reports whether t satisfies q.
func (q Query) Matches(t *Task) bool {
	if q.JobKey != nil && t.JobKey != *q.JobKey {
		return false
	}
	if q.Role != "" && t.JobKey.Role != q.Role {
		return false
	}
	if len(q.TaskIDs) > 0 && !slices.ContainsFunc(q.TaskIDs, func(i id.TaskID) bool {
		return i.String() == t.ID.String()
	}) {
		return false
	}
	if len(q.Statuses) > 0 && !slices.Contains(q.Statuses, t.Status) {
		return false
	}
	if len(q.InstanceIDs) > 0 && !slices.Contains(q.InstanceIDs, t.InstanceID) {
		return false
	}
	if q.SlaveHost != "" && t.SlaveHost != q.SlaveHost {
		return false
	}
	return true
}
