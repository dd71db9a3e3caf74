// Package task defines scheduled tasks, their status lifecycle, and the
// store that holds them.
package task

import (
	"slices"
	"time"

	"github.com/xraph/schedstore/id"
	"github.com/xraph/schedstore/job"
)

// Status is the scheduling status of a task.
type Status string

const (
	StatusInit       Status = "init"
	StatusThrottled  Status = "throttled"
	StatusPending    Status = "pending"
	StatusAssigned   Status = "assigned"
	StatusStarting   Status = "starting"
	StatusRunning    Status = "running"
	StatusPreempting Status = "preempting"
	StatusRestarting Status = "restarting"
	StatusDraining   Status = "draining"
	StatusKilling    Status = "killing"
	StatusFinished   Status = "finished"
	StatusFailed     Status = "failed"
	StatusKilled     Status = "killed"
	StatusLost       Status = "lost"
)

// IsTerminal reports whether a task in this status will never run again.
func (s Status) IsTerminal() bool {
	switch s {
	case StatusFinished, StatusFailed, StatusKilled, StatusLost:
		return true
	default:
		return false
	}
}

// IsActive reports whether a task in this status occupies its instance slot.
func (s Status) IsActive() bool {
	return s != "" && !s.IsTerminal()
}

// Event records a status transition.
type Event struct {
	Status    Status    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Message   string    `json:"message,omitempty"`
}

// Task is one scheduled instance of a job.
type Task struct {
	ID           id.TaskID      `json:"id"`
	JobKey       job.Key        `json:"job_key"`
	InstanceID   int            `json:"instance_id"`
	Status       Status         `json:"status"`
	SlaveHost    string         `json:"slave_host,omitempty"`
	AncestorID   id.TaskID      `json:"ancestor_id,omitempty"`
	FailureCount int            `json:"failure_count"`
	Config       job.TaskConfig `json:"config"`
	Events       []Event        `json:"events,omitempty"`
}

// Clone returns a deep copy of t.
func (t *Task) Clone() *Task {
	cp := *t
	cp.Config = t.Config.Clone()
	cp.Events = slices.Clone(t.Events)
	return &cp
}

// Transition sets the status and appends a matching event.
func (t *Task) Transition(status Status, message string) {
	t.Status = status
	t.Events = append(t.Events, Event{
		Status:    status,
		Timestamp: time.Now().UTC(),
		Message:   message,
	})
}
