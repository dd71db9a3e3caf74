package job

import (
	"fmt"
	"strings"

	"github.com/xraph/schedstore"
)

// Key identifies a job.
type Key struct {
	Role        string `json:"role"`
	Environment string `json:"environment"`
	Name        string `json:"name"`
}

// String renders the key as "role/environment/name".
func (k Key) String() string {
	return k.Role + "/" + k.Environment + "/" + k.Name
}

// Validate checks that every component is present and contains no slash.
func (k Key) Validate() error {
	for _, part := range []string{k.Role, k.Environment, k.Name} {
		if part == "" || strings.Contains(part, "/") {
			return fmt.Errorf("%w: %q", schedstore.ErrInvalidJobKey, k.String())
		}
	}
	return nil
}

// CronCollisionPolicy controls what happens when a cron run fires while the
// previous run is still active.
type CronCollisionPolicy string

const (
	// KillExisting kills the active run before starting a new one.
	KillExisting CronCollisionPolicy = "kill_existing"
	// CancelNew skips the new run.
	CancelNew CronCollisionPolicy = "cancel_new"
	// RunOverlap starts the new run alongside the active one.
	RunOverlap CronCollisionPolicy = "run_overlap"
)

// TaskConfig describes the resources and policy of a single task.
type TaskConfig struct {
	NumCPUs         float64           `json:"num_cpus"`
	RAMMB           int64             `json:"ram_mb"`
	DiskMB          int64             `json:"disk_mb"`
	Priority        int               `json:"priority"`
	Production      bool              `json:"production"`
	MaxTaskFailures int               `json:"max_task_failures"`
	ContactEmail    string            `json:"contact_email,omitempty"`
	Metadata        map[string]string `json:"metadata,omitempty"`
}

// Clone returns a deep copy of c.
func (c TaskConfig) Clone() TaskConfig {
	if c.Metadata != nil {
		md := make(map[string]string, len(c.Metadata))
		for k, v := range c.Metadata {
			md[k] = v
		}
		c.Metadata = md
	}
	return c
}

// Configuration is an accepted job.
type Configuration struct {
	schedstore.Entity

	Key                 Key                 `json:"key"`
	Owner               string              `json:"owner"`
	CronSchedule        string              `json:"cron_schedule,omitempty"`
	CronCollisionPolicy CronCollisionPolicy `json:"cron_collision_policy,omitempty"`
	InstanceCount       int                 `json:"instance_count"`
	Task                TaskConfig          `json:"task"`
}

// Clone returns a deep copy of c.
func (c *Configuration) Clone() *Configuration {
	cp := *c
	cp.Task = c.Task.Clone()
	return &cp
}
