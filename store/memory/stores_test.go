package memory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/xraph/schedstore"
	"github.com/xraph/schedstore/attribute"
	"github.com/xraph/schedstore/id"
	"github.com/xraph/schedstore/job"
	"github.com/xraph/schedstore/quota"
	"github.com/xraph/schedstore/store/memory"
	"github.com/xraph/schedstore/task"
	"github.com/xraph/schedstore/update"
)

var (
	testJob  = job.Key{Role: "www-data", Environment: "prod", Name: "hello"}
	otherJob = job.Key{Role: "mesos", Environment: "test", Name: "cron"}
)

func newTask(key job.Key, instance int) *task.Task {
	return &task.Task{
		ID:         id.NewTaskID(),
		JobKey:     key,
		InstanceID: instance,
		Status:     task.StatusPending,
		Config:     job.TaskConfig{NumCPUs: 1, RAMMB: 128, DiskMB: 256},
	}
}

func newJobConfig(key job.Key) *job.Configuration {
	return &job.Configuration{
		Entity:        schedstore.NewEntity(),
		Key:           key,
		Owner:         "alice",
		InstanceCount: 2,
		Task:          job.TaskConfig{NumCPUs: 1, Metadata: map[string]string{"tier": "web"}},
	}
}

// ──────────────────────────────────────────────────
// Scheduler store tests
// ──────────────────────────────────────────────────

func TestSchedulerFrameworkID(t *testing.T) {
	t.Parallel()
	s := memory.NewSchedulerStore()
	ctx := context.Background()

	if _, err := s.FetchFrameworkID(ctx); !errors.Is(err, schedstore.ErrFrameworkIDNotFound) {
		t.Fatalf("expected ErrFrameworkIDNotFound, got %v", err)
	}
	if err := s.SaveFrameworkID(ctx, ""); !errors.Is(err, schedstore.ErrInvalidFrameworkID) {
		t.Fatalf("expected ErrInvalidFrameworkID, got %v", err)
	}
	if err := s.SaveFrameworkID(ctx, "fw-1"); err != nil {
		t.Fatalf("SaveFrameworkID: %v", err)
	}
	got, err := s.FetchFrameworkID(ctx)
	if err != nil {
		t.Fatalf("FetchFrameworkID: %v", err)
	}
	if got != "fw-1" {
		t.Errorf("framework id = %q, want fw-1", got)
	}
}

// ──────────────────────────────────────────────────
// Job store tests
// ──────────────────────────────────────────────────

func TestJobSaveAndFetch(t *testing.T) {
	t.Parallel()
	s := memory.NewJobStore()
	ctx := context.Background()

	tests := []struct {
		name    string
		fn      func() error
		wantErr error
	}{
		{"save", func() error { return s.SaveAcceptedJob(ctx, "cron", newJobConfig(testJob)) }, nil},
		{"save other", func() error { return s.SaveAcceptedJob(ctx, "immediate", newJobConfig(otherJob)) }, nil},
		{"invalid key", func() error {
			return s.SaveAcceptedJob(ctx, "cron", newJobConfig(job.Key{Role: "a/b", Environment: "x", Name: "y"}))
		}, schedstore.ErrInvalidJobKey},
		{"nil config", func() error { return s.SaveAcceptedJob(ctx, "cron", nil) }, schedstore.ErrInvalidJobKey},
	}

	for _, tt := range tests {
		if err := tt.fn(); !errors.Is(err, tt.wantErr) {
			t.Fatalf("%s: error = %v, want %v", tt.name, err, tt.wantErr)
		}
	}

	ids, err := s.FetchManagerIDs(ctx)
	if err != nil {
		t.Fatalf("FetchManagerIDs: %v", err)
	}
	if len(ids) != 2 || ids[0] != "cron" || ids[1] != "immediate" {
		t.Errorf("manager ids = %v", ids)
	}

	got, err := s.FetchJob(ctx, "cron", testJob)
	if err != nil {
		t.Fatalf("FetchJob: %v", err)
	}
	if got.Owner != "alice" || got.CreatedAt.IsZero() || got.UpdatedAt.IsZero() {
		t.Errorf("job = %+v", got)
	}

	if _, err := s.FetchJob(ctx, "immediate", testJob); !errors.Is(err, schedstore.ErrJobNotFound) {
		t.Errorf("wrong manager: expected ErrJobNotFound, got %v", err)
	}
}

func TestJobMovesBetweenManagers(t *testing.T) {
	t.Parallel()
	s := memory.NewJobStore()
	ctx := context.Background()

	_ = s.SaveAcceptedJob(ctx, "cron", newJobConfig(testJob))
	first, _ := s.FetchJob(ctx, "cron", testJob)

	if err := s.SaveAcceptedJob(ctx, "immediate", newJobConfig(testJob)); err != nil {
		t.Fatalf("SaveAcceptedJob: %v", err)
	}

	jobs, _ := s.FetchJobs(ctx, "cron")
	if len(jobs) != 0 {
		t.Errorf("old manager still owns %d jobs", len(jobs))
	}
	moved, err := s.FetchJob(ctx, "immediate", testJob)
	if err != nil {
		t.Fatalf("FetchJob: %v", err)
	}
	if !moved.CreatedAt.Equal(first.CreatedAt) {
		t.Errorf("CreatedAt changed from %v to %v", first.CreatedAt, moved.CreatedAt)
	}
	ids, _ := s.FetchManagerIDs(ctx)
	if len(ids) != 1 || ids[0] != "immediate" {
		t.Errorf("manager ids = %v", ids)
	}
}

func TestJobCopyOnReadAndWrite(t *testing.T) {
	t.Parallel()
	s := memory.NewJobStore()
	ctx := context.Background()

	cfg := newJobConfig(testJob)
	_ = s.SaveAcceptedJob(ctx, "cron", cfg)
	cfg.Task.Metadata["tier"] = "mutated"

	got, _ := s.FetchJob(ctx, "cron", testJob)
	if got.Task.Metadata["tier"] != "web" {
		t.Fatal("store shares metadata with the saved configuration")
	}
	got.Task.Metadata["tier"] = "mutated"

	again, _ := s.FetchJob(ctx, "cron", testJob)
	if again.Task.Metadata["tier"] != "web" {
		t.Fatal("store shares metadata with a fetched configuration")
	}
}

func TestJobRemove(t *testing.T) {
	t.Parallel()
	s := memory.NewJobStore()
	ctx := context.Background()

	_ = s.SaveAcceptedJob(ctx, "cron", newJobConfig(testJob))
	_ = s.SaveAcceptedJob(ctx, "cron", newJobConfig(otherJob))

	if err := s.RemoveJob(ctx, testJob); err != nil {
		t.Fatalf("RemoveJob: %v", err)
	}
	if err := s.RemoveJob(ctx, testJob); !errors.Is(err, schedstore.ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
	jobs, _ := s.FetchJobs(ctx, "cron")
	if len(jobs) != 1 || jobs[0].Key != otherJob {
		t.Fatalf("jobs = %v", jobs)
	}

	if err := s.DeleteJobs(ctx); err != nil {
		t.Fatalf("DeleteJobs: %v", err)
	}
	ids, _ := s.FetchManagerIDs(ctx)
	if len(ids) != 0 {
		t.Errorf("manager ids after DeleteJobs = %v", ids)
	}
}

// ──────────────────────────────────────────────────
// Task store tests
// ──────────────────────────────────────────────────

func TestTaskSaveAndFetch(t *testing.T) {
	t.Parallel()
	s := memory.NewTaskStore(0)
	ctx := context.Background()

	t1 := newTask(testJob, 1)
	t0 := newTask(testJob, 0)
	t2 := newTask(otherJob, 0)
	if err := s.SaveTasks(ctx, t1, t0, t2); err != nil {
		t.Fatalf("SaveTasks: %v", err)
	}

	all, err := s.FetchTasks(ctx, task.Query{})
	if err != nil {
		t.Fatalf("FetchTasks: %v", err)
	}
	// otherJob sorts first: "mesos/..." < "www-data/...".
	want := []*task.Task{t2, t0, t1}
	if len(all) != len(want) {
		t.Fatalf("got %d tasks, want %d", len(all), len(want))
	}
	for i := range want {
		if all[i].ID.String() != want[i].ID.String() {
			t.Errorf("task[%d] = %s, want %s", i, all[i].ID, want[i].ID)
		}
	}

	got, err := s.FetchTask(ctx, t0.ID)
	if err != nil {
		t.Fatalf("FetchTask: %v", err)
	}
	if got.InstanceID != 0 || got.JobKey != testJob {
		t.Errorf("task = %+v", got)
	}
	if _, err := s.FetchTask(ctx, id.NewTaskID()); !errors.Is(err, schedstore.ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestTaskSaveRejectsInvalid(t *testing.T) {
	t.Parallel()
	s := memory.NewTaskStore(0)
	ctx := context.Background()

	good := newTask(testJob, 0)
	noID := newTask(testJob, 1)
	noID.ID = id.Nil
	badKey := newTask(job.Key{Role: "www-data"}, 2)

	tests := []struct {
		name  string
		tasks []*task.Task
	}{
		{"nil task", []*task.Task{good, nil}},
		{"missing id", []*task.Task{good, noID}},
		{"invalid job key", []*task.Task{good, badKey}},
	}

	for _, tt := range tests {
		if err := s.SaveTasks(ctx, tt.tasks...); !errors.Is(err, schedstore.ErrInvalidTask) {
			t.Errorf("%s: expected ErrInvalidTask, got %v", tt.name, err)
		}
	}

	all, _ := s.FetchTasks(ctx, task.Query{})
	if len(all) != 0 {
		t.Errorf("rejected batch saved %d tasks", len(all))
	}
}

func TestTaskQueries(t *testing.T) {
	t.Parallel()
	s := memory.NewTaskStore(0)
	ctx := context.Background()

	running := newTask(testJob, 0)
	running.Status = task.StatusRunning
	running.SlaveHost = "host-a"
	finished := newTask(testJob, 1)
	finished.Status = task.StatusFinished
	other := newTask(otherJob, 0)
	other.SlaveHost = "host-a"
	_ = s.SaveTasks(ctx, running, finished, other)

	tests := []struct {
		name string
		q    task.Query
		want int
	}{
		{"all", task.Query{}, 3},
		{"by job", task.ByJob(testJob), 2},
		{"active", task.Active(testJob), 1},
		{"by id", task.ByID(finished.ID, other.ID), 2},
		{"by role", task.Query{Role: "mesos"}, 1},
		{"by host", task.Query{SlaveHost: "host-a"}, 2},
		{"by instance", task.Query{InstanceIDs: []int{1}}, 1},
		{"by status", task.Query{Statuses: []task.Status{task.StatusPending, task.StatusRunning}}, 2},
		{"no match", task.Query{Role: "nobody"}, 0},
	}

	for _, tt := range tests {
		got, err := s.FetchTasks(ctx, tt.q)
		if err != nil {
			t.Fatalf("%s: %v", tt.name, err)
		}
		if len(got) != tt.want {
			t.Errorf("%s: got %d tasks, want %d", tt.name, len(got), tt.want)
		}
	}
}

func TestTaskMutate(t *testing.T) {
	t.Parallel()
	s := memory.NewTaskStore(0)
	ctx := context.Background()

	a := newTask(testJob, 0)
	b := newTask(testJob, 1)
	c := newTask(otherJob, 0)
	_ = s.SaveTasks(ctx, a, b, c)

	mutated, err := s.MutateTasks(ctx, task.ByJob(testJob), func(tk *task.Task) {
		tk.Transition(task.StatusAssigned, "offer accepted")
		tk.SlaveHost = "host-b"
	})
	if err != nil {
		t.Fatalf("MutateTasks: %v", err)
	}
	if len(mutated) != 2 {
		t.Fatalf("mutated %d tasks, want 2", len(mutated))
	}

	for _, tk := range []*task.Task{a, b} {
		got, _ := s.FetchTask(ctx, tk.ID)
		if got.Status != task.StatusAssigned || got.SlaveHost != "host-b" || len(got.Events) != 1 {
			t.Errorf("task %s = %+v", tk.ID, got)
		}
	}
	untouched, _ := s.FetchTask(ctx, c.ID)
	if untouched.Status != task.StatusPending {
		t.Errorf("unmatched task mutated: %+v", untouched)
	}
}

func TestTaskMutateRejectsIDChange(t *testing.T) {
	t.Parallel()
	s := memory.NewTaskStore(0)
	ctx := context.Background()

	a := newTask(testJob, 0)
	_ = s.SaveTasks(ctx, a)

	_, err := s.MutateTasks(ctx, task.Query{}, func(tk *task.Task) {
		tk.ID = id.NewTaskID()
		tk.Status = task.StatusLost
	})
	if !errors.Is(err, schedstore.ErrInvalidTask) {
		t.Fatalf("expected ErrInvalidTask, got %v", err)
	}
	got, _ := s.FetchTask(ctx, a.ID)
	if got.Status != task.StatusPending {
		t.Errorf("failed mutation was committed: %+v", got)
	}
}

func TestTaskEventCap(t *testing.T) {
	t.Parallel()
	s := memory.NewTaskStore(3)
	ctx := context.Background()

	tk := newTask(testJob, 0)
	_ = s.SaveTasks(ctx, tk)
	for _, st := range []task.Status{task.StatusAssigned, task.StatusStarting, task.StatusRunning, task.StatusKilling, task.StatusKilled} {
		if _, err := s.MutateTasks(ctx, task.ByID(tk.ID), func(tk *task.Task) { tk.Transition(st, "") }); err != nil {
			t.Fatalf("MutateTasks: %v", err)
		}
	}

	got, _ := s.FetchTask(ctx, tk.ID)
	if len(got.Events) != 3 {
		t.Fatalf("kept %d events, want 3", len(got.Events))
	}
	if got.Events[0].Status != task.StatusRunning || got.Events[2].Status != task.StatusKilled {
		t.Errorf("events = %+v", got.Events)
	}
}

func TestTaskUnsafeModifyInPlace(t *testing.T) {
	t.Parallel()
	s := memory.NewTaskStore(0)
	ctx := context.Background()

	tk := newTask(testJob, 0)
	_ = s.SaveTasks(ctx, tk)

	found, err := s.UnsafeModifyInPlace(ctx, tk.ID, job.TaskConfig{NumCPUs: 4})
	if err != nil || !found {
		t.Fatalf("UnsafeModifyInPlace = %v, %v", found, err)
	}
	got, _ := s.FetchTask(ctx, tk.ID)
	if got.Config.NumCPUs != 4 || got.Status != task.StatusPending || len(got.Events) != 0 {
		t.Errorf("task = %+v", got)
	}

	found, err = s.UnsafeModifyInPlace(ctx, id.NewTaskID(), job.TaskConfig{})
	if err != nil || found {
		t.Errorf("unknown task: found = %v, err = %v", found, err)
	}
}

func TestTaskDelete(t *testing.T) {
	t.Parallel()
	s := memory.NewTaskStore(0)
	ctx := context.Background()

	a, b, c := newTask(testJob, 0), newTask(testJob, 1), newTask(otherJob, 0)
	_ = s.SaveTasks(ctx, a, b, c)

	if err := s.DeleteTasks(ctx, a.ID, id.NewTaskID()); err != nil {
		t.Fatalf("DeleteTasks: %v", err)
	}
	if all, _ := s.FetchTasks(ctx, task.Query{}); len(all) != 2 {
		t.Fatalf("got %d tasks after DeleteTasks, want 2", len(all))
	}
	if err := s.DeleteAllTasks(ctx); err != nil {
		t.Fatalf("DeleteAllTasks: %v", err)
	}
	if all, _ := s.FetchTasks(ctx, task.Query{}); len(all) != 0 {
		t.Fatalf("got %d tasks after DeleteAllTasks, want 0", len(all))
	}
}

// ──────────────────────────────────────────────────
// Update store tests
// ──────────────────────────────────────────────────

func TestUpdateSaveAndFetch(t *testing.T) {
	t.Parallel()
	s := memory.NewUpdateStore()
	ctx := context.Background()

	old := job.TaskConfig{NumCPUs: 1}
	cfg := &update.Configuration{
		JobKey:    testJob,
		Instances: []update.InstanceUpdate{{InstanceID: 0, Old: &old, New: &job.TaskConfig{NumCPUs: 2}}},
	}
	if err := s.SaveJobUpdateConfig(ctx, cfg); err != nil {
		t.Fatalf("SaveJobUpdateConfig: %v", err)
	}
	if cfg.Token.IsNil() || cfg.Token.Prefix() != id.PrefixUpdate {
		t.Fatalf("token = %q, want a new update id", cfg.Token)
	}
	// Only the token is written back; the rest of cfg stays caller-owned.
	if !cfg.CreatedAt.IsZero() || !cfg.UpdatedAt.IsZero() {
		t.Errorf("timestamps leaked into caller's cfg: %+v", cfg.Entity)
	}

	got, err := s.FetchJobUpdateConfig(ctx, testJob)
	if err != nil {
		t.Fatalf("FetchJobUpdateConfig: %v", err)
	}
	if got.Token.String() != cfg.Token.String() {
		t.Errorf("token = %s, want %s", got.Token, cfg.Token)
	}
	got.Instances[0].New.NumCPUs = 99
	again, _ := s.FetchJobUpdateConfig(ctx, testJob)
	if again.Instances[0].New.NumCPUs != 2 {
		t.Error("store shares instance configs with a fetched update")
	}

	if _, err := s.FetchJobUpdateConfig(ctx, otherJob); !errors.Is(err, schedstore.ErrUpdateNotFound) {
		t.Errorf("expected ErrUpdateNotFound, got %v", err)
	}
	if err := s.SaveJobUpdateConfig(ctx, &update.Configuration{}); !errors.Is(err, schedstore.ErrInvalidJobKey) {
		t.Errorf("expected ErrInvalidJobKey, got %v", err)
	}
}

func TestUpdateKeepsExplicitToken(t *testing.T) {
	t.Parallel()
	s := memory.NewUpdateStore()
	ctx := context.Background()

	token := id.NewUpdateID()
	if err := s.SaveJobUpdateConfig(ctx, &update.Configuration{JobKey: testJob, Token: token}); err != nil {
		t.Fatalf("SaveJobUpdateConfig: %v", err)
	}
	got, _ := s.FetchJobUpdateConfig(ctx, testJob)
	if got.Token.String() != token.String() {
		t.Errorf("token = %s, want %s", got.Token, token)
	}
}

func TestUpdateRoles(t *testing.T) {
	t.Parallel()
	s := memory.NewUpdateStore()
	ctx := context.Background()

	second := job.Key{Role: "www-data", Environment: "prod", Name: "world"}
	for _, key := range []job.Key{second, testJob, otherJob} {
		if err := s.SaveJobUpdateConfig(ctx, &update.Configuration{JobKey: key}); err != nil {
			t.Fatalf("SaveJobUpdateConfig(%s): %v", key, err)
		}
	}

	roles, _ := s.FetchUpdatingRoles(ctx)
	if len(roles) != 2 || roles[0] != "mesos" || roles[1] != "www-data" {
		t.Errorf("roles = %v", roles)
	}

	cfgs, _ := s.FetchUpdateConfigs(ctx, "www-data")
	if len(cfgs) != 2 || cfgs[0].JobKey != testJob || cfgs[1].JobKey != second {
		t.Errorf("configs = %v", cfgs)
	}

	if err := s.RemoveShardUpdateConfigs(ctx, otherJob); err != nil {
		t.Fatalf("RemoveShardUpdateConfigs: %v", err)
	}
	if err := s.RemoveShardUpdateConfigs(ctx, otherJob); !errors.Is(err, schedstore.ErrUpdateNotFound) {
		t.Fatalf("expected ErrUpdateNotFound, got %v", err)
	}
	if err := s.DeleteShardUpdateConfigs(ctx); err != nil {
		t.Fatalf("DeleteShardUpdateConfigs: %v", err)
	}
	if roles, _ := s.FetchUpdatingRoles(ctx); len(roles) != 0 {
		t.Errorf("roles after delete = %v", roles)
	}
}

// ──────────────────────────────────────────────────
// Quota store tests
// ──────────────────────────────────────────────────

func TestQuotaStore(t *testing.T) {
	t.Parallel()
	s := memory.NewQuotaStore()
	ctx := context.Background()

	tests := []struct {
		name    string
		role    string
		q       quota.Quota
		wantErr error
	}{
		{"valid", "www-data", quota.Quota{NumCPUs: 4, RAMMB: 4096, DiskMB: 8192}, nil},
		{"zero", "mesos", quota.Quota{}, nil},
		{"empty role", "", quota.Quota{NumCPUs: 1}, schedstore.ErrInvalidQuota},
		{"negative", "bad", quota.Quota{RAMMB: -1}, schedstore.ErrInvalidQuota},
	}
	for _, tt := range tests {
		if err := s.SaveQuota(ctx, tt.role, tt.q); !errors.Is(err, tt.wantErr) {
			t.Errorf("%s: error = %v, want %v", tt.name, err, tt.wantErr)
		}
	}

	got, err := s.FetchQuota(ctx, "www-data")
	if err != nil {
		t.Fatalf("FetchQuota: %v", err)
	}
	if got.RAMMB != 4096 {
		t.Errorf("quota = %+v", got)
	}

	all, _ := s.FetchQuotas(ctx)
	if len(all) != 2 {
		t.Fatalf("got %d quotas, want 2", len(all))
	}
	delete(all, "www-data")
	if _, err := s.FetchQuota(ctx, "www-data"); err != nil {
		t.Error("FetchQuotas returned the live map")
	}

	_ = s.RemoveQuota(ctx, "www-data")
	if _, err := s.FetchQuota(ctx, "www-data"); !errors.Is(err, schedstore.ErrQuotaNotFound) {
		t.Errorf("expected ErrQuotaNotFound, got %v", err)
	}
	_ = s.DeleteQuotas(ctx)
	if all, _ := s.FetchQuotas(ctx); len(all) != 0 {
		t.Errorf("quotas after delete = %v", all)
	}
}

// ──────────────────────────────────────────────────
// Attribute store tests
// ──────────────────────────────────────────────────

func TestAttributeStore(t *testing.T) {
	t.Parallel()
	s := memory.NewAttributeStore()
	ctx := context.Background()

	hostB := &attribute.HostAttributes{
		Host:       "host-b",
		SlaveID:    "slave-b",
		Attributes: []attribute.Attribute{{Name: "rack", Values: []string{"r1"}}},
	}
	hostA := &attribute.HostAttributes{Host: "host-a", Mode: attribute.ModeDraining}

	for _, h := range []*attribute.HostAttributes{hostB, hostA} {
		if err := s.SaveHostAttributes(ctx, h); err != nil {
			t.Fatalf("SaveHostAttributes(%s): %v", h.Host, err)
		}
	}
	if err := s.SaveHostAttributes(ctx, &attribute.HostAttributes{}); !errors.Is(err, schedstore.ErrInvalidHost) {
		t.Fatalf("expected ErrInvalidHost, got %v", err)
	}

	got, err := s.GetHostAttributes(ctx, "host-b")
	if err != nil {
		t.Fatalf("GetHostAttributes: %v", err)
	}
	if got.Mode != attribute.ModeNone || len(got.Values("rack")) != 1 {
		t.Errorf("host-b = %+v", got)
	}
	got.Attributes[0].Values[0] = "mutated"
	if again, _ := s.GetHostAttributes(ctx, "host-b"); again.Values("rack")[0] != "r1" {
		t.Error("store shares attribute values with a fetched record")
	}

	all, _ := s.GetAllHostAttributes(ctx)
	if len(all) != 2 || all[0].Host != "host-a" || all[1].Host != "host-b" {
		t.Errorf("hosts = %v", all)
	}

	if _, err := s.GetHostAttributes(ctx, "host-z"); !errors.Is(err, schedstore.ErrHostNotFound) {
		t.Errorf("expected ErrHostNotFound, got %v", err)
	}
}

func TestAttributeMaintenanceMode(t *testing.T) {
	t.Parallel()
	s := memory.NewAttributeStore()
	ctx := context.Background()

	_ = s.SaveHostAttributes(ctx, &attribute.HostAttributes{Host: "host-a"})

	found, err := s.SetMaintenanceMode(ctx, "host-a", attribute.ModeScheduled)
	if err != nil || !found {
		t.Fatalf("SetMaintenanceMode = %v, %v", found, err)
	}
	found, _ = s.SetMaintenanceMode(ctx, "host-z", attribute.ModeDrained)
	if found {
		t.Error("unknown host reported as found")
	}

	// A record without a mode keeps the current one.
	_ = s.SaveHostAttributes(ctx, &attribute.HostAttributes{Host: "host-a", SlaveID: "slave-2"})
	got, _ := s.GetHostAttributes(ctx, "host-a")
	if got.Mode != attribute.ModeScheduled || got.SlaveID != "slave-2" {
		t.Errorf("host-a = %+v", got)
	}

	_ = s.DeleteHostAttributes(ctx)
	if all, _ := s.GetAllHostAttributes(ctx); len(all) != 0 {
		t.Errorf("hosts after delete = %v", all)
	}
}
