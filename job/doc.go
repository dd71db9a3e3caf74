// Package job defines accepted job configurations and the store that holds
// them.
//
// # Jobs
//
// A job is addressed by its [Key]: role, environment and name. Each accepted
// [Configuration] is filed under the ID of the job manager that owns it
// (for example the cron manager or the immediate manager):
//
//	managerID -> Key -> Configuration
//
// A job key is unique across managers; saving a configuration under a new
// manager moves it.
//
// [TaskConfig] describes the resources and policy of one task and is shared
// with the task and update stores.
package job
