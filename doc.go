// Package schedstore provides the in-memory storage subsystem of a cluster
// scheduler: scheduler metadata, jobs, tasks, updates, quotas and host
// attributes, assembled behind a single aggregate storage facade.
//
// # Architecture
//
// Each store role (scheduler, job, task, update, quota, attribute) defines
// its own package with two interfaces: a restricted Store that consumers
// program against, and a Mutable store used only inside the storage
// subsystem. The store/memory package composes all six together with the
// aggregate store.Storage facade using the binding package:
//
//	m := memory.NewModule(memory.WithLogger(logger))
//	b, err := m.Compose(ctx, binding.Plain)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	s, err := binding.Resolve[store.Storage](b, store.Capability.Tagged(store.VolatileTag))
//
// Only restricted store keys and the two facade keys leave the composition
// boundary. Every implementation is constructed exactly once per boundary.
//
// Entity IDs use TypeID: type-prefixed, K-sortable, UUIDv7-based.
package schedstore
