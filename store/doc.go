// Package store defines the aggregate storage facade.
//
// The composite interface:
//
//	type Storage interface {
//	    Read(ctx context.Context, fn func(StoreProvider) error) error
//	    Write(ctx context.Context, fn func(MutableStoreProvider) error) error
//	    Ping(ctx context.Context) error
//	    Close() error
//	}
//
// # Available Backends
//
//   - store/memory: in-memory storage, composed with the binding package.
//     Read and Write run through the middleware package chain.
//
// # Usage
//
//	m := memory.NewModule()
//	b, err := m.Compose(ctx, binding.Plain)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	s := binding.MustResolve[store.Storage](b, store.Capability.Tagged(store.VolatileTag))
//	err = s.Read(ctx, func(p store.StoreProvider) error {
//	    tasks, err := p.Tasks().FetchTasks(ctx, task.ByJob(key))
//	    ...
//	})
//
// Individual restricted stores are exposed under the composition's key
// strategy as well, e.g. b.Resolve(binding.Plain.Create(task.Capability)).
package store
