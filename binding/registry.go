package binding

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// State is the lifecycle state of a Registry.
type State int

const (
	// StateUnbuilt is the initial state. Only Begin is legal.
	StateUnbuilt State = iota
	// StateBuilding accepts Bind and Expose.
	StateBuilding
	// StateBuilt is frozen. Only Resolve and Boundary are legal.
	StateBuilt
	// StateFailed is terminal. It is entered when composition fails.
	StateFailed
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateUnbuilt:
		return "unbuilt"
	case StateBuilding:
		return "building"
	case StateBuilt:
		return "built"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Registry holds the authoritative mapping from Key to Implementation and
// the exposure set. It is not safe for concurrent use while building; once
// built it is immutable and Resolve may be called from any goroutine.
type Registry struct {
	logger *slog.Logger
	state  State

	bindings     map[Key]*Implementation
	order        []Key
	exposed      map[Key]struct{}
	exposedOrder []Key

	// instances holds one singleton per implementation.
	instances map[*Implementation]any
	boundary  *Boundary
}

// NewRegistry returns an unbuilt registry. A nil logger uses slog.Default().
func NewRegistry(logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{
		logger:    logger,
		bindings:  make(map[Key]*Implementation),
		exposed:   make(map[Key]struct{}),
		instances: make(map[*Implementation]any),
	}
}

// State returns the current lifecycle state.
func (r *Registry) State() State { return r.state }

// Begin moves the registry from unbuilt to building. It fails with
// ErrAlreadyComposed on any later call.
func (r *Registry) Begin() error {
	if r.state != StateUnbuilt {
		return fmt.Errorf("%w: registry is %s", ErrAlreadyComposed, r.state)
	}
	r.state = StateBuilding
	return nil
}

// Bind binds key to impl. Binding a key again to the same implementation is
// a no-op; binding it to a different one fails with ErrDuplicateBinding.
// Implementations are compared by identity, so two distinct Implementation
// values providing the same Go type still conflict.
func (r *Registry) Bind(key Key, impl *Implementation) error {
	if r.state != StateBuilding {
		return fmt.Errorf("%w: bind %s while %s", ErrNotBuilding, key, r.state)
	}
	if key.IsZero() {
		return ErrInvalidKey
	}
	if impl == nil {
		return fmt.Errorf("%w: %s", ErrNilImplementation, key)
	}

	if existing, ok := r.bindings[key]; ok {
		if existing == impl {
			return nil
		}
		return fmt.Errorf("%w: %s is bound to %s, cannot bind %s",
			ErrDuplicateBinding, key, existing.name, impl.name)
	}

	r.bindings[key] = impl
	r.order = append(r.order, key)
	r.logger.Debug("binding: bound", "key", key.String(), "implementation", impl.name)
	return nil
}

// Expose adds key to the exposure set. The key must already be bound and
// must not address an internal capability.
func (r *Registry) Expose(key Key) error {
	if r.state != StateBuilding {
		return fmt.Errorf("%w: expose %s while %s", ErrNotBuilding, key, r.state)
	}
	if _, ok := r.bindings[key]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	if key.Internal() {
		return fmt.Errorf("%w: %s", ErrInternalExposure, key)
	}
	if _, ok := r.exposed[key]; ok {
		return nil
	}

	r.exposed[key] = struct{}{}
	r.exposedOrder = append(r.exposedOrder, key)
	r.logger.Debug("binding: exposed", "key", key.String())
	return nil
}

// Build constructs every bound implementation exactly once, checks that each
// instance satisfies the capabilities it is bound under, and freezes the
// registry. Any error leaves the registry in StateFailed.
func (r *Registry) Build(ctx context.Context) error {
	if r.state != StateBuilding {
		return fmt.Errorf("%w: build while %s", ErrNotBuilding, r.state)
	}

	b := &builder{ctx: ctx, registry: r, constructing: make(map[*Implementation]bool)}
	for _, key := range r.order {
		if _, err := b.Get(key); err != nil {
			b.done = true
			r.abort(err)
			return err
		}
	}
	b.done = true

	instances := make(map[Key]any, len(r.exposedOrder))
	for _, key := range r.exposedOrder {
		instances[key] = r.instances[r.bindings[key]]
	}
	r.boundary = &Boundary{keys: r.exposedOrder, instances: instances}
	r.state = StateBuilt

	r.logger.Debug("binding: built",
		"bindings", len(r.bindings),
		"implementations", len(r.instances),
		"exposed", len(r.exposedOrder),
	)
	return nil
}

// Resolve returns the singleton bound to key. It sees every binding,
// including internal ones; callers outside the boundary use Boundary.
func (r *Registry) Resolve(key Key) (any, error) {
	if r.state != StateBuilt {
		return nil, fmt.Errorf("%w: resolve %s while %s", ErrNotBuilt, key, r.state)
	}
	impl, ok := r.bindings[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnresolvedKey, key)
	}
	return r.instances[impl], nil
}

// Boundary returns the exposure set view of a built registry.
func (r *Registry) Boundary() (*Boundary, error) {
	if r.state != StateBuilt {
		return nil, fmt.Errorf("%w: registry is %s", ErrNotBuilt, r.state)
	}
	return r.boundary, nil
}

func (r *Registry) abort(err error) {
	r.state = StateFailed
	r.instances = make(map[*Implementation]any)
	r.logger.Error("binding: composition failed", "error", err)
}

// builder is the Injector handed to constructors during Build.
type builder struct {
	ctx          context.Context
	registry     *Registry
	constructing map[*Implementation]bool
	path         []string
	done         bool
}

func (b *builder) Get(key Key) (any, error) {
	if b.done {
		return nil, fmt.Errorf("%w: injector used after build", ErrNotBuilding)
	}
	impl, ok := b.registry.bindings[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnresolvedKey, key)
	}

	v, err := b.instance(impl)
	if err != nil {
		return nil, err
	}
	if !key.capability.accepts(v) {
		return nil, fmt.Errorf("%w: %s provides %T for %s",
			ErrIncompatibleBinding, impl.name, v, key)
	}
	return v, nil
}

func (b *builder) instance(impl *Implementation) (any, error) {
	if v, ok := b.registry.instances[impl]; ok {
		return v, nil
	}
	if b.constructing[impl] {
		return nil, fmt.Errorf("%w: %s -> %s",
			ErrCircularDependency, strings.Join(b.path, " -> "), impl.name)
	}
	if err := b.ctx.Err(); err != nil {
		return nil, err
	}

	b.constructing[impl] = true
	b.path = append(b.path, impl.name)
	defer func() {
		delete(b.constructing, impl)
		b.path = b.path[:len(b.path)-1]
	}()

	v, err := impl.provide(b)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrConstruction, impl.name, err)
	}
	b.registry.instances[impl] = v
	b.registry.logger.Debug("binding: constructed", "implementation", impl.name)
	return v, nil
}
