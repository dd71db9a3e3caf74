package binding

import "fmt"

// Descriptor is the type-erased view of a [Capability]. It is what a
// [KeyFactory] receives. Only Capability values implement it.
type Descriptor interface {
	// Name returns the capability name, e.g. "job.Store".
	Name() string
	// Internal reports whether the capability is mutable/internal and must
	// never cross a composition boundary.
	Internal() bool

	accepts(v any) bool
}

// Capability identifies the abstract interface T. Capabilities carry no
// state. Two capability values are equal only when both the interface type
// and the name match.
type Capability[T any] struct {
	name     string
	internal bool
}

var _ Descriptor = Capability[any]{}

// NewCapability declares a public capability for T.
func NewCapability[T any](name string) Capability[T] {
	return Capability[T]{name: name}
}

// NewInternalCapability declares an internal capability for T. Keys of
// internal capabilities are rejected by [Registry.Expose].
func NewInternalCapability[T any](name string) Capability[T] {
	return Capability[T]{name: name, internal: true}
}

// Name returns the capability name.
func (c Capability[T]) Name() string { return c.name }

// Internal reports whether the capability is internal.
func (c Capability[T]) Internal() bool { return c.internal }

// Key returns the untagged key for this capability.
func (c Capability[T]) Key() Key { return NewKey(c, "") }

// Tagged returns the key for this capability with the given tag.
func (c Capability[T]) Tagged(tag string) Key { return NewKey(c, tag) }

func (c Capability[T]) accepts(v any) bool {
	_, ok := v.(T)
	return ok
}

// Role pairs the restricted capability of a store with its mutable variant.
type Role[R, M any] struct {
	Restricted Capability[R]
	Mutable    Capability[M]
}

// NewRole builds a Role. It panics if restricted is internal or mutable is
// not, since such a role would leak its mutable interface.
func NewRole[R, M any](restricted Capability[R], mutable Capability[M]) Role[R, M] {
	if restricted.Internal() {
		panic(fmt.Sprintf("binding: restricted capability %q is internal", restricted.Name()))
	}
	if !mutable.Internal() {
		panic(fmt.Sprintf("binding: mutable capability %q is not internal", mutable.Name()))
	}
	return Role[R, M]{Restricted: restricted, Mutable: mutable}
}
