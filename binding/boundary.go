package binding

import (
	"fmt"
	"slices"
)

// Boundary is the exposure set of a built registry: the only keys that are
// reachable from outside the composition. It is immutable and safe for
// concurrent use.
type Boundary struct {
	keys      []Key
	instances map[Key]any
}

// Keys returns the exposed keys in exposure order.
func (b *Boundary) Keys() []Key { return slices.Clone(b.keys) }

// Len returns the number of exposed keys.
func (b *Boundary) Len() int { return len(b.keys) }

// Contains reports whether key is exposed.
func (b *Boundary) Contains(key Key) bool {
	_, ok := b.instances[key]
	return ok
}

// Resolve returns the singleton for an exposed key. Keys that are bound only
// internally fail exactly like unbound keys, with ErrUnresolvedKey.
func (b *Boundary) Resolve(key Key) (any, error) {
	v, ok := b.instances[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnresolvedKey, key)
	}
	return v, nil
}

// Resolve returns the exposed singleton for key asserted to T.
func Resolve[T any](b *Boundary, key Key) (T, error) {
	var zero T
	v, err := b.Resolve(key)
	if err != nil {
		return zero, err
	}
	t, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("%w: %s holds %T", ErrIncompatibleBinding, key, v)
	}
	return t, nil
}

// MustResolve is like Resolve but panics on error. Use in startup wiring
// where a missing key is a programming error.
func MustResolve[T any](b *Boundary, key Key) T {
	t, err := Resolve[T](b, key)
	if err != nil {
		panic(err)
	}
	return t
}
