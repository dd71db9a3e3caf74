package binding

import "fmt"

// Implementation is a concrete provider bound to one or more keys. It is
// identified by pointer: every key bound to the same *Implementation resolves
// to the same instance, constructed once per registry.
type Implementation struct {
	name    string
	provide func(Injector) (any, error)
}

// NewImplementation wraps a typed constructor. The constructor may pull
// internal dependencies from the Injector it is handed during Build.
func NewImplementation[T any](name string, provide func(Injector) (T, error)) *Implementation {
	return &Implementation{
		name: name,
		provide: func(in Injector) (any, error) {
			return provide(in)
		},
	}
}

// Value returns an Implementation that always provides v.
func Value[T any](name string, v T) *Implementation {
	return NewImplementation(name, func(Injector) (T, error) { return v, nil })
}

// Name returns the implementation name used in logs and errors.
func (i *Implementation) Name() string { return i.name }

// Injector hands bound instances to implementation constructors while a
// registry is building. It sees every binding, internal or exposed.
type Injector interface {
	Get(key Key) (any, error)
}

// Inject resolves the untagged binding of c from in.
func Inject[T any](in Injector, c Capability[T]) (T, error) {
	return InjectKey[T](in, c.Key())
}

// InjectKey resolves key from in and asserts it to T.
func InjectKey[T any](in Injector, key Key) (T, error) {
	var zero T
	v, err := in.Get(key)
	if err != nil {
		return zero, err
	}
	t, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("%w: %s holds %T", ErrIncompatibleBinding, key, v)
	}
	return t, nil
}
