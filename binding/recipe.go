package binding

import "context"

// Binder is the view of a building registry handed to a composition's
// configure function. It carries the boundary's key factory.
type Binder struct {
	registry *Registry
	keys     KeyFactory
}

// Key returns the boundary key for c.
func (b *Binder) Key(c Descriptor) Key { return b.keys.Create(c) }

// Bind binds key to impl.
func (b *Binder) Bind(key Key, impl *Implementation) error { return b.registry.Bind(key, impl) }

// Expose adds key to the exposure set.
func (b *Binder) Expose(key Key) error { return b.registry.Expose(key) }

// BindStore applies the store recipe for role: impl is bound to the untagged
// mutable capability for internal wiring, and to the boundary key of the
// restricted capability, which is the only key exposed.
func BindStore[R, M any](b *Binder, role Role[R, M], impl *Implementation) error {
	if err := b.Bind(role.Mutable.Key(), impl); err != nil {
		return err
	}
	key := b.Key(role.Restricted)
	if err := b.Bind(key, impl); err != nil {
		return err
	}
	return b.Expose(key)
}

// BindFacade binds the aggregate capability to impl under its untagged key,
// then binds and exposes both the boundary key and the volatileTag key. All
// three keys alias the same singleton.
func BindFacade[T any](b *Binder, facade Capability[T], volatileTag string, impl *Implementation) error {
	if err := b.Bind(facade.Key(), impl); err != nil {
		return err
	}
	for _, key := range []Key{b.Key(facade), facade.Tagged(volatileTag)} {
		if err := b.Bind(key, impl); err != nil {
			return err
		}
		if err := b.Expose(key); err != nil {
			return err
		}
	}
	return nil
}

// Compose runs r through its whole lifecycle: Begin, configure, Build. It
// returns the resulting Boundary. Any failure leaves r unusable.
func Compose(ctx context.Context, r *Registry, keys KeyFactory, configure func(*Binder) error) (*Boundary, error) {
	if keys == nil {
		return nil, ErrNilKeyFactory
	}
	if err := r.Begin(); err != nil {
		return nil, err
	}

	if err := configure(&Binder{registry: r, keys: keys}); err != nil {
		r.abort(err)
		return nil, err
	}
	if err := r.Build(ctx); err != nil {
		return nil, err
	}
	return r.Boundary()
}
