package binding

// Key addresses a binding: a capability plus a discriminating tag. Keys are
// comparable; keys built independently from the same capability and tag are
// equal. The zero Key is invalid.
type Key struct {
	capability Descriptor
	tag        string
}

// NewKey returns the key for capability c with the given tag. An empty tag
// means the default, untagged key.
func NewKey(c Descriptor, tag string) Key {
	return Key{capability: c, tag: tag}
}

// Capability returns the capability this key addresses.
func (k Key) Capability() Descriptor { return k.capability }

// Tag returns the discriminator, empty for the default key.
func (k Key) Tag() string { return k.tag }

// IsZero reports whether k is the zero Key.
func (k Key) IsZero() bool { return k.capability == nil }

// Internal reports whether k addresses an internal capability.
func (k Key) Internal() bool {
	return k.capability != nil && k.capability.Internal()
}

// String renders the key as "name" or "name@tag".
func (k Key) String() string {
	if k.capability == nil {
		return "<invalid>"
	}
	if k.tag == "" {
		return k.capability.Name()
	}
	return k.capability.Name() + "@" + k.tag
}

// KeyFactory is the strategy a composition boundary uses to key the
// capabilities it exposes. Implementations must be deterministic.
type KeyFactory interface {
	Create(c Descriptor) Key
}

// KeyFactoryFunc adapts a function to [KeyFactory].
type KeyFactoryFunc func(c Descriptor) Key

// Create implements KeyFactory.
func (f KeyFactoryFunc) Create(c Descriptor) Key { return f(c) }

// Plain keys every capability with its default, untagged key.
var Plain KeyFactory = KeyFactoryFunc(func(c Descriptor) Key {
	return NewKey(c, "")
})

// Tagged returns a factory that keys every capability with tag.
func Tagged(tag string) KeyFactory {
	return KeyFactoryFunc(func(c Descriptor) Key {
		return NewKey(c, tag)
	})
}
