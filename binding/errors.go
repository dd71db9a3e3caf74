package binding

import "errors"

var (
	// Composition errors. All of them are programming errors that should
	// abort startup.
	ErrDuplicateBinding    = errors.New("binding: key already bound to a different implementation")
	ErrUnknownKey          = errors.New("binding: unknown key")
	ErrInternalExposure    = errors.New("binding: internal capability cannot be exposed")
	ErrInvalidKey          = errors.New("binding: invalid key")
	ErrNilImplementation   = errors.New("binding: nil implementation")
	ErrNilKeyFactory       = errors.New("binding: nil key factory")
	ErrIncompatibleBinding = errors.New("binding: implementation does not satisfy capability")
	ErrCircularDependency  = errors.New("binding: circular dependency")
	ErrConstruction        = errors.New("binding: implementation construction failed")

	// Lifecycle errors.
	ErrAlreadyComposed = errors.New("binding: already composed")
	ErrNotBuilding     = errors.New("binding: registry is not building")
	ErrNotBuilt        = errors.New("binding: registry is not built")

	// Resolution errors. Keys that are bound but not exposed resolve to the
	// same error as keys that were never bound.
	ErrUnresolvedKey = errors.New("binding: unresolved key")
)
