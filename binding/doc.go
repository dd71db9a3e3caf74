// Package binding implements the composition mechanism used to assemble the
// storage subsystem: typed capabilities, discriminated keys, a one-shot
// singleton registry, and the exposure set that controls what leaves a
// composition boundary.
//
// # Capabilities and Keys
//
// A [Capability] names an abstract interface a consumer programs against.
// Capabilities are either public (restricted) or internal (mutable). A [Key]
// pairs a capability with a tag so that the same interface can be bound more
// than once without collision:
//
//	var Capability = binding.NewCapability[Store]("job.Store")
//	var MutableCapability = binding.NewInternalCapability[Mutable]("job.Mutable")
//
//	Capability.Key()              // job.Store
//	Capability.Tagged("volatile") // job.Store@volatile
//
// The boundary does not decide how keys for its exposed capabilities are
// tagged. It asks an injected [KeyFactory] ([Plain], [Tagged], or any
// [KeyFactoryFunc]).
//
// # Registry lifecycle
//
// A [Registry] moves through unbuilt → building → built exactly once:
//
//	unbuilt  --Begin-->  building  --Build-->  built
//	                        |
//	                        +--(error)-->  failed
//
// Bind and Expose are legal only while building. Build constructs every
// bound [Implementation] exactly once, no matter how many keys point at it,
// and then freezes the registry. Resolve is legal only once built; after that
// point nothing mutates the registry, so concurrent reads need no locking.
//
// # Recipes
//
// [BindStore] is the single recipe used for every store role: bind the
// mutable capability internally, bind the boundary's key for the restricted
// capability to the same implementation, and expose only that key.
// [BindFacade] binds an aggregate capability under the boundary key and a
// fixed tag, both aliasing one singleton. [Compose] runs a configuration
// function through the whole lifecycle and returns the [Boundary].
package binding
