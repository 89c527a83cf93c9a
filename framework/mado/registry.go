package mado

// Registry is the process-wide table mapping command names to commands.
//
// Registration happens during process initialization, either from init
// functions colocated with the command implementations or from an
// explicit top-level initializer. The table must not be mutated once the
// protocol handler starts serving; Resolve and ArgsFor are pure lookups
// and are safe to call concurrently without locking on that basis.
//
// Resolve returns a fresh copy of the registered command value so that
// per-request argument state never leaks between concurrent requests.
type Registry interface {
	Register(name string, cmd Command) error
	RegisterWithArgs(name string, cmd Command, args CommandArgs) error
	Resolve(name string) (Command, error)
	ArgsFor(name string) (CommandArgs, bool)
}

// ListingRegistry is an optional interface upgrade on Registry for
// implementations which can enumerate their registered command names.
type ListingRegistry interface {
	List() []string
}
