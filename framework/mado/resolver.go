package mado

import "context"

// Resolver takes a command name and a raw request body and returns a
// callable command function. The resolver is used by the Engine to take
// serialized client input and map it to a registered command by name.
// The command func returned will usually be a function on a struct type
// which the resolver will instantiate and prepare for execution.
type Resolver interface {
	Resolve(ctx context.Context, name string, body []byte) (CommandFunc, error)
}
