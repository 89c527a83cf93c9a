package mado

import "context"

// ResolveFn does the heavy lifting on the resolution. The Resolver
// interface is clumsy for use in tests and the ResolveFn allows a
// simple anonymous drop-in in tests which can resolve a stub/double
// without lots of boilerplate code.
type ResolveFn func(ctx context.Context, name string, body []byte) (CommandFunc, error)
