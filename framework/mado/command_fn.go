package mado

import "context"

// CommandFunc is the resolved, ready-to-invoke form of a command. The
// Resolver interface is clumsy for use in tests and the CommandFunc
// allows a simple anonymous drop-in without lots of boilerplate code.
type CommandFunc func(context.Context) (interface{}, error)
