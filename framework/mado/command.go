package mado

import "context"

// Command is the generic interface to express a front-end intent towards
// the host application.
//
// Commands exist to carry state, the primary calling method is to pass a
// reference to the Apply() function to the calling site, our public
// interface then simply demands that we can pass a simple function, not
// the entire object (closures ensure that the object context is always
// available).
//
// Apply takes a context and returns the command's result as an opaque
// value. The engine owns turning that value into JSON bytes; commands
// never see the wire format of their own results. A command that has
// nothing to report returns nil, which serializes to JSON null.
//
// Commands that accept arguments additionally implement CommandWithArgs;
// the resolver infuses the decoded argument struct via SetArgs before
// Apply is called.
type Command interface {
	Apply(context.Context) (interface{}, error)
}
