package ctxkey

import "context"

type contextKey string

func (c contextKey) String() string {
	return "mado ctx " + string(c)
}

var (
	contextKeyScheme      = contextKey("scheme")
	contextKeyCommandName = contextKey("command-name")
)

// WithScheme stamps the custom scheme name a request arrived through
// into the context. The protocol adapter does this before invoking any
// command.
func WithScheme(ctx context.Context, scheme string) context.Context {
	return context.WithValue(ctx, contextKeyScheme, scheme)
}

// Scheme gets the custom scheme name from the context. If none is
// present then the default scheme name "mado" is returned.
func Scheme(ctx context.Context) string {
	scheme, ok := ctx.Value(contextKeyScheme).(string)
	if scheme == "" || !ok {
		return "mado"
	}
	return scheme
}

// WithCommandName stamps the resolved wire command name into the
// context so commands and observers can see what they were called as.
func WithCommandName(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, contextKeyCommandName, name)
}

// CommandName gets the wire command name from the context, empty if the
// context did not pass through the protocol adapter.
func CommandName(ctx context.Context) string {
	name, _ := ctx.Value(contextKeyCommandName).(string)
	return name
}
