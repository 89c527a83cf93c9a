package mado

// Matcher reports whether a command name matches a pattern. The
// protocol adapter uses it to decide which registered commands are
// visible through a given scheme.
type Matcher interface {
	DoesMatch(pattern, name string) (bool, error)
}
