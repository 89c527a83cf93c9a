package identifier

import (
	"strings"

	"github.com/gobuffalo/flect"
)

func New(name string) *identifier {
	return NewIdentifier(name)
}

func NewIdentifier(name string) *identifier {
	return &identifier{name: name}
}

// identifier normalizes Go identifiers into the wire names used as
// registry keys. The front end sees only wire names, Go code only Go
// names, this type is the single place the two spellings meet.
type identifier struct {
	name string
}

// CommandName renders the identifier as a wire command name:
// lower snake case, so "GreetUser" becomes "greet_user". Already
// normalized input passes through unchanged.
func (i *identifier) CommandName() string {
	return flect.Underscore(i.name)
}

// TypeName renders the identifier as an exported Go type name,
// "greet_user" becomes "GreetUser".
func (i *identifier) TypeName() string {
	return flect.Pascalize(i.name)
}

// Join builds a namespaced wire name from segments, normalizing each
// segment individually. Empty segments are dropped so callers don't
// need to special-case an absent prefix.
func Join(segments ...string) string {
	var parts []string
	for _, s := range segments {
		if s == "" {
			continue
		}
		parts = append(parts, New(s).CommandName())
	}
	return strings.Join(parts, "/")
}
