package matcher

import (
	"github.com/pkg/errors"
	"github.com/zyedidia/glob"
)

// Glob matches command names against shell-style patterns, it backs the
// protocol adapter's exposure filter ("settings/*", "greet").
type Glob struct{}

func (_ Glob) DoesMatch(pattern, name string) (bool, error) {
	glob, err := glob.Compile(pattern)
	if err != nil {
		return false, errors.Wrap(err, "can't compile glob pattern")
	}
	return glob.MatchString(name), nil
}
