package catalog

import (
	"github.com/bmatcuk/doublestar/v4"
)

// IDFilter narrows the mapping keys that are probed. Patterns use
// doublestar glob syntax, e.g. "A*" or "{B1,C?}".
type IDFilter struct {
	Include []string
	Exclude []string
}

// Allows reports whether id passes the filter. An empty include list
// admits every id.
func (f IDFilter) Allows(id string) bool {
	if len(f.Include) > 0 && !matchAny(id, f.Include) {
		return false
	}
	return !matchAny(id, f.Exclude)
}

func matchAny(id string, patterns []string) bool {
	for _, p := range patterns {
		if ok, err := doublestar.Match(p, id); err == nil && ok {
			return true
		}
	}
	return false
}
