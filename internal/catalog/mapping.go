package catalog

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Mapping correlates item ids with their originals link. An empty value
// means the link is absent.
type Mapping map[string]string

// ParseMapping decodes a mapping resource. String values are kept
// verbatim; null and non-string values are treated as absent.
func ParseMapping(data []byte) (Mapping, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing mapping: %w", err)
	}
	if raw == nil {
		return nil, fmt.Errorf("parsing mapping: expected an object, got null")
	}
	m := make(Mapping, len(raw))
	for id, v := range raw {
		var s string
		if err := json.Unmarshal(v, &s); err != nil {
			m[id] = ""
			continue
		}
		m[id] = s
	}
	return m, nil
}

// IDs returns the mapping keys in ascending order.
func (m Mapping) IDs() []string {
	ids := make([]string, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// ValidID reports whether id can name a single path segment under the
// images directory and the generated site.
func ValidID(id string) bool {
	if id == "" || id == "." || strings.Contains(id, "..") {
		return false
	}
	return !strings.ContainsAny(id, "/\\\x00")
}
