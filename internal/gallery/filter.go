package gallery

import (
	"strings"

	"github.com/ziadkadry99/saree-gallery/internal/catalog"
)

// NormalizeQuery trims and upper-cases a search query. Ids are expected to
// follow the upper-case naming convention already.
func NormalizeQuery(query string) string {
	return strings.ToUpper(strings.TrimSpace(query))
}

// Filter returns the items whose id contains the normalized query. A blank
// query returns items unchanged. The input slice is never modified.
func Filter(items []catalog.Item, query string) []catalog.Item {
	term := NormalizeQuery(query)
	if term == "" {
		return items
	}
	out := make([]catalog.Item, 0, len(items))
	for _, it := range items {
		if strings.Contains(it.ID, term) {
			out = append(out, it)
		}
	}
	return out
}
