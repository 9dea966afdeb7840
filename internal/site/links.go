package site

import (
	"net/url"
	"strconv"
	"strings"
)

// StaticLinker addresses pages of the generated site. BasePath climbs from
// the current page back to the site root.
type StaticLinker struct {
	BasePath     string
	AssetBaseURL string
}

func (l StaticLinker) Home(query string) string {
	if q := strings.TrimSpace(query); q != "" {
		return l.BasePath + "index.html?q=" + url.QueryEscape(q)
	}
	return l.BasePath + "index.html"
}

func (l StaticLinker) Item(id string, photo int, _ string) string {
	return l.BasePath + itemPagePath(url.PathEscape(id), photo)
}

func (l StaticLinker) AssetBase() string {
	if l.AssetBaseURL != "" {
		return strings.TrimRight(l.AssetBaseURL, "/") + "/"
	}
	return l.BasePath
}

func (l StaticLinker) Static(name string) string { return l.BasePath + name }

// itemPagesDir holds the per-photo permalinks of the generated site.
const itemPagesDir = "sarees"

// itemPagePath is the site-relative permalink of one photo of an item.
func itemPagePath(id string, photo int) string {
	return itemPagesDir + "/" + id + "/" + strconv.Itoa(photo) + ".html"
}
