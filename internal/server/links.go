package server

import (
	"net/url"
	"strconv"
	"strings"
)

// QueryLinker addresses the preview server, where the grid and the viewer
// share one page driven by query parameters.
type QueryLinker struct {
	AssetBaseURL string
}

func (l QueryLinker) Home(query string) string {
	if q := strings.TrimSpace(query); q != "" {
		return "/?" + url.Values{"q": {q}}.Encode()
	}
	return "/"
}

func (l QueryLinker) Item(id string, photo int, query string) string {
	v := url.Values{}
	v.Set("open", id)
	v.Set("photo", strconv.Itoa(photo))
	if q := strings.TrimSpace(query); q != "" {
		v.Set("q", q)
	}
	return "/?" + v.Encode()
}

func (l QueryLinker) AssetBase() string {
	if l.AssetBaseURL != "" {
		return strings.TrimRight(l.AssetBaseURL, "/") + "/"
	}
	return "/"
}

func (l QueryLinker) Static(name string) string { return "/" + name }
