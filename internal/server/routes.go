package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ziadkadry99/saree-gallery/internal/catalog"
	"github.com/ziadkadry99/saree-gallery/internal/gallery"
)

// SearchResponse is the body of GET /api/search.
type SearchResponse struct {
	Query string         `json:"query"`
	Count int            `json:"count"`
	Items []catalog.Item `json:"items"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if s.buildErr != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "error", "error": s.buildErr.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleIndex renders the grid, filtered by ?q=. With ?open={id} the
// viewer is rendered open on that item, at ?photo={n} when it is valid.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page := gallery.Page{
		Title: s.cfg.Title,
		Intro: s.cfg.Intro,
		Query: q.Get("q"),
	}

	if s.buildErr != nil {
		page.Error = s.buildErr.Error()
	} else {
		page.Items = s.catalog.Items
		page.Modal = viewerFor(s.catalog, q.Get("open"), q.Get("photo"))
	}

	var buf bytes.Buffer
	if err := s.renderer.RenderPage(&buf, page, s.links); err != nil {
		s.log.Error().Err(err).Msg("rendering page")
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

// viewerFor opens the viewer on id. Unknown ids and invalid photos leave
// the viewer as it was.
func viewerFor(cat *catalog.Catalog, id, photo string) gallery.ModalView {
	var v gallery.Viewer
	if id == "" {
		return v.View()
	}
	item, ok := cat.Lookup(id)
	if !ok || !v.Open(item) {
		return v.View()
	}
	if n, err := strconv.Atoi(photo); err == nil {
		_ = v.SelectThumbnail(n - 1)
	}
	return v.View()
}

func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	if s.buildErr != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": s.buildErr.Error()})
		return
	}
	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, http.StatusOK, s.catalog)
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	if s.buildErr != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": s.buildErr.Error()})
		return
	}
	query := r.URL.Query().Get("q")
	items := gallery.Filter(s.catalog.Items, query)
	if items == nil {
		items = []catalog.Item{}
	}
	writeJSON(w, http.StatusOK, SearchResponse{
		Query: gallery.NormalizeQuery(query),
		Count: len(items),
		Items: items,
	})
}

func (s *Server) handleGetSaree(w http.ResponseWriter, r *http.Request) {
	if s.buildErr != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": s.buildErr.Error()})
		return
	}
	item, ok := s.catalog.Lookup(chi.URLParam(r, "id"))
	if !ok {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func staticAsset(contentType, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentType)
		_, _ = w.Write([]byte(body))
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
