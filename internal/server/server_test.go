package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/ziadkadry99/saree-gallery/internal/catalog"
)

func testCatalog() *catalog.Catalog {
	return &catalog.Catalog{
		BuildID: "b-1",
		Items: []catalog.Item{
			{ID: "A1", Thumbnail: "images/A1/thumb.webp", Images: []string{"images/A1/1.webp"}},
			{ID: "B1", Thumbnail: "images/B1/thumb.webp", Images: []string{"images/B1/1.webp", "images/B1/2.webp", "images/B1/3.webp"}, Originals: "http://orig/b1"},
		},
	}
}

func newTestServer(t *testing.T, cfg Config, cat *catalog.Catalog, buildErr error) *Server {
	t.Helper()
	if cfg.Title == "" {
		cfg.Title = "Sarees"
	}
	srv, err := New(cfg, cat, buildErr, zerolog.Nop())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return srv
}

func get(t *testing.T, srv *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("GET", path, nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)
	return w
}

func TestHealthCheck(t *testing.T) {
	srv := newTestServer(t, Config{}, testCatalog(), nil)

	w := get(t, srv, "/healthz")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("expected status 'ok', got %q", body["status"])
	}
}

func TestCORSHeaders(t *testing.T) {
	srv := newTestServer(t, Config{AllowAll: true}, testCatalog(), nil)

	req := httptest.NewRequest("OPTIONS", "/api/search", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", "GET")
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Header().Get("Access-Control-Allow-Origin") == "" {
		t.Error("expected CORS Allow-Origin header")
	}
}

func TestIndexRendersGrid(t *testing.T) {
	srv := newTestServer(t, Config{}, testCatalog(), nil)

	w := get(t, srv, "/")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := w.Body.String()
	if strings.Count(body, `class="card"`) != 2 {
		t.Errorf("expected 2 cards, body: %s", body)
	}
	if !strings.Contains(body, `href="/?open=B1&amp;photo=1"`) {
		t.Error("cards should link to the viewer permalink")
	}
	if !strings.Contains(body, `class="modal hidden"`) {
		t.Error("viewer should start closed")
	}
}

func TestIndexFiltersByQuery(t *testing.T) {
	srv := newTestServer(t, Config{}, testCatalog(), nil)

	body := get(t, srv, "/?q=+b1+").Body.String()
	if strings.Count(body, `class="card"`) != 1 || !strings.Contains(body, `data-id="B1"`) {
		t.Errorf("expected only B1, body: %s", body)
	}

	body = get(t, srv, "/?q=zzz").Body.String()
	if strings.Contains(body, `class="card"`) {
		t.Error("no cards expected for an unmatched query")
	}
}

func TestIndexOpensViewer(t *testing.T) {
	srv := newTestServer(t, Config{}, testCatalog(), nil)

	body := get(t, srv, "/?open=B1&photo=2").Body.String()
	for _, want := range []string{
		"Saree B1",
		"3 photo(s)",
		`src="/images/B1/2.webp"`,
		`href="http://orig/b1"`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("page missing %q", want)
		}
	}
	if strings.Contains(body, `class="modal hidden"`) {
		t.Error("viewer should be open")
	}
}

func TestIndexIgnoresInvalidSelection(t *testing.T) {
	srv := newTestServer(t, Config{}, testCatalog(), nil)

	// Out-of-range photo keeps the first image.
	body := get(t, srv, "/?open=B1&photo=9").Body.String()
	if !strings.Contains(body, `id="mainImg" class="main-img" src="/images/B1/1.webp"`) {
		t.Errorf("expected first image selected, body: %s", body)
	}

	// Unknown id leaves the viewer closed.
	body = get(t, srv, "/?open=NOPE").Body.String()
	if !strings.Contains(body, `class="modal hidden"`) {
		t.Error("unknown id should not open the viewer")
	}
}

func TestIndexBuildError(t *testing.T) {
	buildErr := &catalog.LoadError{Path: "originals-map.json", Status: http.StatusNotFound}
	srv := newTestServer(t, Config{}, nil, buildErr)

	w := get(t, srv, "/")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "Error: Failed to load originals-map.json (status 404)") {
		t.Errorf("expected error message, body: %s", body)
	}
	if strings.Contains(body, `class="card"`) {
		t.Error("no cards expected")
	}

	if w := get(t, srv, "/healthz"); w.Code != http.StatusServiceUnavailable {
		t.Errorf("healthz = %d, want 503", w.Code)
	}
	if w := get(t, srv, "/catalog.json"); w.Code != http.StatusServiceUnavailable {
		t.Errorf("catalog.json = %d, want 503", w.Code)
	}
}

func TestCatalogJSON(t *testing.T) {
	srv := newTestServer(t, Config{}, testCatalog(), nil)

	w := get(t, srv, "/catalog.json")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var cat catalog.Catalog
	if err := json.Unmarshal(w.Body.Bytes(), &cat); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if cat.BuildID != "b-1" || len(cat.Items) != 2 {
		t.Errorf("unexpected catalog: %+v", cat)
	}
}

func TestSearchAPI(t *testing.T) {
	srv := newTestServer(t, Config{}, testCatalog(), nil)

	tests := []struct {
		query string
		want  []string
	}{
		{"", []string{"A1", "B1"}},
		{"1", []string{"A1", "B1"}},
		{"b", []string{"B1"}},
		{"x", nil},
	}
	for _, tt := range tests {
		w := get(t, srv, "/api/search?q="+tt.query)
		if w.Code != http.StatusOK {
			t.Fatalf("q=%q: expected 200, got %d", tt.query, w.Code)
		}
		var resp SearchResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if resp.Count != len(tt.want) || len(resp.Items) != len(tt.want) {
			t.Errorf("q=%q: got %d items, want %d", tt.query, resp.Count, len(tt.want))
			continue
		}
		for i, id := range tt.want {
			if resp.Items[i].ID != id {
				t.Errorf("q=%q: item %d = %s, want %s", tt.query, i, resp.Items[i].ID, id)
			}
		}
	}
}

func TestGetSaree(t *testing.T) {
	srv := newTestServer(t, Config{}, testCatalog(), nil)

	w := get(t, srv, "/api/sarees/B1")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var item catalog.Item
	if err := json.Unmarshal(w.Body.Bytes(), &item); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if item.Count() != 3 || item.Originals != "http://orig/b1" {
		t.Errorf("unexpected item: %+v", item)
	}

	if w := get(t, srv, "/api/sarees/ZZ"); w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestStaticAssets(t *testing.T) {
	srv := newTestServer(t, Config{}, testCatalog(), nil)

	css := get(t, srv, "/style.css")
	if css.Code != http.StatusOK || !strings.HasPrefix(css.Header().Get("Content-Type"), "text/css") {
		t.Errorf("style.css: %d %s", css.Code, css.Header().Get("Content-Type"))
	}
	js := get(t, srv, "/script.js")
	if js.Code != http.StatusOK || !strings.Contains(js.Body.String(), "addEventListener") {
		t.Errorf("script.js: %d", js.Code)
	}
}

func TestImagesServedFromDirectory(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "images", "A1"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "images", "A1", "1.webp"), []byte("RIFF"), 0o644); err != nil {
		t.Fatal(err)
	}

	srv := newTestServer(t, Config{ImagesRoot: root}, testCatalog(), nil)
	if w := get(t, srv, "/images/A1/1.webp"); w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}

	remote := newTestServer(t, Config{AssetBaseURL: "https://cdn.example.com"}, testCatalog(), nil)
	if w := get(t, remote, "/images/A1/1.webp"); w.Code != http.StatusNotFound {
		t.Errorf("remote sources should not serve images, got %d", w.Code)
	}
	body := get(t, remote, "/").Body.String()
	if !strings.Contains(body, `src="https://cdn.example.com/images/A1/thumb.webp"`) {
		t.Error("thumbnails should use the asset base URL")
	}
}

func TestQueryLinker(t *testing.T) {
	l := QueryLinker{}
	if got := l.Home(" "); got != "/" {
		t.Errorf("Home = %q", got)
	}
	if got := l.Home("b1"); got != "/?q=b1" {
		t.Errorf("Home(b1) = %q", got)
	}
	if got := l.Item("A 1", 2, "a"); got != "/?open=A+1&photo=2&q=a" {
		t.Errorf("Item = %q", got)
	}
	if got := l.Static("style.css"); got != "/style.css" {
		t.Errorf("Static = %q", got)
	}
}

func TestShutdownBeforeStart(t *testing.T) {
	srv := newTestServer(t, Config{}, testCatalog(), nil)
	if err := srv.Shutdown(t.Context()); err != nil && !errors.Is(err, http.ErrServerClosed) {
		t.Errorf("Shutdown: %v", err)
	}
}
