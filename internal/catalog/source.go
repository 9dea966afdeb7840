package catalog

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Source is the static tree a catalog is built from.
type Source interface {
	// ReadMapping returns the raw mapping resource, bypassing any cache.
	ReadMapping(ctx context.Context, path string) ([]byte, error)
	// Exists reports whether the resource at path is retrievable. Any
	// failure is reported as false.
	Exists(ctx context.Context, path string) bool
	// Open returns the full content of the resource at path.
	Open(ctx context.Context, path string) (io.ReadCloser, error)
	// String describes the source for logs and catalog metadata.
	String() string
}

// OpenSource returns an HTTPSource for http(s) locations and a DirSource
// for everything else. A missing local directory is a *LoadError, the same
// as an unreachable mapping.
func OpenSource(location string, timeout time.Duration) (Source, error) {
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		return NewHTTPSource(location, &http.Client{Timeout: timeout}), nil
	}
	info, err := os.Stat(location)
	if err != nil {
		return nil, &LoadError{Path: location, Err: err}
	}
	if !info.IsDir() {
		return nil, &LoadError{Path: location, Err: fmt.Errorf("not a directory")}
	}
	return NewDirSource(location), nil
}

// HTTPSource reads a statically hosted tree.
type HTTPSource struct {
	BaseURL string
	Client  *http.Client
}

// NewHTTPSource creates an HTTPSource. A nil client uses http.DefaultClient.
func NewHTTPSource(baseURL string, client *http.Client) *HTTPSource {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPSource{BaseURL: strings.TrimRight(baseURL, "/"), Client: client}
}

// URL resolves a tree-relative path against the base URL.
func (s *HTTPSource) URL(path string) string {
	return s.BaseURL + "/" + strings.TrimLeft(path, "/")
}

func (s *HTTPSource) ReadMapping(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL(path), nil)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	req.Header.Set("Cache-Control", "no-cache, no-store")
	req.Header.Set("Pragma", "no-cache")

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &LoadError{Path: path, Status: resp.StatusCode}
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return data, nil
}

func (s *HTTPSource) Exists(ctx context.Context, path string) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, s.URL(path), nil)
	if err != nil {
		return false
	}
	resp, err := s.Client.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode >= 200 && resp.StatusCode <= 299
}

func (s *HTTPSource) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL(path), nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, fmt.Errorf("GET %s: status %d", path, resp.StatusCode)
	}
	return resp.Body, nil
}

func (s *HTTPSource) String() string { return s.BaseURL }

// DirSource reads a tree from the local filesystem.
type DirSource struct {
	Root string
}

// NewDirSource creates a DirSource rooted at root.
func NewDirSource(root string) *DirSource {
	return &DirSource{Root: root}
}

func (s *DirSource) resolve(path string) string {
	return filepath.Join(s.Root, filepath.FromSlash(path))
}

func (s *DirSource) ReadMapping(_ context.Context, path string) ([]byte, error) {
	data, err := os.ReadFile(s.resolve(path))
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return data, nil
}

func (s *DirSource) Exists(ctx context.Context, path string) bool {
	if ctx.Err() != nil {
		return false
	}
	info, err := os.Stat(s.resolve(path))
	return err == nil && info.Mode().IsRegular()
}

func (s *DirSource) Open(_ context.Context, path string) (io.ReadCloser, error) {
	return os.Open(s.resolve(path))
}

func (s *DirSource) String() string { return s.Root }
