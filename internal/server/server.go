package server

import (
	"context"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/ziadkadry99/saree-gallery/internal/catalog"
	"github.com/ziadkadry99/saree-gallery/internal/gallery"
)

// Config holds server configuration.
type Config struct {
	Port     int
	Title    string
	Intro    template.HTML
	AllowAll bool // allow all CORS origins (dev mode)

	// ImagesRoot is the local tree served under /{ImagesDir}/. Empty for
	// remote sources, whose images are linked through AssetBaseURL.
	ImagesRoot   string
	ImagesDir    string
	AssetBaseURL string
}

// Server is the local preview of the gallery. It serves one catalog
// snapshot, or the error that prevented building it, for its lifetime.
type Server struct {
	cfg        Config
	catalog    *catalog.Catalog
	buildErr   error
	renderer   *gallery.Renderer
	links      QueryLinker
	log        zerolog.Logger
	router     chi.Router
	httpServer *http.Server
}

// New creates a preview server. Exactly one of cat and buildErr is
// expected to be set.
func New(cfg Config, cat *catalog.Catalog, buildErr error, log zerolog.Logger) (*Server, error) {
	r, err := gallery.NewRenderer()
	if err != nil {
		return nil, err
	}
	if cfg.ImagesDir == "" {
		cfg.ImagesDir = catalog.DefaultImagesDir
	}
	s := &Server{
		cfg:      cfg,
		catalog:  cat,
		buildErr: buildErr,
		renderer: r,
		links:    QueryLinker{AssetBaseURL: cfg.AssetBaseURL},
		log:      log,
	}
	s.router = s.buildRouter()
	return s, nil
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	corsOpts := cors.Options{
		AllowedOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods: []string{"GET", "HEAD", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	r.Get("/healthz", s.handleHealth)
	r.Get("/", s.handleIndex)
	r.Get("/catalog.json", s.handleCatalog)
	r.Get("/style.css", staticAsset("text/css; charset=utf-8", gallery.CSS))
	r.Get("/script.js", staticAsset("application/javascript; charset=utf-8", gallery.JS))

	r.Route("/api", func(r chi.Router) {
		r.Get("/search", s.handleSearch)
		r.Get("/sarees/{id}", s.handleGetSaree)
	})

	if s.cfg.ImagesRoot != "" {
		prefix := "/" + s.cfg.ImagesDir + "/"
		fs := http.FileServer(http.Dir(s.cfg.ImagesRoot + "/" + s.cfg.ImagesDir))
		r.Handle(prefix+"*", http.StripPrefix(prefix, fs))
	}

	return r
}

// Router returns the chi router.
func (s *Server) Router() chi.Router { return s.router }

// Start begins listening on the configured port.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	s.log.Info().Str("addr", addr).Msg("gallery preview listening")
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
