package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/ziadkadry99/saree-gallery/internal/catalog"
	"github.com/ziadkadry99/saree-gallery/internal/config"
	"github.com/ziadkadry99/saree-gallery/internal/logging"
	"github.com/ziadkadry99/saree-gallery/internal/progress"
)

// loadConfig loads and validates the config, providing a user-friendly
// error, and installs the global logger.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `gallery init` to create a config file", err)
	}

	switch {
	case logLevel != "":
		cfg.LogLevel = logLevel
	case verbose:
		cfg.LogLevel = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}

	logger, closer, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return nil, fmt.Errorf("setup logger: %w", err)
	}
	log.Logger = logger
	logCloser = closer

	return cfg, nil
}

// signalContext is cancelled on Ctrl+C or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

// buildCatalog opens the configured source and runs the single catalog
// build for this invocation. An unreadable source or mapping comes back as
// the error with a nil catalog, so callers treat both the same way.
func buildCatalog(ctx context.Context, cfg *config.Config, showProgress bool) (*catalog.Catalog, catalog.Source, error) {
	src, err := catalog.OpenSource(cfg.Source, cfg.ProbeTimeout)
	if err != nil {
		return nil, nil, err
	}

	b := catalog.NewBuilder(src)
	b.MappingFile = cfg.MappingFile
	b.ImagesDir = cfg.ImagesDir
	b.MaxImages = cfg.MaxImages
	b.Filter = catalog.IDFilter{Include: cfg.Include, Exclude: cfg.Exclude}
	b.Log = logging.Component("catalog")
	b.Observer = progress.NewReporter(progress.Probe, showProgress)

	log.Debug().Str("source", src.String()).Msg("building catalog")
	cat, err := b.Build(ctx)
	return cat, src, err
}

// imagesRoot returns the local tree to serve images from, or "" when
// images are remote.
func imagesRoot(cfg *config.Config) string {
	if cfg.IsRemote() {
		return ""
	}
	return cfg.Source
}

// assetBaseURL returns the prefix for image URLs in rendered pages.
// Remote sources default to the source itself.
func assetBaseURL(cfg *config.Config) string {
	if cfg.AssetBaseURL != "" {
		return cfg.AssetBaseURL
	}
	if cfg.IsRemote() {
		return cfg.Source
	}
	return ""
}
