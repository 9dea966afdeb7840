package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/saree-gallery/internal/logging"
	"github.com/ziadkadry99/saree-gallery/internal/server"
	"github.com/ziadkadry99/saree-gallery/internal/site"
)

var (
	servePort     int
	serveAllowAll bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the local gallery preview server",
	Long: `Builds the catalog once and serves the gallery, catalog.json and a small
JSON API from memory. A failed build is served as the error page.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if servePort == 0 {
			servePort = cfg.Port
		}

		intro, err := site.RenderIntro(cfg.Intro)
		if err != nil {
			return err
		}

		ctx, stop := signalContext()
		defer stop()

		cat, _, buildErr := buildCatalog(ctx, cfg, true)
		if buildErr != nil {
			if ctx.Err() != nil {
				return buildErr
			}
			log.Error().Err(buildErr).Msg("catalog build failed, serving error page")
		}

		srv, err := server.New(server.Config{
			Port:         servePort,
			Title:        cfg.Title,
			Intro:        intro,
			AllowAll:     serveAllowAll,
			ImagesRoot:   imagesRoot(cfg),
			ImagesDir:    cfg.ImagesDir,
			AssetBaseURL: assetBaseURL(cfg),
		}, cat, buildErr, logging.Component("server"))
		if err != nil {
			return err
		}

		// Graceful shutdown.
		go func() {
			<-ctx.Done()
			fmt.Fprintln(os.Stderr, "\nShutting down server...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			srv.Shutdown(shutdownCtx)
		}()

		fmt.Fprintf(os.Stderr, "gallery preview v%s starting on port %d\n", Version, servePort)
		fmt.Fprintf(os.Stderr, "  Source: %s\n", cfg.Source)
		if cat != nil {
			fmt.Fprintf(os.Stderr, "  Sarees: %d\n", cat.Len())
		}

		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (defaults to config port)")
	serveCmd.Flags().BoolVar(&serveAllowAll, "cors-all", false, "Allow all CORS origins")
	rootCmd.AddCommand(serveCmd)
}
