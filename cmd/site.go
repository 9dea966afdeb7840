package cmd

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/saree-gallery/internal/logging"
	"github.com/ziadkadry99/saree-gallery/internal/site"
)

var siteCmd = &cobra.Command{
	Use:   "site",
	Short: "Generate the static gallery website",
	Long: `Builds the catalog and writes a self-contained static site: the searchable
grid, catalog.json and one viewer page per photo. If the mapping cannot be
loaded, an index page showing the error is written and the command fails.`,
	RunE: runSite,
}

func init() {
	siteCmd.Flags().Bool("serve", false, "start a local HTTP server after generating")
	siteCmd.Flags().Int("port", 0, "port for the local dev server (defaults to config port)")
	siteCmd.Flags().Bool("open", false, "open browser automatically when serving")
	siteCmd.Flags().String("output", "", "override output directory")
	rootCmd.AddCommand(siteCmd)
}

func runSite(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	outputDir, _ := cmd.Flags().GetString("output")
	if outputDir == "" {
		outputDir = cfg.OutputDir
	}

	generator, err := site.NewSiteGenerator(outputDir, cfg.Title)
	if err != nil {
		return err
	}
	generator.AssetBaseURL = assetBaseURL(cfg)
	generator.Log = logging.Component("site")
	if generator.Intro, err = site.RenderIntro(cfg.Intro); err != nil {
		return err
	}

	ctx, stop := signalContext()
	defer stop()

	cat, src, buildErr := buildCatalog(ctx, cfg, true)
	if buildErr != nil {
		if err := generator.GenerateError(buildErr); err != nil {
			log.Error().Err(err).Msg("writing error page")
		}
		return fmt.Errorf("building catalog: %w", buildErr)
	}

	if !cfg.IsRemote() {
		generator.Images = src
	}
	pageCount, err := generator.Generate(ctx, cat)
	if err != nil {
		return fmt.Errorf("generating site: %w", err)
	}

	fmt.Printf("Static site generated: %s (%d sarees, %d pages)\n", outputDir, cat.Len(), pageCount)

	serve, _ := cmd.Flags().GetBool("serve")
	if serve {
		port, _ := cmd.Flags().GetInt("port")
		if port == 0 {
			port = cfg.Port
		}
		openBrowser, _ := cmd.Flags().GetBool("open")

		fmt.Printf("Serving at http://localhost:%d, press Ctrl+C to stop\n", port)
		if err := site.Serve(outputDir, port, openBrowser); err != nil {
			return fmt.Errorf("serving site: %w", err)
		}
	}

	return nil
}
