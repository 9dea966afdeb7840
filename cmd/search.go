package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/saree-gallery/internal/catalog"
	"github.com/ziadkadry99/saree-gallery/internal/gallery"
	"github.com/ziadkadry99/saree-gallery/internal/site"
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the catalog by saree id",
	Long: `Filters the catalog the same way the gallery search box does: the query is
trimmed, upper-cased and matched as a substring of each id. With no query
every saree is listed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().Bool("json", false, "output results as JSON")
	searchCmd.Flags().String("catalog", "", "search a previously written catalog.json instead of rebuilding")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	var query string
	if len(args) > 0 {
		query = args[0]
	}
	jsonOutput, _ := cmd.Flags().GetBool("json")
	catalogPath, _ := cmd.Flags().GetString("catalog")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Reuse the generated site's catalog when there is one.
	if catalogPath == "" {
		candidate := filepath.Join(cfg.OutputDir, site.CatalogFile)
		if _, err := os.Stat(candidate); err == nil {
			catalogPath = candidate
		}
	}

	var cat *catalog.Catalog
	if catalogPath != "" {
		cat, err = site.ReadCatalog(catalogPath)
		if err != nil {
			return err
		}
	} else {
		ctx, stop := signalContext()
		defer stop()

		if cat, _, err = buildCatalog(ctx, cfg, false); err != nil {
			return err
		}
	}

	results := gallery.Filter(cat.Items, query)

	if jsonOutput {
		if results == nil {
			results = []catalog.Item{}
		}
		data, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return fmt.Errorf("marshalling results: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	if len(results) == 0 {
		fmt.Printf("No sarees match %q.\n", gallery.NormalizeQuery(query))
		return nil
	}

	fmt.Printf("Found %d saree(s):\n\n", len(results))
	for _, it := range results {
		fmt.Printf("  %-16s %s\n", it.ID, gallery.CountLabel(it.Count()))
		if verbose {
			fmt.Printf("    %s\n", strings.Join(it.Images, "\n    "))
		}
	}
	return nil
}
