package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the catalog and print it",
	Long:  `Loads the originals mapping, probes each saree's numbered images and prints the resulting catalog.`,
	RunE:  runBuild,
}

func init() {
	buildCmd.Flags().Bool("json", false, "output the catalog as JSON")
	buildCmd.Flags().String("output", "", "write the JSON catalog to this file instead of stdout")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	start := time.Now()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	jsonOutput, _ := cmd.Flags().GetBool("json")
	outPath, _ := cmd.Flags().GetString("output")

	ctx, stop := signalContext()
	defer stop()

	cat, _, err := buildCatalog(ctx, cfg, !jsonOutput && outPath == "")
	if err != nil {
		return err
	}

	if jsonOutput || outPath != "" {
		data, err := json.MarshalIndent(cat, "", "  ")
		if err != nil {
			return fmt.Errorf("marshalling catalog: %w", err)
		}
		if outPath != "" {
			if err := os.WriteFile(outPath, data, 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", outPath, err)
			}
			fmt.Fprintf(os.Stderr, "Catalog written: %s (%d sarees)\n", outPath, cat.Len())
			return nil
		}
		fmt.Println(string(data))
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPHOTOS\tORIGINALS")
	for _, it := range cat.Items {
		orig := it.Originals
		if orig == "" {
			orig = "-"
		}
		fmt.Fprintf(w, "%s\t%d\t%s\n", it.ID, it.Count(), orig)
	}
	w.Flush()

	fmt.Printf("\n%d sarees from %s in %s\n", cat.Len(), cat.Source, time.Since(start).Round(time.Millisecond))
	return nil
}
