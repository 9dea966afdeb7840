package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/saree-gallery/internal/catalog"
	"github.com/ziadkadry99/saree-gallery/internal/logging"
	"github.com/ziadkadry99/saree-gallery/internal/progress"
	"github.com/ziadkadry99/saree-gallery/internal/verify"
	"github.com/ziadkadry99/saree-gallery/internal/walker"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check that every catalogued image decodes",
	Long: `Builds the catalog, then reads each thumbnail and numbered image and decodes
its WebP header. Missing or corrupt files are listed and the command fails.

With --scan, a local images tree is also walked to list numbered photos the
gallery will never show (after a gap, above the cap, or under ids absent
from the mapping) and photos with identical content.`,
	RunE: runVerify,
}

func init() {
	verifyCmd.Flags().Bool("json", false, "output the report as JSON")
	verifyCmd.Flags().Bool("scan", false, "walk the local images tree for unreachable and duplicate photos")
	rootCmd.AddCommand(verifyCmd)
}

func runVerify(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	jsonOutput, _ := cmd.Flags().GetBool("json")
	scan, _ := cmd.Flags().GetBool("scan")

	ctx, stop := signalContext()
	defer stop()

	cat, src, err := buildCatalog(ctx, cfg, !jsonOutput)
	if err != nil {
		return err
	}

	v := verify.New(src)
	v.Log = logging.Component("verify")
	v.Observer = progress.NewReporter(progress.Verify, !jsonOutput)
	report, err := v.Verify(ctx, cat)
	if err != nil {
		return err
	}

	if jsonOutput {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("marshalling report: %w", err)
		}
		fmt.Println(string(data))
	} else if report.OK() {
		fmt.Printf("All %d images decoded.\n", report.Checked)
	} else {
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tPATH\tPROBLEM\tDETAIL")
		for _, p := range report.Problems {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", p.ID, p.Path, p.Kind, p.Err)
		}
		w.Flush()
	}

	if scan {
		if err := printScan(cfg.Source, cfg.ImagesDir, cat, cfg.IsRemote()); err != nil {
			return err
		}
	}

	if !report.OK() {
		return fmt.Errorf("%d of %d images failed verification", len(report.Problems), report.Checked)
	}
	return nil
}

// printScan reports files on disk that the catalog does not reach. Only
// local sources can be walked.
func printScan(root, imagesDir string, cat *catalog.Catalog, remote bool) error {
	if remote {
		fmt.Fprintln(os.Stderr, "Skipping scan: the source is remote")
		return nil
	}

	files, err := walker.Walk(walker.WalkerConfig{RootDir: root, ImagesDir: imagesDir})
	if err != nil {
		return err
	}

	unreachable := walker.Unreachable(files, cat)
	fmt.Printf("\n%d unreachable photo(s)\n", len(unreachable))
	for _, f := range unreachable {
		fmt.Printf("  %s\n", f.RelPath)
	}

	dups := walker.Duplicates(files)
	fmt.Printf("\n%d duplicate group(s)\n", len(dups))
	for _, g := range dups {
		paths := make([]string, len(g))
		for i, f := range g {
			paths[i] = f.RelPath
		}
		fmt.Printf("  %s\n", strings.Join(paths, ", "))
	}
	return nil
}
