package site

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/ziadkadry99/saree-gallery/internal/catalog"
	"github.com/ziadkadry99/saree-gallery/internal/gallery"
)

// SiteGenerator writes the gallery as a static site.
type SiteGenerator struct {
	OutputDir    string
	Title        string
	Intro        template.HTML
	AssetBaseURL string
	// Images, when set and AssetBaseURL is empty, is where thumbnails and
	// photos are copied from so the site's relative image paths resolve.
	Images catalog.Source
	Log    zerolog.Logger

	renderer *gallery.Renderer
}

// NewSiteGenerator creates a SiteGenerator writing into outputDir.
func NewSiteGenerator(outputDir, title string) (*SiteGenerator, error) {
	r, err := gallery.NewRenderer()
	if err != nil {
		return nil, err
	}
	return &SiteGenerator{
		OutputDir: outputDir,
		Title:     title,
		Log:       zerolog.Nop(),
		renderer:  r,
	}, nil
}

// Generate writes index.html, catalog.json, the static assets and one
// viewer permalink per photo. Returns the number of HTML pages written.
func (g *SiteGenerator) Generate(ctx context.Context, cat *catalog.Catalog) (int, error) {
	if err := g.writeAssets(); err != nil {
		return 0, err
	}
	if g.Images != nil && g.AssetBaseURL == "" {
		if err := g.copyImages(ctx, cat); err != nil {
			return 0, err
		}
	}
	if err := WriteCatalog(cat, filepath.Join(g.OutputDir, CatalogFile)); err != nil {
		return 0, fmt.Errorf("writing catalog: %w", err)
	}

	root := StaticLinker{AssetBaseURL: g.AssetBaseURL}
	index := gallery.Page{Title: g.Title, Intro: g.Intro, Items: cat.Items}
	if err := g.writePage("index.html", index, root); err != nil {
		return 0, err
	}
	pages := 1

	// Permalinks live two levels down: sarees/{id}/{n}.html. Pages of items
	// dropped since the last run go with the old directory.
	if err := os.RemoveAll(filepath.Join(g.OutputDir, itemPagesDir)); err != nil {
		return pages, err
	}
	deep := StaticLinker{BasePath: "../../", AssetBaseURL: g.AssetBaseURL}
	for i := range cat.Items {
		item := &cat.Items[i]
		var v gallery.Viewer
		if !v.Open(item) {
			continue
		}
		for n := range item.Images {
			if err := v.SelectThumbnail(n); err != nil {
				return pages, err
			}
			p := gallery.Page{Title: g.Title, Intro: g.Intro, Items: cat.Items, Modal: v.View()}
			if err := g.writePage(itemPagePath(item.ID, n+1), p, deep); err != nil {
				return pages, fmt.Errorf("rendering %s: %w", item.ID, err)
			}
			pages++
		}
	}

	return pages, nil
}

// GenerateError writes an index.html whose grid shows the build failure.
// The catalog and permalinks of an earlier run are removed.
func (g *SiteGenerator) GenerateError(buildErr error) error {
	if err := g.writeAssets(); err != nil {
		return err
	}
	if err := os.Remove(filepath.Join(g.OutputDir, CatalogFile)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	if err := os.RemoveAll(filepath.Join(g.OutputDir, itemPagesDir)); err != nil {
		return err
	}
	p := gallery.Page{Title: g.Title, Intro: g.Intro, Error: buildErr.Error()}
	return g.writePage("index.html", p, StaticLinker{AssetBaseURL: g.AssetBaseURL})
}

func (g *SiteGenerator) writeAssets() error {
	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(g.OutputDir, "style.css"), []byte(gallery.CSS), 0o644); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(g.OutputDir, "script.js"), []byte(gallery.JS), 0o644)
}

// copyImages copies every thumbnail and photo of cat into the output tree
// under the same relative paths. A missing thumbnail is logged and skipped.
func (g *SiteGenerator) copyImages(ctx context.Context, cat *catalog.Catalog) error {
	copied := 0
	for _, item := range cat.Items {
		if err := g.copyImage(ctx, item.Thumbnail); err != nil {
			g.Log.Warn().Err(err).Str("id", item.ID).Msg("thumbnail not copied")
		} else {
			copied++
		}
		for _, img := range item.Images {
			if err := g.copyImage(ctx, img); err != nil {
				return fmt.Errorf("copying %s: %w", img, err)
			}
			copied++
		}
	}
	g.Log.Debug().Int("files", copied).Str("source", g.Images.String()).Msg("images copied")
	return nil
}

// copyImage goes through a temporary file so copying a tree onto itself
// leaves the original intact.
func (g *SiteGenerator) copyImage(ctx context.Context, relPath string) error {
	outPath, err := g.outputPath(relPath)
	if err != nil {
		return err
	}
	in, err := g.Images.Open(ctx, relPath)
	if err != nil {
		return err
	}
	defer in.Close()

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(outPath), ".copy-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, in); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), outPath)
}

// outputPath resolves a site-relative path, refusing anything that would
// land outside OutputDir.
func (g *SiteGenerator) outputPath(relPath string) (string, error) {
	outPath := filepath.Join(g.OutputDir, filepath.FromSlash(relPath))
	rel, err := filepath.Rel(g.OutputDir, outPath)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("path %q escapes output directory", relPath)
	}
	return outPath, nil
}

func (g *SiteGenerator) writePage(relPath string, p gallery.Page, links gallery.Linker) error {
	outPath, err := g.outputPath(relPath)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return err
	}

	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer f.Close()

	return g.renderer.RenderPage(f, p, links)
}
