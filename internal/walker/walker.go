// Package walker scans a local image tree independently of the mapping
// file, so files the catalog cannot reach can be reported.
package walker

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/ziadkadry99/saree-gallery/internal/catalog"
)

// ImageFile holds metadata about a single file under images/{id}/.
type ImageFile struct {
	Path        string // Absolute path on disk.
	RelPath     string // Tree-relative path, slash separated, e.g. images/A1/2.webp.
	ID          string // Name of the id directory.
	Index       int    // Photo number for {n}.webp, 0 for anything else.
	Size        int64
	ContentHash string // SHA-256 hex digest of the file content.
}

// WalkerConfig controls the behaviour of the Walk function.
type WalkerConfig struct {
	RootDir   string   // Root of the gallery tree.
	ImagesDir string   // Images directory under RootDir (default "images").
	Exclude   []string // Glob patterns matched against RelPath.
}

// Walk returns every regular .webp file one level below each id directory,
// sorted by id and then by index. Unreadable entries are skipped.
func Walk(config WalkerConfig) ([]ImageFile, error) {
	root, err := filepath.Abs(config.RootDir)
	if err != nil {
		return nil, fmt.Errorf("walker: resolve root: %w", err)
	}
	imagesDir := config.ImagesDir
	if imagesDir == "" {
		imagesDir = catalog.DefaultImagesDir
	}
	base := filepath.Join(root, filepath.FromSlash(imagesDir))

	var files []ImageFile

	err = filepath.WalkDir(base, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if path == base {
				return walkErr
			}
			return nil
		}

		rel, err := filepath.Rel(base, path)
		if err != nil {
			return nil
		}
		depth := len(strings.Split(filepath.ToSlash(rel), "/"))

		if d.IsDir() {
			if path != base && (shouldExcludeDir(d.Name()) || depth > 1) {
				return filepath.SkipDir
			}
			return nil
		}
		if depth != 2 || !d.Type().IsRegular() || !strings.EqualFold(filepath.Ext(d.Name()), catalog.ImageExt) {
			return nil
		}

		relPath := imagesDir + "/" + filepath.ToSlash(rel)
		if MatchesExclude(relPath, config.Exclude) {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return nil
		}
		hash, err := hashFile(path)
		if err != nil {
			return nil
		}

		files = append(files, ImageFile{
			Path:        path,
			RelPath:     relPath,
			ID:          filepath.Base(filepath.Dir(path)),
			Index:       photoIndex(d.Name()),
			Size:        info.Size(),
			ContentHash: hash,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walker: traversal: %w", err)
	}

	sort.SliceStable(files, func(i, j int) bool {
		if files[i].ID != files[j].ID {
			return files[i].ID < files[j].ID
		}
		if files[i].Index != files[j].Index {
			return files[i].Index < files[j].Index
		}
		return files[i].RelPath < files[j].RelPath
	})
	return files, nil
}

// photoIndex parses "{n}.webp" with n >= 1; any other name yields 0.
func photoIndex(name string) int {
	stem := strings.TrimSuffix(name, filepath.Ext(name))
	n, err := strconv.Atoi(stem)
	if err != nil || n < 1 || strconv.Itoa(n) != stem {
		return 0
	}
	return n
}

// Unreachable returns the numbered photos that exist on disk but are not
// part of cat: those after a gap, above the cap, or under ids missing
// from the mapping.
func Unreachable(files []ImageFile, cat *catalog.Catalog) []ImageFile {
	listed := make(map[string]bool)
	for _, it := range cat.Items {
		for _, p := range it.Images {
			listed[p] = true
		}
	}

	var out []ImageFile
	for _, f := range files {
		if f.Index > 0 && !listed[f.RelPath] {
			out = append(out, f)
		}
	}
	return out
}

// Duplicates groups numbered photos with identical content. Only groups
// of two or more are returned, ordered by their first file.
func Duplicates(files []ImageFile) [][]ImageFile {
	byHash := make(map[string][]ImageFile)
	var order []string
	for _, f := range files {
		if f.Index == 0 {
			continue
		}
		if _, seen := byHash[f.ContentHash]; !seen {
			order = append(order, f.ContentHash)
		}
		byHash[f.ContentHash] = append(byHash[f.ContentHash], f)
	}

	var groups [][]ImageFile
	for _, h := range order {
		if len(byHash[h]) > 1 {
			groups = append(groups, byHash[h])
		}
	}
	return groups
}

// hashFile computes the SHA-256 digest of the given file.
func hashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
