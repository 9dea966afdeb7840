package catalog

import (
	"fmt"
	"time"
)

// Naming convention of the static image tree.
const (
	DefaultMappingFile = "originals-map.json"
	DefaultImagesDir   = "images"
	DefaultMaxImages   = 20
	ThumbnailName      = "thumb.webp"
	ImageExt           = ".webp"
)

// Item is one saree in the catalog.
type Item struct {
	ID        string   `json:"id"`
	Thumbnail string   `json:"thumb"`
	Images    []string `json:"images"`
	Originals string   `json:"originals,omitempty"`
}

// Count returns the number of verified images.
func (it Item) Count() int { return len(it.Images) }

// Catalog is the immutable snapshot produced by a single build.
type Catalog struct {
	BuildID string    `json:"build_id"`
	BuiltAt time.Time `json:"built_at"`
	Source  string    `json:"source"`
	Items   []Item    `json:"items"`
}

// Lookup returns the item with the given id.
func (c *Catalog) Lookup(id string) (*Item, bool) {
	if c == nil {
		return nil, false
	}
	for i := range c.Items {
		if c.Items[i].ID == id {
			return &c.Items[i], true
		}
	}
	return nil, false
}

// Len returns the number of items, tolerating a nil catalog.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Items)
}

// ThumbnailPath returns images/{id}/thumb.webp under imagesDir.
func ThumbnailPath(imagesDir, id string) string {
	return imagesDir + "/" + id + "/" + ThumbnailName
}

// ImagePath returns images/{id}/{n}.webp under imagesDir.
func ImagePath(imagesDir, id string, n int) string {
	return fmt.Sprintf("%s/%s/%d%s", imagesDir, id, n, ImageExt)
}
