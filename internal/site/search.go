package site

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ziadkadry99/saree-gallery/internal/catalog"
)

// CatalogFile is the name of the catalog snapshot read by script.js.
const CatalogFile = "catalog.json"

// WriteCatalog writes the catalog snapshot as JSON to the given path.
func WriteCatalog(cat *catalog.Catalog, outputPath string) error {
	data, err := json.MarshalIndent(cat, "", "  ")
	if err != nil {
		return fmt.Errorf("marshalling catalog: %w", err)
	}
	return os.WriteFile(outputPath, data, 0o644)
}

// ReadCatalog loads a snapshot previously written by WriteCatalog.
func ReadCatalog(path string) (*catalog.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cat catalog.Catalog
	if err := json.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &cat, nil
}
