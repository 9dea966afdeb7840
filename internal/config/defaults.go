package config

import "github.com/ziadkadry99/saree-gallery/internal/catalog"

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Source:      ".",
		MappingFile: catalog.DefaultMappingFile,
		ImagesDir:   catalog.DefaultImagesDir,
		MaxImages:   catalog.DefaultMaxImages,
		Title:       "Saree Collection",
		OutputDir:   "site",
		Port:        8080,
		LogLevel:    "info",
	}
}
