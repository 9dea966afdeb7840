package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.MappingFile != "originals-map.json" {
		t.Errorf("expected default mapping_file %q, got %q", "originals-map.json", cfg.MappingFile)
	}
	if cfg.ImagesDir != "images" {
		t.Errorf("expected default images_dir %q, got %q", "images", cfg.ImagesDir)
	}
	if cfg.MaxImages != 20 {
		t.Errorf("expected default max_images 20, got %d", cfg.MaxImages)
	}
	if cfg.ProbeTimeout != 0 {
		t.Errorf("expected no default probe timeout, got %s", cfg.ProbeTimeout)
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.gallery.yml")

	original := DefaultConfig()
	original.Source = "https://example.github.io/sarees"
	original.Title = "Handloom"
	original.MaxImages = 12
	original.Exclude = []string{"TEST*", "OLD?"}
	original.OutputDir = "public"
	original.ProbeTimeout = 5 * time.Second

	// Save.
	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// Load back.
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	// Verify round-trip.
	if loaded.Source != original.Source {
		t.Errorf("source: got %q, want %q", loaded.Source, original.Source)
	}
	if loaded.Title != original.Title {
		t.Errorf("title: got %q, want %q", loaded.Title, original.Title)
	}
	if loaded.MaxImages != original.MaxImages {
		t.Errorf("max_images: got %d, want %d", loaded.MaxImages, original.MaxImages)
	}
	if loaded.OutputDir != original.OutputDir {
		t.Errorf("output_dir: got %q, want %q", loaded.OutputDir, original.OutputDir)
	}
	if loaded.ProbeTimeout != original.ProbeTimeout {
		t.Errorf("probe_timeout: got %s, want %s", loaded.ProbeTimeout, original.ProbeTimeout)
	}
	if len(loaded.Exclude) != len(original.Exclude) {
		t.Fatalf("exclude length: got %d, want %d", len(loaded.Exclude), len(original.Exclude))
	}
	for i, v := range loaded.Exclude {
		if v != original.Exclude[i] {
			t.Errorf("exclude[%d]: got %q, want %q", i, v, original.Exclude[i])
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent.yml")

	// Loading a missing file should return defaults, not an error.
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load should not fail for missing file: %v", err)
	}
	if cfg.Source != "." {
		t.Errorf("expected default source, got %q", cfg.Source)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yml")

	cfg := DefaultConfig()
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	t.Setenv("GALLERY_TITLE", "From Env")
	t.Setenv("GALLERY_PORT", "9090")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Title != "From Env" {
		t.Errorf("env override failed: got %q, want %q", loaded.Title, "From Env")
	}
	if loaded.Port != 9090 {
		t.Errorf("env override failed: got port %d, want 9090", loaded.Port)
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Cleanup(func() { os.Unsetenv("GALLERY_OUTPUT_DIR") })

	if err := os.WriteFile(".env", []byte("GALLERY_OUTPUT_DIR=dist\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load(DefaultPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.OutputDir != "dist" {
		t.Errorf("output_dir = %q, want dist from .env", loaded.OutputDir)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty source", func(c *Config) { c.Source = "" }},
		{"empty mapping", func(c *Config) { c.MappingFile = "" }},
		{"empty images dir", func(c *Config) { c.ImagesDir = "" }},
		{"zero max images", func(c *Config) { c.MaxImages = 0 }},
		{"empty output", func(c *Config) { c.OutputDir = "" }},
		{"negative timeout", func(c *Config) { c.ProbeTimeout = -time.Second }},
		{"bad port", func(c *Config) { c.Port = 70000 }},
		{"bad level", func(c *Config) { c.LogLevel = "loud" }},
	}
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("DefaultConfig should be valid, got: %v", err)
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestIsRemote(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.IsRemote() {
		t.Error("default source should be local")
	}
	cfg.Source = "https://x.github.io/sarees"
	if !cfg.IsRemote() {
		t.Error("https source should be remote")
	}
}

func TestSplitAndTrim(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"a,b,c", []string{"a", "b", "c"}},
		{" a , b , c ", []string{"a", "b", "c"}},
		{"TEST*", []string{"TEST*"}},
		{"", nil},
		{"  ,  , ", nil},
	}
	for _, tt := range tests {
		got := splitAndTrim(tt.input)
		if len(got) != len(tt.want) {
			t.Errorf("splitAndTrim(%q) len = %d, want %d", tt.input, len(got), len(tt.want))
			continue
		}
		for i, v := range got {
			if v != tt.want[i] {
				t.Errorf("splitAndTrim(%q)[%d] = %q, want %q", tt.input, i, v, tt.want[i])
			}
		}
	}
}
