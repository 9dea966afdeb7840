package config

import "time"

// Config is the top-level gallery configuration, corresponding to .gallery.yml.
type Config struct {
	// Source is a local directory or an http(s) base URL holding the
	// mapping file and the images tree.
	Source       string        `yaml:"source" koanf:"source"`
	MappingFile  string        `yaml:"mapping_file" koanf:"mapping_file"`
	ImagesDir    string        `yaml:"images_dir" koanf:"images_dir"`
	MaxImages    int           `yaml:"max_images" koanf:"max_images"`
	Title        string        `yaml:"title" koanf:"title"`
	Intro        string        `yaml:"intro" koanf:"intro"`
	OutputDir    string        `yaml:"output_dir" koanf:"output_dir"`
	AssetBaseURL string        `yaml:"asset_base_url" koanf:"asset_base_url"`
	Include      []string      `yaml:"include" koanf:"include"`
	Exclude      []string      `yaml:"exclude" koanf:"exclude"`
	ProbeTimeout time.Duration `yaml:"probe_timeout" koanf:"probe_timeout"`
	Port         int           `yaml:"port" koanf:"port"`
	LogLevel     string        `yaml:"log_level" koanf:"log_level"`
	LogFile      string        `yaml:"log_file" koanf:"log_file"`
}
