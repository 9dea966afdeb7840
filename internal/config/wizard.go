package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

// DefaultPath is where the wizard writes the configuration.
const DefaultPath = ".gallery.yml"

// detectSource returns "." when the working directory already looks like a
// gallery tree.
func detectSource() string {
	if _, err := os.Stat(DefaultConfig().MappingFile); err == nil {
		return "."
	}
	return ""
}

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to .gallery.yml.
func RunWizard() (*Config, error) {
	fmt.Println("Welcome to gallery! Let's configure your collection.")
	fmt.Println()

	cfg := DefaultConfig()

	if src := detectSource(); src != "" {
		fmt.Printf("Found %s in the current directory\n\n", cfg.MappingFile)
	}

	// 1. Source kind.
	kindPrompt := promptui.Select{
		Label: "Where are the images hosted?",
		Items: []string{
			"local - a directory on this machine",
			"remote - a static site (http/https base URL)",
		},
	}
	kindIdx, _, err := kindPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("source selection: %w", err)
	}

	// 2. Source location.
	sourceDefault := detectSource()
	label := "Gallery directory"
	if kindIdx == 1 {
		label = "Base URL"
		sourceDefault = ""
	}
	sourcePrompt := promptui.Prompt{
		Label:   label,
		Default: sourceDefault,
		Validate: func(s string) error {
			s = strings.TrimSpace(s)
			if s == "" {
				return fmt.Errorf("required")
			}
			if kindIdx == 1 && !strings.HasPrefix(s, "http://") && !strings.HasPrefix(s, "https://") {
				return fmt.Errorf("must start with http:// or https://")
			}
			return nil
		},
	}
	source, err := sourcePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("source: %w", err)
	}
	cfg.Source = strings.TrimSpace(source)

	// 3. Title.
	titlePrompt := promptui.Prompt{
		Label:   "Gallery title",
		Default: cfg.Title,
	}
	if cfg.Title, err = titlePrompt.Run(); err != nil {
		return nil, fmt.Errorf("title: %w", err)
	}

	// 4. Output directory.
	outputPrompt := promptui.Prompt{
		Label:   "Output directory for the static site",
		Default: cfg.OutputDir,
	}
	if cfg.OutputDir, err = outputPrompt.Run(); err != nil {
		return nil, fmt.Errorf("output dir: %w", err)
	}

	// 5. Image cap.
	maxPrompt := promptui.Prompt{
		Label:   "Maximum photos per saree",
		Default: strconv.Itoa(cfg.MaxImages),
		Validate: func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil || n < 1 {
				return fmt.Errorf("must be a positive number")
			}
			return nil
		},
	}
	maxStr, err := maxPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("max images: %w", err)
	}
	cfg.MaxImages, _ = strconv.Atoi(maxStr)

	// 6. Excluded ids.
	excludePrompt := promptui.Prompt{
		Label:   "Exclude ids (comma-separated globs, leave blank for none)",
		Default: "",
	}
	excludeStr, err := excludePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("exclude patterns: %w", err)
	}
	cfg.Exclude = splitAndTrim(excludeStr)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := cfg.Save(DefaultPath); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", DefaultPath)
	return cfg, nil
}

// splitAndTrim splits a comma-separated string and trims whitespace.
func splitAndTrim(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		if token := strings.TrimSpace(part); token != "" {
			result = append(result, token)
		}
	}
	return result
}
