// Package config loads generator configuration from YAML files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ozzgio/portfolio-data/internal/fileutil"
	"github.com/ozzgio/portfolio-data/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrInvalidLimit    = errors.New("invalid size limit")
	ErrInvalidExt      = errors.New("invalid image extension")
)

// Size limit bounds in mebibytes. Zero in the file means "use default".
const (
	MinLimitMB = 1
	MaxLimitMB = 1024
)

// Config holds all configuration for JSON generation.
type Config struct {
	Vault  VaultConfig  `yaml:"vault"`
	Output OutputConfig `yaml:"output"`
	Limits LimitsConfig `yaml:"limits"`
	Books  BooksConfig  `yaml:"books"`
	Images ImagesConfig `yaml:"images"`
}

// VaultConfig defines where the Obsidian vault lives.
type VaultConfig struct {
	Dir string `yaml:"dir"` // Vault root (empty = current directory)
}

// OutputConfig defines the output destination.
type OutputConfig struct {
	Dir string `yaml:"dir"` // Output directory (empty = ./data)
}

// LimitsConfig caps per-file sizes. Values are mebibytes.
type LimitsConfig struct {
	MaxFileSizeMB  int `yaml:"maxFileSizeMB"`  // Markdown files (default 10)
	MaxImageSizeMB int `yaml:"maxImageSizeMB"` // Images (default 50)
}

// BooksConfig defines book collection options.
type BooksConfig struct {
	LessonHTML bool `yaml:"lessonHTML"` // Also emit lesson_html rendered from Markdown
}

// ImagesConfig defines image copy options.
type ImagesConfig struct {
	Extensions []string `yaml:"extensions"` // Whitelist override (default jpg/jpeg/png/gif/webp)
}

// Validate checks bounds and formats. Called automatically by Load, but
// available for consumers who construct Config manually.
func (c *Config) Validate() error {
	if err := validateLimit("limits.maxFileSizeMB", c.Limits.MaxFileSizeMB); err != nil {
		return err
	}
	if err := validateLimit("limits.maxImageSizeMB", c.Limits.MaxImageSizeMB); err != nil {
		return err
	}

	for _, ext := range c.Images.Extensions {
		if !strings.HasPrefix(ext, ".") || len(ext) < 2 || strings.ContainsAny(ext, `/\`) {
			return fmt.Errorf("%w: %q (must look like \".jpg\")", ErrInvalidExt, ext)
		}
	}

	return nil
}

// validateLimit checks a size limit is zero (default) or within bounds.
func validateLimit(field string, mb int) error {
	if mb == 0 {
		return nil
	}
	if mb < MinLimitMB || mb > MaxLimitMB {
		return fmt.Errorf("%w: %s = %d (must be between %d and %d MB)", ErrInvalidLimit, field, mb, MinLimitMB, MaxLimitMB)
	}
	return nil
}

// DefaultConfig returns a neutral configuration: all paths empty, limits
// at their zero values so the library defaults apply.
func DefaultConfig() *Config {
	return &Config{}
}

// Load loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard
// locations. Returns an error if the file is not found (no silent fallback).
func Load(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !strings.ContainsAny(nameOrPath, `/\`) {
		resolved, err := resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
		configPath = resolved
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/portfolio-data/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "portfolio-data", name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
