package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads the config file next to dir (usually the catalog's directory)
// and overlays it on the defaults. A missing file is not an error: the
// defaults are returned as-is. A present but unparseable file is.
func Load(dir string) (*Config, error) {
	cfg := NewDefaultConfig()

	path := filepath.Join(filepath.Clean(dir), FileName)
	loaded, err := loadYAMLFile(path, cfg)
	if err != nil {
		return nil, err
	}
	if !loaded {
		slog.Debug("no config file, using defaults", "path", path)
		return cfg, nil
	}
	return finalize(cfg, path)
}

// LoadFile reads an explicitly named config file. Unlike Load, the file must
// exist: the caller asked for it by path.
func LoadFile(path string) (*Config, error) {
	cfg := NewDefaultConfig()

	loaded, err := loadYAMLFile(path, cfg)
	if err != nil {
		return nil, err
	}
	if !loaded {
		return nil, fmt.Errorf("read %s: %w", path, os.ErrNotExist)
	}
	return finalize(cfg, path)
}

// finalize applies post-load fixups shared by Load and LoadFile: default
// languages, dictionary path resolution, validation.
func finalize(cfg *Config, path string) (*Config, error) {
	if len(cfg.Languages) == 0 {
		cfg.Languages = NewDefaultConfig().Languages
	}
	if cfg.Dictionary != "" && !filepath.IsAbs(cfg.Dictionary) {
		cfg.Dictionary = filepath.Join(filepath.Dir(path), cfg.Dictionary)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	slog.Debug("config loaded", "path", path, "languages", len(cfg.Languages))
	return cfg, nil
}

// Validate checks the config fields that can be wrong independent of any
// catalog: language tags must parse and the dictionary path, when set, must
// be readable.
func Validate(cfg *Config) error {
	if _, err := cfg.TargetSet(); err != nil {
		return &ValidationError{
			Field:   "languages",
			Message: "must be valid BCP 47 language tags",
			Value:   cfg.Languages,
			Wrapped: err,
		}
	}
	if cfg.Dictionary != "" {
		if _, err := os.Stat(cfg.Dictionary); err != nil {
			return &ValidationError{
				Field:   "dictionary",
				Message: "dictionary file is not readable",
				Value:   cfg.Dictionary,
				Wrapped: err,
			}
		}
	}
	return nil
}

// loadYAMLFile reads a YAML file into target. Returns (true, nil) if the
// file was found and parsed, (false, nil) if it does not exist, or
// (false, error) on failure.
func loadYAMLFile(path string, target any) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, target); err != nil {
		return false, fmt.Errorf("parse %s: %w", path, ErrInvalidYAML)
	}
	return true, nil
}
