// Package config loads extdeck settings from .extdeck/config.json with
// EXTDECK_* environment overrides. Settings are only ever read.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/marcus/extdeck/internal/models"
)

// Dir is the per-project settings directory
const Dir = ".extdeck"

const configFile = Dir + "/config.json"

// Config holds user settings
type Config struct {
	DefaultFilter models.FilterMode `json:"default_filter"`
	Catalog       string            `json:"catalog,omitempty"`   // path to a catalog JSON file, relative to the base dir
	LogLevel      string            `json:"log_level,omitempty"` // debug, info, warn, error
	LogFormat     string            `json:"log_format,omitempty"`
	LogFile       string            `json:"log_file,omitempty"`
}

// Path returns the config file path for baseDir
func Path(baseDir string) string {
	return filepath.Join(baseDir, configFile)
}

// Load reads the config from disk and applies environment overrides.
// A missing file yields defaults.
func Load(baseDir string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(Path(baseDir))
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err == nil {
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", configFile, err)
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	if cfg.Catalog != "" && !filepath.IsAbs(cfg.Catalog) {
		cfg.Catalog = filepath.Join(baseDir, cfg.Catalog)
	}
	if cfg.LogFile != "" && !filepath.IsAbs(cfg.LogFile) {
		cfg.LogFile = filepath.Join(baseDir, cfg.LogFile)
	}

	return cfg, nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("EXTDECK_FILTER"); v != "" {
		mode, err := models.ParseFilterMode(v)
		if err != nil {
			return fmt.Errorf("EXTDECK_FILTER: %w", err)
		}
		cfg.DefaultFilter = mode
	}
	if v := os.Getenv("EXTDECK_CATALOG"); v != "" {
		cfg.Catalog = v
	}
	if v := os.Getenv("EXTDECK_LOG_LEVEL"); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	if v := os.Getenv("EXTDECK_LOG_FORMAT"); v != "" {
		cfg.LogFormat = strings.ToLower(v)
	}
	if v := os.Getenv("EXTDECK_LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
	return nil
}
