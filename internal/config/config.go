// Package config loads the optional user configuration file. Everything
// in it has a working default: a missing or empty file is not an error.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up inside the application directory.
const FileName = "config.yaml"

// Config holds user-adjustable settings.
type Config struct {
	// BaseDir overrides the automatically resolved application
	// directory. Relative paths are resolved against the working
	// directory at load time.
	BaseDir string `yaml:"base_dir"`

	// LogLevel is one of debug, info, warn, error. Empty means info.
	LogLevel string `yaml:"log_level"`
}

// Default returns the zero configuration with all defaults applied.
func Default() Config {
	return Config{LogLevel: "info"}
}

// Load reads the config file at path. A missing file yields Default();
// a present but malformed file is an error.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if _, err := cfg.SlogLevel(); err != nil {
		return Config{}, err
	}

	if cfg.BaseDir != "" {
		abs, err := filepath.Abs(cfg.BaseDir)
		if err != nil {
			return Config{}, fmt.Errorf("resolve base_dir: %w", err)
		}
		cfg.BaseDir = abs
	}
	return cfg, nil
}

// LoadFrom looks the config file up inside dir.
func LoadFrom(dir string) (Config, error) {
	return Load(filepath.Join(dir, FileName))
}

// SlogLevel maps the configured level name onto a slog level.
func (c Config) SlogLevel() (slog.Level, error) {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log_level %q", c.LogLevel)
	}
}
