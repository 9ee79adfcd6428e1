// Package config loads the optional YAML settings file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultSampleLimit bounds how many columns per row are measured when
// sizing the grid.
const DefaultSampleLimit = 100

type Config struct {
	SampleLimit int    `yaml:"sample_limit,omitempty"`
	FilterMode  string `yaml:"filter_mode,omitempty"`
	OutputMode  string `yaml:"output_mode,omitempty"`
	Theme       string `yaml:"theme,omitempty"`
	EventLog    string `yaml:"event_log,omitempty"`
	MinUI       bool   `yaml:"min_ui,omitempty"`
}

func Default() *Config {
	return &Config{
		SampleLimit: DefaultSampleLimit,
		FilterMode:  "expr",
		OutputMode:  "none",
		Theme:       "auto",
	}
}

// Load reads path, or the default location when path is empty. A missing
// file yields the defaults; a file that does not parse is an error.
func Load(path string) (*Config, string, error) {
	if path == "" {
		path = DefaultPath()
	}
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, path, nil
	}
	if err != nil {
		return cfg, path, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return Default(), path, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.SampleLimit == 0 {
		cfg.SampleLimit = DefaultSampleLimit
	}
	return cfg, path, nil
}

func Save(cfg *Config, path string) error {
	if cfg == nil {
		cfg = Default()
	}
	if path == "" {
		path = DefaultPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func DefaultPath() string {
	return filepath.Join(resolveConfigDir(), "config.yaml")
}

func resolveConfigDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "ocgv")
}
