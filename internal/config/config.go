// Package config loads the exporter's YAML settings file.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"maptojson/internal/export"
	"maptojson/internal/names"
	"maptojson/internal/plugin"
)

type Config struct {
	// NamesFile overrides the built-in name tables. Tables it leaves out
	// keep their built-in contents.
	NamesFile string `yaml:"names_file,omitempty"`

	Indent      string `yaml:"indent"`
	AtomicWrite bool   `yaml:"atomic_write"`
	Compress    string `yaml:"compress"`

	HistoryDB      string `yaml:"history_db,omitempty"`
	LastSaveFolder string `yaml:"last_save_folder,omitempty"`

	WatchDebounceMS int `yaml:"watch_debounce_ms"`
}

func Load(path string) (Config, error) {
	cfg := defaults()
	if strings.TrimSpace(path) == "" {
		cfg.Normalize()
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func defaults() Config {
	return Config{
		Indent:          "  ",
		AtomicWrite:     true,
		Compress:        string(export.CompressAuto),
		WatchDebounceMS: 100,
	}
}

func (c *Config) Normalize() {
	if c == nil {
		return
	}
	c.NamesFile = strings.TrimSpace(c.NamesFile)
	c.HistoryDB = strings.TrimSpace(c.HistoryDB)
	c.LastSaveFolder = strings.TrimSpace(c.LastSaveFolder)
	c.Compress = strings.ToLower(strings.TrimSpace(c.Compress))
	if c.Compress == "" {
		c.Compress = string(export.CompressAuto)
	}
	if c.WatchDebounceMS <= 0 {
		c.WatchDebounceMS = 100
	}
}

func (c Config) Validate() error {
	switch export.Compression(c.Compress) {
	case export.CompressAuto, export.CompressAlways, export.CompressNever:
	default:
		return fmt.Errorf("compress: unknown mode %q (want auto, always or never)", c.Compress)
	}
	if strings.Trim(c.Indent, " \t") != "" {
		return fmt.Errorf("indent: only spaces and tabs allowed, got %q", c.Indent)
	}
	if c.WatchDebounceMS > 60_000 {
		return fmt.Errorf("watch_debounce_ms: %d is over one minute", c.WatchDebounceMS)
	}
	return nil
}

func (c Config) ExportOptions() export.Options {
	return export.Options{
		Indent:   c.Indent,
		Atomic:   c.AtomicWrite,
		Compress: export.Compression(c.Compress),
	}
}

// Names returns the configured name tables.
func (c Config) Names() (*names.Tables, error) {
	if c.NamesFile == "" {
		return names.Default(), nil
	}
	return names.Load(c.NamesFile)
}

// Settings exposes the config as the host settings the plugin reads.
func (c Config) Settings() plugin.MapSettings {
	return plugin.MapSettings{plugin.LastSaveFolderKey: c.LastSaveFolder}
}

func (c Config) WatchDebounce() time.Duration {
	return time.Duration(c.WatchDebounceMS) * time.Millisecond
}
