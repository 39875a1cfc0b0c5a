// Package config loads and provides application configuration.
//
// On first run, a default YAML config is written to ~/.tsheet.yaml.
// Subsequent runs read and merge that file with built-in defaults.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/cellgrid/tsheet/internal/cellstore"
	"github.com/cellgrid/tsheet/internal/csvio"
)

// Config holds all user-configurable settings.
type Config struct {
	// Rows and Cols size a freshly-opened grid.
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`

	// Theme is one of "dark", "light", "dracula", "nord" or "solarized".
	Theme string `yaml:"theme"`

	// UndoCapacity bounds the undo/redo ring; spec-fixed default 100,
	// operator-overridable.
	UndoCapacity int `yaml:"undo_capacity"`

	// CSVMode is the default save/load mode: "flatten" or "preserve".
	CSVMode string `yaml:"csv_mode"`

	// DefaultColWidth and DefaultPrecision are read and validated here;
	// new cells are still created with cellstore.DefaultWidth and
	// cellstore.DefaultPrecision, whatever these hold.
	DefaultColWidth  int `yaml:"default_col_width"`
	DefaultPrecision int `yaml:"default_precision"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Rows:             cellstore.DefaultRows,
		Cols:             cellstore.DefaultCols,
		Theme:            "dark",
		UndoCapacity:     100,
		CSVMode:          "flatten",
		DefaultColWidth:  cellstore.DefaultWidth,
		DefaultPrecision: cellstore.DefaultPrecision,
	}
}

// CSVModeValue parses cfg.CSVMode into a csvio.Mode, defaulting to
// ModeFlatten for anything unrecognized.
func (cfg Config) CSVModeValue() csvio.Mode {
	if cfg.CSVMode == "preserve" {
		return csvio.ModePreserve
	}
	return csvio.ModeFlatten
}

// configPath returns the path to ~/.tsheet.yaml.
func configPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tsheet.yaml")
}

// Load reads the config file, falling back to defaults for missing fields.
func Load() Config {
	cfg := DefaultConfig()

	p := configPath()
	if p == "" {
		return cfg
	}

	data, err := os.ReadFile(p)
	if err != nil {
		// No config file yet – write defaults for future editing
		writeDefaults(p, cfg)
		return cfg
	}

	_ = yaml.Unmarshal(data, &cfg)

	// Apply sensible bounds
	if cfg.Rows < 1 {
		cfg.Rows = cellstore.DefaultRows
	}
	if cfg.Cols < 1 {
		cfg.Cols = cellstore.DefaultCols
	}
	if cfg.UndoCapacity < 1 {
		cfg.UndoCapacity = 100
	}
	if cfg.DefaultColWidth < cellstore.MinColWidth || cfg.DefaultColWidth > cellstore.MaxColWidth {
		cfg.DefaultColWidth = cellstore.DefaultWidth
	}
	if cfg.DefaultPrecision < 0 {
		cfg.DefaultPrecision = cellstore.DefaultPrecision
	}

	// Validate theme name
	validThemes := map[string]bool{"dark": true, "light": true, "dracula": true, "nord": true, "solarized": true}
	if !validThemes[cfg.Theme] {
		cfg.Theme = "dark"
	}

	// Validate CSV mode
	if cfg.CSVMode != "flatten" && cfg.CSVMode != "preserve" {
		cfg.CSVMode = "flatten"
	}

	return cfg
}

// writeDefaults persists the default configuration to disk.
func writeDefaults(path string, cfg Config) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return
	}
	header := []byte("# tsheet configuration\n# Edit this file to customise defaults.\n\n")
	_ = os.WriteFile(path, append(header, data...), 0644)
}
