package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/cellgrid/tsheet/internal/cellstore"
	"github.com/cellgrid/tsheet/internal/csvio"
)

func TestDefaultConfig_Values(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Theme != "dark" {
		t.Errorf("Theme = %q, want 'dark'", cfg.Theme)
	}
	if cfg.Rows != cellstore.DefaultRows {
		t.Errorf("Rows = %d, want %d", cfg.Rows, cellstore.DefaultRows)
	}
	if cfg.Cols != cellstore.DefaultCols {
		t.Errorf("Cols = %d, want %d", cfg.Cols, cellstore.DefaultCols)
	}
	if cfg.UndoCapacity != 100 {
		t.Errorf("UndoCapacity = %d, want 100", cfg.UndoCapacity)
	}
	if cfg.CSVMode != "flatten" {
		t.Errorf("CSVMode = %q, want 'flatten'", cfg.CSVMode)
	}
}

func TestCSVModeValue(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.CSVModeValue() != csvio.ModeFlatten {
		t.Error("default CSVModeValue should be ModeFlatten")
	}
	cfg.CSVMode = "preserve"
	if cfg.CSVModeValue() != csvio.ModePreserve {
		t.Error("CSVModeValue('preserve') should be ModePreserve")
	}
	cfg.CSVMode = "garbage"
	if cfg.CSVModeValue() != csvio.ModeFlatten {
		t.Error("CSVModeValue of an unrecognized mode should fall back to ModeFlatten")
	}
}

// ---------------------------------------------------------------------------
// YAML round-trip: Save + Load
// ---------------------------------------------------------------------------

func TestConfig_YAMLRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test-config.yaml")

	original := DefaultConfig()
	original.Theme = "dracula"
	original.Rows = 500
	original.UndoCapacity = 50

	writeDefaults(path, original)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}

	var loaded Config
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if loaded.Theme != "dracula" {
		t.Errorf("Loaded Theme = %q, want 'dracula'", loaded.Theme)
	}
	if loaded.Rows != 500 {
		t.Errorf("Loaded Rows = %d, want 500", loaded.Rows)
	}
	if loaded.UndoCapacity != 50 {
		t.Errorf("Loaded UndoCapacity = %d, want 50", loaded.UndoCapacity)
	}
}

// ---------------------------------------------------------------------------
// Validation bounds
// ---------------------------------------------------------------------------

func TestConfig_Validation_Rows(t *testing.T) {
	tests := []struct {
		input int
		want  int
	}{
		{0, cellstore.DefaultRows},
		{-5, cellstore.DefaultRows},
		{200, 200},
	}

	for _, tt := range tests {
		got := tt.input
		if got < 1 {
			got = cellstore.DefaultRows
		}
		if got != tt.want {
			t.Errorf("Rows(%d) after validation = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestConfig_Validation_DefaultColWidth(t *testing.T) {
	tests := []struct {
		input int
		want  int
	}{
		{0, cellstore.DefaultWidth},
		{cellstore.MaxColWidth + 10, cellstore.DefaultWidth},
		{20, 20},
	}

	for _, tt := range tests {
		got := tt.input
		if got < cellstore.MinColWidth || got > cellstore.MaxColWidth {
			got = cellstore.DefaultWidth
		}
		if got != tt.want {
			t.Errorf("DefaultColWidth(%d) after validation = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestConfig_Validation_Theme(t *testing.T) {
	validThemes := map[string]bool{"dark": true, "light": true, "dracula": true, "nord": true, "solarized": true}

	valid := []string{"dark", "light", "dracula", "nord", "solarized"}
	for _, theme := range valid {
		if !validThemes[theme] {
			t.Errorf("Theme %q should be valid", theme)
		}
	}

	invalid := []string{"", "monokai", "gruvbox", "DARK", "Light"}
	for _, theme := range invalid {
		if validThemes[theme] {
			t.Errorf("Theme %q should be invalid", theme)
		}
	}
}

func TestConfig_Validation_CSVMode(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"flatten", "flatten"},
		{"preserve", "preserve"},
		{"", "flatten"},
		{"garbage", "flatten"},
	}

	for _, tt := range tests {
		got := tt.input
		if got != "flatten" && got != "preserve" {
			got = "flatten"
		}
		if got != tt.want {
			t.Errorf("CSVMode(%q) after validation = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestLoadWritesDefaultsWhenAbsent(t *testing.T) {
	dir := t.TempDir()
	home := dir
	t.Setenv("HOME", home)

	cfg := Load()
	if cfg.Theme != "dark" {
		t.Errorf("Theme = %q, want 'dark'", cfg.Theme)
	}

	if _, err := os.Stat(filepath.Join(home, ".tsheet.yaml")); err != nil {
		t.Errorf("expected a default config file to be written: %v", err)
	}
}

// ---------------------------------------------------------------------------
// Session state: JSON round-trip
// ---------------------------------------------------------------------------

func TestSessionState_JSONRoundTrip(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)

	state := SessionState{LastFile: "budget.csv", CursorR: 3, CursorC: 2}
	if err := SaveSession(state); err != nil {
		t.Fatalf("SaveSession failed: %v", err)
	}

	loaded := LoadSession()
	if loaded == nil {
		t.Fatal("LoadSession returned nil after a successful save")
	}
	if loaded.LastFile != "budget.csv" {
		t.Errorf("LastFile = %q, want 'budget.csv'", loaded.LastFile)
	}
	if loaded.CursorR != 3 || loaded.CursorC != 2 {
		t.Errorf("cursor = (%d,%d), want (3,2)", loaded.CursorR, loaded.CursorC)
	}
}

func TestSessionState_EmptyLastFileReturnsNil(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)

	if err := SaveSession(SessionState{CursorR: 1, CursorC: 1}); err != nil {
		t.Fatalf("SaveSession failed: %v", err)
	}

	if loaded := LoadSession(); loaded != nil {
		t.Errorf("expected nil for a session with no LastFile, got %+v", loaded)
	}
}

func TestLoadSession_NoFileReturnsNil(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)

	if loaded := LoadSession(); loaded != nil {
		t.Errorf("expected nil when no session file exists, got %+v", loaded)
	}
}

func TestClearSession_RemovesFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)

	if err := SaveSession(SessionState{LastFile: "a.csv"}); err != nil {
		t.Fatalf("SaveSession failed: %v", err)
	}
	ClearSession()

	if loaded := LoadSession(); loaded != nil {
		t.Errorf("expected nil after ClearSession, got %+v", loaded)
	}
}
