// Package config – session state persistence.
//
// Saves and restores the last-opened CSV path and cursor position between
// runs so the user can pick up exactly where they left off.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// SessionState is the top-level structure serialised to disk.
type SessionState struct {
	LastFile string `json:"last_file"`
	CursorR  int    `json:"cursor_row"`
	CursorC  int    `json:"cursor_col"`
}

// sessionPath returns the path to ~/.tsheet-session.json.
func sessionPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tsheet-session.json")
}

// SaveSession writes the session state to disk.
func SaveSession(state SessionState) error {
	p := sessionPath()
	if p == "" {
		return nil
	}
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(p, data, 0644)
}

// LoadSession reads a previously saved session state from disk.
// Returns nil if no session file exists, it cannot be parsed, or it
// names no file to restore.
func LoadSession() *SessionState {
	p := sessionPath()
	if p == "" {
		return nil
	}
	data, err := os.ReadFile(p)
	if err != nil {
		return nil
	}
	var state SessionState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil
	}
	if state.LastFile == "" {
		return nil
	}
	if state.CursorR < 0 {
		state.CursorR = 0
	}
	if state.CursorC < 0 {
		state.CursorC = 0
	}
	return &state
}

// ClearSession removes the session file from disk.
func ClearSession() {
	p := sessionPath()
	if p != "" {
		os.Remove(p)
	}
}
