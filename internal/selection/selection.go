// Package selection implements the cursor selection rectangle, the
// single-cell and range clipboards, and the bounded undo/redo ring.
package selection

import "github.com/cellgrid/tsheet/internal/ref"

// Selection tracks an anchor/current pair of grid coordinates. A cell is
// "in selection" when it falls within the canonicalized rectangle the
// two endpoints describe.
type Selection struct {
	active         bool
	startR, startC int
	curR, curC     int
}

// Start begins a new selection anchored and ending at (r, c).
func (s *Selection) Start(r, c int) {
	s.active = true
	s.startR, s.startC = r, c
	s.curR, s.curC = r, c
}

// Extend moves the current endpoint to (r, c), leaving the anchor fixed.
// No-op if no selection is active.
func (s *Selection) Extend(r, c int) {
	if !s.active {
		return
	}
	s.curR, s.curC = r, c
}

// Clear deactivates the selection.
func (s *Selection) Clear() {
	s.active = false
}

// Active reports whether a selection is currently in effect.
func (s *Selection) Active() bool { return s.active }

// Range returns the canonicalized rectangle of the active selection. The
// second return value is false if no selection is active.
func (s *Selection) Range() (ref.Range, bool) {
	if !s.active {
		return ref.Range{}, false
	}
	r := ref.Range{R0: s.startR, C0: s.startC, R1: s.curR, C1: s.curC}
	return r.Canonicalize(), true
}

// Contains reports whether (row, col) lies within the active selection.
func (s *Selection) Contains(row, col int) bool {
	r, ok := s.Range()
	if !ok {
		return false
	}
	return r.Contains(row, col)
}
