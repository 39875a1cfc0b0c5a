package selection

import "github.com/cellgrid/tsheet/internal/cellstore"

// DefaultUndoCapacity is the undo ring's default bound; operator-
// overridable via config.
const DefaultUndoCapacity = 100

// CellSnapshot pairs a grid position with the cell content/formatting
// captured there, or absence (a slot that had never been created).
type CellSnapshot struct {
	Row, Col int
	Present  bool
	Cell     cellstore.Cell
}

// SizeSnapshot captures one column's width or one row's height, for
// resize undo/redo. IsCol distinguishes a column-width entry from a
// row-height entry.
type SizeSnapshot struct {
	IsCol bool
	Index int
	Value int
}

// entry is one undo/redo record: the before-state captured ahead of a
// mutation, and (once undo is invoked) the matching after-state, so the
// same record serves a later redo. A record captures either cell
// snapshots or size snapshots, never both.
type entry struct {
	cellsBefore []CellSnapshot
	cellsAfter  []CellSnapshot
	sizesBefore []SizeSnapshot
	sizesAfter  []SizeSnapshot
}

// UndoLog is a bounded, cursor-addressed ring of undo records, following
// spec.md §4.6's state machine: record() drops any redo tail and evicts
// the oldest entry once at capacity; undo/redo step the cursor and
// restore the matching snapshot side.
type UndoLog struct {
	capacity int
	entries  []entry
	cursor   int // number of entries "done"; entries[cursor:] is the redo tail
}

// NewUndoLog constructs a log bounded at capacity records.
func NewUndoLog(capacity int) *UndoLog {
	if capacity < 1 {
		capacity = DefaultUndoCapacity
	}
	return &UndoLog{capacity: capacity}
}

func (u *UndoLog) push(e entry) {
	u.entries = u.entries[:u.cursor]
	if len(u.entries) >= u.capacity {
		u.entries = u.entries[1:]
		u.cursor--
	}
	u.entries = append(u.entries, e)
	u.cursor++
}

// Record begins a new undo entry capturing before as the pre-mutation
// cell state. Any redo tail beyond the current cursor is discarded; if
// the log is already at capacity, the oldest entry is evicted.
func (u *UndoLog) Record(before []CellSnapshot) {
	u.push(entry{cellsBefore: before})
}

// RecordSizes begins a new undo entry capturing before as the
// pre-mutation column/row sizing.
func (u *UndoLog) RecordSizes(before []SizeSnapshot) {
	u.push(entry{sizesBefore: before})
}

// CanUndo reports whether an undo step is available.
func (u *UndoLog) CanUndo() bool { return u.cursor > 0 }

// CanRedo reports whether a redo step is available.
func (u *UndoLog) CanRedo() bool { return u.cursor < len(u.entries) }

// Undo captures the current state of every affected cell/size in the
// most recent entry as its after-state (so a subsequent redo can restore
// it), then returns that entry's before-state for the caller to apply.
// Returns false if there is nothing to undo.
func (u *UndoLog) Undo(captureCell func(row, col int) CellSnapshot, captureSize func(SizeSnapshot) SizeSnapshot) ([]CellSnapshot, []SizeSnapshot, bool) {
	if !u.CanUndo() {
		return nil, nil, false
	}
	u.cursor--
	e := &u.entries[u.cursor]
	if len(e.cellsBefore) > 0 {
		e.cellsAfter = make([]CellSnapshot, len(e.cellsBefore))
		for i, b := range e.cellsBefore {
			e.cellsAfter[i] = captureCell(b.Row, b.Col)
		}
	}
	if len(e.sizesBefore) > 0 {
		e.sizesAfter = make([]SizeSnapshot, len(e.sizesBefore))
		for i, b := range e.sizesBefore {
			e.sizesAfter[i] = captureSize(b)
		}
	}
	return e.cellsBefore, e.sizesBefore, true
}

// Redo returns the after-state of the entry just ahead of the cursor, and
// advances the cursor. Returns false if there is nothing to redo.
func (u *UndoLog) Redo() ([]CellSnapshot, []SizeSnapshot, bool) {
	if !u.CanRedo() {
		return nil, nil, false
	}
	e := u.entries[u.cursor]
	u.cursor++
	return e.cellsAfter, e.sizesAfter, true
}
