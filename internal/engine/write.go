package engine

import (
	"github.com/cellgrid/tsheet/internal/cellstore"
	"github.com/cellgrid/tsheet/internal/ref"
	"github.com/cellgrid/tsheet/internal/selection"
)

// snapshotCell captures (row, col)'s current content/formatting, or its
// absence, for an undo record.
func (s *Sheet) snapshotCell(row, col int) selection.CellSnapshot {
	c, ok := s.Grid.Get(row, col)
	if !ok {
		return selection.CellSnapshot{Row: row, Col: col}
	}
	return selection.CellSnapshot{Row: row, Col: col, Present: true, Cell: *c}
}

func (s *Sheet) recordCells(positions ...[2]int) {
	before := make([]selection.CellSnapshot, len(positions))
	for i, p := range positions {
		before[i] = s.snapshotCell(p[0], p[1])
	}
	s.undo.Record(before)
}

// SetNumber writes a numeric value to (row, col), recording undo and
// recalculating.
func (s *Sheet) SetNumber(row, col int, v float64) {
	if !s.Grid.InBounds(row, col) {
		s.log.WithField("op", "set_number").Debug("mutation out of range, ignored")
		return
	}
	s.recordCells([2]int{row, col})
	s.Grid.SetNumber(row, col, v)
	s.Recalculate()
}

// SetText writes a text value to (row, col), recording undo and
// recalculating.
func (s *Sheet) SetText(row, col int, v string) {
	if !s.Grid.InBounds(row, col) {
		s.log.WithField("op", "set_text").Debug("mutation out of range, ignored")
		return
	}
	s.recordCells([2]int{row, col})
	s.Grid.SetText(row, col, v)
	s.Recalculate()
}

// SetFormula writes a formula expression to (row, col), recording undo
// and recalculating.
func (s *Sheet) SetFormula(row, col int, expr string) {
	if !s.Grid.InBounds(row, col) {
		s.log.WithField("op", "set_formula").Debug("mutation out of range, ignored")
		return
	}
	s.recordCells([2]int{row, col})
	s.Grid.SetFormula(row, col, expr)
	s.Recalculate()
}

// ClearCell empties (row, col)'s content, preserving its formatting.
func (s *Sheet) ClearCell(row, col int) {
	if !s.Grid.InBounds(row, col) {
		s.log.WithField("op", "clear_cell").Debug("mutation out of range, ignored")
		return
	}
	s.recordCells([2]int{row, col})
	s.Grid.Clear(row, col)
	s.Recalculate()
}

// CopyCell clones src's content and formatting onto dst, recording undo
// and recalculating.
func (s *Sheet) CopyCell(srcR, srcC, dstR, dstC int) {
	if !s.Grid.InBounds(srcR, srcC) || !s.Grid.InBounds(dstR, dstC) {
		s.log.WithField("op", "copy_cell").Debug("mutation out of range, ignored")
		return
	}
	s.recordCells([2]int{dstR, dstC})
	s.Grid.CopyCell(srcR, srcC, dstR, dstC)
	s.Recalculate()
}

// StartSelection begins a selection anchored at (row, col).
func (s *Sheet) StartSelection(row, col int) { s.sel.Start(row, col) }

// ExtendSelection moves the active selection's current endpoint.
func (s *Sheet) ExtendSelection(row, col int) { s.sel.Extend(row, col) }

// ClearSelection deactivates the current selection.
func (s *Sheet) ClearSelection() { s.sel.Clear() }

// CopyRange snapshots the active selection into the range clipboard.
// No-op if no selection is active.
func (s *Sheet) CopyRange() {
	r, ok := s.sel.Range()
	if !ok {
		return
	}
	s.rangeClip.Copy(s.Grid, r)
}

// CopyCellClipboard snapshots a single cell into the single-cell
// clipboard.
func (s *Sheet) CopyCellClipboard(row, col int) {
	s.clip.Copy(s.Grid, row, col)
}

// HasRangeClipboard reports whether the range clipboard holds content,
// letting a caller choose between PasteRange and PasteCellClipboard.
func (s *Sheet) HasRangeClipboard() bool {
	return !s.rangeClip.Empty()
}

// PasteCellClipboard pastes the single-cell clipboard into (row, col),
// recording undo and recalculating.
func (s *Sheet) PasteCellClipboard(row, col int) {
	if !s.Grid.InBounds(row, col) {
		return
	}
	s.recordCells([2]int{row, col})
	s.clip.Paste(s.Grid, row, col)
	s.Recalculate()
}

// PasteRange pastes the range clipboard at (atR, atC), recording undo for
// every destination cell the clipboard rectangle would touch (clamped
// into the grid) and recalculating.
func (s *Sheet) PasteRange(atR, atC int) {
	if s.rangeClip.Empty() {
		return
	}
	positions := s.rangeDestinations(atR, atC)
	if len(positions) > 0 {
		s.recordCells(positions...)
	}
	s.rangeClip.Paste(s.Grid, atR, atC)
	s.Recalculate()
}

func (s *Sheet) rangeDestinations(atR, atC int) [][2]int {
	rows, cols := s.rangeClip.Dimensions()
	var out [][2]int
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			row, col := atR+i, atC+j
			if s.Grid.InBounds(row, col) {
				out = append(out, [2]int{row, col})
			}
		}
	}
	return out
}

// SetFormat sets (row, col)'s display format and style, recording undo
// and recalculating (a format change can flip a formula's rendering).
func (s *Sheet) SetFormat(row, col int, f cellstore.Format, style int) {
	if !s.Grid.InBounds(row, col) {
		return
	}
	s.recordCells([2]int{row, col})
	c := s.Grid.GetOrCreate(row, col)
	c.Format = f
	c.Style = style
	s.Grid.MarkDirty()
	s.Recalculate()
}

// SetFormatRange applies SetFormat to every cell in the active selection.
func (s *Sheet) SetFormatRange(f cellstore.Format, style int) {
	r, ok := s.sel.Range()
	if !ok {
		return
	}
	s.applyToRange(r, func(row, col int) { s.SetFormat(row, col, f, style) })
}

func (s *Sheet) applyToRange(r ref.Range, fn func(row, col int)) {
	for row := r.R0; row <= r.R1; row++ {
		for col := r.C0; col <= r.C1; col++ {
			fn(row, col)
		}
	}
}

// CycleDateTimeFormat advances (row, col)'s style index within its
// current format's style cycle.
func (s *Sheet) CycleDateTimeFormat(row, col int) {
	c, ok := s.Grid.Get(row, col)
	if !ok {
		return
	}
	s.recordCells([2]int{row, col})
	c.Style = cellstore.CycleStyle(c.Format, c.Style)
	s.Grid.MarkDirty()
	s.Recalculate()
}

// SetTextColor sets (row, col)'s text color index.
func (s *Sheet) SetTextColor(row, col, idx int) {
	if !s.Grid.InBounds(row, col) {
		return
	}
	s.recordCells([2]int{row, col})
	s.Grid.GetOrCreate(row, col).TextColor = idx
	s.Grid.MarkDirty()
}

// SetTextColorRange applies SetTextColor to every cell in the active
// selection.
func (s *Sheet) SetTextColorRange(idx int) {
	r, ok := s.sel.Range()
	if !ok {
		return
	}
	s.applyToRange(r, func(row, col int) { s.SetTextColor(row, col, idx) })
}

// SetBackgroundColor sets (row, col)'s background color index.
func (s *Sheet) SetBackgroundColor(row, col, idx int) {
	if !s.Grid.InBounds(row, col) {
		return
	}
	s.recordCells([2]int{row, col})
	s.Grid.GetOrCreate(row, col).BackgroundColor = idx
	s.Grid.MarkDirty()
}

// SetBackgroundColorRange applies SetBackgroundColor to every cell in the
// active selection.
func (s *Sheet) SetBackgroundColorRange(idx int) {
	r, ok := s.sel.Range()
	if !ok {
		return
	}
	s.applyToRange(r, func(row, col int) { s.SetBackgroundColor(row, col, idx) })
}

// ResizeColumns widens/narrows every column in [c0, c1] by delta,
// recording a size-undo entry.
func (s *Sheet) ResizeColumns(c0, c1, delta int) {
	lo, hi := c0, c1
	if lo > hi {
		lo, hi = hi, lo
	}
	var before []selection.SizeSnapshot
	for c := lo; c <= hi; c++ {
		before = append(before, selection.SizeSnapshot{IsCol: true, Index: c, Value: s.Grid.ColWidth(c)})
	}
	s.undo.RecordSizes(before)
	s.Grid.ResizeColumns(c0, c1, delta)
}

// ResizeRows heightens/shortens every row in [r0, r1] by delta, recording
// a size-undo entry.
func (s *Sheet) ResizeRows(r0, r1, delta int) {
	lo, hi := r0, r1
	if lo > hi {
		lo, hi = hi, lo
	}
	var before []selection.SizeSnapshot
	for r := lo; r <= hi; r++ {
		before = append(before, selection.SizeSnapshot{IsCol: false, Index: r, Value: s.Grid.RowHeight(r)})
	}
	s.undo.RecordSizes(before)
	s.Grid.ResizeRows(r0, r1, delta)
}

func (s *Sheet) applySizeSnapshot(snap selection.SizeSnapshot) {
	if snap.IsCol {
		s.Grid.ResizeColumns(snap.Index, snap.Index, snap.Value-s.Grid.ColWidth(snap.Index))
	} else {
		s.Grid.ResizeRows(snap.Index, snap.Index, snap.Value-s.Grid.RowHeight(snap.Index))
	}
}

// Undo restores the most recent undo entry's before-state (cell content
// or column/row sizing), capturing the current state as its matching
// after-state for a later redo. Returns false if there is nothing to
// undo.
func (s *Sheet) Undo() bool {
	cells, sizes, ok := s.undo.Undo(
		func(row, col int) selection.CellSnapshot { return s.snapshotCell(row, col) },
		func(snap selection.SizeSnapshot) selection.SizeSnapshot {
			if snap.IsCol {
				return selection.SizeSnapshot{IsCol: true, Index: snap.Index, Value: s.Grid.ColWidth(snap.Index)}
			}
			return selection.SizeSnapshot{IsCol: false, Index: snap.Index, Value: s.Grid.RowHeight(snap.Index)}
		},
	)
	if !ok {
		return false
	}
	for _, c := range cells {
		s.restoreSnapshot(c)
	}
	for _, sz := range sizes {
		s.applySizeSnapshot(sz)
	}
	if len(cells) > 0 {
		s.Recalculate()
	}
	return true
}

// Redo restores the after-state of the entry just ahead of the undo
// cursor. Returns false if there is nothing to redo.
func (s *Sheet) Redo() bool {
	cells, sizes, ok := s.undo.Redo()
	if !ok {
		return false
	}
	for _, c := range cells {
		s.restoreSnapshot(c)
	}
	for _, sz := range sizes {
		s.applySizeSnapshot(sz)
	}
	if len(cells) > 0 {
		s.Recalculate()
	}
	return true
}

func (s *Sheet) restoreSnapshot(snap selection.CellSnapshot) {
	if !snap.Present {
		s.Grid.Clear(snap.Row, snap.Col)
		return
	}
	s.Grid.GetOrCreate(snap.Row, snap.Col).RestoreFrom(snap.Cell)
	s.Grid.MarkDirty()
}
