package selection

import (
	"github.com/cellgrid/tsheet/internal/cellstore"
	"github.com/cellgrid/tsheet/internal/ref"
)

// Clipboard holds a deep clone of exactly one cell's content and
// formatting. A nil clone represents an empty clipboard; pasting an empty
// clipboard clears the destination.
type Clipboard struct {
	cell *cellstore.Cell
}

// Copy snapshots the cell at (row, col) in g. Absent cells clear the
// clipboard slot.
func (c *Clipboard) Copy(g *cellstore.Grid, row, col int) {
	cell, ok := g.Get(row, col)
	if !ok {
		c.cell = nil
		return
	}
	snap := cell.Snapshot()
	c.cell = &snap
}

// Empty reports whether the clipboard holds nothing.
func (c *Clipboard) Empty() bool { return c.cell == nil }

// Paste writes the clipboard's content into (row, col) and returns true if
// anything changed. An empty clipboard clears the destination.
func (c *Clipboard) Paste(g *cellstore.Grid, row, col int) bool {
	if !g.InBounds(row, col) {
		return false
	}
	if c.cell == nil {
		g.Clear(row, col)
		return true
	}
	dst := g.GetOrCreate(row, col)
	dst.RestoreFrom(*c.cell)
	dst.Row, dst.Col = row, col
	g.MarkDirty()
	return true
}

// RangeClipboard holds a deep clone of every cell inside a rectangular
// selection, laid out at the clipboard's own exact dimensions.
type RangeClipboard struct {
	rows, cols int
	cells      [][]*cellstore.Cell // nil entry = absent source cell
}

// Empty reports whether the range clipboard holds no captured rectangle.
func (rc *RangeClipboard) Empty() bool { return rc.rows == 0 || rc.cols == 0 }

// Dimensions returns the clipboard rectangle's row and column counts.
func (rc *RangeClipboard) Dimensions() (rows, cols int) { return rc.rows, rc.cols }

// Copy snapshots every cell inside r from g.
func (rc *RangeClipboard) Copy(g *cellstore.Grid, r ref.Range) {
	r = r.Canonicalize()
	rc.rows = r.R1 - r.R0 + 1
	rc.cols = r.C1 - r.C0 + 1
	rc.cells = make([][]*cellstore.Cell, rc.rows)
	for i := 0; i < rc.rows; i++ {
		rc.cells[i] = make([]*cellstore.Cell, rc.cols)
		for j := 0; j < rc.cols; j++ {
			cell, ok := g.Get(r.R0+i, r.C0+j)
			if !ok {
				continue
			}
			snap := cell.Snapshot()
			rc.cells[i][j] = &snap
		}
	}
}

// Paste iterates the clipboard's rectangle and copies each cell onto g
// starting at (atR, atC). Positions overflowing the grid are silently
// skipped.
func (rc *RangeClipboard) Paste(g *cellstore.Grid, atR, atC int) {
	for i := 0; i < rc.rows; i++ {
		for j := 0; j < rc.cols; j++ {
			row, col := atR+i, atC+j
			if !g.InBounds(row, col) {
				continue
			}
			src := rc.cells[i][j]
			if src == nil {
				g.Clear(row, col)
				continue
			}
			dst := g.GetOrCreate(row, col)
			dst.RestoreFrom(*src)
			dst.Row, dst.Col = row, col
		}
	}
	g.MarkDirty()
}
