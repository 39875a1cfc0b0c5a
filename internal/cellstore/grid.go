package cellstore

// DefaultRows and DefaultCols are the spreadsheet's default dimensions.
const (
	DefaultRows = 1000
	DefaultCols = 100
)

// Grid is a fixed rectangular grid of independently-owned, lazily-created
// cells, plus per-column widths and per-row heights.
type Grid struct {
	rows, cols int
	cells      [][]*Cell
	colWidths  []int
	rowHeights []int

	dirty      bool
	generation uint64
}

// NewGrid constructs a rows x cols grid with every cell slot absent and
// default column widths / row heights.
func NewGrid(rows, cols int) *Grid {
	if rows < 1 {
		rows = 1
	}
	if cols < 1 {
		cols = 1
	}
	g := &Grid{
		rows:       rows,
		cols:       cols,
		cells:      make([][]*Cell, rows),
		colWidths:  make([]int, cols),
		rowHeights: make([]int, rows),
	}
	for r := range g.cells {
		g.cells[r] = make([]*Cell, cols)
	}
	for c := range g.colWidths {
		g.colWidths[c] = DefaultWidth
	}
	for r := range g.rowHeights {
		g.rowHeights[r] = MinRowHeight
	}
	return g
}

// Rows returns the grid's row count.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the grid's column count.
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether (row, col) addresses a slot in the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Get returns the cell at (row, col) if present.
func (g *Grid) Get(row, col int) (*Cell, bool) {
	if !g.InBounds(row, col) {
		return nil, false
	}
	c := g.cells[row][col]
	return c, c != nil
}

// GetOrCreate returns the cell at (row, col), lazily allocating a default
// cell if absent. Returns nil if (row, col) is out of bounds.
func (g *Grid) GetOrCreate(row, col int) *Cell {
	if !g.InBounds(row, col) {
		return nil
	}
	c := g.cells[row][col]
	if c == nil {
		c = NewCell(row, col)
		g.cells[row][col] = c
	}
	return c
}

// NeedsRecalc reports whether a content-mutating operation has happened
// since the last recalculation.
func (g *Grid) NeedsRecalc() bool { return g.dirty }

// MarkDirty flags the grid as needing recalculation.
func (g *Grid) MarkDirty() { g.dirty = true }

// ClearDirty clears the needs-recalc flag and advances the generation
// counter; called by the recalculation driver after a pass completes.
func (g *Grid) ClearDirty() {
	g.dirty = false
	g.generation++
}

// Generation returns the number of completed recalculation passes.
func (g *Grid) Generation() uint64 { return g.generation }

// SetNumber writes a numeric value, replacing content but preserving
// formatting/sizing. No-op if (row, col) is out of bounds.
func (g *Grid) SetNumber(row, col int, v float64) {
	c := g.GetOrCreate(row, col)
	if c == nil {
		return
	}
	c.Kind = KindNumber
	c.Number = v
	c.Text = ""
	c.FormulaSrc = ""
	c.resetFormulaCache()
	g.MarkDirty()
}

// SetText writes a text value. Alignment defaults to left on text writes,
// per spec.md §4.2.
func (g *Grid) SetText(row, col int, s string) {
	c := g.GetOrCreate(row, col)
	if c == nil {
		return
	}
	c.Kind = KindText
	c.Text = s
	c.Number = 0
	c.FormulaSrc = ""
	c.resetFormulaCache()
	c.Align = AlignLeft
	g.MarkDirty()
}

// SetFormula writes a formula expression, resetting the evaluation cache
// to its post-write default (value=0, no error, no cached string).
func (g *Grid) SetFormula(row, col int, expr string) {
	c := g.GetOrCreate(row, col)
	if c == nil {
		return
	}
	c.Kind = KindFormula
	c.FormulaSrc = expr
	c.Number = 0
	c.Text = ""
	c.resetFormulaCache()
	g.MarkDirty()
}

// Clear resets a cell's content to Empty, preserving its formatting.
// No-op if the cell is absent or out of bounds.
func (g *Grid) Clear(row, col int) {
	if !g.InBounds(row, col) {
		return
	}
	c := g.cells[row][col]
	if c == nil {
		return
	}
	c.Kind = KindEmpty
	c.Number = 0
	c.Text = ""
	c.FormulaSrc = ""
	c.resetFormulaCache()
	g.MarkDirty()
}

// CloneContent copies content, formatting, width, precision and alignment
// from the cell at (srcR, srcC) into the cell at (dstR, dstC), creating
// the destination lazily. Used by single-cell paste. Returns false if
// either position is out of bounds.
func (g *Grid) CloneContent(srcR, srcC, dstR, dstC int) bool {
	if !g.InBounds(srcR, srcC) || !g.InBounds(dstR, dstC) {
		return false
	}
	src := g.cells[srcR][srcC]
	if src == nil {
		g.Clear(dstR, dstC)
		return true
	}
	dst := g.GetOrCreate(dstR, dstC)
	dst.cloneContentFrom(src)
	g.MarkDirty()
	return true
}

// CopyCell is a sheet-level clone-by-indices: when the source is absent,
// the destination is cleared (content only; formatting is retained).
func (g *Grid) CopyCell(srcR, srcC, dstR, dstC int) bool {
	return g.CloneContent(srcR, srcC, dstR, dstC)
}

// ColWidth returns the display width of column c, or 0 if out of range.
func (g *Grid) ColWidth(c int) int {
	if c < 0 || c >= g.cols {
		return 0
	}
	return g.colWidths[c]
}

// RowHeight returns the display height of row r, or 0 if out of range.
func (g *Grid) RowHeight(r int) int {
	if r < 0 || r >= g.rows {
		return 0
	}
	return g.rowHeights[r]
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ResizeColumns adjusts the width of every column in [c0, c1] by delta,
// clamping each to [MinColWidth, MaxColWidth]. Indices outside the grid
// are clamped into range; the call never panics.
func (g *Grid) ResizeColumns(c0, c1, delta int) {
	c0 = clamp(c0, 0, g.cols-1)
	c1 = clamp(c1, 0, g.cols-1)
	if c0 > c1 {
		c0, c1 = c1, c0
	}
	for c := c0; c <= c1; c++ {
		g.colWidths[c] = clamp(g.colWidths[c]+delta, MinColWidth, MaxColWidth)
	}
}

// ResizeRows adjusts the height of every row in [r0, r1] by delta,
// clamping each to [MinRowHeight, MaxRowHeight].
func (g *Grid) ResizeRows(r0, r1, delta int) {
	r0 = clamp(r0, 0, g.rows-1)
	r1 = clamp(r1, 0, g.rows-1)
	if r0 > r1 {
		r0, r1 = r1, r0
	}
	for r := r0; r <= r1; r++ {
		g.rowHeights[r] = clamp(g.rowHeights[r]+delta, MinRowHeight, MaxRowHeight)
	}
}

// BoundingRange returns the minimal rectangle covering every non-empty
// cell, and false if the grid is entirely empty.
func (g *Grid) BoundingRange() (r0, c0, r1, c1 int, ok bool) {
	r0, c0 = g.rows, g.cols
	r1, c1 = -1, -1
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			cell := g.cells[r][c]
			if cell == nil || cell.Kind == KindEmpty {
				continue
			}
			if r < r0 {
				r0 = r
			}
			if c < c0 {
				c0 = c
			}
			if r > r1 {
				r1 = r
			}
			if c > c1 {
				c1 = c
			}
		}
	}
	if r1 < 0 {
		return 0, 0, 0, 0, false
	}
	return r0, c0, r1, c1, true
}
