// Package engine ties the cell store, formatter, formula evaluator, and
// selection/clipboard/undo machinery into the single facade the
// presenter, CSV codec, and chart extractor drive: Sheet.
package engine

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/cellgrid/tsheet/internal/cellstore"
	"github.com/cellgrid/tsheet/internal/format"
	"github.com/cellgrid/tsheet/internal/ref"
	"github.com/cellgrid/tsheet/internal/selection"
)

// Sheet is the engine's external facade: exclusive owner of the grid,
// selection, clipboards and undo log for one session.
type Sheet struct {
	Grid *cellstore.Grid

	sel       selection.Selection
	clip      selection.Clipboard
	rangeClip selection.RangeClipboard
	undo      *selection.UndoLog

	curRow, curCol int

	log *logrus.Entry
}

// New constructs a Sheet over a rows x cols grid, with an undo ring
// bounded at undoCapacity. logger may be nil, in which case a discarding
// logger is used. Every Sheet is tagged with a session correlation ID for
// its log lines.
func New(rows, cols, undoCapacity int, logger *logrus.Logger) *Sheet {
	if logger == nil {
		logger = logrus.New()
		logger.SetLevel(logrus.PanicLevel + 1) // effectively silent
	}
	sessionID := uuid.New().String()
	return &Sheet{
		Grid: cellstore.NewGrid(rows, cols),
		undo: selection.NewUndoLog(undoCapacity),
		log:  logger.WithField("session", sessionID),
	}
}

// ---------------------------------------------------------------------
// Read API (spec.md §6)
// ---------------------------------------------------------------------

// DisplayValue returns the formatted contents of (row, col).
func (s *Sheet) DisplayValue(row, col int) string {
	c, ok := s.Grid.Get(row, col)
	if !ok {
		return ""
	}
	return format.Display(c)
}

// CellKind returns the cell's content kind, and false if absent.
func (s *Sheet) CellKind(row, col int) (cellstore.Kind, bool) {
	c, ok := s.Grid.Get(row, col)
	if !ok {
		return cellstore.KindEmpty, false
	}
	return c.Kind, true
}

// CellFormat returns the cell's format family and style index.
func (s *Sheet) CellFormat(row, col int) (cellstore.Format, int) {
	c, ok := s.Grid.Get(row, col)
	if !ok {
		return cellstore.FormatGeneral, 0
	}
	return c.Format, c.Style
}

// CellColors returns the cell's text and background color indices
// (cellstore.ColorDefault if unset).
func (s *Sheet) CellColors(row, col int) (text, bg int) {
	c, ok := s.Grid.Get(row, col)
	if !ok {
		return cellstore.ColorDefault, cellstore.ColorDefault
	}
	return c.TextColor, c.BackgroundColor
}

// FormulaSource returns the raw formula text behind a formula cell
// ("" for non-formula cells).
func (s *Sheet) FormulaSource(row, col int) string {
	c, ok := s.Grid.Get(row, col)
	if !ok || c.Kind != cellstore.KindFormula {
		return ""
	}
	return c.FormulaSrc
}

// ErrorToken returns the display token for a cached formula error
// ("" when the cell holds no error).
func (s *Sheet) ErrorToken(row, col int) string {
	c, ok := s.Grid.Get(row, col)
	if !ok || c.Err == cellstore.ErrNone {
		return ""
	}
	return format.ErrorToken(c.Err)
}

// Selection returns the active selection rectangle, if any.
func (s *Sheet) Selection() (ref.Range, bool) {
	return s.sel.Range()
}

// IsInSelection reports whether (row, col) lies in the active selection.
func (s *Sheet) IsInSelection(row, col int) bool {
	return s.sel.Contains(row, col)
}

// ColumnWidth returns the display width of column c.
func (s *Sheet) ColumnWidth(c int) int { return s.Grid.ColWidth(c) }

// RowHeight returns the display height of row r.
func (s *Sheet) RowHeight(r int) int { return s.Grid.RowHeight(r) }

// Cursor returns the current cell position.
func (s *Sheet) Cursor() (row, col int) { return s.curRow, s.curCol }

// SetCursor moves the current cell position, clamped into grid bounds.
func (s *Sheet) SetCursor(row, col int) {
	if row < 0 {
		row = 0
	}
	if row >= s.Grid.Rows() {
		row = s.Grid.Rows() - 1
	}
	if col < 0 {
		col = 0
	}
	if col >= s.Grid.Cols() {
		col = s.Grid.Cols() - 1
	}
	s.curRow, s.curCol = row, col
}
