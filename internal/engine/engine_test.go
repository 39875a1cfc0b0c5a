package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cellgrid/tsheet/internal/cellstore"
)

func newSheet() *Sheet {
	return New(20, 10, 10, nil)
}

func TestSetNumberAndFormulaRecalculate(t *testing.T) {
	s := newSheet()
	s.SetNumber(0, 0, 2)
	s.SetNumber(0, 1, 3)
	s.SetFormula(0, 2, "A1+B1")

	assert.Equal(t, "5", s.DisplayValue(0, 2))
}

func TestClearCellPreservesFormatting(t *testing.T) {
	s := newSheet()
	s.SetFormat(1, 1, cellstore.FormatCurrency, 0)
	s.SetNumber(1, 1, 9.5)
	s.ClearCell(1, 1)

	c, ok := s.Grid.Get(1, 1)
	require.True(t, ok)
	assert.Equal(t, cellstore.KindEmpty, c.Kind)
	assert.Equal(t, cellstore.FormatCurrency, c.Format)
}

func TestUndoRedoSetNumber(t *testing.T) {
	s := newSheet()
	s.SetNumber(0, 0, 1)
	s.SetNumber(0, 0, 2)

	require.True(t, s.Undo())
	c, _ := s.Grid.Get(0, 0)
	assert.Equal(t, 1.0, c.Number)

	require.True(t, s.Redo())
	c, _ = s.Grid.Get(0, 0)
	assert.Equal(t, 2.0, c.Number)
}

func TestUndoOfFirstWriteClearsCell(t *testing.T) {
	s := newSheet()
	s.SetNumber(0, 0, 1)

	require.True(t, s.Undo())
	c, ok := s.Grid.Get(0, 0)
	require.True(t, ok)
	assert.Equal(t, cellstore.KindEmpty, c.Kind)
}

func TestFormulaSourceAndErrorToken(t *testing.T) {
	s := newSheet()
	s.SetFormula(0, 0, "1/0")
	assert.Equal(t, "1/0", s.FormulaSource(0, 0))
	assert.NotEmpty(t, s.ErrorToken(0, 0))

	s.SetNumber(0, 1, 4)
	assert.Empty(t, s.FormulaSource(0, 1))
	assert.Empty(t, s.ErrorToken(0, 1))
}

func TestHasRangeClipboard(t *testing.T) {
	s := newSheet()
	assert.False(t, s.HasRangeClipboard())

	s.SetNumber(0, 0, 1)
	s.SetNumber(0, 1, 2)
	s.StartSelection(0, 0)
	s.ExtendSelection(0, 1)
	s.CopyRange()
	assert.True(t, s.HasRangeClipboard())
}

func TestUndoWithNothingToUndo(t *testing.T) {
	s := newSheet()
	assert.False(t, s.Undo())
}

func TestCopyPasteRangeClipboard(t *testing.T) {
	s := newSheet()
	s.SetNumber(0, 0, 1)
	s.SetNumber(0, 1, 2)
	s.StartSelection(0, 0)
	s.ExtendSelection(0, 1)
	s.CopyRange()
	s.ClearSelection()

	s.PasteRange(5, 5)
	a, _ := s.Grid.Get(5, 5)
	b, _ := s.Grid.Get(5, 6)
	assert.Equal(t, 1.0, a.Number)
	assert.Equal(t, 2.0, b.Number)
}

func TestResizeColumnsUndo(t *testing.T) {
	s := newSheet()
	before := s.Grid.ColWidth(0)
	s.ResizeColumns(0, 0, 5)
	assert.Equal(t, before+5, s.Grid.ColWidth(0))

	require.True(t, s.Undo())
	assert.Equal(t, before, s.Grid.ColWidth(0))
}

func TestCycleDateTimeFormat(t *testing.T) {
	s := newSheet()
	s.SetFormat(0, 0, cellstore.FormatDate, cellstore.DateStyleMDY)
	s.CycleDateTimeFormat(0, 0)
	c, _ := s.Grid.Get(0, 0)
	assert.Equal(t, cellstore.DateStyleDMY, c.Style)
}

func TestSelectionQueries(t *testing.T) {
	s := newSheet()
	s.StartSelection(1, 1)
	s.ExtendSelection(3, 3)
	assert.True(t, s.IsInSelection(2, 2))
	assert.False(t, s.IsInSelection(10, 10))

	r, ok := s.Selection()
	require.True(t, ok)
	assert.Equal(t, 1, r.R0)
	assert.Equal(t, 3, r.R1)
}

func TestMutationOutOfRangeIsIgnored(t *testing.T) {
	s := newSheet()
	s.SetNumber(-1, -1, 5)
	s.SetNumber(1000, 1000, 5)
}
