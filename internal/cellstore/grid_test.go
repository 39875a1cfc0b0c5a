package cellstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrCreateLazy(t *testing.T) {
	g := NewGrid(10, 10)
	_, ok := g.Get(2, 2)
	assert.False(t, ok)

	c := g.GetOrCreate(2, 2)
	require.NotNil(t, c)
	assert.Equal(t, KindEmpty, c.Kind)
	assert.Equal(t, 2, c.Row)
	assert.Equal(t, 2, c.Col)

	_, ok = g.Get(2, 2)
	assert.True(t, ok)
}

func TestSetPreservesFormatting(t *testing.T) {
	g := NewGrid(10, 10)
	c := g.GetOrCreate(0, 0)
	c.Format = FormatCurrency
	c.TextColor = 3
	c.Width = 20

	g.SetNumber(0, 0, 42)
	c2, _ := g.Get(0, 0)
	assert.Equal(t, FormatCurrency, c2.Format)
	assert.Equal(t, 3, c2.TextColor)
	assert.Equal(t, 20, c2.Width)
	assert.Equal(t, float64(42), c2.Number)
}

func TestSetTextDefaultsLeftAlign(t *testing.T) {
	g := NewGrid(5, 5)
	g.SetText(0, 0, "hello")
	c, _ := g.Get(0, 0)
	assert.Equal(t, AlignLeft, c.Align)
}

func TestClearPreservesFormatting(t *testing.T) {
	g := NewGrid(5, 5)
	c := g.GetOrCreate(1, 1)
	c.Format = FormatPercentage
	c.Style = 0
	c.TextColor = 5
	c.BackgroundColor = 2
	c.Width = 15
	c.Precision = 4
	c.Align = AlignCenter
	g.SetNumber(1, 1, 3.14)

	g.Clear(1, 1)
	c2, ok := g.Get(1, 1)
	require.True(t, ok)
	assert.Equal(t, KindEmpty, c2.Kind)
	assert.Equal(t, FormatPercentage, c2.Format)
	assert.Equal(t, 5, c2.TextColor)
	assert.Equal(t, 2, c2.BackgroundColor)
	assert.Equal(t, 15, c2.Width)
	assert.Equal(t, 4, c2.Precision)
	assert.Equal(t, AlignCenter, c2.Align)
}

func TestFormulaWriteResetsCache(t *testing.T) {
	g := NewGrid(5, 5)
	c := g.GetOrCreate(0, 0)
	c.CachedValue = 99
	c.Err = ErrDivZero
	c.IsStringResult = true
	c.CachedString = "stale"

	g.SetFormula(0, 0, "=1+1")
	assert.Equal(t, float64(0), c.CachedValue)
	assert.Equal(t, ErrNone, c.Err)
	assert.False(t, c.IsStringResult)
	assert.Equal(t, "", c.CachedString)
}

func TestCloneContentSingleCell(t *testing.T) {
	g := NewGrid(5, 5)
	g.SetNumber(0, 0, 7)
	src, _ := g.Get(0, 0)
	src.Format = FormatPercentage
	src.TextColor = 4

	ok := g.CloneContent(0, 0, 1, 1)
	require.True(t, ok)
	dst, _ := g.Get(1, 1)
	assert.Equal(t, float64(7), dst.Number)
	assert.Equal(t, FormatPercentage, dst.Format)
	assert.Equal(t, 4, dst.TextColor)
	assert.Equal(t, 1, dst.Row)
	assert.Equal(t, 1, dst.Col)
}

func TestCopyCellFromAbsentClearsDestination(t *testing.T) {
	g := NewGrid(5, 5)
	g.SetNumber(1, 1, 9)
	ok := g.CopyCell(0, 0, 1, 1)
	require.True(t, ok)
	dst, _ := g.Get(1, 1)
	assert.Equal(t, KindEmpty, dst.Kind)
}

func TestResizeColumnsClamps(t *testing.T) {
	g := NewGrid(5, 5)
	g.colWidths[0] = MinColWidth
	g.ResizeColumns(0, 0, -1)
	assert.Equal(t, MinColWidth, g.ColWidth(0))

	g.colWidths[0] = MaxColWidth
	g.ResizeColumns(0, 0, 1)
	assert.Equal(t, MaxColWidth, g.ColWidth(0))
}

func TestResizeRowsClamps(t *testing.T) {
	g := NewGrid(5, 5)
	g.rowHeights[0] = MinRowHeight
	g.ResizeRows(0, 0, -5)
	assert.Equal(t, MinRowHeight, g.RowHeight(0))

	g.rowHeights[0] = MaxRowHeight
	g.ResizeRows(0, 0, 5)
	assert.Equal(t, MaxRowHeight, g.RowHeight(0))
}

func TestBoundingRange(t *testing.T) {
	g := NewGrid(20, 20)
	_, _, _, _, ok := g.BoundingRange()
	assert.False(t, ok)

	g.SetNumber(5, 2, 1)
	g.SetNumber(3, 8, 1)
	r0, c0, r1, c1, ok := g.BoundingRange()
	require.True(t, ok)
	assert.Equal(t, 3, r0)
	assert.Equal(t, 2, c0)
	assert.Equal(t, 5, r1)
	assert.Equal(t, 8, c1)
}

func TestOutOfBoundsIsNoOp(t *testing.T) {
	g := NewGrid(5, 5)
	assert.Nil(t, g.GetOrCreate(-1, 0))
	assert.Nil(t, g.GetOrCreate(0, 100))
	g.SetNumber(100, 100, 1) // must not panic
}
