package format

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cellgrid/tsheet/internal/cellstore"
)

func numberCell(v float64, precision int, f cellstore.Format, style int) *cellstore.Cell {
	c := cellstore.NewCell(0, 0)
	c.Kind = cellstore.KindNumber
	c.Number = v
	c.Precision = precision
	c.Format = f
	c.Style = style
	return c
}

func TestDisplayEmpty(t *testing.T) {
	c := cellstore.NewCell(0, 0)
	assert.Equal(t, "", Display(c))
}

func TestDisplayText(t *testing.T) {
	c := cellstore.NewCell(0, 0)
	c.Kind = cellstore.KindText
	c.Text = "hello"
	assert.Equal(t, "hello", Display(c))
}

func TestDisplayFormulaError(t *testing.T) {
	c := cellstore.NewCell(0, 0)
	c.Kind = cellstore.KindFormula
	c.Err = cellstore.ErrDivZero
	assert.Equal(t, "#DIV/0!", Display(c))
}

func TestDisplayFormulaStringResult(t *testing.T) {
	c := cellstore.NewCell(0, 0)
	c.Kind = cellstore.KindFormula
	c.IsStringResult = true
	c.CachedString = "High"
	assert.Equal(t, "High", Display(c))
}

func TestNumberStripsTrailingZeros(t *testing.T) {
	assert.Equal(t, "3", Number(3.0, 2))
	assert.Equal(t, "3.5", Number(3.5, 2))
	assert.Equal(t, "3.14", Number(3.14159, 2))
	assert.Equal(t, "0", Number(-0.0001, 2))
}

func TestPercentage(t *testing.T) {
	c := numberCell(0.1234, 2, cellstore.FormatPercentage, 0)
	assert.Equal(t, "12.34%", Display(c))
}

func TestCurrencyNegativeSign(t *testing.T) {
	assert.Equal(t, "$5.00", Currency(5))
	assert.Equal(t, "-$5.00", Currency(-5))
}

func TestDateStylesBoundary(t *testing.T) {
	// serial date 1 is the day after the epoch (1899-12-30 + 1 day
	// => 1899-12-31 under this implementation's 1899-12-30 epoch).
	assert.Equal(t, "1899-12-31", Date(1, cellstore.DateStyleISO))
}

func TestTimeStyles(t *testing.T) {
	half := 0.5 // noon
	assert.Equal(t, "12:00 PM", Time(half, cellstore.TimeStyle12h))
	assert.Equal(t, "12:00", Time(half, cellstore.TimeStyle24h))

	midnight := 0.0
	assert.Equal(t, "12:00 AM", Time(midnight, cellstore.TimeStyle12h))
}

func TestDateTimeISO(t *testing.T) {
	s := DateTime(1.5, cellstore.DateTimeStyleISO)
	assert.Contains(t, s, "T")
	assert.Contains(t, s, "1899-12-31T12:00:00")
}

func TestErrorTokenGeneric(t *testing.T) {
	assert.Equal(t, "#ERROR!", ErrorToken(cellstore.ErrGeneric))
	assert.Equal(t, "", ErrorToken(cellstore.ErrNone))
}

func TestCycleStyleWraps(t *testing.T) {
	s := 0
	seen := map[int]bool{}
	for i := 0; i < 7; i++ {
		seen[s] = true
		s = cellstore.CycleStyle(cellstore.FormatDate, s)
	}
	assert.Equal(t, 0, s) // wrapped back to start after 7 date styles
	assert.Len(t, seen, 7)
}
