package tui

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cellgrid/tsheet/internal/cellstore"
	"github.com/cellgrid/tsheet/internal/config"
	"github.com/cellgrid/tsheet/internal/engine"
)

func newTestModel() Model {
	cfg := config.DefaultConfig()
	cfg.Rows, cfg.Cols = 10, 10
	eng := engine.New(cfg.Rows, cfg.Cols, cfg.UndoCapacity, nil)
	return New(cfg, eng, nil)
}

func TestRunCommandQuit(t *testing.T) {
	m := newTestModel()
	_, quit := m.runCommand("q")
	assert.True(t, quit)

	_, quit = m.runCommand("quit")
	assert.True(t, quit)
}

func TestRunCommandUnknown(t *testing.T) {
	m := newTestModel()
	msg, quit := m.runCommand("frobnicate")
	assert.False(t, quit)
	assert.Contains(t, msg, "Unknown command")
}

func TestRunCommandFormatAppliesToCursorCell(t *testing.T) {
	m := newTestModel()
	m.eng.SetNumber(0, 0, 1234.5)
	msg, _ := m.runCommand("format currency")
	assert.Equal(t, "Format applied", msg)

	f, _ := m.eng.CellFormat(0, 0)
	assert.Equal(t, cellstore.FormatCurrency, f)
}

func TestRunCommandRangeFormatRequiresSelection(t *testing.T) {
	m := newTestModel()
	msg, _ := m.runCommand("range format number")
	assert.Equal(t, "No range selected", msg)
}

func TestRunCommandRangeFormatAppliesAcrossSelection(t *testing.T) {
	m := newTestModel()
	m.eng.StartSelection(0, 0)
	m.eng.ExtendSelection(0, 1)
	msg, _ := m.runCommand("range format number")
	assert.Equal(t, "Format applied to selection", msg)

	f, _ := m.eng.CellFormat(0, 1)
	assert.Equal(t, cellstore.FormatNumber, f)
}

func TestRunCommandUnknownFormatName(t *testing.T) {
	m := newTestModel()
	msg, _ := m.runCommand("format bogus")
	assert.Contains(t, msg, "Unknown format")
}

func TestRunCommandColorInvalid(t *testing.T) {
	m := newTestModel()
	msg, _ := m.runCommand("clrtx notacolor")
	assert.Contains(t, msg, "Invalid color")
}

func TestRunCommandColorAppliesToCell(t *testing.T) {
	m := newTestModel()
	msg, _ := m.runCommand("clrbg red")
	assert.Equal(t, "Color applied", msg)

	_, bg := m.eng.CellColors(0, 0)
	assert.Equal(t, 4, bg)
}

func TestRunCommandChartUsage(t *testing.T) {
	m := newTestModel()
	msg, _ := m.runCommand("chart hexagon")
	assert.Contains(t, msg, "Usage: chart")
}

func TestRunCommandChartNoData(t *testing.T) {
	m := newTestModel()
	msg, _ := m.runCommand("chart bar")
	assert.Equal(t, "No data in selection", msg)
}

func TestRunCommandChartWithData(t *testing.T) {
	m := newTestModel()
	m.eng.SetText(0, 0, "Jan")
	m.eng.SetNumber(0, 1, 10)
	m.eng.SetText(1, 0, "Feb")
	m.eng.SetNumber(1, 1, 20)
	m.eng.StartSelection(0, 0)
	m.eng.ExtendSelection(1, 1)
	msg, _ := m.runCommand("chart line")
	assert.Contains(t, msg, "line chart")
	assert.Contains(t, msg, "Jan=10.00")
	assert.Contains(t, msg, "Feb=20.00")
}

func TestSaveAndLoadCSVRoundTrip(t *testing.T) {
	m := newTestModel()
	m.eng.SetNumber(0, 0, 42)
	m.eng.SetText(0, 1, "hello")

	path := filepath.Join(t.TempDir(), "sheet.csv")
	msg := m.cmdSaveCSV([]string{path})
	assert.Contains(t, msg, "Saved")

	m2 := newTestModel()
	msg = m2.cmdLoadCSV([]string{path})
	require.Contains(t, msg, "Loaded")
	assert.Equal(t, "42", m2.eng.DisplayValue(0, 0))
	assert.Equal(t, "hello", m2.eng.DisplayValue(0, 1))
}

func TestCmdSaveCSVMissingArgUsage(t *testing.T) {
	m := newTestModel()
	msg := m.cmdSaveCSV(nil)
	assert.Contains(t, msg, "Usage: savecsv")
}

func TestParseFormatName(t *testing.T) {
	f, ok := parseFormatName("DateTime")
	require.True(t, ok)
	assert.Equal(t, cellstore.FormatDateTime, f)

	_, ok = parseFormatName("bogus")
	assert.False(t, ok)
}
