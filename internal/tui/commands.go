package tui

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/cellgrid/tsheet/internal/cellstore"
	"github.com/cellgrid/tsheet/internal/csvio"
)

// runCommand executes a command-line string per the engine's command
// contract (spec.md §6) and returns a status-line message. It returns
// quit=true when the command requests application exit.
func (m *Model) runCommand(line string) (message string, quit bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", false
	}

	switch fields[0] {
	case "q", "quit":
		return "", true

	case "savecsv":
		return m.cmdSaveCSV(fields[1:]), false

	case "loadcsv":
		return m.cmdLoadCSV(fields[1:]), false

	case "format":
		return m.cmdFormat(fields[1:], false), false

	case "range":
		if len(fields) >= 2 && fields[1] == "format" {
			return m.cmdFormat(fields[2:], true), false
		}
		return "Unknown range command", false

	case "clrtx":
		return m.cmdColor(fields[1:], true), false

	case "clrbg":
		return m.cmdColor(fields[1:], false), false

	case "chart":
		if len(fields) < 2 {
			return "Usage: chart line|bar|pie|scatter", false
		}
		return m.cmdChart(fields[1]), false

	default:
		return fmt.Sprintf("Unknown command: %s", fields[0]), false
	}
}

func (m *Model) cmdSaveCSV(args []string) string {
	if len(args) == 0 {
		return "Usage: savecsv <path> [flatten|preserve]"
	}
	path := args[0]
	mode := m.cfg.CSVModeValue()
	if len(args) > 1 {
		mode = csvModeFromName(args[1])
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Sprintf("savecsv failed: %v", err)
	}
	defer f.Close()

	if err := csvio.Save(m.eng, f, mode); err != nil {
		return fmt.Sprintf("savecsv failed: %v", err)
	}
	m.lastFile = path
	m.lastMode = mode
	return fmt.Sprintf("Saved %s", path)
}

func (m *Model) cmdLoadCSV(args []string) string {
	if len(args) == 0 {
		return "Usage: loadcsv <path> [flatten|preserve]"
	}
	path := args[0]
	mode := m.cfg.CSVModeValue()
	if len(args) > 1 {
		mode = csvModeFromName(args[1])
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Sprintf("loadcsv failed: %v", err)
	}
	defer f.Close()

	result, err := csvio.Load(m.eng, f, mode)
	if err != nil {
		return fmt.Sprintf("loadcsv failed: %v", err)
	}
	m.lastFile = path
	m.lastMode = mode
	m.eng.SetCursor(0, 0)
	if result.TruncatedLines > 0 {
		return fmt.Sprintf("Loaded %s (%d rows, %d lines truncated)", path, result.Rows, result.TruncatedLines)
	}
	return fmt.Sprintf("Loaded %s (%d rows)", path, result.Rows)
}

func (m *Model) cmdFormat(args []string, rangeVariant bool) string {
	if len(args) == 0 {
		return "Usage: format <type> [style]"
	}
	f, ok := parseFormatName(args[0])
	if !ok {
		return fmt.Sprintf("Unknown format: %s", args[0])
	}
	style := 0
	if len(args) > 1 {
		s, err := strconv.Atoi(args[1])
		if err == nil {
			style = s
		}
	}

	if rangeVariant {
		if _, ok := m.eng.Selection(); !ok {
			return "No range selected"
		}
		m.eng.SetFormatRange(f, style)
		return "Format applied to selection"
	}

	if _, ok := m.eng.Selection(); ok {
		m.eng.SetFormatRange(f, style)
		return "Format applied to selection"
	}
	row, col := m.eng.Cursor()
	m.eng.SetFormat(row, col, f, style)
	return "Format applied"
}

func parseFormatName(s string) (cellstore.Format, bool) {
	switch strings.ToLower(s) {
	case "general":
		return cellstore.FormatGeneral, true
	case "number":
		return cellstore.FormatNumber, true
	case "percentage", "percent":
		return cellstore.FormatPercentage, true
	case "currency":
		return cellstore.FormatCurrency, true
	case "date":
		return cellstore.FormatDate, true
	case "time":
		return cellstore.FormatTime, true
	case "datetime":
		return cellstore.FormatDateTime, true
	default:
		return cellstore.FormatGeneral, false
	}
}

func (m *Model) cmdColor(args []string, text bool) string {
	if len(args) == 0 {
		return "Usage: clrtx|clrbg <name|#RRGGBB>"
	}
	idx, err := parseColorArg(args[0])
	if err != nil {
		return fmt.Sprintf("Invalid color: %s", args[0])
	}

	if _, ok := m.eng.Selection(); ok {
		if text {
			m.eng.SetTextColorRange(idx)
		} else {
			m.eng.SetBackgroundColorRange(idx)
		}
		return "Color applied to selection"
	}
	row, col := m.eng.Cursor()
	if text {
		m.eng.SetTextColor(row, col, idx)
	} else {
		m.eng.SetBackgroundColor(row, col, idx)
	}
	return "Color applied"
}

func (m *Model) cmdChart(kind string) string {
	switch kind {
	case "line", "bar", "pie", "scatter":
	default:
		return "Usage: chart line|bar|pie|scatter"
	}

	samples, err := m.extractChart()
	if err != nil {
		return fmt.Sprintf("chart failed: %v", err)
	}
	if len(samples) == 0 {
		return "No data in selection"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s chart (%d points): ", kind, len(samples))
	for i, s := range samples {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s=%.2f", s.Label, s.Value)
	}
	return b.String()
}
