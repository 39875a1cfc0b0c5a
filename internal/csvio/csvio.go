// Package csvio implements the spreadsheet's CSV save/load contract:
// flatten/preserve save modes, field quoting/escaping, and the
// 4096-byte line-length boundary (truncated, never silently dropped).
package csvio

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/cellgrid/tsheet/internal/cellstore"
	"github.com/cellgrid/tsheet/internal/engine"
)

// Mode selects how formula cells are serialized on Save, and how leading
// '=' fields are interpreted on Load.
type Mode int

const (
	ModeFlatten Mode = iota
	ModePreserve
)

// MaxLineBytes bounds a single input line on Load; longer lines are
// truncated at this boundary, and the truncation is reported to the
// caller rather than silently dropped (spec's open issue on this point).
const MaxLineBytes = 4096

// Save writes the minimal rectangle covering the sheet's non-empty cells
// to w, row-major. In ModeFlatten every cell emits its display value; in
// ModePreserve a Formula cell emits its source expression prefixed with
// '=', and every other cell emits its display value.
func Save(s *engine.Sheet, w io.Writer, mode Mode) error {
	r0, c0, r1, c1, ok := s.Grid.BoundingRange()
	if !ok {
		return nil
	}
	bw := bufio.NewWriter(w)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			if col > c0 {
				if err := bw.WriteByte(','); err != nil {
					return err
				}
			}
			if _, err := bw.WriteString(quoteField(fieldFor(s, row, col, mode))); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func fieldFor(s *engine.Sheet, row, col int, mode Mode) string {
	c, ok := s.Grid.Get(row, col)
	if !ok {
		return ""
	}
	if mode == ModePreserve && c.Kind == cellstore.KindFormula {
		return "=" + c.FormulaSrc
	}
	return s.DisplayValue(row, col)
}

func quoteField(s string) string {
	if strings.ContainsAny(s, ",\"\n\r") {
		return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
	}
	return s
}

// LoadResult reports load-time bookkeeping the caller should surface to
// the user.
type LoadResult struct {
	Rows            int
	TruncatedLines  int
	ColumnsTrimmed  int // fields beyond the grid's column count, dropped
}

// Load clears the sheet's grid, then reads r by the CSV field grammar.
// For each non-empty field: a leading '=' in ModePreserve becomes a
// formula; else a successful numeric parse becomes a number; else the
// field becomes text. Newlines inside quoted fields are unsupported (an
// open issue carried from spec.md), so every physical line is one row.
func Load(s *engine.Sheet, r io.Reader, mode Mode) (LoadResult, error) {
	for row := 0; row < s.Grid.Rows(); row++ {
		for col := 0; col < s.Grid.Cols(); col++ {
			s.Grid.Clear(row, col)
		}
	}

	var result LoadResult
	br := bufio.NewReader(r)
	row := 0
	for row < s.Grid.Rows() {
		line, err := br.ReadString('\n')
		if len(line) == 0 && err != nil {
			break
		}
		line = strings.TrimRight(line, "\r\n")
		if len(line) > MaxLineBytes {
			line = line[:MaxLineBytes]
			result.TruncatedLines++
		}

		fields := parseCSVLine(line)
		for col, field := range fields {
			if col >= s.Grid.Cols() {
				result.ColumnsTrimmed++
				continue
			}
			setField(s.Grid, row, col, field, mode)
		}
		row++
		result.Rows++
		if err != nil {
			break
		}
	}
	s.Recalculate()
	return result, nil
}

func setField(g *cellstore.Grid, row, col int, field string, mode Mode) {
	if field == "" {
		return
	}
	if mode == ModePreserve && strings.HasPrefix(field, "=") {
		g.SetFormula(row, col, field[1:])
		return
	}
	if v, err := strconv.ParseFloat(field, 64); err == nil {
		g.SetNumber(row, col, v)
		return
	}
	g.SetText(row, col, field)
}

// parseCSVLine splits one physical line into fields per the CSV field
// grammar: comma-delimited, double-quoted fields may contain commas and
// escaped (doubled) quotes.
func parseCSVLine(line string) []string {
	var fields []string
	var cur strings.Builder
	inQuotes := false
	n := len(line)
	for i := 0; i < n; i++ {
		c := line[i]
		if inQuotes {
			if c == '"' {
				if i+1 < n && line[i+1] == '"' {
					cur.WriteByte('"')
					i++
					continue
				}
				inQuotes = false
				continue
			}
			cur.WriteByte(c)
			continue
		}
		switch c {
		case '"':
			inQuotes = true
		case ',':
			fields = append(fields, cur.String())
			cur.Reset()
		default:
			cur.WriteByte(c)
		}
	}
	fields = append(fields, cur.String())
	return fields
}
