// Package chart extracts a typed sample stream from a sheet selection.
// The actual line/bar/pie/scatter plotting algorithm is out of scope; the
// presenter's chart command (internal/tui) lists the extracted samples as
// label=value pairs in the status line instead.
package chart

import (
	"fmt"

	"github.com/cellgrid/tsheet/internal/cellstore"
	"github.com/cellgrid/tsheet/internal/engine"
	"github.com/cellgrid/tsheet/internal/ref"
)

// Sample is one labeled data point extracted from the sheet.
type Sample struct {
	Label string
	Value float64
}

// ExtractRange walks r and produces one Sample per row when r spans
// multiple columns (the first column's display value is the label, the
// last column's numeric value is the sample value, and rows whose last
// column is not numeric are skipped), or one Sample per numeric cell,
// labeled with its A1 reference, when r is a single row or single column.
func ExtractRange(eng *engine.Sheet, r ref.Range) ([]Sample, error) {
	r = r.Canonicalize()
	rows := r.R1 - r.R0 + 1
	cols := r.C1 - r.C0 + 1
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("chart: empty range")
	}

	if rows == 1 || cols == 1 {
		var out []Sample
		for row := r.R0; row <= r.R1; row++ {
			for col := r.C0; col <= r.C1; col++ {
				v, ok := numericValue(eng, row, col)
				if !ok {
					continue
				}
				out = append(out, Sample{Label: ref.IndexToLabel(row, col), Value: v})
			}
		}
		return out, nil
	}

	out := make([]Sample, 0, rows)
	for row := r.R0; row <= r.R1; row++ {
		label := eng.DisplayValue(row, r.C0)
		value, ok := numericValue(eng, row, r.C1)
		if !ok {
			continue
		}
		out = append(out, Sample{Label: label, Value: value})
	}
	return out, nil
}

func numericValue(eng *engine.Sheet, row, col int) (float64, bool) {
	c, ok := eng.Grid.Get(row, col)
	if !ok {
		return 0, false
	}
	switch c.Kind {
	case cellstore.KindNumber:
		return c.Number, true
	case cellstore.KindFormula:
		if c.Err != cellstore.ErrNone || c.IsStringResult {
			return 0, false
		}
		return c.CachedValue, true
	default:
		return 0, false
	}
}
