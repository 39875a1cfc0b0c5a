package formula

import (
	"github.com/cellgrid/tsheet/internal/cellstore"
	"github.com/cellgrid/tsheet/internal/ref"
)

// EvalContext carries everything the evaluator needs to resolve cell and
// range references. It replaces the source program's process-wide
// "currently evaluating cell" variable: callers that need the IF
// string-result plumbing simply use the Value this package returns,
// rather than reaching into shared mutable state (spec.md §9 redesign
// note).
type EvalContext struct {
	Grid *cellstore.Grid
}

// resolveCell dereferences a single cell reference for numeric/string
// context: Empty -> 0, Number -> its value, Formula -> its cached value
// (propagating a cached error), Text -> Value error.
func (ctx *EvalContext) resolveCell(row, col int) Value {
	if !ctx.Grid.InBounds(row, col) {
		return errVal(cellstore.ErrRef)
	}
	c, ok := ctx.Grid.Get(row, col)
	if !ok {
		return num(0)
	}
	switch c.Kind {
	case cellstore.KindEmpty:
		return num(0)
	case cellstore.KindNumber:
		return num(c.Number)
	case cellstore.KindText:
		return errVal(cellstore.ErrValue)
	case cellstore.KindFormula:
		if c.Err != cellstore.ErrNone {
			return errVal(c.Err)
		}
		if c.IsStringResult {
			return str(c.CachedString)
		}
		return num(c.CachedValue)
	case cellstore.KindError:
		return errVal(c.Err)
	default:
		return num(0)
	}
}

// cellText returns the cell's stored text for the §4.4.1 string-comparison
// rule: Text cells or string-result Formula cells contribute their
// string; anything else (absent, numeric, non-string formula) is "".
func (ctx *EvalContext) cellText(row, col int) string {
	c, ok := ctx.Grid.Get(row, col)
	if !ok {
		return ""
	}
	switch c.Kind {
	case cellstore.KindText:
		return c.Text
	case cellstore.KindFormula:
		if c.Err == cellstore.ErrNone && c.IsStringResult {
			return c.CachedString
		}
	}
	return ""
}

// rangeSum sums the numeric contents of r: empty cells contribute 0, text
// cells and errored formulas are skipped. This is the "bare range"
// convenience described in spec.md §4.4.
func (ctx *EvalContext) rangeSum(r ref.Range) float64 {
	sum := 0.0
	for _, v := range ctx.collectNumeric(r) {
		sum += v
	}
	return sum
}

// collectNumeric gathers the numeric contributions of every cell in r in
// row-major order: Empty -> 0 (counted), Number -> its value, Formula
// (no error, numeric result) -> cached value. Text cells, string-result
// formulas, and errored formulas are skipped (not counted).
func (ctx *EvalContext) collectNumeric(r ref.Range) []float64 {
	var out []float64
	for row := r.R0; row <= r.R1; row++ {
		for col := r.C0; col <= r.C1; col++ {
			c, ok := ctx.Grid.Get(row, col)
			if !ok {
				out = append(out, 0)
				continue
			}
			switch c.Kind {
			case cellstore.KindEmpty:
				out = append(out, 0)
			case cellstore.KindNumber:
				out = append(out, c.Number)
			case cellstore.KindFormula:
				if c.Err == cellstore.ErrNone && !c.IsStringResult {
					out = append(out, c.CachedValue)
				}
			}
		}
	}
	return out
}
