package engine

import (
	"github.com/cellgrid/tsheet/internal/cellstore"
	"github.com/cellgrid/tsheet/internal/formula"
)

// Recalculate performs one single-pass, row-major recalculation of every
// Formula cell, per spec.md §4.5. It does not compute a topological
// order: a formula that reads a later-in-scan formula sees that cell's
// previous-cycle cached value, and multi-level formula chains may need
// more than one Recalculate call to settle. Cycles between formula cells
// have undefined output. This is a documented limitation, not a bug.
//
// Each cell's evaluation gets its own *formula.EvalContext rather than a
// process-wide "currently evaluating cell" slot; see formula.EvalContext.
func (s *Sheet) Recalculate() {
	if !s.Grid.NeedsRecalc() {
		return
	}
	ctx := &formula.EvalContext{Grid: s.Grid}
	for row := 0; row < s.Grid.Rows(); row++ {
		for col := 0; col < s.Grid.Cols(); col++ {
			c, ok := s.Grid.Get(row, col)
			if !ok || c.Kind != cellstore.KindFormula {
				continue
			}
			v := formula.Evaluate(ctx, c.FormulaSrc)
			c.Err = v.Err
			if v.Err != cellstore.ErrNone {
				c.IsStringResult = false
				c.CachedValue = 0
				c.CachedString = ""
				continue
			}
			c.IsStringResult = v.IsString
			if v.IsString {
				c.CachedString = v.Str
				c.CachedValue = 0
			} else {
				c.CachedValue = v.Num
				c.CachedString = ""
			}
		}
	}
	s.Grid.ClearDirty()
	s.log.WithField("generation", s.Grid.Generation()).Debug("recalculation pass complete")
}
