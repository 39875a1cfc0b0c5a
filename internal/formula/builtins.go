package formula

import (
	"math"
	"sort"
	"strings"

	"github.com/cellgrid/tsheet/internal/cellstore"
	"github.com/cellgrid/tsheet/internal/ref"
)

// callArg is one parsed function argument: either a range literal (kept
// lazy so aggregate functions can enumerate its cells), a string literal,
// or an already-evaluated scalar (with its propagated error, if any).
type callArg struct {
	isRange bool
	rg      ref.Range

	isString bool
	str      string

	num float64
	err cellstore.ErrorKind
}

func (a callArg) isErr() bool { return !a.isRange && a.err != cellstore.ErrNone }

// call parses a function call's argument list (the current token is '(')
// and dispatches to the named built-in.
func (p *parser) call(name string) Value {
	p.advance() // '('
	var args []callArg
	if p.peek().kind != tRParen {
		for {
			args = append(args, p.parseArg())
			if p.peek().kind == tComma {
				p.advance()
				continue
			}
			break
		}
	}
	if p.peek().kind != tRParen {
		return errVal(cellstore.ErrParse)
	}
	p.advance()
	return callBuiltin(p.ctx, name, args)
}

// parseArg implements `arg := arithmetic | string_literal | range | ident`.
// A bare range literal that fills the entire argument (immediately
// followed by ',' or ')') is kept lazy as a Range argument so aggregate
// functions can enumerate its cells directly, rather than collapsing it
// to the bare-range sum convenience.
func (p *parser) parseArg() callArg {
	t := p.peek()
	if t.kind == tString {
		p.advance()
		return callArg{isString: true, str: t.text}
	}
	if t.kind == tWord && strings.Contains(t.text, ":") {
		if rg, err := ref.ParseRange(t.text); err == nil {
			if nxt := p.peekAt(1).kind; nxt == tComma || nxt == tRParen {
				p.advance()
				return callArg{isRange: true, rg: rg}
			}
		}
	}
	v := p.comparison()
	return callArg{isString: v.IsString, str: v.Str, num: v.Num, err: v.Err}
}

// argAsNumber resolves a to a scalar number: a Range argument used where a
// number is expected falls back to the bare-range-sum convenience.
func argAsNumber(ctx *EvalContext, a callArg) Value {
	if a.isRange {
		return num(ctx.rangeSum(a.rg))
	}
	if a.isString {
		return errVal(cellstore.ErrValue)
	}
	if a.err != cellstore.ErrNone {
		return errVal(a.err)
	}
	return num(a.num)
}

func callBuiltin(ctx *EvalContext, name string, args []callArg) Value {
	switch name {
	case "SUM":
		return builtinSum(ctx, args)
	case "AVG":
		return builtinAvg(ctx, args)
	case "MAX":
		return builtinMinMax(ctx, args, true)
	case "MIN":
		return builtinMinMax(ctx, args, false)
	case "MEDIAN":
		return builtinMedian(ctx, args)
	case "MODE":
		return builtinMode(ctx, args)
	case "POWER":
		return builtinPower(ctx, args)
	case "IF":
		return builtinIf(ctx, args)
	case "VLOOKUP":
		return builtinVlookup(ctx, args)
	default:
		return errVal(cellstore.ErrParse)
	}
}

func rangeValues(ctx *EvalContext, args []callArg) ([]float64, bool) {
	if len(args) == 0 {
		return nil, false
	}
	a := args[0]
	if a.isRange {
		return ctx.collectNumeric(a.rg), true
	}
	if a.isErr() || a.isString {
		return nil, false
	}
	return []float64{a.num}, true
}

func builtinSum(ctx *EvalContext, args []callArg) Value {
	vals, ok := rangeValues(ctx, args)
	if !ok {
		return errVal(cellstore.ErrValue)
	}
	sum := 0.0
	for _, v := range vals {
		sum += v
	}
	return num(sum)
}

func builtinAvg(ctx *EvalContext, args []callArg) Value {
	vals, ok := rangeValues(ctx, args)
	if !ok {
		return errVal(cellstore.ErrValue)
	}
	if len(vals) == 0 {
		return num(0)
	}
	sum := 0.0
	for _, v := range vals {
		sum += v
	}
	return num(sum / float64(len(vals)))
}

func builtinMinMax(ctx *EvalContext, args []callArg, wantMax bool) Value {
	vals, ok := rangeValues(ctx, args)
	if !ok {
		return errVal(cellstore.ErrValue)
	}
	if len(vals) == 0 {
		return num(0)
	}
	best := vals[0]
	for _, v := range vals[1:] {
		if (wantMax && v > best) || (!wantMax && v < best) {
			best = v
		}
	}
	return num(best)
}

func builtinMedian(ctx *EvalContext, args []callArg) Value {
	vals, ok := rangeValues(ctx, args)
	if !ok {
		return errVal(cellstore.ErrValue)
	}
	if len(vals) == 0 {
		return num(0)
	}
	sorted := append([]float64(nil), vals...)
	sort.Float64s(sorted)
	n := len(sorted)
	if n%2 == 1 {
		return num(sorted[n/2])
	}
	return num((sorted[n/2-1] + sorted[n/2]) / 2)
}

func builtinMode(ctx *EvalContext, args []callArg) Value {
	vals, ok := rangeValues(ctx, args)
	if !ok {
		return errVal(cellstore.ErrValue)
	}
	if len(vals) == 0 {
		return num(0)
	}
	type group struct {
		rep        float64
		count      int
		firstIndex int
	}
	var groups []group
	for i, v := range vals {
		found := false
		for gi := range groups {
			if floatEq(groups[gi].rep, v) {
				groups[gi].count++
				found = true
				break
			}
		}
		if !found {
			groups = append(groups, group{rep: v, count: 1, firstIndex: i})
		}
	}
	best := groups[0]
	for _, g := range groups[1:] {
		if g.count > best.count || (g.count == best.count && g.firstIndex < best.firstIndex) {
			best = g
		}
	}
	return num(best.rep)
}

func builtinPower(ctx *EvalContext, args []callArg) Value {
	if len(args) < 2 {
		return errVal(cellstore.ErrParse)
	}
	base := argAsNumber(ctx, args[0])
	if base.isErr() {
		return base
	}
	exp := argAsNumber(ctx, args[1])
	if exp.isErr() {
		return exp
	}
	return num(math.Pow(base.Num, exp.Num))
}

func builtinIf(ctx *EvalContext, args []callArg) Value {
	if len(args) < 3 {
		return errVal(cellstore.ErrParse)
	}
	cond := argAsNumber(ctx, args[0])
	if cond.isErr() {
		return cond
	}
	branch := args[2]
	if cond.Num != 0 {
		branch = args[1]
	}
	if branch.isString {
		return str(branch.str)
	}
	if branch.isRange {
		return num(ctx.rangeSum(branch.rg))
	}
	if branch.err != cellstore.ErrNone {
		return errVal(branch.err)
	}
	return num(branch.num)
}

func builtinVlookup(ctx *EvalContext, args []callArg) Value {
	if len(args) < 3 {
		return errVal(cellstore.ErrParse)
	}
	keyArg := args[0]
	tableArg := args[1]
	if !tableArg.isRange {
		return errVal(cellstore.ErrRef)
	}
	rg := tableArg.rg

	colIdxVal := argAsNumber(ctx, args[2])
	if colIdxVal.isErr() {
		return colIdxVal
	}
	colIdx := int(colIdxVal.Num)

	exact := 0.0
	if len(args) >= 4 {
		ev := argAsNumber(ctx, args[3])
		if ev.isErr() {
			return ev
		}
		exact = ev.Num
	}

	targetCol := rg.C0 + colIdx - 1
	if colIdx < 1 || targetCol < rg.C0 || targetCol > rg.C1 {
		return errVal(cellstore.ErrRef)
	}
	firstCol := rg.C0

	// result returns the matched row's value in targetCol; a text cell
	// there is returned as a string result.
	result := func(row int) Value {
		if c, ok := ctx.Grid.Get(row, targetCol); ok && c.Kind == cellstore.KindText {
			return str(c.Text)
		}
		return ctx.resolveCell(row, targetCol)
	}

	if keyArg.isString {
		for row := rg.R0; row <= rg.R1; row++ {
			c, ok := ctx.Grid.Get(row, firstCol)
			if !ok {
				continue
			}
			var text string
			isTextLike := false
			if c.Kind == cellstore.KindText {
				text = c.Text
				isTextLike = true
			} else if c.Kind == cellstore.KindFormula && c.Err == cellstore.ErrNone && c.IsStringResult {
				text = c.CachedString
				isTextLike = true
			}
			if isTextLike && text == keyArg.str {
				return result(row)
			}
		}
		return errVal(cellstore.ErrNA)
	}

	if keyArg.isErr() {
		return errVal(keyArg.err)
	}
	key := keyArg.num

	if exact != 0 {
		for row := rg.R0; row <= rg.R1; row++ {
			c, ok := ctx.Grid.Get(row, firstCol)
			if !ok || c.Kind != cellstore.KindNumber {
				continue
			}
			if floatEq(c.Number, key) {
				return result(row)
			}
		}
		return errVal(cellstore.ErrNA)
	}

	bestVal := math.Inf(-1)
	bestRow := -1
	for row := rg.R0; row <= rg.R1; row++ {
		c, ok := ctx.Grid.Get(row, firstCol)
		if !ok || c.Kind != cellstore.KindNumber {
			continue
		}
		if c.Number <= key && c.Number > bestVal {
			bestVal = c.Number
			bestRow = row
		}
	}
	if bestRow == -1 {
		return errVal(cellstore.ErrNA)
	}
	return result(bestRow)
}
