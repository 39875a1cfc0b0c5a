package formula

import (
	"strconv"
	"strings"

	"github.com/cellgrid/tsheet/internal/cellstore"
	"github.com/cellgrid/tsheet/internal/ref"
)

const epsilon = 1e-10

type parser struct {
	toks []token
	pos  int
	ctx  *EvalContext
}

func (p *parser) peek() token {
	return p.toks[p.pos]
}

func (p *parser) peekAt(offset int) token {
	i := p.pos + offset
	if i >= len(p.toks) {
		return p.toks[len(p.toks)-1]
	}
	return p.toks[i]
}

func (p *parser) advance() token {
	t := p.toks[p.pos]
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

// Evaluate parses and evaluates a formula body (the leading '=' must
// already be stripped by the caller) against ctx. Function names are
// normalized case-insensitively; referenced text values are not.
func Evaluate(ctx *EvalContext, src string) Value {
	toks, err := tokenize(src)
	if err != nil {
		return errVal(cellstore.ErrParse)
	}
	p := &parser{toks: toks, ctx: ctx}
	v := p.comparison()
	if v.isErr() {
		return v
	}
	if p.peek().kind != tEOF {
		return errVal(cellstore.ErrParse)
	}
	return v
}

// comparison implements spec.md §4.4.1: before committing to numeric
// arithmetic, peek whether the whole comparison is shaped as
// <bare cell ref> <cmp-op> <string literal>; if so, do a lexicographic
// string comparison using the cell's stored text. Otherwise evaluate both
// sides numerically with 1e-10 tolerance for equality.
func (p *parser) comparison() Value {
	if isCmpOp(p.peekAt(1).kind) && p.peek().kind == tWord && looksLikeCellRef(p.peek().text) && p.peekAt(2).kind == tString {
		wordTok := p.advance()
		opTok := p.advance()
		strTok := p.advance()
		row, col, err := ref.ParseLabel(wordTok.text)
		if err != nil {
			return errVal(cellstore.ErrRef)
		}
		lhs := p.ctx.cellText(row, col)
		return num(boolToFloat(compareStrings(lhs, strTok.text, opTok.kind)))
	}

	lhs := p.arithmetic()
	if lhs.isErr() {
		return lhs
	}
	if !isCmpOp(p.peek().kind) {
		return lhs
	}
	op := p.advance()
	rhs := p.arithmetic()
	if rhs.isErr() {
		return rhs
	}
	return num(boolToFloat(compareNumbers(lhs.Num, rhs.Num, op.kind)))
}

func isCmpOp(k tokenKind) bool {
	switch k {
	case tEq, tNe, tLt, tLe, tGt, tGe:
		return true
	}
	return false
}

func compareStrings(a, b string, op tokenKind) bool {
	switch op {
	case tEq:
		return a == b
	case tNe:
		return a != b
	case tLt:
		return a < b
	case tLe:
		return a <= b
	case tGt:
		return a > b
	case tGe:
		return a >= b
	}
	return false
}

func compareNumbers(a, b float64, op tokenKind) bool {
	switch op {
	case tEq:
		return floatEq(a, b)
	case tNe:
		return !floatEq(a, b)
	case tLt:
		return a < b
	case tLe:
		return a < b || floatEq(a, b)
	case tGt:
		return a > b
	case tGe:
		return a > b || floatEq(a, b)
	}
	return false
}

func floatEq(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < epsilon
}

func boolToFloat(b bool) float64 {
	if b {
		return 1.0
	}
	return 0.0
}

// arithmetic := term (('+'|'-') term)*
func (p *parser) arithmetic() Value {
	lhs := p.term()
	if lhs.isErr() {
		return lhs
	}
	for {
		switch p.peek().kind {
		case tPlus:
			p.advance()
			rhs := p.term()
			if rhs.isErr() {
				return rhs
			}
			lhs = num(lhs.Num + rhs.Num)
		case tMinus:
			p.advance()
			rhs := p.term()
			if rhs.isErr() {
				return rhs
			}
			lhs = num(lhs.Num - rhs.Num)
		default:
			return lhs
		}
	}
}

// term := factor (('*'|'/') factor)*
func (p *parser) term() Value {
	lhs := p.factor()
	if lhs.isErr() {
		return lhs
	}
	for {
		switch p.peek().kind {
		case tStar:
			p.advance()
			rhs := p.factor()
			if rhs.isErr() {
				return rhs
			}
			lhs = num(lhs.Num * rhs.Num)
		case tSlash:
			p.advance()
			rhs := p.factor()
			if rhs.isErr() {
				return rhs
			}
			if rhs.Num == 0 {
				return errVal(cellstore.ErrDivZero)
			}
			lhs = num(lhs.Num / rhs.Num)
		default:
			return lhs
		}
	}
}

// factor implements the ambiguity-resolution strategy of spec.md §4.4.3
// exactly: parenthesized subexpression, function call, range literal,
// single cell reference, or numeric literal.
func (p *parser) factor() Value {
	t := p.peek()
	switch t.kind {
	case tLParen:
		p.advance()
		v := p.arithmetic()
		if v.isErr() {
			return v
		}
		if p.peek().kind != tRParen {
			return errVal(cellstore.ErrParse)
		}
		p.advance()
		return v
	case tNumber:
		p.advance()
		n, err := strconv.ParseFloat(t.text, 64)
		if err != nil {
			return errVal(cellstore.ErrParse)
		}
		return num(n)
	case tWord:
		return p.factorWord()
	default:
		return errVal(cellstore.ErrParse)
	}
}

func (p *parser) factorWord() Value {
	t := p.advance()
	word := t.text

	if strings.Contains(word, ":") {
		rg, err := ref.ParseRange(word)
		if err != nil {
			return errVal(cellstore.ErrRef)
		}
		return num(p.ctx.rangeSum(rg))
	}

	if isAllAlpha(word) && p.peek().kind == tLParen {
		return p.call(strings.ToUpper(word))
	}

	if looksLikeCellRef(word) {
		row, col, err := ref.ParseLabel(word)
		if err != nil {
			return errVal(cellstore.ErrRef)
		}
		return p.ctx.resolveCell(row, col)
	}

	if n, err := strconv.ParseFloat(word, 64); err == nil {
		return num(n)
	}
	return errVal(cellstore.ErrParse)
}

func isAllAlpha(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isLetter(rune(s[i])) {
			return false
		}
	}
	return true
}
