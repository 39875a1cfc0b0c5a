package formula

import "github.com/cellgrid/tsheet/internal/cellstore"

// Value is a formula evaluation result: either a number or a string, plus
// an error kind (ErrNone on success). A non-ErrNone Err takes precedence
// over Num/Str/IsString, which are meaningless in that case.
type Value struct {
	IsString bool
	Num      float64
	Str      string
	Err      cellstore.ErrorKind
}

func num(n float64) Value                { return Value{Num: n} }
func str(s string) Value                 { return Value{IsString: true, Str: s} }
func errVal(k cellstore.ErrorKind) Value { return Value{Err: k} }
func (v Value) isErr() bool              { return v.Err != cellstore.ErrNone }

// ParseError is returned by the tokenizer for an unterminated string
// literal or an unexpected character. Grammar violations the parser finds
// (missing ')', empty factor, trailing tokens) are reported as a Value
// with Err == ErrParse instead.
type ParseError struct {
	Msg string
}

func (e *ParseError) Error() string { return "formula parse error: " + e.Msg }
