// Package cellstore implements the dense 2D cell grid: the spreadsheet's
// cell model, lazy cell creation, and per-column/row sizing.
package cellstore

// Kind tags a Cell's content union.
type Kind int

const (
	KindEmpty Kind = iota
	KindNumber
	KindText
	KindFormula
	KindError
)

// ErrorKind enumerates the formula error tokens a cell can cache.
type ErrorKind int

const (
	ErrNone ErrorKind = iota
	ErrDivZero
	ErrRef
	ErrValue
	ErrParse
	ErrNA
	ErrGeneric
)

// Align is the cell's horizontal text alignment.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Format is the cell's display format family.
type Format int

const (
	FormatGeneral Format = iota
	FormatNumber
	FormatPercentage
	FormatCurrency
	FormatDate
	FormatTime
	FormatDateTime
)

// ColorDefault is the sentinel TextColor/BackgroundColor value meaning
// "use the terminal's default color" rather than an explicit index.
const ColorDefault = -1

const (
	DefaultWidth     = 10
	DefaultPrecision = 2
	MinColWidth      = 1
	MaxColWidth      = 50
	MinRowHeight     = 1
	MaxRowHeight     = 10
)

// Date/time/datetime style indices, in the fixed cycle order spec.md §4.3
// names. The meaning of Style depends on Format; style values are only
// interpreted against the Format they were set alongside.
const (
	DateStyleMDY = iota
	DateStyleDMY
	DateStyleISO
	DateStyleMDYShortYear
	DateStyleMonDY
	DateStyleDMonY
	DateStyleYMonD
	dateStyleCount
)

const (
	TimeStyle12h = iota
	TimeStyle24h
	TimeStyleHMS24
	TimeStyle12hSeconds
	timeStyleCount
)

const (
	DateTimeStyleShort = iota
	DateTimeStyleLong
	DateTimeStyleISO
	dateTimeStyleCount
)

// Cell is a single addressable grid slot: a tagged content union plus
// display formatting. The zero value is not a valid Cell; use NewCell.
type Cell struct {
	Row, Col int

	Kind Kind

	Number     float64
	Text       string
	FormulaSrc string

	// Formula cache. Valid only when Err == ErrNone.
	CachedValue    float64
	CachedString   string
	IsStringResult bool
	Err            ErrorKind

	Width     int
	Precision int
	Align     Align
	Format    Format
	Style     int

	TextColor       int
	BackgroundColor int
}

// NewCell returns a default Empty cell at (row, col): general format,
// right alignment, default width/precision, default colors.
func NewCell(row, col int) *Cell {
	return &Cell{
		Row:             row,
		Col:             col,
		Kind:            KindEmpty,
		Width:           DefaultWidth,
		Precision:       DefaultPrecision,
		Align:           AlignRight,
		Format:          FormatGeneral,
		Style:           0,
		TextColor:       ColorDefault,
		BackgroundColor: ColorDefault,
	}
}

// CycleStyle returns the next style index for f's style category, wrapping
// around. Formats without a style cycle (General, Number, Percentage,
// Currency) return the input unchanged.
func CycleStyle(f Format, style int) int {
	switch f {
	case FormatDate:
		return (style + 1) % dateStyleCount
	case FormatTime:
		return (style + 1) % timeStyleCount
	case FormatDateTime:
		return (style + 1) % dateTimeStyleCount
	default:
		return style
	}
}

// resetFormulaCache clears cached evaluation state to its post-write
// default (value=0, error=None, no cached string).
func (c *Cell) resetFormulaCache() {
	c.CachedValue = 0
	c.CachedString = ""
	c.IsStringResult = false
	c.Err = ErrNone
}

// applyFormatting copies format, style, colors, width, precision and
// alignment from src into c, leaving c's content and position untouched.
func (c *Cell) applyFormatting(src *Cell) {
	c.Width = src.Width
	c.Precision = src.Precision
	c.Align = src.Align
	c.Format = src.Format
	c.Style = src.Style
	c.TextColor = src.TextColor
	c.BackgroundColor = src.BackgroundColor
}

// cloneContentFrom copies content and formatting (but not Row/Col) from
// src into c.
func (c *Cell) cloneContentFrom(src *Cell) {
	c.Kind = src.Kind
	c.Number = src.Number
	c.Text = src.Text
	c.FormulaSrc = src.FormulaSrc
	c.CachedValue = src.CachedValue
	c.CachedString = src.CachedString
	c.IsStringResult = src.IsStringResult
	c.Err = src.Err
	c.applyFormatting(src)
}

// Snapshot returns a value copy of *c suitable for an undo/redo record or
// a clipboard slot. Row/Col are preserved in the copy.
func (c *Cell) Snapshot() Cell {
	return *c
}

// RestoreFrom overwrites c's content, formatting and position from snap.
func (c *Cell) RestoreFrom(snap Cell) {
	*c = snap
}
