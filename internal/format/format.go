// Package format converts a cell's stored scalar into its display string
// according to its configured format and style.
package format

import (
	"fmt"
	"strings"

	"github.com/cellgrid/tsheet/internal/cellstore"
)

// ErrorToken returns the fixed display token for a formula error kind.
func ErrorToken(k cellstore.ErrorKind) string {
	switch k {
	case cellstore.ErrDivZero:
		return "#DIV/0!"
	case cellstore.ErrRef:
		return "#REF!"
	case cellstore.ErrValue:
		return "#VALUE!"
	case cellstore.ErrParse:
		return "#PARSE!"
	case cellstore.ErrNA:
		return "#N/A!"
	case cellstore.ErrNone:
		return ""
	default:
		return "#ERROR!"
	}
}

// Display renders c's current content as the display string the external
// Read API exposes. Empty cells render as "". Text cells render as-is.
// Formula cells with a cached error render the error's fixed token.
// Formula cells with a cached string result render that string.
// Otherwise the numeric value (Number, or a Formula's CachedValue) is
// rendered per the cell's Format/Style.
func Display(c *cellstore.Cell) string {
	switch c.Kind {
	case cellstore.KindEmpty:
		return ""
	case cellstore.KindText:
		return c.Text
	case cellstore.KindError:
		return ErrorToken(c.Err)
	case cellstore.KindFormula:
		if c.Err != cellstore.ErrNone {
			return ErrorToken(c.Err)
		}
		if c.IsStringResult {
			return c.CachedString
		}
		return renderNumber(c.CachedValue, c)
	case cellstore.KindNumber:
		return renderNumber(c.Number, c)
	default:
		return ""
	}
}

func renderNumber(v float64, c *cellstore.Cell) string {
	switch c.Format {
	case cellstore.FormatPercentage:
		return Percentage(v, c.Precision)
	case cellstore.FormatCurrency:
		return Currency(v)
	case cellstore.FormatDate:
		return Date(v, c.Style)
	case cellstore.FormatTime:
		return Time(v, c.Style)
	case cellstore.FormatDateTime:
		return DateTime(v, c.Style)
	default:
		return Number(v, c.Precision)
	}
}

// Number renders v at precision decimals, stripping trailing zeros and a
// trailing decimal point.
func Number(v float64, precision int) string {
	if precision < 0 {
		precision = 0
	}
	s := fmt.Sprintf("%.*f", precision, v)
	if precision == 0 {
		return s
	}
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	if s == "" || s == "-" || s == "-0" {
		s = "0"
	}
	return s
}

// Percentage renders v*100 at precision decimals, suffixed with "%".
func Percentage(v float64, precision int) string {
	if precision < 0 {
		precision = 0
	}
	return fmt.Sprintf("%.*f%%", precision, v*100)
}

// Currency renders v at exactly two decimals, prefixed with "$"; negative
// values render as "-$|v|", never "$-v".
func Currency(v float64) string {
	if v < 0 {
		return fmt.Sprintf("-$%.2f", -v)
	}
	return fmt.Sprintf("$%.2f", v)
}

// Date renders serial as a calendar date per the given DateStyle.
func Date(serial float64, style int) string {
	t := serialToTime(serial)
	y, m, d := t.Date()
	mi := int(m)
	switch style {
	case cellstore.DateStyleDMY:
		return fmt.Sprintf("%02d/%02d/%04d", d, mi, y)
	case cellstore.DateStyleISO:
		return fmt.Sprintf("%04d-%02d-%02d", y, mi, d)
	case cellstore.DateStyleMDYShortYear:
		return fmt.Sprintf("%02d/%02d/%02d", mi, d, y%100)
	case cellstore.DateStyleMonDY:
		return fmt.Sprintf("%s %02d, %04d", monthAbbrev[mi-1], d, y)
	case cellstore.DateStyleDMonY:
		return fmt.Sprintf("%02d %s %04d", d, monthAbbrev[mi-1], y)
	case cellstore.DateStyleYMonD:
		return fmt.Sprintf("%04d %s %02d", y, monthAbbrev[mi-1], d)
	case cellstore.DateStyleMDY:
		fallthrough
	default:
		return fmt.Sprintf("%02d/%02d/%04d", mi, d, y)
	}
}

// Time renders serial (a fraction of a day) as a clock time per the given
// TimeStyle.
func Time(serial float64, style int) string {
	frac := serial - float64(int64(serial))
	if frac < 0 {
		frac += 1
	}
	totalSecs := int(frac*86400 + 0.5)
	h := (totalSecs / 3600) % 24
	m := (totalSecs / 60) % 60
	s := totalSecs % 60

	switch style {
	case cellstore.TimeStyle24h:
		return fmt.Sprintf("%02d:%02d", h, m)
	case cellstore.TimeStyleHMS24:
		return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
	case cellstore.TimeStyle12hSeconds:
		return fmt12h(h, m, &s)
	case cellstore.TimeStyle12h:
		fallthrough
	default:
		return fmt12h(h, m, nil)
	}
}

func fmt12h(h, m int, secs *int) string {
	ampm := "AM"
	h12 := h
	if h == 0 {
		h12 = 12
	} else if h == 12 {
		ampm = "PM"
	} else if h > 12 {
		h12 = h - 12
		ampm = "PM"
	}
	if secs != nil {
		return fmt.Sprintf("%d:%02d:%02d %s", h12, m, *secs, ampm)
	}
	return fmt.Sprintf("%d:%02d %s", h12, m, ampm)
}

// DateTime renders serial's date and time portions joined by a single
// space (ISO style joins with "T" instead, per spec.md §4.3).
func DateTime(serial float64, style int) string {
	switch style {
	case cellstore.DateTimeStyleISO:
		t := serialToTime(serial)
		y, m, d := t.Date()
		return fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%02d", y, int(m), d, t.Hour(), t.Minute(), t.Second())
	case cellstore.DateTimeStyleLong:
		return Date(serial, cellstore.DateStyleMonDY) + " " + Time(serial, cellstore.TimeStyle12hSeconds)
	case cellstore.DateTimeStyleShort:
		fallthrough
	default:
		return Date(serial, cellstore.DateStyleMDYShortYear) + " " + Time(serial, cellstore.TimeStyle12h)
	}
}
