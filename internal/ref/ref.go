// Package ref converts between (row, col) grid indices and the A1-style
// textual cell reference, and parses "A1:B5" range literals.
package ref

import (
	"fmt"
	"strings"
)

// ErrParse is returned for any malformed label or range input.
type ErrParse struct {
	Input string
	Msg   string
}

func (e *ErrParse) Error() string {
	return fmt.Sprintf("parse error in %q: %s", e.Input, e.Msg)
}

// Range is a closed, canonical rectangle of cells: r0<=r1, c0<=c1.
type Range struct {
	R0, C0, R1, C1 int
}

// Canonicalize returns r with its corners swapped so that R0<=R1 and
// C0<=C1. It is idempotent.
func (r Range) Canonicalize() Range {
	if r.R0 > r.R1 {
		r.R0, r.R1 = r.R1, r.R0
	}
	if r.C0 > r.C1 {
		r.C0, r.C1 = r.C1, r.C0
	}
	return r
}

// IsCanonical reports whether r is already canonical.
func (r Range) IsCanonical() bool {
	return r.R0 <= r.R1 && r.C0 <= r.C1
}

// Contains reports whether (row, col) lies inside the canonical rectangle
// equivalent to r.
func (r Range) Contains(row, col int) bool {
	c := r.Canonicalize()
	return row >= c.R0 && row <= c.R1 && col >= c.C0 && col <= c.C1
}

// IndexToLabel renders (row, col) as an A1-style label: zero-based row
// becomes one-based, zero-based col becomes a letter-block ("A".."Z",
// "AA".."AZ", "BA"...). (0,0) -> "A1"; (26,0) -> "B27"; col 26 -> "AA".
func IndexToLabel(row, col int) string {
	var letters []byte
	n := col + 1
	for n > 0 {
		n--
		letters = append(letters, byte('A'+n%26))
		n /= 26
	}
	for i, j := 0, len(letters)-1; i < j; i, j = i+1, j-1 {
		letters[i], letters[j] = letters[j], letters[i]
	}
	return fmt.Sprintf("%s%d", letters, row+1)
}

// ParseLabel parses an A1-style label such as " B27 " into zero-based
// (row, col). It requires at least one ASCII letter followed by at least
// one ASCII digit and rejects any trailing non-whitespace.
func ParseLabel(s string) (row, col int, err error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return 0, 0, &ErrParse{s, "empty label"}
	}

	i := 0
	for i < len(trimmed) && isAlpha(trimmed[i]) {
		i++
	}
	if i == 0 {
		return 0, 0, &ErrParse{s, "label must start with a letter"}
	}
	letters := trimmed[:i]

	j := i
	for j < len(trimmed) && isDigit(trimmed[j]) {
		j++
	}
	if j == i {
		return 0, 0, &ErrParse{s, "label must contain a row number"}
	}
	digits := trimmed[i:j]

	if strings.TrimSpace(trimmed[j:]) != "" {
		return 0, 0, &ErrParse{s, "trailing characters after label"}
	}

	c := 0
	for k := 0; k < len(letters); k++ {
		up := letters[k]
		if up >= 'a' && up <= 'z' {
			up -= 'a' - 'A'
		}
		c = c*26 + int(up-'A'+1)
	}
	c--

	r := 0
	for k := 0; k < len(digits); k++ {
		r = r*10 + int(digits[k]-'0')
	}
	r--

	if r < 0 {
		return 0, 0, &ErrParse{s, "row must be >= 1"}
	}
	return r, c, nil
}

// ParseRange parses "A1:B2" into a canonical Range.
func ParseRange(s string) (Range, error) {
	trimmed := strings.TrimSpace(s)
	parts := strings.Split(trimmed, ":")
	if len(parts) != 2 {
		return Range{}, &ErrParse{s, "range must contain exactly one ':'"}
	}
	r0, c0, err := ParseLabel(parts[0])
	if err != nil {
		return Range{}, err
	}
	r1, c1, err := ParseLabel(parts[1])
	if err != nil {
		return Range{}, err
	}
	return Range{R0: r0, C0: c0, R1: r1, C1: c1}.Canonicalize(), nil
}

func isAlpha(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
