// Package color implements the 16-cell console color contract behind the
// clrtx/clrbg commands: parsing a name or #RRGGBB hex literal into one of
// the 16 standard console color indices, plus a terminal preview swatch.
package color

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

// ErrInvalidColor is returned for any input that parses to neither a
// known name nor a well-formed #RRGGBB literal.
var ErrInvalidColor = fmt.Errorf("invalid color")

var names = map[string]int{
	"black":   0,
	"blue":    1,
	"green":   2,
	"cyan":    3,
	"red":     4,
	"magenta": 5,
	"yellow":  6,
	"white":   7,
}

// brightThreshold is the per-channel value above which the bright bit
// (index += 8) is set.
const brightThreshold = 0xC0

// Parse converts name (a known color word) or a "#RRGGBB" hex literal
// into a 0-15 console color index. Hex input is quantized to the nearest
// of the 8 base hues by dominant channel, with the bright bit (+8) set
// when any channel exceeds brightThreshold.
func Parse(s string) (int, error) {
	trimmed := strings.ToLower(strings.TrimSpace(s))
	if idx, ok := names[trimmed]; ok {
		return idx, nil
	}
	if strings.HasPrefix(trimmed, "#") && len(trimmed) == 7 {
		r, errR := strconv.ParseUint(trimmed[1:3], 16, 8)
		g, errG := strconv.ParseUint(trimmed[3:5], 16, 8)
		b, errB := strconv.ParseUint(trimmed[5:7], 16, 8)
		if errR == nil && errG == nil && errB == nil {
			return quantize(int(r), int(g), int(b)), nil
		}
	}
	return 0, ErrInvalidColor
}

func quantize(r, g, b int) int {
	base := 0
	switch {
	case r >= g && r >= b && g >= b:
		base = names["red"]
		if g > b {
			base = names["yellow"]
		}
	case r >= g && r >= b:
		base = names["magenta"]
	case g >= r && g >= b && r >= b:
		base = names["green"]
	case g >= r && g >= b:
		base = names["cyan"]
	default:
		base = names["blue"]
	}
	if r == 0 && g == 0 && b == 0 {
		base = names["black"]
	} else if r >= 0xF0 && g >= 0xF0 && b >= 0xF0 {
		base = names["white"]
	}
	if r > brightThreshold || g > brightThreshold || b > brightThreshold {
		base += 8
	}
	return base
}

// ansiAttrs maps a 0-15 console index to the *fatih/color* attribute
// pair that renders it, used only for the status-line preview swatch.
var ansiAttrs = []color.Attribute{
	color.FgBlack, color.FgBlue, color.FgGreen, color.FgCyan,
	color.FgRed, color.FgMagenta, color.FgYellow, color.FgWhite,
	color.FgHiBlack, color.FgHiBlue, color.FgHiGreen, color.FgHiCyan,
	color.FgHiRed, color.FgHiMagenta, color.FgHiYellow, color.FgHiWhite,
}

// PreviewSwatch renders a short colored sample of idx suitable for
// showing in the status line before a color choice is committed to a
// cell. idx outside [0,15] renders as plain text.
func PreviewSwatch(idx int, sample string) string {
	if idx < 0 || idx >= len(ansiAttrs) {
		return sample
	}
	return color.New(ansiAttrs[idx]).Sprint(sample)
}
