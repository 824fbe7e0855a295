package promptline

import (
	"fmt"
	"strconv"
	"strings"
)

// ColorKind identifies which variant a Color holds.
type ColorKind int

// Color kinds. ColorNone is the zero value and means no color is set.
const (
	ColorNone ColorKind = iota
	ColorNamed
	ColorFixed
	ColorRGB
)

// NamedColor is one of the eight base terminal hues.
type NamedColor int

// Named colors, in ANSI order.
const (
	Black NamedColor = iota
	Red
	Green
	Yellow
	Blue
	Purple
	Cyan
	White
)

var colorNames = [...]string{"black", "red", "green", "yellow", "blue", "purple", "cyan", "white"}

// String returns the lowercase name of the color.
func (n NamedColor) String() string {
	if n < 0 || int(n) >= len(colorNames) {
		return fmt.Sprintf("NamedColor(%d)", int(n))
	}
	return colorNames[n]
}

// Color is a terminal color value. Only the fields relevant to Kind are meaningful.
type Color struct {
	Kind    ColorKind
	Name    NamedColor // ColorNamed
	Index   uint8      // ColorFixed
	R, G, B uint8      // ColorRGB
}

// Named returns a Color for one of the eight base hues.
func Named(n NamedColor) Color {
	return Color{Kind: ColorNamed, Name: n}
}

// Fixed returns an 8-bit indexed Color.
func Fixed(index uint8) Color {
	return Color{Kind: ColorFixed, Index: index}
}

// RGB returns a 24-bit Color.
func RGB(r, g, b uint8) Color {
	return Color{Kind: ColorRGB, R: r, G: g, B: b}
}

// IsSet reports whether c holds a color.
func (c Color) IsSet() bool {
	return c.Kind != ColorNone
}

// String returns c as a token ParseColor accepts, or an empty string if c is unset.
func (c Color) String() string {
	switch c.Kind {
	case ColorNamed:
		return c.Name.String()
	case ColorFixed:
		return strconv.Itoa(int(c.Index))
	case ColorRGB:
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	default:
		return ""
	}
}

// hexColorLen is the number of hex digits following '#' in an RGB token.
const hexColorLen = 6

// ParseColor parses a single color token. Three forms are accepted, tried in order:
//   - "#RRGGBB", a hash followed by six hex digits
//   - an integer 0-255, an indexed terminal color
//   - one of the eight color names, optionally prefixed with "bright-"
//
// Names are matched case-insensitively. The bright variants map to indices 8-15.
// ParseColor reports false if token matches none of these forms.
func ParseColor(token string) (Color, bool) {
	if strings.HasPrefix(token, "#") {
		return parseHexColor(token[1:])
	}

	if n, err := strconv.ParseUint(token, 10, 8); err == nil {
		return Fixed(uint8(n)), true
	}

	name := strings.ToLower(token)
	bright := false
	if rest, ok := strings.CutPrefix(name, "bright-"); ok {
		name = rest
		bright = true
	}
	for i, candidate := range colorNames {
		if name != candidate {
			continue
		}
		if bright {
			return Fixed(uint8(8 + i)), true
		}
		return Named(NamedColor(i)), true
	}
	return Color{}, false
}

// parseHexColor decodes the six hex digits that follow '#'. Anything past the
// sixth digit is ignored.
func parseHexColor(digits string) (Color, bool) {
	if len(digits) < hexColorLen {
		return Color{}, false
	}
	var rgb [3]uint8
	for i := range rgb {
		v, err := strconv.ParseUint(digits[i*2:i*2+2], 16, 8)
		if err != nil {
			return Color{}, false
		}
		rgb[i] = uint8(v)
	}
	return RGB(rgb[0], rgb[1], rgb[2]), true
}
