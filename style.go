package promptline

import "strings"

// Style is the set of visual attributes applied to a segment.
// The zero value is a valid style that changes nothing.
type Style struct {
	Bold       bool
	Italic     bool
	Underline  bool
	Dimmed     bool
	Foreground Color // Unset when Foreground.Kind is ColorNone
	Background Color // Unset when Background.Kind is ColorNone
}

// Style specification keywords.
const (
	styleNone      = "none"
	styleBold      = "bold"
	styleItalic    = "italic"
	styleUnderline = "underline"
	styleDimmed    = "dimmed"

	prefixFg = "fg:"
	prefixBg = "bg:"
)

// ParseStyle parses a whitespace-separated style specification such as
// "bold fg:green bg:#303030". Tokens are applied left to right:
//   - "bold", "italic", "underline" and "dimmed" switch on that attribute
//   - "fg:<color>" or a bare "<color>" sets the foreground (see ParseColor)
//   - "bg:<color>" sets the background
//   - "none" discards the whole style
//
// Later colors replace earlier ones on the same channel. Matching is case-insensitive.
//
// ParseStyle returns nil if the specification contains "none" or any token it
// does not recognise. Tokens after that point are not examined. An empty
// specification yields a non-nil zero Style.
func ParseStyle(spec string) *Style {
	var style Style
	for _, token := range strings.Fields(spec) {
		if !style.apply(strings.ToLower(token)) {
			return nil
		}
	}
	return &style
}

// apply folds a single lowercased token into s. It reports false when the
// token nullifies the style.
func (s *Style) apply(token string) bool {
	channel := &s.Foreground
	if rest, ok := strings.CutPrefix(token, prefixFg); ok {
		token = rest
	} else if rest, ok := strings.CutPrefix(token, prefixBg); ok {
		token = rest
		channel = &s.Background
	}

	switch token {
	case styleUnderline:
		s.Underline = true
	case styleBold:
		s.Bold = true
	case styleItalic:
		s.Italic = true
	case styleDimmed:
		s.Dimmed = true
	case styleNone:
		return false
	default:
		c, ok := ParseColor(token)
		if !ok {
			return false
		}
		*channel = c
	}
	return true
}

// String returns the style in specification form, with attributes first and
// colors last. Parsing the result yields an equal Style.
func (s Style) String() string {
	var tokens []string
	if s.Bold {
		tokens = append(tokens, styleBold)
	}
	if s.Italic {
		tokens = append(tokens, styleItalic)
	}
	if s.Underline {
		tokens = append(tokens, styleUnderline)
	}
	if s.Dimmed {
		tokens = append(tokens, styleDimmed)
	}
	if s.Foreground.IsSet() {
		tokens = append(tokens, prefixFg+s.Foreground.String())
	}
	if s.Background.IsSet() {
		tokens = append(tokens, prefixBg+s.Background.String())
	}
	return strings.Join(tokens, " ")
}
