// Package lipgloss renders prompt segments using the Lipgloss styling library.
package lipgloss

import (
	"io"
	"strconv"

	lipglosslib "github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/promptline"
	"github.com/muesli/termenv"
)

// Compile-time interface verification.
var _ promptline.Renderer = (*Renderer)(nil)

// Renderer implements promptline.Renderer with Lipgloss styles.
type Renderer struct {
	renderer *lipglosslib.Renderer
}

// RendererOption configures a Renderer.
type RendererOption func(*Renderer)

// WithProfile forces the color profile instead of detecting it from the output.
func WithProfile(p termenv.Profile) RendererOption {
	return func(r *Renderer) {
		r.renderer.SetColorProfile(p)
	}
}

// NewRenderer creates a Renderer for output written to w.
func NewRenderer(w io.Writer, opts ...RendererOption) *Renderer {
	r := &Renderer{renderer: lipglosslib.NewRenderer(w)}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render returns the segment text with its style applied. Segments without a
// style are returned unchanged.
func (r *Renderer) Render(seg promptline.Segment) string {
	if seg.Style == nil {
		return seg.Text
	}
	return r.Style(seg.Style).Render(seg.Text)
}

// Style converts s to a Lipgloss style. A nil s yields a style with no attributes.
func (r *Renderer) Style(s *promptline.Style) lipglosslib.Style {
	style := r.renderer.NewStyle().TabWidth(lipglosslib.NoTabConversion)
	if s == nil {
		return style
	}
	if s.Bold {
		style = style.Bold(true)
	}
	if s.Italic {
		style = style.Italic(true)
	}
	if s.Underline {
		style = style.Underline(true)
	}
	if s.Dimmed {
		style = style.Faint(true)
	}
	if s.Foreground.IsSet() {
		style = style.Foreground(Color(s.Foreground))
	}
	if s.Background.IsSet() {
		style = style.Background(Color(s.Background))
	}
	return style
}

// Color converts c to a Lipgloss color. Named colors map to the first eight
// ANSI indices, fixed colors to their index and RGB colors to a hex string.
func Color(c promptline.Color) lipglosslib.TerminalColor {
	switch c.Kind {
	case promptline.ColorNamed:
		return lipglosslib.Color(strconv.Itoa(int(c.Name)))
	case promptline.ColorFixed:
		return lipglosslib.Color(strconv.Itoa(int(c.Index)))
	case promptline.ColorRGB:
		return lipglosslib.Color(c.String())
	default:
		return lipglosslib.NoColor{}
	}
}
