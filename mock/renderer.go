package mock

import "github.com/fwojciec/promptline"

// Compile-time interface verification.
var _ promptline.Renderer = (*Renderer)(nil)

// Renderer is a mock implementation of promptline.Renderer.
type Renderer struct {
	RenderFn func(seg promptline.Segment) string
}

func (r *Renderer) Render(seg promptline.Segment) string {
	return r.RenderFn(seg)
}
