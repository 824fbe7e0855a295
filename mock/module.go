// Package mock provides test doubles for promptline interfaces.
package mock

import (
	"context"

	"github.com/fwojciec/promptline"
)

// Compile-time interface verification.
var _ promptline.Module = (*Module)(nil)

// Module is a mock implementation of promptline.Module.
type Module struct {
	NameValue  string
	SegmentsFn func(ctx context.Context, cfg promptline.ModuleConfig) ([]promptline.Segment, error)
}

func (m *Module) Name() string {
	return m.NameValue
}

func (m *Module) Segments(ctx context.Context, cfg promptline.ModuleConfig) ([]promptline.Segment, error) {
	return m.SegmentsFn(ctx, cfg)
}
