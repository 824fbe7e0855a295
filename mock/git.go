package mock

import (
	"context"

	"github.com/fwojciec/promptline"
)

// Compile-time interface verification.
var _ promptline.GitRunner = (*GitRunner)(nil)

// GitRunner is a mock implementation of promptline.GitRunner.
type GitRunner struct {
	BranchFn func(ctx context.Context, dir string) (string, error)
}

func (g *GitRunner) Branch(ctx context.Context, dir string) (string, error) {
	return g.BranchFn(ctx, dir)
}
