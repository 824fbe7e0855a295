// Package git provides a prompt module showing the current git branch.
package git

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/fwojciec/promptline"
)

// Compile-time interface verification.
var _ promptline.GitRunner = (*Runner)(nil)

// Runner executes git commands via shell.
type Runner struct{}

// NewRunner creates a new git runner.
func NewRunner() *Runner {
	return &Runner{}
}

// Branch returns the branch checked out in the repository containing dir.
// On a detached HEAD it returns the abbreviated commit hash instead.
func (r *Runner) Branch(ctx context.Context, dir string) (string, error) {
	branch, err := r.run(ctx, dir, "symbolic-ref", "--short", "-q", "HEAD")
	if err == nil {
		return branch, nil
	}
	hash, herr := r.run(ctx, dir, "rev-parse", "--short", "HEAD")
	if herr != nil {
		return "", errors.Join(err, herr)
	}
	return hash, nil
}

func (r *Runner) run(ctx context.Context, dir string, args ...string) (string, error) {
	args = append([]string{"-C", dir}, args...)
	cmd := exec.CommandContext(ctx, "git", args...)
	output, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return "", fmt.Errorf("git %s failed: %s", args[2], strings.TrimSpace(string(exitErr.Stderr)))
		}
		return "", fmt.Errorf("git %s failed: %w", args[2], err)
	}
	out := strings.TrimSpace(string(output))
	if out == "" {
		return "", fmt.Errorf("git %s: empty output", args[2])
	}
	return out, nil
}
