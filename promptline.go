// Package promptline provides domain types for building styled terminal prompts.
package promptline

import (
	"context"
	"errors"
	"strings"
)

// ErrModuleNotFound is returned when a named module is not registered.
var ErrModuleNotFound = errors.New("module not found")

// Module produces the segments of one prompt section.
type Module interface {
	// Name returns the configuration table name of the module.
	Name() string
	// Segments returns the segments to display, or nil if the module has
	// nothing to show in the current environment.
	Segments(ctx context.Context, cfg ModuleConfig) ([]Segment, error)
}

// Modules is an ordered list of prompt modules.
type Modules []Module

// ByName returns the module registered under name.
func (ms Modules) ByName(name string) (Module, error) {
	for _, m := range ms {
		if m.Name() == name {
			return m, nil
		}
	}
	return nil, ErrModuleNotFound
}

// Renderer turns segments into terminal output.
type Renderer interface {
	// Render returns the text of seg with its style applied.
	Render(seg Segment) string
}

// RenderAll renders segs in order and concatenates the results.
func RenderAll(r Renderer, segs []Segment) string {
	var sb strings.Builder
	for _, seg := range segs {
		sb.WriteString(r.Render(seg))
	}
	return sb.String()
}

// GitRunner provides access to git repository state.
type GitRunner interface {
	// Branch returns the name of the branch checked out in the repository containing dir.
	Branch(ctx context.Context, dir string) (string, error)
}
