package git

import (
	"context"
	"os"

	"github.com/fwojciec/promptline"
	"github.com/rs/zerolog"
)

// Compile-time interface verification.
var _ promptline.Module = (*Module)(nil)

// Name is the configuration table of the module.
const Name = "git_branch"

// DefaultPrefix is shown before the branch name unless configured otherwise.
const DefaultPrefix = "on "

// DefaultStyle is used when the module has no valid style configured.
var DefaultStyle = promptline.Style{
	Bold:       true,
	Foreground: promptline.Named(promptline.Purple),
}

// Module shows the branch of the repository containing the working directory.
// It is hidden outside a repository.
type Module struct {
	logger zerolog.Logger
	runner promptline.GitRunner
	getwd  func() (string, error)
}

// ModuleOption configures a Module.
type ModuleOption func(*Module)

// WithGetwd replaces the working directory lookup.
func WithGetwd(fn func() (string, error)) ModuleOption {
	return func(m *Module) {
		m.getwd = fn
	}
}

// NewModule creates a new Module that queries git through runner.
func NewModule(logger zerolog.Logger, runner promptline.GitRunner, opts ...ModuleOption) *Module {
	m := &Module{
		logger: logger,
		runner: runner,
		getwd:  os.Getwd,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Name returns the configuration table name.
func (m *Module) Name() string {
	return Name
}

// Segments returns the prefix and branch segments, or nil outside a repository.
func (m *Module) Segments(ctx context.Context, cfg promptline.ModuleConfig) ([]promptline.Segment, error) {
	if disabled, _ := cfg.Bool("disabled"); disabled {
		return nil, nil
	}

	prefix, ok, err := cfg.Segment("prefix")
	if err != nil {
		return nil, err
	}
	if !ok {
		prefix = promptline.Segment{Text: DefaultPrefix}
	}

	dir, err := m.getwd()
	if err != nil {
		m.logger.Debug().Err(err).Msg("could not read working directory")
		return nil, nil
	}
	branch, err := m.runner.Branch(ctx, dir)
	if err != nil {
		m.logger.Debug().Err(err).Str("dir", dir).Msg("no git branch")
		return nil, nil
	}

	style := cfg.Style("style")
	if style == nil {
		def := DefaultStyle
		style = &def
	}

	return []promptline.Segment{
		prefix,
		{Text: branch, Style: style},
	}, nil
}
