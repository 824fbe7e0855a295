// Package directory provides a prompt module showing the working directory.
package directory

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/promptline"
	"github.com/rs/zerolog"
)

// Compile-time interface verification.
var _ promptline.Module = (*Module)(nil)

// Name is the configuration table of the module.
const Name = "directory"

// Defaults used when the module table leaves a setting out.
const (
	DefaultPrefix           = "in "
	DefaultTruncationLength = 3
)

// homeSymbol replaces the home directory at the start of the path.
const homeSymbol = "~"

// DefaultStyle is used when the module has no valid style configured.
var DefaultStyle = promptline.Style{
	Bold:       true,
	Foreground: promptline.Named(promptline.Cyan),
}

// Module shows the current directory, with the home directory contracted to
// "~" and only the last truncation_length components kept.
type Module struct {
	logger zerolog.Logger
	getwd  func() (string, error)
	home   func() (string, error)
}

// ModuleOption configures a Module.
type ModuleOption func(*Module)

// WithGetwd replaces the working directory lookup.
func WithGetwd(fn func() (string, error)) ModuleOption {
	return func(m *Module) {
		m.getwd = fn
	}
}

// WithHomeDir replaces the home directory lookup.
func WithHomeDir(fn func() (string, error)) ModuleOption {
	return func(m *Module) {
		m.home = fn
	}
}

// NewModule creates a new Module.
func NewModule(logger zerolog.Logger, opts ...ModuleOption) *Module {
	m := &Module{
		logger: logger,
		getwd:  os.Getwd,
		home:   os.UserHomeDir,
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

// Segments returns the prefix and directory segments, or nil if the module is hidden.
func (m *Module) Segments(_ context.Context, cfg promptline.ModuleConfig) ([]promptline.Segment, error) {
	if disabled, _ := cfg.Bool("disabled"); disabled {
		return nil, nil
	}

	length := int64(DefaultTruncationLength)
	if v, ok := cfg.Int("truncation_length"); ok {
		if v < 0 {
			return nil, fmt.Errorf("%w: %s.truncation_length must not be negative, got %d", promptline.ErrInvalidConfig, Name, v)
		}
		length = v
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
	home, err := m.home()
	if err != nil {
		m.logger.Debug().Err(err).Msg("could not read home directory")
		home = ""
	}

	style := cfg.Style("style")
	if style == nil {
		def := DefaultStyle
		style = &def
	}

	text := Truncate(ContractHome(filepath.ToSlash(dir), filepath.ToSlash(home)), int(length))
	return []promptline.Segment{
		prefix,
		{Text: text, Style: style},
	}, nil
}

// ContractHome replaces a leading home directory in dir with "~".
func ContractHome(dir, home string) string {
	home = strings.TrimSuffix(home, "/")
	if home == "" {
		return dir
	}
	if dir == home {
		return homeSymbol
	}
	if rest, ok := strings.CutPrefix(dir, home+"/"); ok {
		return homeSymbol + "/" + rest
	}
	return dir
}

// Truncate keeps the last n components of a slash-separated path.
// Paths with n or fewer components, and n of zero, are returned unchanged.
func Truncate(dir string, n int) string {
	if n <= 0 {
		return dir
	}
	parts := strings.FieldsFunc(dir, func(r rune) bool { return r == '/' })
	if len(parts) <= n {
		return dir
	}
	return strings.Join(parts[len(parts)-n:], "/")
}
