// Package hostname provides a prompt module showing the system host name.
package hostname

import (
	"context"
	"os"
	"unicode/utf8"

	"github.com/fwojciec/promptline"
	"github.com/rs/zerolog"
)

// Compile-time interface verification.
var _ promptline.Module = (*Module)(nil)

// Name is the configuration table of the module.
const Name = "hostname"

// EnvSSHConnection is set by sshd for remote sessions.
const EnvSSHConnection = "SSH_CONNECTION"

// DefaultPrefix is shown before the host name unless configured otherwise.
const DefaultPrefix = "on "

// DefaultStyle is used when the module has no valid style configured.
var DefaultStyle = promptline.Style{
	Bold:       true,
	Dimmed:     true,
	Foreground: promptline.Named(promptline.Green),
}

// Module shows the host name. It is displayed only when all of these hold:
//   - hostname.disabled is absent or false
//   - hostname.ssh_only is false, or $SSH_CONNECTION is set
type Module struct {
	logger   zerolog.Logger
	getenv   func(string) string
	hostname func() (string, error)
}

// ModuleOption configures a Module.
type ModuleOption func(*Module)

// WithGetenv replaces the environment lookup.
func WithGetenv(fn func(string) string) ModuleOption {
	return func(m *Module) {
		m.getenv = fn
	}
}

// WithHostname replaces the host name lookup.
func WithHostname(fn func() (string, error)) ModuleOption {
	return func(m *Module) {
		m.hostname = fn
	}
}

// NewModule creates a new Module.
func NewModule(logger zerolog.Logger, opts ...ModuleOption) *Module {
	m := &Module{
		logger:   logger,
		getenv:   os.Getenv,
		hostname: os.Hostname,
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

// Segments returns the prefix and host name segments, or nil if the module is hidden.
func (m *Module) Segments(_ context.Context, cfg promptline.ModuleConfig) ([]promptline.Segment, error) {
	if disabled, _ := cfg.Bool("disabled"); disabled {
		return nil, nil
	}

	sshOnly, ok := cfg.Bool("ssh_only")
	if !ok {
		sshOnly = true
	}
	if sshOnly && m.getenv(EnvSSHConnection) == "" {
		return nil, nil
	}

	prefix, ok, err := cfg.Segment("prefix")
	if err != nil {
		return nil, err
	}
	if !ok {
		prefix = promptline.Segment{Text: DefaultPrefix}
	}

	host, err := m.hostname()
	if err != nil {
		m.logger.Debug().Err(err).Msg("could not read host name")
		return nil, nil
	}
	if !utf8.ValidString(host) {
		m.logger.Debug().Str("hostname", host).Msg("host name is not valid UTF-8")
		return nil, nil
	}

	style := cfg.Style("style")
	if style == nil {
		def := DefaultStyle
		style = &def
	}

	return []promptline.Segment{
		prefix,
		{Text: host, Style: style},
	}, nil
}
