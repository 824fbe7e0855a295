// Package toml loads prompt configuration from TOML files.
package toml

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	tomllib "github.com/BurntSushi/toml"
	"github.com/fwojciec/promptline"
	"github.com/rs/zerolog"
)

// Compile-time interface verification.
var _ promptline.ConfigLoader = (*Loader)(nil)

// EnvConfigPath names the environment variable that overrides the config location.
const EnvConfigPath = "PROMPTLINE_CONFIG"

// DefaultPath returns the configuration file location: $PROMPTLINE_CONFIG if
// set, otherwise ~/.config/promptline.toml.
func DefaultPath() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "promptline.toml"
	}
	return filepath.Join(home, ".config", "promptline.toml")
}

// Loader reads promptline configuration from TOML.
type Loader struct {
	logger zerolog.Logger
}

// NewLoader creates a new Loader that reports ignored styles to logger.
func NewLoader(logger zerolog.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load reads the TOML file at path. A missing file yields an empty Config.
func (l *Loader) Load(path string) (promptline.Config, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		l.logger.Debug().Str("path", path).Msg("config file not found, using defaults")
		return promptline.Config{}, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cfg, err := l.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Decode reads TOML from r. Every top-level key must be a table named after a module.
func (l *Loader) Decode(r io.Reader) (promptline.Config, error) {
	var raw map[string]any
	if _, err := tomllib.NewDecoder(r).Decode(&raw); err != nil {
		var perr tomllib.ParseError
		if errors.As(err, &perr) {
			return nil, fmt.Errorf("parse config: %s", perr.ErrorWithPosition())
		}
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg := make(promptline.Config, len(raw))
	for _, name := range sortedKeys(raw) {
		values, ok := raw[name].(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: %q must be a table", promptline.ErrInvalidConfig, name)
		}
		mc := promptline.ModuleConfig{Name: name, Values: values}
		l.checkStyles(mc)
		cfg[name] = mc
	}
	return cfg, nil
}

// checkStyles logs style specifications that will be ignored. A malformed
// style is not an error: a module style falls back to the module default and
// any other style leaves its segment unstyled.
func (l *Loader) checkStyles(mc promptline.ModuleConfig) {
	for _, key := range sortedKeys(mc.Values) {
		switch v := mc.Values[key].(type) {
		case string:
			switch {
			case key == "style":
				l.checkStyle(mc.Name+"."+key, v, "style disabled or not recognised, using module default")
			case isStyleKey(key):
				l.checkStyle(mc.Name+"."+key, v, "style disabled or not recognised, rendering unstyled")
			}
		case map[string]any:
			if spec, ok := v["style"].(string); ok {
				l.checkStyle(mc.Name+"."+key+".style", spec, "style disabled or not recognised, rendering unstyled")
			}
		}
	}
}

func (l *Loader) checkStyle(path, spec, msg string) {
	if promptline.ParseStyle(spec) != nil {
		return
	}
	l.logger.Debug().Str("key", path).Str("style", spec).Msg(msg)
}

func isStyleKey(key string) bool {
	return strings.HasSuffix(key, "_style")
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
