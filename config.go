package promptline

import (
	"errors"
	"io"
)

// ErrInvalidConfig is returned when a configuration file is not a set of module tables.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the settings of every module, keyed by module name.
type Config map[string]ModuleConfig

// Module returns the settings for the named module. Modules without a table
// get an empty ModuleConfig so that their defaults apply.
func (c Config) Module(name string) ModuleConfig {
	if mc, ok := c[name]; ok {
		return mc
	}
	return ModuleConfig{Name: name}
}

// ModuleConfig holds the raw values of one module's table.
// Values are strings, booleans, integers, floats, tables (map[string]any), or
// slices thereof, as produced by a ConfigLoader.
type ModuleConfig struct {
	Name   string
	Values map[string]any
}

// Bool returns the boolean at key. It reports false if the key is absent or not a boolean.
func (m ModuleConfig) Bool(key string) (bool, bool) {
	v, ok := m.Values[key].(bool)
	return v, ok
}

// String returns the string at key. It reports false if the key is absent or not a string.
func (m ModuleConfig) String(key string) (string, bool) {
	v, ok := m.Values[key].(string)
	return v, ok
}

// Int returns the integer at key. It reports false if the key is absent or not an integer.
func (m ModuleConfig) Int(key string) (int64, bool) {
	v, ok := m.Values[key].(int64)
	return v, ok
}

// Style parses the style specification at key. It returns nil if the key is
// absent, not a string, or not a valid specification.
func (m ModuleConfig) Style(key string) *Style {
	spec, ok := m.String(key)
	if !ok {
		return nil
	}
	return ParseStyle(spec)
}

// Segment decodes the segment at key. It reports false, with no error, if the
// key is absent. Decode failures are returned as a *DecodeError whose Path is
// the dotted key.
func (m ModuleConfig) Segment(key string) (Segment, bool, error) {
	node, ok := m.Values[key]
	if !ok {
		return Segment{}, false, nil
	}
	seg, err := DecodeSegment(node)
	if err != nil {
		var de *DecodeError
		if errors.As(err, &de) {
			de.Path = m.path(key)
		}
		return Segment{}, true, err
	}
	return seg, true, nil
}

func (m ModuleConfig) path(key string) string {
	if m.Name == "" {
		return key
	}
	return m.Name + "." + key
}

// ConfigLoader reads prompt configuration.
type ConfigLoader interface {
	// Load reads the configuration file at path. A missing file yields an empty Config.
	Load(path string) (Config, error)
	// Decode reads configuration from r.
	Decode(r io.Reader) (Config, error)
}
