package mock

import (
	"io"

	"github.com/fwojciec/promptline"
)

// Compile-time interface verification.
var _ promptline.ConfigLoader = (*ConfigLoader)(nil)

// ConfigLoader is a mock implementation of promptline.ConfigLoader.
type ConfigLoader struct {
	LoadFn   func(path string) (promptline.Config, error)
	DecodeFn func(r io.Reader) (promptline.Config, error)
}

func (l *ConfigLoader) Load(path string) (promptline.Config, error) {
	return l.LoadFn(path)
}

func (l *ConfigLoader) Decode(r io.Reader) (promptline.Config, error) {
	return l.DecodeFn(r)
}
