package exporter

import (
	"fmt"

	"github.com/NeuralTrust/RiskGate/pkg/domain/securityevent"
)

// Factory builds a configured exporter from loosely typed settings.
type Factory interface {
	Name() string
	ValidateConfig(settings map[string]interface{}) error
	WithSettings(settings map[string]interface{}) (securityevent.Exporter, error)
}

type Definition struct {
	Name     string                 `mapstructure:"name"`
	Settings map[string]interface{} `mapstructure:"settings"`
}

type Locator struct {
	factories map[string]Factory
}

type LocatorOption func(*Locator)

func WithFactory(f Factory) LocatorOption {
	return func(l *Locator) {
		l.factories[f.Name()] = f
	}
}

func NewLocator(opts ...LocatorOption) *Locator {
	l := &Locator{factories: make(map[string]Factory)}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *Locator) Get(def Definition) (securityevent.Exporter, error) {
	f, ok := l.factories[def.Name]
	if !ok {
		return nil, fmt.Errorf("unknown exporter: %s", def.Name)
	}
	if err := f.ValidateConfig(def.Settings); err != nil {
		return nil, err
	}
	return f.WithSettings(def.Settings)
}

// Build resolves every definition, closing the already built exporters when
// one fails.
func (l *Locator) Build(defs []Definition) ([]securityevent.Exporter, error) {
	out := make([]securityevent.Exporter, 0, len(defs))
	for _, def := range defs {
		exp, err := l.Get(def)
		if err != nil {
			for _, built := range out {
				built.Close()
			}
			return nil, fmt.Errorf("exporter %q: %w", def.Name, err)
		}
		out = append(out, exp)
	}
	return out, nil
}
