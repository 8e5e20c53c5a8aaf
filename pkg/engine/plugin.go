package engine

import (
	"sort"

	"github.com/pkg/errors"
)

// Plugin contributes a named set of matcher types to an engine.
type Plugin interface {
	// Name returns the plugin's unique name.
	Name() string

	// Factories returns the matcher types the plugin provides,
	// keyed by type name.
	Factories() map[string]Factory
}

// Install registers the factories of every plugin. Installation
// stops at the first conflict; types registered before the
// conflict remain registered.
func (e *DefaultEngine) Install(plugins ...Plugin) error {
	for _, p := range plugins {
		if p == nil {
			return errors.New("plugin cannot be nil")
		}
		if p.Name() == "" {
			return errors.New("plugin name cannot be empty")
		}

		factories := p.Factories()
		types := make([]string, 0, len(factories))
		for matcherType := range factories {
			types = append(types, matcherType)
		}
		sort.Strings(types)

		for _, matcherType := range types {
			if err := e.Register(matcherType, factories[matcherType]); err != nil {
				return errors.Wrapf(err, "install plugin %q", p.Name())
			}
		}
	}
	return nil
}
