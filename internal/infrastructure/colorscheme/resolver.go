// Package colorscheme detects whether the user prefers a dark or light
// theme, for appearance.theme = "auto".
package colorscheme

import (
	"cmp"
	"slices"
	"strings"
	"sync"

	"github.com/bnema/dockyard/internal/application/port"
)

const (
	// sourceFallback indicates no detector provided the preference.
	sourceFallback = "fallback"
	// sourceConfig indicates the preference came from user config.
	sourceConfig = "config"
)

// Resolver implements port.ColorSchemeResolver over a set of detectors.
type Resolver struct {
	mu        sync.RWMutex
	detectors []port.ColorSchemeDetector
}

// NewResolver creates a resolver with the given detectors.
func NewResolver(detectors ...port.ColorSchemeDetector) *Resolver {
	r := &Resolver{}
	for _, d := range detectors {
		r.RegisterDetector(d)
	}
	return r
}

// DefaultDetectors returns the detectors usable from a terminal.
func DefaultDetectors() []port.ColorSchemeDetector {
	return []port.ColorSchemeDetector{
		NewTerminalDetector(),
		NewEnvDetector(),
		NewGsettingsDetector(),
	}
}

// RegisterDetector adds a detector, keeping the list ordered by priority.
func (r *Resolver) RegisterDetector(detector port.ColorSchemeDetector) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.detectors = append(r.detectors, detector)
	slices.SortStableFunc(r.detectors, func(a, b port.ColorSchemeDetector) int {
		return cmp.Compare(b.Priority(), a.Priority())
	})
}

// Resolve implements port.ColorSchemeResolver. Without any answer from the
// detectors it falls back to dark.
func (r *Resolver) Resolve(configured string) port.ColorSchemePreference {
	switch strings.ToLower(strings.TrimSpace(configured)) {
	case "dark", "prefer-dark":
		return port.ColorSchemePreference{PrefersDark: true, Source: sourceConfig}
	case "light", "prefer-light":
		return port.ColorSchemePreference{PrefersDark: false, Source: sourceConfig}
	}

	r.mu.RLock()
	detectors := slices.Clone(r.detectors)
	r.mu.RUnlock()

	for _, detector := range detectors {
		if !detector.Available() {
			continue
		}
		if prefersDark, ok := detector.Detect(); ok {
			return port.ColorSchemePreference{PrefersDark: prefersDark, Source: detector.Name()}
		}
	}

	return port.ColorSchemePreference{PrefersDark: true, Source: sourceFallback}
}

var _ port.ColorSchemeResolver = (*Resolver)(nil)
