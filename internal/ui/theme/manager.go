package theme

import (
	"context"
	"sync"

	"github.com/bnema/dockyard/internal/application/port"
	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/infrastructure/config"
	"github.com/bnema/dockyard/internal/logging"
)

// Manager resolves theme names to palettes. It implements port.ThemeProvider
// and is safe to update from a config watcher while the store reads it.
type Manager struct {
	mu           sync.RWMutex
	scheme       string // "dark" or "light", the startup theme
	darkPalette  Palette
	lightPalette Palette
	fontFamily   string
	radius       int
	spacing      int
	borderWidth  int
	resolver     port.ColorSchemeResolver
}

// Option configures a Manager.
type Option func(*Manager)

// WithSchemeResolver resolves appearance.theme = "auto" to dark or light.
// Without a resolver "auto" starts dark.
func WithSchemeResolver(r port.ColorSchemeResolver) Option {
	return func(m *Manager) { m.resolver = r }
}

// NewManager creates a new theme manager from configuration. A nil config
// yields the built-in dark theme.
func NewManager(ctx context.Context, cfg *config.Config, opts ...Option) *Manager {
	m := &Manager{}
	for _, opt := range opts {
		opt(m)
	}
	m.apply(cfg)

	logging.FromContext(ctx).Debug().
		Str("scheme", m.scheme).
		Str("font_family", m.fontFamily).
		Msg("theme manager initialized")
	return m
}

// Update replaces palettes and metrics after a configuration reload.
func (m *Manager) Update(cfg *config.Config) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.apply(cfg)
}

func (m *Manager) apply(cfg *config.Config) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	a := cfg.Appearance

	m.scheme = Dark
	switch a.Theme {
	case Light:
		m.scheme = Light
	case Auto:
		if m.resolver != nil && !m.resolver.Resolve(a.Theme).PrefersDark {
			m.scheme = Light
		}
	}
	m.darkPalette = PaletteFromConfig(&a.DarkPalette, true)
	m.lightPalette = PaletteFromConfig(&a.LightPalette, false)
	m.fontFamily = a.FontFamily
	m.radius = a.Radius
	m.spacing = a.Spacing
	m.borderWidth = a.BorderWidth
}

// Scheme returns the configured startup theme name.
func (m *Manager) Scheme() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.scheme
}

// Theme implements port.ThemeProvider.
func (m *Manager) Theme(name string) (entity.Theme, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var p Palette
	switch name {
	case Dark:
		p = m.darkPalette
	case Light:
		p = m.lightPalette
	default:
		return entity.Theme{}, false
	}
	return entity.Theme{
		Name:        name,
		Colors:      p.Colors(),
		FontFamily:  m.fontFamily,
		Radius:      m.radius,
		Spacing:     m.spacing,
		BorderWidth: m.borderWidth,
	}, true
}

// DefaultTheme implements port.ThemeProvider.
func (m *Manager) DefaultTheme() entity.Theme {
	t, _ := m.Theme(m.Scheme())
	return t
}
