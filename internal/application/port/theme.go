package port

import "github.com/bnema/dockyard/internal/domain/entity"

// ThemeProvider resolves theme names to palettes.
type ThemeProvider interface {
	// Theme returns the named theme, or false when the name is unknown.
	Theme(name string) (entity.Theme, bool)

	// DefaultTheme returns the theme a fresh store starts with.
	DefaultTheme() entity.Theme
}
