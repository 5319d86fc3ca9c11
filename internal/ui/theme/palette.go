// Package theme resolves the dark and light palettes handed to the
// arrangement store, merging configured overrides over the built-in colors.
package theme

import (
	"github.com/bnema/dockyard/internal/infrastructure/config"
)

// Theme names.
const (
	Dark  = "dark"
	Light = "light"
	// Auto is only a config value; it resolves to Dark or Light.
	Auto = "auto"
)

// Color keys of entity.Theme.Colors.
const (
	ColorBackground = "bg"
	ColorSurface    = "surface"
	ColorMuted      = "muted"
	ColorBorder     = "border"
	ColorPrimary    = "primary"
	ColorText       = "text"
	ColorTextMuted  = "textMuted"
	ColorDanger     = "danger"
	ColorHighlight  = "highlight"
)

// Palette holds semantic color tokens for theming.
type Palette struct {
	Background string // Main background color
	Surface    string // Panels and tab strips
	Muted      string // Inactive tabs and window chrome
	Border     string // Dividers and split handles
	Primary    string // Active tab, drop previews
	Text       string
	TextMuted  string
	Danger     string // Close buttons
	Highlight  string // Hovered drop zone
}

// DefaultDarkPalette returns the default dark theme palette.
func DefaultDarkPalette() Palette {
	return Palette{
		Background: "#13171c",
		Surface:    "#1d232c",
		Muted:      "#242c37",
		Border:     "#2f3845",
		Primary:    "#58a6ff",
		Text:       "#e5ecf5",
		TextMuted:  "#9aa5b5",
		Danger:     "#f47067",
		Highlight:  "#304155",
	}
}

// DefaultLightPalette returns the default light theme palette.
func DefaultLightPalette() Palette {
	return Palette{
		Background: "#f4f6fb",
		Surface:    "#ffffff",
		Muted:      "#e8edf5",
		Border:     "#cdd6e5",
		Primary:    "#2563eb",
		Text:       "#0f172a",
		TextMuted:  "#475569",
		Danger:     "#dc2626",
		Highlight:  "#cfd9ee",
	}
}

// PaletteFromConfig creates a Palette from config values, filling missing values with defaults.
func PaletteFromConfig(cfg *config.ColorPalette, isDark bool) Palette {
	defaults := DefaultLightPalette()
	if isDark {
		defaults = DefaultDarkPalette()
	}
	if cfg == nil {
		return defaults
	}

	return Palette{
		Background: Coalesce(cfg.Background, defaults.Background),
		Surface:    Coalesce(cfg.Surface, defaults.Surface),
		Muted:      Coalesce(cfg.Muted, defaults.Muted),
		Border:     Coalesce(cfg.Border, defaults.Border),
		Primary:    Coalesce(cfg.Primary, defaults.Primary),
		Text:       Coalesce(cfg.Text, defaults.Text),
		TextMuted:  Coalesce(cfg.TextMuted, defaults.TextMuted),
		Danger:     Coalesce(cfg.Danger, defaults.Danger),
		Highlight:  Coalesce(cfg.Highlight, defaults.Highlight),
	}
}

// Coalesce returns the first non-empty string.
func Coalesce(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// Colors returns the palette keyed the way renderers look colors up.
func (p Palette) Colors() map[string]string {
	return map[string]string{
		ColorBackground: p.Background,
		ColorSurface:    p.Surface,
		ColorMuted:      p.Muted,
		ColorBorder:     p.Border,
		ColorPrimary:    p.Primary,
		ColorText:       p.Text,
		ColorTextMuted:  p.TextMuted,
		ColorDanger:     p.Danger,
		ColorHighlight:  p.Highlight,
	}
}
