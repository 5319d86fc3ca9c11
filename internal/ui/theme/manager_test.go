package theme

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dockyard/internal/application/port"
	"github.com/bnema/dockyard/internal/application/port/mocks"
	"github.com/bnema/dockyard/internal/infrastructure/config"
)

var _ port.ThemeProvider = (*Manager)(nil)

func TestNewManager_WithNilConfig(t *testing.T) {
	manager := NewManager(context.Background(), nil)

	theme := manager.DefaultTheme()
	assert.Equal(t, Dark, theme.Name)
	assert.Equal(t, "#13171c", theme.Color(ColorBackground, ""))
	assert.Equal(t, "#58a6ff", theme.Color(ColorPrimary, ""))
	assert.Equal(t, 8, theme.Radius)
	assert.Equal(t, 8, theme.Spacing)
	assert.Equal(t, 1, theme.BorderWidth)
}

func TestNewManager_LightScheme(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Appearance.Theme = Light

	manager := NewManager(context.Background(), cfg)

	assert.Equal(t, Light, manager.Scheme())
	assert.Equal(t, "#f4f6fb", manager.DefaultTheme().Color(ColorBackground, ""))
}

func TestTheme_PaletteOverrides(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Appearance.DarkPalette.Primary = "#ff0066"
	cfg.Appearance.FontFamily = "Iosevka"

	manager := NewManager(context.Background(), cfg)

	dark, ok := manager.Theme(Dark)
	require.True(t, ok)
	assert.Equal(t, "#ff0066", dark.Color(ColorPrimary, ""))
	assert.Equal(t, "#1d232c", dark.Color(ColorSurface, ""), "unset keys keep defaults")
	assert.Equal(t, "Iosevka", dark.FontFamily)

	light, ok := manager.Theme(Light)
	require.True(t, ok)
	assert.Equal(t, "#2563eb", light.Color(ColorPrimary, ""), "dark overrides leave light alone")
}

func TestTheme_UnknownName(t *testing.T) {
	manager := NewManager(context.Background(), nil)
	_, ok := manager.Theme("neon")
	assert.False(t, ok)
}

func TestUpdate_ReplacesPalettes(t *testing.T) {
	manager := NewManager(context.Background(), nil)

	cfg := config.DefaultConfig()
	cfg.Appearance.Theme = Light
	cfg.Appearance.LightPalette.Danger = "#aa0000"
	manager.Update(cfg)

	assert.Equal(t, Light, manager.Scheme())
	light, _ := manager.Theme(Light)
	assert.Equal(t, "#aa0000", light.Color(ColorDanger, ""))
}

func TestPaletteColors_HasEveryKey(t *testing.T) {
	colors := DefaultLightPalette().Colors()
	for _, key := range []string{
		ColorBackground, ColorSurface, ColorMuted, ColorBorder, ColorPrimary,
		ColorText, ColorTextMuted, ColorDanger, ColorHighlight,
	} {
		assert.NotEmpty(t, colors[key], key)
	}
}

func TestCoalesce(t *testing.T) {
	assert.Equal(t, "b", Coalesce("", "b", "c"))
	assert.Equal(t, "", Coalesce("", ""))
}

func TestNewManager_AutoScheme(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Appearance.Theme = Auto

	resolver := mocks.NewMockColorSchemeResolver(t)
	resolver.EXPECT().Resolve(Auto).Return(port.ColorSchemePreference{PrefersDark: false, Source: "COLORFGBG"}).Once()

	manager := NewManager(context.Background(), cfg, WithSchemeResolver(resolver))
	assert.Equal(t, Light, manager.Scheme())
}

func TestNewManager_AutoWithoutResolverStartsDark(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Appearance.Theme = Auto

	manager := NewManager(context.Background(), cfg)
	assert.Equal(t, Dark, manager.Scheme())
}
