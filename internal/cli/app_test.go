package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dockyard/internal/application/arrangement"
	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/infrastructure/config"
)

func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(home, "state"))
	t.Setenv("DOCKYARD_LOG_LEVEL", "")
	t.Setenv("DOCKYARD_LOG_FORMAT", "")
	t.Setenv("DOCKYARD_THEME", "")
	return home
}

func TestWindowDefaults(t *testing.T) {
	got := WindowDefaults(config.DefaultConfig().Windows)
	assert.Equal(t, arrangement.DefaultWindowDefaults(), got)
}

func TestNewApp_StoreUsesConfiguredTheme(t *testing.T) {
	home := isolate(t)
	dir := filepath.Join(home, "config", "dockyard")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(`
[appearance]
theme = "light"

[windows]
default_x = 20
`), 0o644))

	app, err := NewApp(AppOptions{})
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })
	require.NoError(t, app.ConfigErr)

	assert.Equal(t, "light", app.Theme.Name)

	store := app.NewStore()
	ctx := app.Ctx()
	assert.Equal(t, "light", store.Snapshot().Theme.Name)

	store.RegisterPanel(ctx, entity.PanelRegistration{ID: "scene"})
	store.ToggleFloat(ctx, "scene")
	w, ok := store.Snapshot().Window("scene")
	require.True(t, ok)
	assert.Equal(t, 20, w.X)
}

func TestNewApp_InvalidConfigFallsBackToDefaults(t *testing.T) {
	home := isolate(t)
	dir := filepath.Join(home, "config", "dockyard")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("[appearance]\ntheme = \"neon\"\n"), 0o644))

	app, err := NewApp(AppOptions{})
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })

	require.ErrorIs(t, app.ConfigErr, config.ErrInvalidConfig)
	assert.Equal(t, "dark", app.Config.Appearance.Theme)
}

func TestNewApp_LogToFile(t *testing.T) {
	home := isolate(t)

	app, err := NewApp(AppOptions{LogToFile: true})
	require.NoError(t, err)
	require.NoError(t, app.Close())

	assert.FileExists(t, filepath.Join(home, "state", "dockyard", "logs", "dockyard.log"))
}
