package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points the XDG config dir at a temp dir and returns dockyard's dir.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", home)
	t.Setenv("DOCKYARD_LOG_LEVEL", "")
	t.Setenv("DOCKYARD_LOG_FORMAT", "")
	t.Setenv("DOCKYARD_THEME", "")
	return filepath.Join(home, appName)
}

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, dirPerm))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), filePerm))
}

func TestSetDefaults(t *testing.T) {
	mgr := &Manager{viper: viper.New()}
	mgr.setDefaults()

	assert.Equal(t, "dark", mgr.viper.GetString("appearance.theme"))
	assert.Equal(t, 420, mgr.viper.GetInt("windows.default_width"))
	assert.Equal(t, 10, mgr.viper.GetInt("windows.initial_z"))
	assert.Equal(t, "", mgr.viper.GetString("appearance.dark_palette.primary"))
}

func TestLoad_CreatesDefaultConfigAndSchema(t *testing.T) {
	dir := isolate(t)

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	assert.Equal(t, DefaultConfig(), mgr.Get())
	assert.FileExists(t, filepath.Join(dir, "config.toml"))
	assert.FileExists(t, filepath.Join(dir, SchemaFileName))
	assert.Equal(t, filepath.Join(dir, "config.toml"), mgr.ConfigFile())
}

func TestLoad_FileValuesOverrideDefaults(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, `
[logging]
level = "DEBUG"

[appearance]
theme = "Light"

[appearance.light_palette]
primary = "#ff0066"

[windows]
min_width = 300
default_width = 500
`)

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "light", cfg.Appearance.Theme)
	assert.Equal(t, "#ff0066", cfg.Appearance.LightPalette.Primary)
	assert.Equal(t, 300, cfg.Windows.MinWidth)
	assert.Equal(t, 500, cfg.Windows.DefaultWidth)
	assert.Equal(t, defaultWindowHeight, cfg.Windows.DefaultHeight)
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, "[appearance]\ntheme = \"dark\"\n")
	t.Setenv("DOCKYARD_THEME", "light")
	t.Setenv("DOCKYARD_WINDOWS_INITIAL_Z", "50")

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	assert.Equal(t, "light", mgr.Get().Appearance.Theme)
	assert.Equal(t, 50, mgr.Get().Windows.InitialZ)
}

func TestLoad_InvalidConfigReportsEveryProblem(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, `
[appearance]
theme = "neon"

[appearance.dark_palette]
background = "black"

[windows]
min_width = 0
`)

	mgr, err := NewManager()
	require.NoError(t, err)
	err = mgr.Load()

	require.ErrorIs(t, err, ErrInvalidConfig)
	assert.Contains(t, err.Error(), "appearance.theme")
	assert.Contains(t, err.Error(), "appearance.dark_palette.background")
	assert.Contains(t, err.Error(), "windows.min_width")
}

func TestLoad_MalformedTOML(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, "[appearance\ntheme = ")

	mgr, err := NewManager()
	require.NoError(t, err)
	err = mgr.Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be valid TOML")
}

func TestGet_ReturnsCopy(t *testing.T) {
	isolate(t)
	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	mgr.Get().Appearance.Theme = "light"
	assert.Equal(t, "dark", mgr.Get().Appearance.Theme)
}

func TestGet_BeforeLoadReturnsDefaults(t *testing.T) {
	mgr := &Manager{viper: viper.New()}
	assert.Equal(t, DefaultConfig(), mgr.Get())
}

func TestWatch_RequiresLoad(t *testing.T) {
	mgr := &Manager{viper: viper.New()}
	assert.Error(t, mgr.Watch())
}

func TestWatch_NotifiesOnFileChange(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, "[appearance]\ntheme = \"dark\"\n")

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	changes := make(chan *Config, 16)
	mgr.OnConfigChange(func(cfg *Config) { changes <- cfg })
	require.NoError(t, mgr.Watch())
	require.NoError(t, mgr.Watch(), "second call is a no-op")

	writeConfig(t, dir, "[appearance]\ntheme = \"light\"\n")

	deadline := time.After(5 * time.Second)
	for {
		select {
		case cfg := <-changes:
			if cfg.Appearance.Theme == "light" {
				assert.Equal(t, "light", mgr.Get().Appearance.Theme)
				return
			}
		case <-deadline:
			t.Fatal("config change was not observed")
		}
	}
}

func TestSchemaJSON(t *testing.T) {
	data, err := SchemaJSON()
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "Dockyard Configuration", doc["title"])

	props, ok := doc["properties"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, props, "appearance")
	assert.Contains(t, props, "windows")
}
