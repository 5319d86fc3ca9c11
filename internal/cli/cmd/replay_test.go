package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dockScript = `name = "dock-left"

[[step]]
op = "register"
panel = "scene"

[[step]]
op = "register"
panel = "assets"

[[step]]
op = "dock"
panel = "assets"
zone = "left"
`

const floatScript = `name = "float"

[[step]]
op = "register"
panel = "scene"

[[step]]
op = "float"
panel = "scene"
`

// execute runs the root command in an isolated environment.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(home, "state"))
	t.Setenv("DOCKYARD_LOG_LEVEL", "off")
	t.Setenv("DOCKYARD_LOG_FORMAT", "")
	t.Setenv("DOCKYARD_THEME", "")

	replayCheck, replayFailFast, replayQuiet = false, false, false
	configSchemaWrite, aboutShort = false, false

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
		app = nil
	})

	err := rootCmd.Execute()
	return out.String(), err
}

func writeScript(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReplay_PrintsArrangementsInArgumentOrder(t *testing.T) {
	dock := writeScript(t, "dock.toml", dockScript)
	float := writeScript(t, "float.toml", floatScript)

	out, err := execute(t, "replay", "--check", float, dock)
	require.NoError(t, err)

	assert.Contains(t, out, "(2 steps)")
	assert.Contains(t, out, "(3 steps)")
	assert.Less(t, strings.Index(out, "float"), strings.Index(out, "dock-left"))

	// Node ids restart for every script.
	assert.Contains(t, out, "split-3")
	assert.Contains(t, out, "scene x=140 y=140 420x320 z=11")
}

func TestReplay_ReportsFailures(t *testing.T) {
	good := writeScript(t, "good.toml", dockScript)
	bad := writeScript(t, "bad.toml", "[[step]]\nop = \"teleport\"\npanel = \"scene\"\n")

	out, err := execute(t, "replay", good, bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2 scripts failed")
	assert.Contains(t, out, "unknown op")
	assert.Contains(t, out, "dock-left")
}

func TestReplay_QuietPrintsOnlyFailures(t *testing.T) {
	good := writeScript(t, "good.toml", dockScript)

	out, err := execute(t, "replay", "-q", good)
	require.NoError(t, err)
	assert.NotContains(t, out, "dock-left")
}

func TestReplay_RequiresScript(t *testing.T) {
	_, err := execute(t, "replay")
	require.Error(t, err)
}

func TestConfigShow_PrintsEffectiveConfig(t *testing.T) {
	out, err := execute(t, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "[appearance]")
	assert.Contains(t, out, "[replay]")
}

func TestConfigSchema(t *testing.T) {
	out, err := execute(t, "config", "schema")
	require.NoError(t, err)
	assert.Contains(t, out, `"appearance"`)
}

func TestAbout_Short(t *testing.T) {
	out, err := execute(t, "about", "--short")
	require.NoError(t, err)
	assert.Contains(t, out, "dockyard")
}
