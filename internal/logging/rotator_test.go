package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func listDir(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestLogRotator_RotatesAndCompresses(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	r, err := NewLogRotator(dir, 1, 3, 0, true)
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })

	chunk := bytes.Repeat([]byte("x"), 700*1024)
	_, err = r.Write(chunk)
	require.NoError(t, err)
	_, err = r.Write(chunk)
	require.NoError(t, err)

	names := listDir(t, dir)
	require.Len(t, names, 2)
	assert.Contains(t, names, logFileName)

	var backup string
	for _, n := range names {
		if n != logFileName {
			backup = n
		}
	}
	assert.True(t, strings.HasSuffix(backup, ".gz"), backup)

	info, err := os.Stat(r.Path())
	require.NoError(t, err)
	assert.Equal(t, int64(len(chunk)), info.Size())
}

func TestLogRotator_CleanupKeepsNewestBackups(t *testing.T) {
	dir := t.TempDir()
	r, err := NewLogRotator(dir, 1, 2, 0, false)
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })

	now := time.Now()
	for i, name := range []string{"a", "b", "c"} {
		path := filepath.Join(dir, logFileName+"."+name)
		require.NoError(t, os.WriteFile(path, []byte(name), 0o600))
		mtime := now.Add(time.Duration(i-3) * time.Hour)
		require.NoError(t, os.Chtimes(path, mtime, mtime))
	}

	r.cleanup()

	names := listDir(t, dir)
	assert.NotContains(t, names, logFileName+".a")
	assert.Contains(t, names, logFileName+".b")
	assert.Contains(t, names, logFileName+".c")
}

func TestLogRotator_CleanupDropsExpiredBackups(t *testing.T) {
	dir := t.TempDir()
	r, err := NewLogRotator(dir, 1, 0, 1, false)
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })

	old := filepath.Join(dir, logFileName+".old")
	require.NoError(t, os.WriteFile(old, nil, 0o600))
	past := time.Now().Add(-48 * time.Hour)
	require.NoError(t, os.Chtimes(old, past, past))

	r.cleanup()
	assert.NoFileExists(t, old)
}

func TestNewWithFile(t *testing.T) {
	dir := t.TempDir()
	var stderr bytes.Buffer

	logger, cleanup, err := NewWithFile(
		Config{Level: zerolog.InfoLevel, Format: "json", Output: &stderr},
		FileConfig{Enabled: true, Dir: dir, MaxSizeMB: 1, WriteToStderr: true},
	)
	require.NoError(t, err)
	logger.Info().Str("panel_id", "scene").Msg("docked")
	cleanup()

	data, err := os.ReadFile(filepath.Join(dir, logFileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"panel_id":"scene"`)
	assert.Contains(t, stderr.String(), `"message":"docked"`)
}

func TestNewWithFile_Disabled(t *testing.T) {
	var buf bytes.Buffer
	logger, cleanup, err := NewWithFile(Config{Level: zerolog.InfoLevel, Format: "json", Output: &buf}, FileConfig{})
	require.NoError(t, err)
	defer cleanup()

	logger.Info().Msg("stderr only")
	assert.Contains(t, buf.String(), "stderr only")
}
