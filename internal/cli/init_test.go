package cli

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"litemon/internal/config"
)

func TestInit_CreatesConfig(t *testing.T) {
	dir := t.TempDir()

	err := Init(dir, false)
	require.NoError(t, err)

	path := filepath.Join(dir, config.ConfigFileName)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "interval: 1s")
	assert.Contains(t, string(data), "render_interval: 100ms")
	assert.Contains(t, string(data), "exclude_fstypes")
}

func TestInit_OutputLoadsCleanly(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Init(dir, false))

	cfg, err := config.Load(filepath.Join(dir, config.ConfigFileName))
	require.NoError(t, err)
	assert.Equal(t, time.Second, cfg.Interval)
	assert.Equal(t, 100*time.Millisecond, cfg.RenderInterval)
	assert.True(t, cfg.GPU.Enabled)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestInit_ForceOverwrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, config.ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("interval: 5s\n"), 0o644))

	err := Init(dir, true)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "interval: 1s")
}
