package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	data := `
staging_dir = "out/gen"
max_menu_items = 6
force_explicit_values = true
log_level = "debug"
`

	cfg, err := Parse([]byte(data))
	require.NoError(t, err)

	assert.Equal(t, "out/gen", cfg.StagingDir)
	assert.Equal(t, 6, cfg.MaxMenuItems)
	assert.Equal(t, 256, cfg.SyncedBitsBudget) // default kept
	assert.True(t, cfg.ForceExplicitValues)
	assert.Equal(t, slog.LevelDebug, cfg.Level())
}

func TestParseRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"menu too small", "max_menu_items = 1"},
		{"zero budget", "synced_bits_budget = 0"},
		{"bad level", `log_level = "loud"`},
		{"bad toml", "staging_dir = "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestLoadFileRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.StagingDir = "elsewhere"

	data, err := Marshal(cfg)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "build.toml")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestLevelFromFlags(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, LevelFromFlags(true, true, slog.LevelInfo))
	assert.Equal(t, slog.LevelError, LevelFromFlags(false, true, slog.LevelInfo))
	assert.Equal(t, slog.LevelWarn, LevelFromFlags(false, false, slog.LevelWarn))
}
