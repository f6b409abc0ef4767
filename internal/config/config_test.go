package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "$", cfg.Currency)
	assert.Equal(t, 50.0, cfg.Grading.PassMark)
	assert.False(t, cfg.Logging.Debug)
}

func TestLoadOverridesDefaults(t *testing.T) {
	home := t.TempDir()
	yaml := "currency: \"€\"\ngrading:\n  pass_mark: 60\nlogging:\n  debug: true\n"
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"), []byte(yaml), 0o600))

	cfg, err := Load(home)
	require.NoError(t, err)
	assert.Equal(t, "€", cfg.Currency)
	assert.Equal(t, 60.0, cfg.Grading.PassMark)
	assert.True(t, cfg.Logging.Debug)
}

func TestLoadRejectsBadPassMark(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"),
		[]byte("grading:\n  pass_mark: 200\n"), 0o600))

	_, err := Load(home)
	assert.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	home := t.TempDir()
	cfg := Default()
	cfg.Currency = "£"
	require.NoError(t, Save(home, cfg))

	got, err := Load(home)
	require.NoError(t, err)
	assert.Equal(t, "£", got.Currency)
}
