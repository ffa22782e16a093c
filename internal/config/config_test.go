package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "stdout", cfg.Logging.Output)
	assert.Equal(t, "cleaned_data.xlsx", cfg.Paths.Output)
	assert.Equal(t, 0.01, cfg.Cleaning.RevenueTolerance)
	assert.Equal(t, 50000.0, cfg.Cleaning.HighValueThreshold)
}

func TestLoad_NoFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ecomclean.yaml")
	data := []byte("logging:\n  level: debug\ncleaning:\n  high_value_threshold: 75000\n")
	require.NoError(t, os.WriteFile(path, data, 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, 75000.0, cfg.Cleaning.HighValueThreshold)
	// Untouched fields keep their defaults.
	assert.Equal(t, 0.01, cfg.Cleaning.RevenueTolerance)
	assert.Equal(t, "stdout", cfg.Logging.Output)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ecomclean.yaml")
	data := []byte("cleaning:\n  revenue_tolerance: 0.05\n")
	require.NoError(t, os.WriteFile(path, data, 0644))

	t.Setenv("ECOMCLEAN_CLEANING_REVENUE_TOLERANCE", "0.10")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0.10, cfg.Cleaning.RevenueTolerance)
}

func TestLoad_InvalidConfigRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ecomclean.yaml")
	data := []byte("logging:\n  level: shouting\n")
	require.NoError(t, os.WriteFile(path, data, 0644))

	_, err := Load(path)
	assert.Error(t, err)
}
