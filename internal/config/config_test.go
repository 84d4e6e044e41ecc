package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
	assert.NoError(t, c.Validate())
}

func TestLoadFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gotrend.yaml")
	require.NoError(t, os.WriteFile(path, []byte("period: 50\nthreshold: 0.5\ncolumn: price\n"), 0o644))

	t.Setenv("GOTREND_ROC_PERIOD", "12")

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 50, c.Period)
	assert.Equal(t, 0.5, c.Threshold)
	assert.Equal(t, "price", c.Column)
	assert.Equal(t, 12, c.ROCPeriod)
	assert.Equal(t, 1, c.Lag)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	want := Default()
	want.Period = 34
	want.LogLevel = "debug"

	require.NoError(t, Save(want, path))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero period", func(c *Config) { c.Period = 0 }},
		{"zero roc period", func(c *Config) { c.ROCPeriod = 0 }},
		{"negative lag", func(c *Config) { c.Lag = -1 }},
		{"negative tolerance", func(c *Config) { c.Tolerance = -1e-3 }},
		{"threshold above one", func(c *Config) { c.Threshold = 1.5 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(c)
			assert.Error(t, c.Validate())
		})
	}
}
