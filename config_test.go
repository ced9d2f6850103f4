package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qftsim/quantum"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 3, cfg.Qubits)
	assert.True(t, cfg.Reverse)
	assert.True(t, cfg.Pause)
	assert.Equal(t, quantum.DefaultEpsilon, cfg.Epsilon)
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := writeFile(t, "qftsim.yaml", `
qubits: 5
seed: 42
shots: 250
log_level: debug
pause: false
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Qubits)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, 250, cfg.Shots)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.False(t, cfg.Pause)
	// untouched keys keep their defaults
	assert.True(t, cfg.Reverse)
	assert.Equal(t, quantum.DefaultEpsilon, cfg.Epsilon)
	assert.Equal(t, uint64(42), cfg.SeedValue())
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := writeFile(t, "bad.yaml", "qubits: [1, 2")
	_, err = LoadConfig(path)
	assert.Error(t, err)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero qubits", func(c *Config) { c.Qubits = 0 }},
		{"too many qubits", func(c *Config) { c.Qubits = quantum.MaxQubits + 1 }},
		{"zero shots", func(c *Config) { c.Shots = 0 }},
		{"negative workers", func(c *Config) { c.Workers = -1 }},
		{"zero epsilon", func(c *Config) { c.Epsilon = 0 }},
		{"unknown level", func(c *Config) { c.LogLevel = "loud" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestNewLogger(t *testing.T) {
	_, err := newLogger(os.Stderr, "info")
	assert.NoError(t, err)
	_, err = newLogger(os.Stderr, "loud")
	assert.Error(t, err)
}
