package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("full file", func(t *testing.T) {
		path := writeConfig(t, "limits:\n  safe_factor: 1.25\n  max_head: 50\n")

		cfg, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, 1.25, cfg.Limits.SafeFactor)
		assert.Equal(t, 50.0, cfg.Limits.MaxHead)
	})

	t.Run("partial file fills defaults", func(t *testing.T) {
		path := writeConfig(t, "limits:\n  safe_factor: 1.25\n")

		cfg, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, 1.25, cfg.Limits.SafeFactor)
		assert.Equal(t, 100.0, cfg.Limits.MaxHead)
	})

	t.Run("missing file yields defaults", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))

		require.NoError(t, err)
		assert.Equal(t, 1.10, cfg.Limits.SafeFactor)
		assert.Equal(t, 100.0, cfg.Limits.MaxHead)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := writeConfig(t, "limits: [not a mapping\n")

		_, err := Load(path)
		assert.Error(t, err)
	})
}

func TestEvaluationLimits(t *testing.T) {
	cfg := &Config{Limits: LimitsConfig{SafeFactor: 1.15, MaxHead: 80}}

	limits := cfg.EvaluationLimits()

	assert.Equal(t, 1.15, limits.SafeFactor)
	assert.Equal(t, 80.0, limits.MaxHead)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *Config
		wantErr string
	}{
		{
			name: "valid defaults",
			cfg:  defaultConfig(),
		},
		{
			name:    "nil config",
			cfg:     nil,
			wantErr: "config is nil",
		},
		{
			name:    "safe factor below one",
			cfg:     &Config{Limits: LimitsConfig{SafeFactor: 0.9, MaxHead: 100}},
			wantErr: "safe_factor",
		},
		{
			name:    "negative head ceiling",
			cfg:     &Config{Limits: LimitsConfig{SafeFactor: 1.10, MaxHead: -1}},
			wantErr: "max_head",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}
