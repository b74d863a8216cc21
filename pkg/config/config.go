// Package config loads evaluation limits from a YAML file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/tdewit/opbarst/pkg/safety"
	"gopkg.in/yaml.v3"
)

// Config holds opbarst configuration.
type Config struct {
	Limits LimitsConfig `yaml:"limits"`
}

// LimitsConfig mirrors safety.Limits in the config file.
type LimitsConfig struct {
	SafeFactor float64 `yaml:"safe_factor"` // warning/safe boundary, e.g. 1.10
	MaxHead    float64 `yaml:"max_head"`    // plausibility ceiling in meters
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".opbarst", "config.yaml")
	}
	return filepath.Join(home, ".opbarst", "config.yaml")
}

// Load reads configuration from a YAML file.
// If the file doesn't exist, it returns a default config and no error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		// If file doesn't exist, return default config
		if os.IsNotExist(err) {
			return defaultConfig(), nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("cannot parse config %q: %w", path, err)
	}

	applyDefaults(&cfg)

	return &cfg, nil
}

func defaultConfig() *Config {
	limits := safety.DefaultLimits()
	return &Config{
		Limits: LimitsConfig{
			SafeFactor: limits.SafeFactor,
			MaxHead:    limits.MaxHead,
		},
	}
}

// applyDefaults fills unset fields so a partial file still yields a usable config.
func applyDefaults(cfg *Config) {
	defaults := safety.DefaultLimits()
	if cfg.Limits.SafeFactor == 0 {
		cfg.Limits.SafeFactor = defaults.SafeFactor
	}
	if cfg.Limits.MaxHead == 0 {
		cfg.Limits.MaxHead = defaults.MaxHead
	}
}

// EvaluationLimits converts the config into evaluation limits.
func (c *Config) EvaluationLimits() safety.Limits {
	return safety.Limits{
		SafeFactor: c.Limits.SafeFactor,
		MaxHead:    c.Limits.MaxHead,
	}
}
