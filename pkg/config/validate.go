package config

import (
	"errors"
	"fmt"
)

// Validate checks the loaded config for safe values.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New("config is nil")
	}

	// Below 1.0 the safe boundary would sit inside the danger tier.
	if cfg.Limits.SafeFactor < 1.0 {
		return fmt.Errorf("limits.safe_factor must be at least 1.0, got %v", cfg.Limits.SafeFactor)
	}
	if cfg.Limits.MaxHead <= 0 {
		return fmt.Errorf("limits.max_head must be positive, got %v", cfg.Limits.MaxHead)
	}

	return nil
}
