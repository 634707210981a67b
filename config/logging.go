package config

import (
	"fmt"

	"github.com/rs/zerolog"
)

// LoggingConfig controls the process-wide log level.
type LoggingConfig struct {
	// Level is one of zerolog's named levels: debug, info, warn, error.
	Level string `json:"level"`
}

// SetDefaults applies sane defaults.
func (c *LoggingConfig) SetDefaults() {
	if c.Level == "" {
		c.Level = "info"
	}
}

// Validate checks the level is known to zerolog.
func (c LoggingConfig) Validate() error {
	if _, err := zerolog.ParseLevel(c.Level); err != nil {
		return fmt.Errorf("unknown log level %q: %w", c.Level, err)
	}
	return nil
}

// Apply sets the global log level.
func (c LoggingConfig) Apply() error {
	lvl, err := zerolog.ParseLevel(c.Level)
	if err != nil {
		return err
	}
	zerolog.SetGlobalLevel(lvl)
	return nil
}
