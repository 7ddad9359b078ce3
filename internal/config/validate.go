package config

import (
	"fmt"
	"strings"
	"time"
)

var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate checks the configuration for errors
func (c *Config) Validate() error {
	if c.Timeout != "" {
		d, err := time.ParseDuration(c.Timeout)
		if err != nil {
			return fmt.Errorf("timeout: %w", err)
		}
		if d <= 0 {
			return fmt.Errorf("timeout must be positive, got %s", c.Timeout)
		}
	}

	if err := validateLog(&c.Log); err != nil {
		return fmt.Errorf("log: %w", err)
	}

	return nil
}

func validateLog(l *LogConfig) error {
	if l.Level != "" && !validLogLevels[strings.ToLower(l.Level)] {
		return fmt.Errorf("invalid level: %s (valid: debug, info, warn, error)", l.Level)
	}
	return nil
}
