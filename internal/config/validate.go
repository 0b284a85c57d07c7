package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	return errors.Join(
		c.validateFFprobe(),
		c.validateScan(),
		c.validateCache(),
		c.validateLogging(),
	)
}

func (c *Config) validateFFprobe() error {
	if c.FFprobe.TimeoutSeconds < 0 {
		return errors.New("ffprobe.timeout_seconds must be positive")
	}
	return nil
}

func (c *Config) validateScan() error {
	if c.Scan.Workers < 1 || c.Scan.Workers > maxScanWorkers {
		return fmt.Errorf("scan.workers must be between 1 and %d", maxScanWorkers)
	}
	if len(c.Scan.Extensions) == 0 {
		return errors.New("scan.extensions must list at least one extension")
	}
	return nil
}

func (c *Config) validateCache() error {
	if c.Cache.MaxAgeDays < 0 {
		return errors.New("cache.max_age_days must be zero (disabled) or positive")
	}
	if c.Cache.Enabled && c.Cache.Path == "" {
		return errors.New("cache.path must be set when the cache is enabled")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q (want console or json)", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
