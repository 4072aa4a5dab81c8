package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateReplace(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateReplace() error {
	if strings.TrimSpace(c.Replace.MediaPrefix) == "" {
		return errors.New("replace.media_prefix must be set")
	}
	if strings.HasPrefix(c.Replace.MediaPrefix, "/") {
		return errors.New("replace.media_prefix must be a package-relative path")
	}
	if c.Replace.JPEGQuality < 1 || c.Replace.JPEGQuality > 100 {
		return fmt.Errorf("replace.jpeg_quality must be between 1 and 100, got %d", c.Replace.JPEGQuality)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
