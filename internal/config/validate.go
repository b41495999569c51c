package config

import (
	"errors"
	"fmt"
	"path"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateHashing(); err != nil {
		return err
	}
	if err := c.validateVerify(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateHashing() error {
	switch c.Hashing.Algorithm {
	case "sha256", "sha1":
	default:
		return fmt.Errorf("hashing.algorithm: unsupported value %q (supported: sha256, sha1)", c.Hashing.Algorithm)
	}
	if c.Hashing.Workers < 0 {
		return errors.New("hashing.workers must not be negative")
	}
	return nil
}

func (c *Config) validateVerify() error {
	for _, pattern := range c.Verify.Ignore {
		if strings.TrimSpace(pattern) == "" {
			return errors.New("verify.ignore must not contain empty patterns")
		}
		if _, err := path.Match(pattern, "probe"); err != nil {
			return fmt.Errorf("verify.ignore: invalid pattern %q: %w", pattern, err)
		}
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q (supported: console, json)", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q (supported: debug, info, warn, error)", c.Logging.Level)
	}
	return nil
}
