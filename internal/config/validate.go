package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateOutput(); err != nil {
		return err
	}
	if err := c.validateSummary(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateOutput() error {
	if err := validateFileName("output.csv_name", c.Output.CSVName); err != nil {
		return err
	}
	if err := validateFileName("output.json_name", c.Output.JSONName); err != nil {
		return err
	}
	if c.Output.CSVName == c.Output.JSONName {
		return errors.New("output.csv_name and output.json_name must differ")
	}
	return nil
}

func validateFileName(key, name string) error {
	if name == "" {
		return fmt.Errorf("%s must be set", key)
	}
	if strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("%s must be a bare filename, got %q", key, name)
	}
	return nil
}

func (c *Config) validateSummary() error {
	if c.Summary.EntryLimit < 0 {
		return errors.New("summary.entry_limit must not be negative")
	}
	if c.Summary.IDWidth < 1 {
		return errors.New("summary.id_width must be at least 1")
	}
	if c.Summary.TopPrefixes < 1 {
		return errors.New("summary.top_prefixes must be at least 1")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	return nil
}
