package config

import (
	"errors"
	"fmt"

	"mediatable/internal/inventory"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateScan(); err != nil {
		return err
	}
	if err := c.validateInventory(); err != nil {
		return err
	}
	if err := c.validateMediainfo(); err != nil {
		return err
	}
	if err := c.validateOutput(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateScan() error {
	if c.Scan.RecursiveDepth < 1 {
		return errors.New("scan.recursive_depth must be positive")
	}
	return nil
}

func (c *Config) validateInventory() error {
	if c.Inventory.Threads < 1 {
		return errors.New("inventory.threads must be positive")
	}
	if c.Inventory.VideoTracks < 0 {
		return errors.New("inventory.video_tracks must be zero or greater")
	}
	if c.Inventory.AudioTracks < 0 {
		return errors.New("inventory.audio_tracks must be zero or greater")
	}
	if _, err := inventory.ParseOrder(c.Inventory.Sort); err != nil {
		return fmt.Errorf("inventory.sort: %w", err)
	}
	return nil
}

func (c *Config) validateMediainfo() error {
	if c.Mediainfo.TimeoutSeconds < 0 {
		return errors.New("mediainfo.timeout_seconds must be zero or greater")
	}
	return nil
}

func (c *Config) validateOutput() error {
	return ValidateFormat(c.Output.Format)
}

// ValidateFormat reports whether format names a supported output style.
func ValidateFormat(format string) error {
	switch format {
	case FormatPlain, FormatBox, FormatJSON:
		return nil
	default:
		return fmt.Errorf("output.format: unsupported value %q (want plain, box, or json)", format)
	}
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
