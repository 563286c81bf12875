package config

import (
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateLibrary(); err != nil {
		return err
	}
	if err := c.validateDisplay(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateLibrary() error {
	switch c.Library.Backend {
	case BackendJSON, BackendSQLite:
		if c.Library.Path == "" {
			return fmt.Errorf("library.path must be set when library.backend is %q", c.Library.Backend)
		}
	case BackendMemory:
	default:
		return fmt.Errorf("library.backend: unsupported value %q (supported: json, sqlite, memory)", c.Library.Backend)
	}
	return nil
}

func (c *Config) validateDisplay() error {
	switch c.Display.Color {
	case ColorAuto, ColorAlways, ColorNever:
		return nil
	default:
		return fmt.Errorf("display.color: unsupported value %q (supported: auto, always, never)", c.Display.Color)
	}
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case LogFormatConsole, LogFormatJSON:
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
