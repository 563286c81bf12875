package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizeLibrary(); err != nil {
		return err
	}
	c.normalizeDisplay()
	return c.normalizeLogging()
}

func (c *Config) normalizeLibrary() error {
	if value, ok := os.LookupEnv("BOOKSHELF_BACKEND"); ok && strings.TrimSpace(value) != "" {
		c.Library.Backend = value
	}
	c.Library.Backend = strings.ToLower(strings.TrimSpace(c.Library.Backend))
	if c.Library.Backend == "" {
		c.Library.Backend = defaultBackend
	}

	if value, ok := os.LookupEnv("BOOKSHELF_LIBRARY"); ok && strings.TrimSpace(value) != "" {
		c.Library.Path = value
	}
	c.Library.Path = strings.TrimSpace(c.Library.Path)
	if c.Library.Path == "" && c.Library.Backend != BackendMemory {
		c.Library.Path = defaultLibraryPath
	}
	// The sqlite backend keeps its own file next to the default JSON one.
	if c.Library.Backend == BackendSQLite && c.Library.Path == defaultLibraryPath {
		c.Library.Path = filepath.Join(filepath.Dir(defaultLibraryPath), defaultSQLiteName)
	}

	var err error
	if c.Library.Path, err = expandPath(c.Library.Path); err != nil {
		return fmt.Errorf("library.path: %w", err)
	}
	return nil
}

func (c *Config) normalizeDisplay() {
	c.Display.Color = strings.ToLower(strings.TrimSpace(c.Display.Color))
	if c.Display.Color == "" {
		c.Display.Color = defaultColor
	}
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	if value, ok := os.LookupEnv("BOOKSHELF_LOG_LEVEL"); ok && strings.TrimSpace(value) != "" {
		c.Logging.Level = value
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}

	var err error
	if c.Logging.Dir, err = expandPath(strings.TrimSpace(c.Logging.Dir)); err != nil {
		return fmt.Errorf("logging.dir: %w", err)
	}
	return nil
}
