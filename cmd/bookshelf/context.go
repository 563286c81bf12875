package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"bookshelf/internal/catalog"
	"bookshelf/internal/config"
	"bookshelf/internal/logging"
	"bookshelf/internal/storage"
)

type commandContext struct {
	configFlag  *string
	libraryFlag *string

	configOnce   sync.Once
	config       *config.Config
	configPath   string
	configExists bool
	configErr    error

	loggerOnce  sync.Once
	logger      *slog.Logger
	closeLogger func() error
	loggerErr   error
}

func newCommandContext(configFlag, libraryFlag *string) *commandContext {
	return &commandContext{
		configFlag:  configFlag,
		libraryFlag: libraryFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		// A missing .env is the common case.
		_ = godotenv.Load()

		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, resolved, exists, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if override := c.libraryOverride(); override != "" {
			expanded, err := config.ExpandPath(override)
			if err != nil {
				c.configErr = fmt.Errorf("resolve library path: %w", err)
				return
			}
			cfg.Library.Path = expanded
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
		c.configPath = resolved
		c.configExists = exists
	})
	return c.config, c.configErr
}

func (c *commandContext) libraryOverride() string {
	if c.libraryFlag == nil {
		return ""
	}
	return strings.TrimSpace(*c.libraryFlag)
}

func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		logger, closeLogger, err := logging.NewFromConfig(cfg)
		if err != nil {
			c.loggerErr = fmt.Errorf("init logger: %w", err)
			return
		}
		c.logger = logger
		c.closeLogger = closeLogger
	})
	return c.logger, c.loggerErr
}

// close releases the log file once the command has finished.
func (c *commandContext) close() error {
	if c.closeLogger == nil {
		return nil
	}
	err := c.closeLogger()
	c.closeLogger = nil
	return err
}

// withLibrary opens the configured backend, loads the collection and closes
// the backend once fn returns.
func (c *commandContext) withLibrary(ctx context.Context, fn func(*catalog.Library) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	logger, err := c.ensureLogger()
	if err != nil {
		return err
	}

	store, err := storage.OpenFromConfig(cfg, logger)
	if err != nil {
		return fmt.Errorf("open library: %w", err)
	}
	defer store.Close()

	lib, err := catalog.Open(ctx, store, logger)
	if err != nil {
		return err
	}
	return fn(lib)
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
