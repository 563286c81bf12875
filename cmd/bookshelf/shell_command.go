package main

import (
	"github.com/spf13/cobra"

	"bookshelf/internal/catalog"
	"bookshelf/internal/logging"
	"bookshelf/internal/shell"
	"bookshelf/internal/storage"
)

// runShell holds the store lock for the whole interactive session so a second
// session on the same file fails instead of overwriting the first one's saves.
func runShell(cmd *cobra.Command, ctx *commandContext) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	logger, err := ctx.ensureLogger()
	if err != nil {
		return err
	}

	if cfg.UsesFile() {
		lock, err := storage.AcquireLock(cfg.Library.Path)
		if err != nil {
			return err
		}
		defer lock.Release()
		logger.Debug("acquired library lock", logging.String("lock_path", lock.Path()))
	}

	return ctx.withLibrary(cmd.Context(), func(lib *catalog.Library) error {
		out := cmd.OutOrStdout()
		sh := shell.New(cmd.InOrStdin(), out, lib,
			shell.WithLogger(logger),
			shell.WithColor(colorEnabled(out, cfg.Display.Color)),
		)
		return sh.Run(cmd.Context())
	})
}
