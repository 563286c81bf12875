package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"bookshelf/internal/catalog"
	"bookshelf/internal/config"
)

// Backend is a catalog.Storage that holds resources until closed.
type Backend interface {
	catalog.Storage
	Close() error
}

// Open creates a Backend by name.
//
// Supported backends:
//
//	"json"   - JSON array file at path (default)
//	"sqlite" - SQLite database at path
//	"memory" - In-memory (ephemeral, for testing)
func Open(backend, path string, logger *slog.Logger) (Backend, error) {
	switch backend {
	case config.BackendJSON, "":
		return NewJSONFile(path, logger), nil
	case config.BackendSQLite:
		return OpenSQLite(path, logger)
	case config.BackendMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown store backend: %q (supported: json, sqlite, memory)", backend)
	}
}

// OpenFromConfig opens the backend described by cfg.
func OpenFromConfig(cfg *config.Config, logger *slog.Logger) (Backend, error) {
	return Open(cfg.Library.Backend, cfg.Library.Path, logger)
}

// moveAside renames an unreadable store to <path>.corrupt, replacing any
// earlier copy, and returns the new location.
func moveAside(path string) (string, error) {
	aside := path + ".corrupt"
	if err := os.Rename(path, aside); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("move unreadable store aside: %w", err)
	}
	return aside, nil
}
