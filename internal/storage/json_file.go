package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"bookshelf/internal/catalog"
	"bookshelf/internal/fileutil"
	"bookshelf/internal/logging"
)

const jsonIndent = "    "

// JSONFile stores the collection as an indented JSON array in one file.
type JSONFile struct {
	path    string
	logger  *slog.Logger
	corrupt bool
}

// NewJSONFile returns a backend for path. The file is created on the first Save.
func NewJSONFile(path string, logger *slog.Logger) *JSONFile {
	return &JSONFile{
		path:   path,
		logger: logging.NewComponentLogger(logger, "storage"),
	}
}

// Path returns the backing file location.
func (s *JSONFile) Path() string {
	return s.path
}

// Load reads the whole file. A missing file is StateAbsent and undecodable
// content (including an empty file) is StateCorrupt.
func (s *JSONFile) Load(ctx context.Context) (catalog.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return catalog.Snapshot{}, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return catalog.Snapshot{State: catalog.StateAbsent}, nil
		}
		return catalog.Snapshot{}, fmt.Errorf("read library file: %w", err)
	}

	var books []catalog.Book
	if err := json.Unmarshal(data, &books); err != nil {
		s.corrupt = true
		return catalog.Snapshot{
			State: catalog.StateCorrupt,
			Cause: fmt.Errorf("parse library file %s: %w", s.path, err),
		}, nil
	}

	s.corrupt = false
	s.logger.Debug("loaded library file",
		logging.Int("book_count", len(books)),
		logging.String("path", s.path))
	return catalog.Snapshot{Books: books, State: catalog.StateLoaded}, nil
}

// Save rewrites the file with the full collection. A file found unreadable
// by Load is first renamed to <path>.corrupt.
func (s *JSONFile) Save(ctx context.Context, books []catalog.Book) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.corrupt {
		aside, err := moveAside(s.path)
		if err != nil {
			return err
		}
		s.corrupt = false
		logging.WarnWithContext(s.logger, "kept unreadable library file aside", "storage_json_quarantined",
			logging.String("corrupt_copy", aside),
			logging.String(logging.FieldImpact, "previous file contents kept only in the .corrupt copy"))
	}
	if books == nil {
		books = []catalog.Book{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", jsonIndent)
	if err := enc.Encode(books); err != nil {
		return fmt.Errorf("marshal library: %w", err)
	}

	if err := fileutil.WriteFileAtomic(s.path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write library file: %w", err)
	}
	return nil
}

// Close is a no-op; the file is not held open between calls.
func (s *JSONFile) Close() error {
	return nil
}
