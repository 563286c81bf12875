package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"

	"bookshelf/internal/catalog"
	"bookshelf/internal/logging"
)

const sqliteSchema = `CREATE TABLE IF NOT EXISTS books (
    position INTEGER PRIMARY KEY,
    title    TEXT    NOT NULL DEFAULT '',
    author   TEXT    NOT NULL DEFAULT '',
    year     TEXT    NOT NULL DEFAULT '',
    genre    TEXT    NOT NULL DEFAULT '',
    read     INTEGER NOT NULL DEFAULT 0
)`

// SQLite stores the collection in a SQLite database, one row per book. Save
// replaces every row inside a single transaction.
type SQLite struct {
	db      *sql.DB
	path    string
	logger  *slog.Logger
	corrupt bool
}

// OpenSQLite prepares a database handle for path. The file itself is not
// touched until the first Load or Save.
func OpenSQLite(path string, logger *slog.Logger) (*SQLite, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("sqlite backend requires a database path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}
	db, err := openSQLiteDB(path)
	if err != nil {
		return nil, err
	}
	return &SQLite{
		db:     db,
		path:   path,
		logger: logging.NewComponentLogger(logger, "storage"),
	}, nil
}

func openSQLiteDB(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	db.SetMaxOpenConns(1)
	return db, nil
}

// Path returns the database file location.
func (s *SQLite) Path() string {
	return s.path
}

// Load reads every row ordered by position. A missing file or a database
// without the books table is StateAbsent; an unreadable database is StateCorrupt.
func (s *SQLite) Load(ctx context.Context) (catalog.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return catalog.Snapshot{}, err
	}
	if _, err := os.Stat(s.path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return catalog.Snapshot{State: catalog.StateAbsent}, nil
		}
		return catalog.Snapshot{}, fmt.Errorf("stat database: %w", err)
	}

	var tables int
	err := s.db.QueryRowContext(ctx,
		`SELECT count(*) FROM sqlite_master WHERE type = 'table' AND name = 'books'`).Scan(&tables)
	if err != nil {
		return s.corruptSnapshot(fmt.Errorf("inspect schema: %w", err)), nil
	}
	if tables == 0 {
		return catalog.Snapshot{State: catalog.StateAbsent}, nil
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT title, author, year, genre, read FROM books ORDER BY position`)
	if err != nil {
		return s.corruptSnapshot(fmt.Errorf("query books: %w", err)), nil
	}
	defer rows.Close()

	var books []catalog.Book
	for rows.Next() {
		var book catalog.Book
		if err := rows.Scan(&book.Title, &book.Author, &book.Year, &book.Genre, &book.Read); err != nil {
			return s.corruptSnapshot(fmt.Errorf("scan book: %w", err)), nil
		}
		books = append(books, book)
	}
	if err := rows.Err(); err != nil {
		return s.corruptSnapshot(fmt.Errorf("iterate books: %w", err)), nil
	}

	s.logger.Debug("loaded library database",
		logging.Int("book_count", len(books)),
		logging.String("path", s.path))
	return catalog.Snapshot{Books: books, State: catalog.StateLoaded}, nil
}

func (s *SQLite) corruptSnapshot(cause error) catalog.Snapshot {
	s.corrupt = true
	return catalog.Snapshot{State: catalog.StateCorrupt, Cause: cause}
}

// Save replaces the stored collection with books. A database found corrupt by
// Load is moved aside to <path>.corrupt first.
func (s *SQLite) Save(ctx context.Context, books []catalog.Book) (err error) {
	if s.corrupt {
		if err := s.quarantine(); err != nil {
			return err
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, sqliteSchema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM books`); err != nil {
		return fmt.Errorf("clear books: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO books (position, title, author, year, genre, read) VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, book := range books {
		if _, err = stmt.ExecContext(ctx, i, book.Title, book.Author, book.Year, book.Genre, boolToInt(book.Read)); err != nil {
			return fmt.Errorf("insert book %d: %w", i+1, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func (s *SQLite) quarantine() error {
	_ = s.db.Close()
	aside, err := moveAside(s.path)
	if err != nil {
		return err
	}
	db, err := openSQLiteDB(s.path)
	if err != nil {
		return err
	}
	s.db = db
	s.corrupt = false
	logging.WarnWithContext(s.logger, "replaced unreadable library database", "storage_sqlite_quarantined",
		logging.String("corrupt_copy", aside),
		logging.String(logging.FieldImpact, "previous database contents kept only in the .corrupt copy"))
	return nil
}

// Close releases the database handle.
func (s *SQLite) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func boolToInt(value bool) int {
	if value {
		return 1
	}
	return 0
}
