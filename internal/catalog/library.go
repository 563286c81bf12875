package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"bookshelf/internal/logging"
	"bookshelf/internal/textutil"
)

// Library is the in-memory collection backed by a Storage. It is not safe for
// concurrent use.
type Library struct {
	store  Storage
	logger *slog.Logger
	books  []Book
	state  LoadState
}

// Open loads the collection from store. Absent or corrupt stores yield an
// empty library; only storage errors are returned.
func Open(ctx context.Context, store Storage, logger *slog.Logger) (*Library, error) {
	if store == nil {
		return nil, errors.New("catalog requires a storage backend")
	}
	logger = logging.NewComponentLogger(logger, "catalog")

	snapshot, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load collection: %w", err)
	}

	lib := &Library{store: store, logger: logger, state: snapshot.State}
	switch snapshot.State {
	case StateLoaded:
		lib.books = slices.Clone(snapshot.Books)
		logger.Debug("loaded collection", logging.Int("book_count", len(lib.books)))
	case StateAbsent:
		logger.Debug("no collection store found, starting empty")
	case StateCorrupt:
		logging.WarnWithContext(logger, "collection store unreadable", "catalog_load_corrupt",
			logging.Error(snapshot.Cause),
			logging.String(logging.FieldErrorHint, "inspect or restore the library file"),
			logging.String(logging.FieldImpact, "starting with an empty collection; the next change moves the store aside"))
	}
	return lib, nil
}

// LoadState reports what Open found in the backing store.
func (l *Library) LoadState() LoadState {
	return l.state
}

// Len returns the number of books in the collection.
func (l *Library) Len() int {
	return len(l.books)
}

// Books returns a copy of the collection in order.
func (l *Library) Books() []Book {
	return slices.Clone(l.books)
}

// Add appends a new book and saves the collection. If the save fails the book
// stays in memory and the error is returned.
func (l *Library) Add(ctx context.Context, req AddRequest) (Book, error) {
	book := req.book()
	l.books = append(l.books, book)
	if err := l.persist(ctx); err != nil {
		return book, err
	}
	l.logger.Info("book added",
		logging.String("title", book.Title),
		logging.Int("book_count", len(l.books)))
	return book, nil
}

// Remove deletes the first book whose title matches req.Title, ignoring case,
// and saves the collection. ErrNotFound leaves the collection and store untouched.
func (l *Library) Remove(ctx context.Context, req RemoveRequest) (Book, error) {
	idx := slices.IndexFunc(l.books, func(b Book) bool {
		return textutil.EqualFold(b.Title, req.Title)
	})
	if idx < 0 {
		l.logger.Debug("remove target not found", logging.String("title", req.Title))
		return Book{}, ErrNotFound
	}

	removed := l.books[idx]
	l.books = slices.Delete(l.books, idx, idx+1)
	if err := l.persist(ctx); err != nil {
		return removed, err
	}
	l.logger.Info("book removed",
		logging.String("title", removed.Title),
		logging.Int("book_count", len(l.books)))
	return removed, nil
}

// Find returns the books whose chosen field contains req.Term, ignoring case,
// in collection order. An empty term matches every book.
func (l *Library) Find(req SearchRequest) ([]Book, error) {
	if _, ok := req.Mode.field(Book{}); !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSearchMode, string(req.Mode))
	}

	matches := make([]Book, 0)
	for _, book := range l.books {
		value, _ := req.Mode.field(book)
		if textutil.ContainsFold(value, req.Term) {
			matches = append(matches, book)
		}
	}
	l.logger.Debug("search completed",
		logging.String("mode", string(req.Mode)),
		logging.Int("match_count", len(matches)))
	return matches, nil
}

func (l *Library) persist(ctx context.Context) error {
	if err := l.store.Save(ctx, l.Books()); err != nil {
		logging.ErrorWithContext(l.logger, "failed to save collection", "catalog_save_failed",
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "check permissions and free space for the library file"))
		return fmt.Errorf("save collection: %w", err)
	}
	return nil
}
