package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"bookshelf/internal/catalog"
	"bookshelf/internal/logging"
)

type state int

const (
	stateMenu state = iota
	stateAdd
	stateRemove
	stateSearch
	stateExit
)

func (s state) String() string {
	switch s {
	case stateMenu:
		return "menu"
	case stateAdd:
		return "add"
	case stateRemove:
		return "remove"
	case stateSearch:
		return "search"
	case stateExit:
		return "exit"
	default:
		return "unknown"
	}
}

var menuChoices = map[string]state{
	"1": stateAdd,
	"2": stateRemove,
	"3": stateSearch,
	"4": stateExit,
}

var menuLines = []string{
	"",
	"Welcome to your Book Collection!",
	"1. Add a new book",
	"2. Remove a book",
	"3. Search for a book",
	"4. Exit",
}

// Shell runs the interactive menu over a Library.
type Shell struct {
	in      *bufio.Reader
	out     io.Writer
	library *catalog.Library
	logger  *slog.Logger
	color   bool

	writeErr error
}

// Option customizes a Shell.
type Option func(*Shell)

// WithLogger sets the base logger; the shell tags it with a session ID.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Shell) {
		s.logger = logger
	}
}

// WithColor enables ANSI colors for confirmations and errors.
func WithColor(enabled bool) Option {
	return func(s *Shell) {
		s.color = enabled
	}
}

// New builds a Shell reading answers from in and writing to out.
func New(in io.Reader, out io.Writer, library *catalog.Library, opts ...Option) *Shell {
	s := &Shell{
		in:      bufio.NewReader(in),
		out:     out,
		library: library,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = logging.NewComponentLogger(s.logger, "shell").
		With(logging.String(logging.FieldSessionID, uuid.NewString()))
	return s
}

// Run shows the menu until the user exits or input ends. It returns an error
// only when the terminal streams fail or ctx is canceled.
func (s *Shell) Run(ctx context.Context) error {
	s.logger.Info("session started", logging.Int("book_count", s.library.Len()))

	current := stateMenu
	for current != stateExit {
		if err := ctx.Err(); err != nil {
			return err
		}
		next, err := s.step(ctx, current)
		if errors.Is(err, io.EOF) {
			s.logger.Debug("input closed", logging.String("state", current.String()))
			s.println("")
			s.println("Goodbye!")
			break
		}
		if err != nil {
			return err
		}
		current = next
	}

	s.logger.Info("session ended", logging.Int("book_count", s.library.Len()))
	return s.writeErr
}

func (s *Shell) step(ctx context.Context, current state) (state, error) {
	switch current {
	case stateMenu:
		return s.menu()
	case stateAdd:
		return stateMenu, s.addFlow(ctx)
	case stateRemove:
		return stateMenu, s.removeFlow(ctx)
	case stateSearch:
		return stateMenu, s.searchFlow()
	default:
		return stateExit, nil
	}
}

func (s *Shell) menu() (state, error) {
	for _, line := range menuLines {
		s.println(line)
	}
	choice, err := s.prompt("Please choose an option (1-4): ")
	if err != nil {
		return stateMenu, err
	}

	next, ok := menuChoices[choice]
	if !ok {
		s.logger.Debug("invalid menu option", logging.String("choice", choice))
		s.failure("Invalid option. Please try again.")
		return stateMenu, s.writeErr
	}
	if next == stateExit {
		s.println("Goodbye!")
	}
	return next, s.writeErr
}

func (s *Shell) addFlow(ctx context.Context) error {
	req, err := s.readAddRequest()
	if err != nil {
		return err
	}
	if _, err := s.library.Add(ctx, req); err != nil {
		s.saveFailed(err)
		return s.writeErr
	}
	s.success("Book added successfully!")
	s.println("")
	return s.writeErr
}

func (s *Shell) removeFlow(ctx context.Context) error {
	req, err := s.readRemoveRequest()
	if err != nil {
		return err
	}
	_, err = s.library.Remove(ctx, req)
	switch {
	case errors.Is(err, catalog.ErrNotFound):
		s.failure("Book not found.")
	case err != nil:
		s.saveFailed(err)
	default:
		s.success("Book removed successfully!")
	}
	s.println("")
	return s.writeErr
}

func (s *Shell) searchFlow() error {
	req, err := s.readSearchRequest()
	if err != nil {
		return err
	}
	books, err := s.library.Find(req)
	if errors.Is(err, catalog.ErrInvalidSearchMode) {
		s.failure("Invalid search type.")
		s.println("")
		return s.writeErr
	}
	if err != nil {
		return err
	}

	if len(books) == 0 {
		s.println("No books found.")
		s.println("")
		return s.writeErr
	}
	s.println("Matching books:")
	for i, book := range books {
		s.println(FormatResult(i+1, book))
	}
	return s.writeErr
}

// saveFailed reports a write-through failure. The mutation itself is already
// applied in memory.
func (s *Shell) saveFailed(err error) {
	cause := errors.Unwrap(err)
	if cause == nil {
		cause = err
	}
	s.failure(fmt.Sprintf("Could not save collection: %v", cause))
}

// FormatResult renders one search hit as "N. Title by Author (Year) - Genre - Read".
func FormatResult(n int, book catalog.Book) string {
	return fmt.Sprintf("%d. %s by %s (%s) - %s - %s",
		n, book.Title, book.Author, book.Year, book.Genre, book.Status())
}
