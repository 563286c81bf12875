package shell

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"bookshelf/internal/catalog"
	"bookshelf/internal/storage"
)

var (
	dune = catalog.Book{Title: "Dune", Author: "Frank Herbert", Year: "1965", Genre: "SF", Read: true}
	emma = catalog.Book{Title: "Emma", Author: "Jane Austen", Year: "1815", Genre: "Novel"}
)

type failingStore struct {
	books []catalog.Book
}

func (f *failingStore) Load(context.Context) (catalog.Snapshot, error) {
	return catalog.Snapshot{Books: f.books, State: catalog.StateLoaded}, nil
}

func (f *failingStore) Save(context.Context, []catalog.Book) error {
	return errors.New("disk full")
}

func newTestShell(t *testing.T, input string, store catalog.Storage) (*Shell, *catalog.Library, *bytes.Buffer) {
	t.Helper()
	lib, err := catalog.Open(t.Context(), store, nil)
	if err != nil {
		t.Fatalf("catalog.Open: %v", err)
	}
	var out bytes.Buffer
	return New(strings.NewReader(input), &out, lib), lib, &out
}

func runShell(t *testing.T, input string, store catalog.Storage) (*catalog.Library, string) {
	t.Helper()
	sh, lib, out := newTestShell(t, input, store)
	if err := sh.Run(t.Context()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	return lib, out.String()
}

func TestRunAddPersistsBook(t *testing.T) {
	store := storage.NewMemory()
	input := "1\nDune\nFrank Herbert\n1965\nSF\n Yes \n4\n"

	lib, out := runShell(t, input, store)

	if !strings.Contains(out, "Book added successfully!") {
		t.Fatalf("missing confirmation in output:\n%s", out)
	}
	if !strings.HasSuffix(out, "Goodbye!\n") {
		t.Fatalf("expected farewell at end, got:\n%s", out)
	}
	if diff := cmp.Diff([]catalog.Book{dune}, lib.Books()); diff != "" {
		t.Fatalf("books mismatch (-want +got):\n%s", diff)
	}
	snap, err := store.Load(t.Context())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if diff := cmp.Diff([]catalog.Book{dune}, snap.Books); diff != "" {
		t.Fatalf("stored books mismatch (-want +got):\n%s", diff)
	}
}

func TestRunAddTreatsAnythingButYesAsUnread(t *testing.T) {
	for _, answer := range []string{"y", "no", "", "yess"} {
		lib, _ := runShell(t, "1\nT\nA\n2000\nG\n"+answer+"\n4\n", storage.NewMemory())
		books := lib.Books()
		if len(books) != 1 || books[0].Read {
			t.Fatalf("answer %q: got %+v, want one unread book", answer, books)
		}
	}
}

func TestRunRemoveFirstCaseInsensitiveMatch(t *testing.T) {
	first := catalog.Book{Title: "Dune", Author: "A"}
	second := catalog.Book{Title: "dune", Author: "B"}
	store := storage.NewMemoryWith(first, second)

	lib, out := runShell(t, "2\nDUNE\n4\n", store)

	if !strings.Contains(out, "Book removed successfully!") {
		t.Fatalf("missing confirmation in output:\n%s", out)
	}
	if diff := cmp.Diff([]catalog.Book{second}, lib.Books()); diff != "" {
		t.Fatalf("books mismatch (-want +got):\n%s", diff)
	}
}

func TestRunRemoveNotFoundLeavesStoreUntouched(t *testing.T) {
	store := storage.NewMemoryWith(dune)

	lib, out := runShell(t, "2\nNeuromancer\n4\n", store)

	if !strings.Contains(out, "Book not found.") {
		t.Fatalf("missing not-found message in output:\n%s", out)
	}
	if lib.Len() != 1 {
		t.Fatalf("Len = %d, want 1", lib.Len())
	}
	if store.Saves() != 0 {
		t.Fatalf("Saves = %d, want 0", store.Saves())
	}
}

func TestRunSearch(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "title substring",
			input: "3\n1\ndun\n4\n",
			want:  []string{"Matching books:", "1. Dune by Frank Herbert (1965) - SF - Read"},
		},
		{
			name:  "author matches every book",
			input: "3\n2\na\n4\n",
			want: []string{
				"1. Dune by Frank Herbert (1965) - SF - Read",
				"2. Emma by Jane Austen (1815) - Novel - Unread",
			},
		},
		{
			name:  "mode with whitespace is not a mode",
			input: "3\n 2 \nausten\n4\n",
			want:  []string{"Invalid search type."},
		},
		{
			name:  "windows line endings",
			input: "3\r\n2\r\nausten\r\n4\r\n",
			want:  []string{"1. Emma by Jane Austen (1815) - Novel - Unread"},
		},
		{
			name:  "no match",
			input: "3\n1\nzzz\n4\n",
			want:  []string{"No books found."},
		},
		{
			name:  "invalid mode",
			input: "3\n3\ndune\n4\n",
			want:  []string{"Invalid search type."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, out := runShell(t, tt.input, storage.NewMemoryWith(dune, emma))
			for _, line := range tt.want {
				if !strings.Contains(out, line+"\n") {
					t.Fatalf("output missing %q:\n%s", line, out)
				}
			}
		})
	}
}

func TestRunInvalidSearchModeShowsNoResults(t *testing.T) {
	for _, mode := range []string{"title", "3", "", " 1"} {
		store := storage.NewMemoryWith(dune, emma)
		lib, out := runShell(t, "3\n"+mode+"\nDune\n4\n", store)

		if !strings.Contains(out, "Invalid search type.\n") {
			t.Fatalf("mode %q: missing invalid-search message:\n%s", mode, out)
		}
		if strings.Contains(out, "Matching books:") || strings.Contains(out, "No books found.") {
			t.Fatalf("mode %q: unexpected search output:\n%s", mode, out)
		}
		if diff := cmp.Diff([]catalog.Book{dune, emma}, lib.Books()); diff != "" {
			t.Fatalf("mode %q: collection changed (-want +got):\n%s", mode, diff)
		}
		if store.Saves() != 0 {
			t.Fatalf("mode %q: Saves = %d, want 0", mode, store.Saves())
		}
	}
}

func TestRunMenuChoiceIsComparedAsTyped(t *testing.T) {
	for _, choice := range []string{" 1", "1 ", "01", "one"} {
		store := storage.NewMemory()
		lib, out := runShell(t, choice+"\n4\n", store)

		if !strings.Contains(out, "Invalid option. Please try again.") {
			t.Fatalf("choice %q: missing invalid-option message:\n%s", choice, out)
		}
		if strings.Contains(out, "Enter book title: ") {
			t.Fatalf("choice %q: add flow should not start:\n%s", choice, out)
		}
		if lib.Len() != 0 || store.Saves() != 0 {
			t.Fatalf("choice %q: collection touched", choice)
		}
	}
}

func TestRunInvalidMenuChoiceRedisplaysMenu(t *testing.T) {
	_, out := runShell(t, "9\n4\n", storage.NewMemory())

	if !strings.Contains(out, "Invalid option. Please try again.") {
		t.Fatalf("missing invalid-option message:\n%s", out)
	}
	if got := strings.Count(out, "Welcome to your Book Collection!"); got != 2 {
		t.Fatalf("menu shown %d times, want 2", got)
	}
}

func TestRunEndOfInputExits(t *testing.T) {
	tests := map[string]string{
		"at menu":         "",
		"mid add":         "1\nDune\n",
		"partial last":    "2\nDune",
		"after no choice": "9\n",
	}
	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			_, out := runShell(t, input, storage.NewMemoryWith(dune))
			if !strings.HasSuffix(out, "Goodbye!\n") {
				t.Fatalf("expected farewell, got:\n%s", out)
			}
		})
	}
}

func TestRunPartialFinalLineIsUsed(t *testing.T) {
	lib, _ := runShell(t, "2\nDune", storage.NewMemoryWith(dune))
	if lib.Len() != 0 {
		t.Fatalf("Len = %d, want 0", lib.Len())
	}
}

func TestRunSaveFailureKeepsGoing(t *testing.T) {
	store := &failingStore{}

	lib, out := runShell(t, "1\nDune\nFrank Herbert\n1965\nSF\nyes\n4\n", store)

	if !strings.Contains(out, "Could not save collection: disk full") {
		t.Fatalf("missing save error in output:\n%s", out)
	}
	if lib.Len() != 1 {
		t.Fatalf("Len = %d, want 1 (mutation kept in memory)", lib.Len())
	}
	if !strings.HasSuffix(out, "Goodbye!\n") {
		t.Fatalf("loop did not continue to exit:\n%s", out)
	}
}

func TestRunCanceledContext(t *testing.T) {
	sh, _, _ := newTestShell(t, "4\n", storage.NewMemory())
	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	if err := sh.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("Run error = %v, want context.Canceled", err)
	}
}

type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) { return 0, errors.New("closed pipe") }

func TestRunReportsWriteFailure(t *testing.T) {
	lib, err := catalog.Open(t.Context(), storage.NewMemory(), nil)
	if err != nil {
		t.Fatalf("catalog.Open: %v", err)
	}
	sh := New(strings.NewReader("4\n"), brokenWriter{}, lib)

	if err := sh.Run(t.Context()); err == nil || !strings.Contains(err.Error(), "closed pipe") {
		t.Fatalf("Run error = %v, want write failure", err)
	}
}

func TestColorWrapsFeedback(t *testing.T) {
	lib, err := catalog.Open(t.Context(), storage.NewMemory(), nil)
	if err != nil {
		t.Fatalf("catalog.Open: %v", err)
	}
	var out bytes.Buffer
	sh := New(strings.NewReader("7\n4\n"), &out, lib, WithColor(true))
	if err := sh.Run(t.Context()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(out.String(), ansiRed+"Invalid option. Please try again."+ansiReset) {
		t.Fatalf("expected red invalid-option message, got %q", out.String())
	}
}

func TestReadAddRequest(t *testing.T) {
	sh, _, out := newTestShell(t, "Dune\nFrank Herbert\n1965\nSF\nYES\n", storage.NewMemory())

	req, err := sh.readAddRequest()
	if err != nil {
		t.Fatalf("readAddRequest: %v", err)
	}
	want := catalog.AddRequest{Title: "Dune", Author: "Frank Herbert", Year: "1965", Genre: "SF", Read: true}
	if diff := cmp.Diff(want, req); diff != "" {
		t.Fatalf("request mismatch (-want +got):\n%s", diff)
	}
	if !strings.HasSuffix(out.String(), "Have you read this book? (yes/no): ") {
		t.Fatalf("unexpected prompts: %q", out.String())
	}
}

func TestReadAddRequestKeepsWhitespace(t *testing.T) {
	sh, _, _ := newTestShell(t, "  Dune \r\nA\n\n\nno\n", storage.NewMemory())

	req, err := sh.readAddRequest()
	if err != nil {
		t.Fatalf("readAddRequest: %v", err)
	}
	if req.Title != "  Dune " {
		t.Fatalf("Title = %q, want %q", req.Title, "  Dune ")
	}
	if req.Year != "" || req.Genre != "" {
		t.Fatalf("expected empty year and genre, got %+v", req)
	}
}

func TestReadSearchRequest(t *testing.T) {
	tests := []struct {
		input string
		want  catalog.SearchRequest
	}{
		{"1\ndun\n", catalog.SearchRequest{Mode: catalog.SearchByTitle, Term: "dun"}},
		{"2\nHerbert\n", catalog.SearchRequest{Mode: catalog.SearchByAuthor, Term: "Herbert"}},
		{"author\nx\n", catalog.SearchRequest{Term: "x"}},
		{" 1\nx\n", catalog.SearchRequest{Term: "x"}},
	}
	for _, tt := range tests {
		sh, _, _ := newTestShell(t, tt.input, storage.NewMemory())
		got, err := sh.readSearchRequest()
		if err != nil {
			t.Fatalf("readSearchRequest(%q): %v", tt.input, err)
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Fatalf("readSearchRequest(%q) mismatch (-want +got):\n%s", tt.input, diff)
		}
	}
}

func TestReadRemoveRequestEOF(t *testing.T) {
	sh, _, _ := newTestShell(t, "", storage.NewMemory())
	if _, err := sh.readRemoveRequest(); err == nil {
		t.Fatal("expected EOF error")
	}
}

func TestFormatResult(t *testing.T) {
	got := FormatResult(3, emma)
	want := "3. Emma by Jane Austen (1815) - Novel - Unread"
	if got != want {
		t.Fatalf("FormatResult = %q, want %q", got, want)
	}
}
