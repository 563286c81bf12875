package testsupport

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"bookshelf/internal/catalog"
)

// WriteLibrary writes books to path in the JSON library format.
func WriteLibrary(t testing.TB, path string, books []catalog.Book) {
	t.Helper()

	if books == nil {
		books = []catalog.Book{}
	}
	data, err := json.MarshalIndent(books, "", "    ")
	if err != nil {
		t.Fatalf("marshal books: %v", err)
	}
	WriteRaw(t, path, data)
}

// WriteRaw writes data to path, creating parent directories.
func WriteRaw(t testing.TB, path string, data []byte) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// ReadLibrary decodes the JSON library at path.
func ReadLibrary(t testing.TB, path string) []catalog.Book {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	var books []catalog.Book
	if err := json.Unmarshal(data, &books); err != nil {
		t.Fatalf("decode %s: %v", path, err)
	}
	return books
}
