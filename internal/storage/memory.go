package storage

import (
	"context"
	"slices"

	"bookshelf/internal/catalog"
)

// Memory keeps the collection in process memory.
type Memory struct {
	books []catalog.Book
	saved bool
	saves int
}

// NewMemory returns an empty in-memory backend that loads as StateAbsent
// until the first Save.
func NewMemory() *Memory {
	return &Memory{}
}

// NewMemoryWith returns an in-memory backend seeded with books.
func NewMemoryWith(books ...catalog.Book) *Memory {
	return &Memory{books: slices.Clone(books), saved: true}
}

func (m *Memory) Load(ctx context.Context) (catalog.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return catalog.Snapshot{}, err
	}
	if !m.saved {
		return catalog.Snapshot{State: catalog.StateAbsent}, nil
	}
	return catalog.Snapshot{Books: slices.Clone(m.books), State: catalog.StateLoaded}, nil
}

func (m *Memory) Save(ctx context.Context, books []catalog.Book) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.books = slices.Clone(books)
	m.saved = true
	m.saves++
	return nil
}

// Saves returns how many times Save succeeded.
func (m *Memory) Saves() int {
	return m.saves
}

func (m *Memory) Close() error {
	return nil
}
