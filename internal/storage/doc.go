// Package storage provides the persistence backends for the book collection.
//
// Every backend stores the whole collection as one snapshot: Save replaces
// the previous contents and Load reads everything back in order. There is no
// incremental or append-only mode.
//
// # Backends
//
//	json   - an indented JSON array in a single file (default)
//	sqlite - a SQLite database with one row per book, rewritten per save
//	memory - process-local, for tests and dry runs
//
// A missing store loads as catalog.StateAbsent and an undecodable one as
// catalog.StateCorrupt, both with an empty collection and a nil error.
//
// # Locking
//
// AcquireLock takes an advisory flock next to the store so that a second
// interactive session on the same file fails fast instead of racing the
// first one's whole-file rewrites.
package storage
