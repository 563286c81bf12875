// Package catalog holds the in-memory book collection and its operations.
//
// A Library is the single source of truth for one run: it is populated from a
// Storage backend when opened, mutated in memory by Add and Remove, and written
// back in full after every successful mutation. Searches are a linear,
// case-insensitive substring scan that preserves collection order.
//
// Input gathering happens elsewhere. Callers build AddRequest, RemoveRequest
// and SearchRequest values first, so every operation here can be exercised
// without a terminal.
package catalog
