// Package shell implements the interactive menu loop for the book catalog.
//
// The loop is a small state machine (menu, add, remove, search, exit) that
// blocks on one line of input at a time. Each flow first collects its answers
// into a catalog request value and only then calls the Library, so the
// prompting and the mutation can be tested independently.
package shell
