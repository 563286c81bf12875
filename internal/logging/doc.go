// Package logging assembles structured slog loggers and formatting helpers used
// across bookshelf.
//
// It owns the configurable console/JSON handlers and the level and output
// plumbing, and exposes a no-op logger for tests and wiring code that cannot
// fail. Output goes to the configured log file rather than stdout, since the
// terminal is reserved for the interactive shell.
//
// Prefer these constructors over hand-rolled slog setup so every component
// emits records with the same shape.
package logging
