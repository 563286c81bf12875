package logging

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"
)

// consoleHandler writes "ts LEVEL component: message key=value ..." lines.
// Attribute encoding is delegated to a slog.TextHandler that renders into a
// scratch buffer with the built-in time, level and message keys removed.
type consoleHandler struct {
	mu        *sync.Mutex
	out       io.Writer
	scratch   *bytes.Buffer
	text      slog.Handler
	component string
	grouped   bool
}

func newConsoleHandler(w io.Writer, opts *slog.HandlerOptions) *consoleHandler {
	scratch := &bytes.Buffer{}
	textOpts := *opts
	textOpts.ReplaceAttr = func(groups []string, attr slog.Attr) slog.Attr {
		if len(groups) > 0 {
			return attr
		}
		switch attr.Key {
		case slog.TimeKey, slog.LevelKey, slog.MessageKey:
			return slog.Attr{}
		case slog.SourceKey:
			return shortSource(attr)
		}
		return attr
	}
	return &consoleHandler{
		mu:      &sync.Mutex{},
		out:     w,
		scratch: scratch,
		text:    slog.NewTextHandler(scratch, &textOpts),
	}
}

func (h *consoleHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.text.Enabled(ctx, level)
}

func (h *consoleHandler) Handle(ctx context.Context, record slog.Record) error {
	ts := record.Time
	if ts.IsZero() {
		ts = time.Now()
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.scratch.Reset()
	if err := h.text.Handle(ctx, record); err != nil {
		return err
	}
	fields := bytes.TrimSpace(h.scratch.Bytes())

	var line bytes.Buffer
	fmt.Fprintf(&line, "%s %s ", ts.Format(time.RFC3339), record.Level)
	if h.component != "" {
		line.WriteString(h.component)
		line.WriteString(": ")
	}
	line.WriteString(record.Message)
	if len(fields) > 0 {
		line.WriteByte(' ')
		line.Write(fields)
	}
	line.WriteByte('\n')

	_, err := h.out.Write(line.Bytes())
	return err
}

// WithAttrs lifts a top-level component attribute into the line prefix.
func (h *consoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	rest := make([]slog.Attr, 0, len(attrs))
	for _, attr := range attrs {
		if attr.Key == FieldComponent && !h.grouped {
			clone.component = attr.Value.String()
			continue
		}
		rest = append(rest, attr)
	}
	clone.text = h.text.WithAttrs(rest)
	return &clone
}

func (h *consoleHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	clone.text = h.text.WithGroup(name)
	clone.grouped = true
	return &clone
}
