package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"bookshelf/internal/config"
)

// Options describes logger construction parameters.
type Options struct {
	Level       string
	Format      string
	OutputPaths []string
	// Writer, when set, receives log output in addition to OutputPaths.
	Writer io.Writer
}

// New constructs a slog logger using the provided options. With no outputs
// configured the logger discards everything. The returned func closes any
// log files New opened; it is never nil.
func New(opts Options) (*slog.Logger, func() error, error) {
	levelVar := new(slog.LevelVar)
	levelVar.Set(parseLevel(opts.Level))

	format := strings.ToLower(strings.TrimSpace(opts.Format))
	if format == "" {
		format = config.LogFormatConsole
	}
	if format != config.LogFormatConsole && format != config.LogFormatJSON {
		return nil, nil, fmt.Errorf("log format: unsupported value %q", opts.Format)
	}

	out, err := openOutputs(opts.OutputPaths, opts.Writer)
	if err != nil {
		return nil, nil, err
	}
	if out.writer == nil {
		return NewNop(), out.Close, nil
	}

	handlerOpts := &slog.HandlerOptions{
		Level:     levelVar,
		AddSource: levelVar.Level() <= slog.LevelDebug,
	}
	var handler slog.Handler
	if format == config.LogFormatJSON {
		handler = newJSONHandler(out.writer, handlerOpts)
	} else {
		handler = newConsoleHandler(out.writer, handlerOpts)
	}
	return slog.New(handler), out.Close, nil
}

// NewFromConfig creates a logger writing to the configured log file. Logs are
// never sent to stdout because the interactive shell owns the terminal.
func NewFromConfig(cfg *config.Config) (*slog.Logger, func() error, error) {
	if cfg == nil {
		return NewNop(), func() error { return nil }, nil
	}

	var outputPaths []string
	if logPath := cfg.LogFilePath(); logPath != "" {
		outputPaths = append(outputPaths, logPath)
	}

	return New(Options{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		OutputPaths: outputPaths,
	})
}

func parseLevel(level string) slog.Level {
	var parsed slog.Level
	if err := parsed.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return slog.LevelInfo
	}
	return parsed
}

// outputs is the combined log destination plus the files that must be closed.
type outputs struct {
	writer io.Writer
	files  []*os.File
}

func (o *outputs) Close() error {
	var errs []error
	for _, file := range o.files {
		if err := file.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	o.files = nil
	return errors.Join(errs...)
}

func openOutputs(paths []string, extra io.Writer) (*outputs, error) {
	out := &outputs{}
	seen := make(map[string]bool, len(paths))
	var writers []io.Writer

	for _, path := range paths {
		path = strings.TrimSpace(path)
		if path == "" || seen[path] {
			continue
		}
		seen[path] = true

		if path == "stderr" {
			writers = append(writers, os.Stderr)
			continue
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			_ = out.Close()
			return nil, fmt.Errorf("ensure log directory: %w", err)
		}
		file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o664)
		if err != nil {
			_ = out.Close()
			return nil, fmt.Errorf("open log file %s: %w", path, err)
		}
		out.files = append(out.files, file)
		writers = append(writers, file)
	}
	if extra != nil {
		writers = append(writers, extra)
	}

	switch len(writers) {
	case 0:
	case 1:
		out.writer = writers[0]
	default:
		out.writer = io.MultiWriter(writers...)
	}
	return out, nil
}

func newJSONHandler(w io.Writer, opts *slog.HandlerOptions) slog.Handler {
	jsonOpts := *opts
	jsonOpts.ReplaceAttr = func(groups []string, attr slog.Attr) slog.Attr {
		if len(groups) > 0 {
			return attr
		}
		switch attr.Key {
		case slog.TimeKey:
			return slog.String("ts", attr.Value.Time().UTC().Format(time.RFC3339))
		case slog.LevelKey:
			return slog.String(slog.LevelKey, strings.ToLower(attr.Value.String()))
		case slog.SourceKey:
			return shortSource(attr)
		}
		return attr
	}
	return slog.NewJSONHandler(w, &jsonOpts)
}

// shortSource rewrites the source attribute to "file.go:line".
func shortSource(attr slog.Attr) slog.Attr {
	if src, ok := attr.Value.Any().(*slog.Source); ok && src != nil {
		attr.Value = slog.StringValue(fmt.Sprintf("%s:%d", filepath.Base(src.File), src.Line))
	}
	return attr
}
