// Package logging configures the process-wide slog logger and maintains the
// append-only per-level log files (info.log, warn.log, error.log,
// requests.log) under the configured log directory.
package logging

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"
)

var files = struct {
	mu  sync.Mutex
	dir string
}{}

// Setup configures the global slog default: a JSON handler on stdout plus a
// per-level file handler under logDir. Log level is controlled by the
// LOG_LEVEL environment variable (DEBUG, INFO, WARN, ERROR), defaulting to
// INFO. ERROR-level logs automatically include a stack trace.
func Setup(logDir string) {
	level := parseLevel(os.Getenv("LOG_LEVEL"))
	json := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:     level,
		AddSource: true,
	})

	files.mu.Lock()
	files.dir = logDir
	files.mu.Unlock()
	if logDir != "" {
		if err := os.MkdirAll(logDir, 0o755); err != nil {
			fmt.Fprintf(os.Stderr, "logging: cannot create %s: %v\n", logDir, err)
		}
	}

	slog.SetDefault(slog.New(&stackHandler{Handler: &fileHandler{Handler: json}}))
}

func parseLevel(s string) slog.Level {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Fatal logs at Error level and exits with code 1.
func Fatal(msg string, args ...any) {
	slog.Error(msg, args...)
	os.Exit(1)
}

// Success records an operational success. It logs at Info level with a
// success marker; the file line lands in info.log prefixed SUCCESS.
func Success(msg string, args ...any) {
	args = append(args, "success", true)
	slog.Info(msg, args...)
}

// Request appends one request summary line to requests.log.
func Request(line string) {
	appendLine("requests.log", line)
}

func appendLine(name, line string) {
	files.mu.Lock()
	dir := files.dir
	files.mu.Unlock()
	if dir == "" {
		return
	}

	f, err := os.OpenFile(filepath.Join(dir, name), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging: cannot open %s: %v\n", name, err)
		return
	}
	defer f.Close()
	fmt.Fprintf(f, "[%s] %s\n", time.Now().UTC().Format(time.RFC3339), line)
}

// fileHandler mirrors each record into the append-only per-level file.
type fileHandler struct {
	slog.Handler
}

func (h *fileHandler) Handle(ctx context.Context, r slog.Record) error {
	name := "info.log"
	label := "INFO"
	switch {
	case r.Level >= slog.LevelError:
		name, label = "error.log", "ERROR"
	case r.Level >= slog.LevelWarn:
		name, label = "warn.log", "WARN"
	}

	var attrs []string
	r.Attrs(func(a slog.Attr) bool {
		if a.Key == "success" && label == "INFO" {
			label = "SUCCESS"
			return true
		}
		attrs = append(attrs, fmt.Sprintf("%s=%v", a.Key, a.Value))
		return true
	})

	line := label + ": " + r.Message
	if len(attrs) > 0 {
		line += " " + strings.Join(attrs, " ")
	}
	appendLine(name, line)

	return h.Handler.Handle(ctx, r)
}

func (h *fileHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &fileHandler{Handler: h.Handler.WithAttrs(attrs)}
}

func (h *fileHandler) WithGroup(name string) slog.Handler {
	return &fileHandler{Handler: h.Handler.WithGroup(name)}
}

// stackHandler wraps a slog.Handler and appends a stack trace for ERROR+.
type stackHandler struct {
	slog.Handler
}

func (h *stackHandler) Handle(ctx context.Context, r slog.Record) error {
	if r.Level >= slog.LevelError {
		buf := make([]byte, 4096)
		n := runtime.Stack(buf, false)
		r.AddAttrs(slog.String("stacktrace", string(buf[:n])))
	}
	return h.Handler.Handle(ctx, r)
}

func (h *stackHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &stackHandler{Handler: h.Handler.WithAttrs(attrs)}
}

func (h *stackHandler) WithGroup(name string) slog.Handler {
	return &stackHandler{Handler: h.Handler.WithGroup(name)}
}
