package logger

import (
	"io"
	"log/slog"
	"os"
	"sync"
)

var (
	mu            sync.Mutex
	defaultLogger *slog.Logger
	level         = new(slog.LevelVar)
)

// Init sends log output to stderr. Verbose enables debug records.
func Init(verbose bool) {
	InitWithWriter(os.Stderr, verbose)
}

func InitWithWriter(w io.Writer, verbose bool) {
	SetVerbose(verbose)

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})

	mu.Lock()
	defaultLogger = slog.New(handler).With("app", "trimlines")
	mu.Unlock()
}

func SetVerbose(verbose bool) {
	if verbose {
		level.Set(slog.LevelDebug)
	} else {
		// Info records are the report's duplicate; keep stderr quiet unless asked.
		level.Set(slog.LevelWarn)
	}
}

func get() *slog.Logger {
	mu.Lock()
	l := defaultLogger
	mu.Unlock()
	if l == nil {
		Init(false)
		return get()
	}
	return l
}

// ForFile returns a logger that tags every record with the target path.
func ForFile(path string) *slog.Logger {
	return get().With("file", path)
}

func Debug(msg string, args ...any) {
	get().Debug(msg, args...)
}

func Error(msg string, args ...any) {
	get().Error(msg, args...)
}
