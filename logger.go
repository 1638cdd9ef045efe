package vecpool

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with vecpool-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithPool adds the pool name to the logger.
func (l *Logger) WithPool(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("pool", name),
	}
}

// WithClass adds a workload class field to the logger.
func (l *Logger) WithClass(class Class) *Logger {
	return &Logger{
		Logger: l.Logger.With("class", class.String()),
	}
}

// LogPoolInit logs creation of a pool.
func (l *Logger) LogPoolInit(name string, threads, capacity int) {
	l.Info("pool initialized",
		"pool", name,
		"threads", threads,
		"queue_capacity", capacity,
	)
}

// LogResize logs a thread-count change.
func (l *Logger) LogResize(name string, from, to int) {
	l.Info("pool resized",
		"pool", name,
		"from", from,
		"to", to,
	)
}

// LogWorkerPriority logs the outcome of lowering a worker's OS priority.
func (l *Logger) LogWorkerPriority(worker string, err error) {
	if err != nil {
		l.Warn("failed to lower worker thread priority",
			"worker", worker,
			"error", err,
		)
	} else {
		l.Debug("lowered worker thread priority",
			"worker", worker,
		)
	}
}
