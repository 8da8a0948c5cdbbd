package harness

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger for the rjson tooling.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new logger with the specified configuration.
func NewLogger(cfg LoggingConfig) *Logger {
	opts := &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Level),
	}

	var handler slog.Handler
	switch cfg.Format {
	case "json":
		handler = slog.NewJSONHandler(os.Stderr, opts)
	default:
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	return &Logger{Logger: slog.New(handler)}
}

// WithCodec returns a logger with the codec name attached.
func (l *Logger) WithCodec(name string) *Logger {
	return &Logger{Logger: l.Logger.With("codec", name)}
}

// WithFixture returns a logger with the fixture name attached.
func (l *Logger) WithFixture(name string) *Logger {
	return &Logger{Logger: l.Logger.With("fixture", name)}
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
