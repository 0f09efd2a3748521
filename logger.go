package algofwht

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with algofwht-specific fields.
// Transforms never log; plans log when they are created or reject input.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses a text handler to stderr at info level.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}

	return &Logger{Logger: slog.New(handler)}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	}))
}

// LogPlan logs the outcome of plan creation.
func (l *Logger) LogPlan(ctx context.Context, n int, strategy LaneStrategy, kernel string, err error) {
	if err != nil {
		l.WarnContext(ctx, "plan rejected",
			"n", n,
			"strategy", strategy.String(),
			"error", err,
		)

		return
	}

	l.DebugContext(ctx, "plan created",
		"n", n,
		"strategy", strategy.String(),
		"kernel", kernel,
	)
}
