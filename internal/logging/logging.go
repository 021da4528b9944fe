// Package logging builds the charmbracelet/log loggers used across the CLI
// and server, and carries them through context.Context.
package logging

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// New creates a logger writing to w at the given level. Timestamps are
// formatted as "HH:MM:SS.ms".
func New(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// ParseLevel maps a config value ("debug", "info", "warn", "error") to a
// level. Unknown or empty values fall back to info.
func ParseLevel(s string) log.Level {
	lvl, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

// Timer logs how long an operation took.
type Timer struct {
	logger *log.Logger
	start  time.Time
}

// Start returns a Timer that began now.
func Start(l *log.Logger) *Timer {
	return &Timer{logger: l, start: time.Now()}
}

// Done logs msg with the elapsed time, e.g. "Generated 9 pages (41ms)".
func (t *Timer) Done(msg string, keyvals ...interface{}) {
	t.logger.Info(msg, append(keyvals, "elapsed", time.Since(t.start).Round(time.Millisecond))...)
}

type ctxKey int

const loggerKey ctxKey = 0

// WithLogger attaches l to ctx.
func WithLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// FromContext returns the logger attached to ctx, or log.Default().
func FromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
