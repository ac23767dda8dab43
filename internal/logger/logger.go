package logger

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/getsentry/sentry-go"
	slogmulti "github.com/samber/slog-multi"
	slogsentry "github.com/samber/slog-sentry/v2"
)

// sentryFlushTimeout bounds how long Close waits for buffered events.
const sentryFlushTimeout = 2 * time.Second

// Options configures the process logger.
type Options struct {
	Level     string // debug, info, warn or error
	Format    string // json or text
	SentryDSN string // empty disables error reporting
}

// Logger wraps the configured slog.Logger with the lifecycle of its sinks.
type Logger struct {
	*slog.Logger
	sentry bool
}

// New builds a logger writing to w. When a Sentry DSN is configured,
// error-level records are additionally forwarded to Sentry.
func New(w io.Writer, opts Options) (*Logger, error) {
	handlerOpts := &slog.HandlerOptions{Level: ParseLevel(opts.Level)}

	var base slog.Handler
	switch opts.Format {
	case "", "json":
		base = slog.NewJSONHandler(w, handlerOpts)
	case "text":
		base = slog.NewTextHandler(w, handlerOpts)
	default:
		return nil, fmt.Errorf("unsupported log format %q", opts.Format)
	}

	if opts.SentryDSN == "" {
		return &Logger{Logger: slog.New(base)}, nil
	}

	if err := sentry.Init(sentry.ClientOptions{Dsn: opts.SentryDSN}); err != nil {
		return nil, fmt.Errorf("initializing sentry: %w", err)
	}
	handler := slogmulti.Fanout(
		base,
		slogsentry.Option{Level: slog.LevelError}.NewSentryHandler(),
	)
	return &Logger{Logger: slog.New(handler), sentry: true}, nil
}

// Close flushes buffered Sentry events. It is a no-op without Sentry.
func (l *Logger) Close() {
	if l.sentry {
		sentry.Flush(sentryFlushTimeout)
	}
}

// ParseLevel maps a level name to a slog.Level, defaulting to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
