// Package logger builds the service's structured JSON logger.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"
)

const (
	LevelDebug string = "DEBUG"
	LevelInfo  string = "INFO"
	LevelWarn  string = "WARN"
	LevelError string = "ERROR"
)

// New returns a JSON logger writing to stdout, tagged with the service name
// and hostname. Unknown levels fall back to INFO.
func New(serviceName, logLevel string) *slog.Logger {
	return NewWithWriter(os.Stdout, serviceName, logLevel)
}

// NewWithWriter is New with a custom destination.
func NewWithWriter(w io.Writer, serviceName, logLevel string) *slog.Logger {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}

	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: ParseLevel(logLevel),
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.MessageKey {
				return slog.Attr{Key: "message", Value: a.Value}
			}
			if a.Key == slog.TimeKey {
				if t, ok := a.Value.Any().(time.Time); ok {
					return slog.String("timestamp", t.Format(time.RFC3339))
				}
			}
			return a
		},
	})

	return slog.New(handler).With(
		slog.String("service", serviceName),
		slog.String("hostname", hostname),
	)
}

// ParseLevel maps DEBUG, INFO, WARN and ERROR (any case) to slog levels.
func ParseLevel(logLevel string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(logLevel)) {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
