package logger

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

type implLogger struct {
	entry *logrus.Entry
}

// New creates a new Logger instance writing to stdout.
// format is "json" or "text"; anything else falls back to text.
func New(level, format string) Logger {
	return NewWithOutput(os.Stdout, level, format)
}

// NewWithOutput is New with an explicit destination.
func NewWithOutput(out io.Writer, level, format string) Logger {
	base := logrus.New()
	base.SetOutput(out)

	if strings.EqualFold(format, "json") {
		base.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: time.RFC3339Nano,
		})
	} else {
		base.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.RFC3339,
		})
	}

	base.SetLevel(parseLevel(strings.ToLower(level)))

	return &implLogger{
		entry: logrus.NewEntry(base),
	}
}

func parseLevel(level string) logrus.Level {
	switch level {
	case "debug":
		return logrus.DebugLevel
	case "warn":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}

func (l *implLogger) With(key string, value interface{}) Logger {
	return &implLogger{
		entry: l.entry.WithField(key, value),
	}
}

func (l *implLogger) Debug(ctx context.Context, msg string, args ...interface{}) {
	l.entry.WithContext(ctx).Debugf(msg, args...)
}

func (l *implLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	l.entry.WithContext(ctx).Infof(msg, args...)
}

func (l *implLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	l.entry.WithContext(ctx).Warnf(msg, args...)
}

func (l *implLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	l.entry.WithContext(ctx).Errorf(msg, args...)
}

// Nop returns a Logger that discards everything. Useful in tests.
func Nop() Logger {
	return NewWithOutput(io.Discard, "error", "text")
}
