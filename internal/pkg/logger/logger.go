// Package logger configures logrus and carries request-scoped entries through contexts.
package logger

import (
	"context"
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
)

type contextKey struct{}

// Options selects the level and output format.
type Options struct {
	Level  string // logrus level name, e.g. "debug", "info"
	Format string // "json" or "text"
	Output io.Writer
}

// New builds a logger from options. An empty level defaults to info.
func New(opts Options) (*log.Logger, error) {
	l := log.New()
	l.SetOutput(os.Stdout)
	if opts.Output != nil {
		l.SetOutput(opts.Output)
	}

	level := log.InfoLevel
	if opts.Level != "" {
		var err error
		level, err = log.ParseLevel(opts.Level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", opts.Level, err)
		}
	}
	l.SetLevel(level)

	switch opts.Format {
	case "json":
		l.SetFormatter(&log.JSONFormatter{})
	case "", "text":
		l.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	default:
		return nil, fmt.Errorf("invalid log format %q", opts.Format)
	}
	return l, nil
}

// WithContext returns a derived context carrying the entry.
func WithContext(ctx context.Context, entry *log.Entry) context.Context {
	return context.WithValue(ctx, contextKey{}, entry)
}

// FromContext returns the request-scoped entry, or one built on the standard logger.
func FromContext(ctx context.Context) *log.Entry {
	if ctx != nil {
		if e, ok := ctx.Value(contextKey{}).(*log.Entry); ok {
			return e
		}
	}
	return log.NewEntry(log.StandardLogger())
}
