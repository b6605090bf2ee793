package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/navstrip"
)

// Ensure LoggingStore implements navstrip.FileStore.
var _ navstrip.FileStore = (*LoggingStore)(nil)

// LoggingStore wraps a FileStore with debug logging.
type LoggingStore struct {
	next   navstrip.FileStore
	logger *slog.Logger
}

// NewLoggingStore creates a new LoggingStore.
func NewLoggingStore(next navstrip.FileStore, logger *slog.Logger) *LoggingStore {
	return &LoggingStore{next: next, logger: logger}
}

// ReadFile delegates to the wrapped store and logs the read.
func (s *LoggingStore) ReadFile(ctx context.Context, path string) (content string, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("read file",
			"path", path,
			"bytes", len(content),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ReadFile(ctx, path)
}

// WriteFile delegates to the wrapped store and logs the write.
func (s *LoggingStore) WriteFile(ctx context.Context, path string, content string) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("write file",
			"path", path,
			"bytes", len(content),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.WriteFile(ctx, path, content)
}
