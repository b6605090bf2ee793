package slog

import (
	"context"
	"iter"
	"log/slog"
	"time"

	"github.com/fwojciec/navstrip"
)

// Ensure LoggingFinder implements navstrip.FileFinder.
var _ navstrip.FileFinder = (*LoggingFinder)(nil)

// LoggingFinder wraps a FileFinder with logging of each walk.
type LoggingFinder struct {
	next   navstrip.FileFinder
	logger *slog.Logger
}

// NewLoggingFinder creates a new LoggingFinder.
func NewLoggingFinder(next navstrip.FileFinder, logger *slog.Logger) *LoggingFinder {
	return &LoggingFinder{next: next, logger: logger}
}

// FindFiles delegates to the wrapped finder and logs once the sequence ends.
func (f *LoggingFinder) FindFiles(ctx context.Context, root string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		var (
			count int
			err   error
		)
		defer func(begin time.Time) {
			f.logger.Info("file discovery",
				"root", root,
				"count", count,
				"duration", time.Since(begin),
				"err", err,
			)
		}(time.Now())

		for path, walkErr := range f.next.FindFiles(ctx, root) {
			if walkErr != nil {
				err = walkErr
			} else {
				count++
			}
			if !yield(path, walkErr) {
				return
			}
		}
	}
}
