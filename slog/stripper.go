package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/navstrip"
)

// Ensure LoggingStripper implements navstrip.Stripper.
var _ navstrip.Stripper = (*LoggingStripper)(nil)

// LoggingStripper wraps a Stripper with debug logging.
type LoggingStripper struct {
	next   navstrip.Stripper
	logger *slog.Logger
}

// NewLoggingStripper creates a new LoggingStripper.
func NewLoggingStripper(next navstrip.Stripper, logger *slog.Logger) *LoggingStripper {
	return &LoggingStripper{next: next, logger: logger}
}

// Strip delegates to the wrapped stripper and logs what was removed.
func (s *LoggingStripper) Strip(html string) (out string, removed int, changed bool) {
	defer func(begin time.Time) {
		s.logger.Debug("strip",
			"bytes", len(html),
			"removed", removed,
			"changed", changed,
			"duration", time.Since(begin),
		)
	}(time.Now())
	return s.next.Strip(html)
}
