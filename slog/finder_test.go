package slog_test

import (
	"bytes"
	"context"
	"errors"
	"iter"
	"log/slog"
	"testing"

	"github.com/fwojciec/navstrip/mock"
	navslog "github.com/fwojciec/navstrip/slog"
	"github.com/stretchr/testify/assert"
)

func TestLoggingFinder_FindFiles(t *testing.T) {
	t.Parallel()

	t.Run("logs discovery with count and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.FileFinder{
			FindFilesFn: func(_ context.Context, _ string) iter.Seq2[string, error] {
				return mock.Paths(nil, "/site/a.html", "/site/b.html")
			},
		}

		f := navslog.NewLoggingFinder(inner, logger)
		var paths []string
		for p, err := range f.FindFiles(context.Background(), "/site") {
			assert.NoError(t, err)
			paths = append(paths, p)
		}

		assert.Equal(t, []string{"/site/a.html", "/site/b.html"}, paths)
		output := buf.String()
		assert.Contains(t, output, "file discovery")
		assert.Contains(t, output, "root=/site")
		assert.Contains(t, output, "count=2")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.FileFinder{
			FindFilesFn: func(_ context.Context, _ string) iter.Seq2[string, error] {
				return mock.Paths(errors.New("permission denied"), "/site/a.html")
			},
		}

		f := navslog.NewLoggingFinder(inner, logger)
		var gotErr error
		for _, err := range f.FindFiles(context.Background(), "/site") {
			if err != nil {
				gotErr = err
			}
		}

		assert.EqualError(t, gotErr, "permission denied")
		output := buf.String()
		assert.Contains(t, output, "count=1")
		assert.Contains(t, output, "err=\"permission denied\"")
	})

	t.Run("logs when consumer stops early", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.FileFinder{
			FindFilesFn: func(_ context.Context, _ string) iter.Seq2[string, error] {
				return mock.Paths(nil, "/site/a.html", "/site/b.html")
			},
		}

		f := navslog.NewLoggingFinder(inner, logger)
		for range f.FindFiles(context.Background(), "/site") {
			break
		}

		assert.Contains(t, buf.String(), "count=1")
	})
}
