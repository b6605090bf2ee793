package mock

import (
	"context"
	"iter"

	"github.com/fwojciec/navstrip"
)

var _ navstrip.FileFinder = (*FileFinder)(nil)

// FileFinder is a mock implementation of navstrip.FileFinder.
type FileFinder struct {
	FindFilesFn func(ctx context.Context, root string) iter.Seq2[string, error]
}

func (f *FileFinder) FindFiles(ctx context.Context, root string) iter.Seq2[string, error] {
	return f.FindFilesFn(ctx, root)
}

// Paths returns a sequence yielding paths followed by err, if non-nil.
func Paths(err error, paths ...string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		for _, p := range paths {
			if !yield(p, nil) {
				return
			}
		}
		if err != nil {
			yield("", err)
		}
	}
}
