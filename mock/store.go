package mock

import (
	"context"

	"github.com/fwojciec/navstrip"
)

var _ navstrip.FileStore = (*FileStore)(nil)

// FileStore is a mock implementation of navstrip.FileStore.
type FileStore struct {
	ReadFileFn  func(ctx context.Context, path string) (string, error)
	WriteFileFn func(ctx context.Context, path string, content string) error
}

func (s *FileStore) ReadFile(ctx context.Context, path string) (string, error) {
	return s.ReadFileFn(ctx, path)
}

func (s *FileStore) WriteFile(ctx context.Context, path string, content string) error {
	return s.WriteFileFn(ctx, path, content)
}
