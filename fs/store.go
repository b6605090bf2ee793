package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/fwojciec/navstrip"
)

// Ensure Store implements navstrip.FileStore at compile time.
var _ navstrip.FileStore = (*Store)(nil)

// Store reads and writes UTF-8 text files in place.
// Writes go to a temporary file in the same directory which is then
// renamed over the original, so a failed write never truncates a file.
type Store struct{}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// ReadFile returns the whole file as text.
func (s *Store) ReadFile(ctx context.Context, path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", navstrip.Errorf(navstrip.EINVALID, "file %q is not valid UTF-8", path)
	}
	return string(data), nil
}

// WriteFile replaces the content of path, keeping its permission bits.
// A symlinked path is written through to its target; the link stays.
func (s *Store) WriteFile(ctx context.Context, path string, content string) (err error) {
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		path = resolved
	}

	perm := os.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}

	dir, name := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, "."+name+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file for %q: %w", path, err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err := tmp.WriteString(content); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write %q: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write %q: %w", path, err)
	}
	if err := os.Chmod(tmp.Name(), perm); err != nil {
		return fmt.Errorf("chmod %q: %w", path, err)
	}

	// Atomically rename temp over the original
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace %q: %w", path, err)
	}
	return nil
}
