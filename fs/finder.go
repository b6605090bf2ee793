// Package fs provides file discovery and file storage on the local disk.
package fs

import (
	"context"
	"errors"
	"iter"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/fwojciec/navstrip"
)

// htmlExt is the suffix of discovered files. Matching is case-sensitive.
const htmlExt = ".html"

// errStop ends a walk early when the consumer stops iterating.
var errStop = errors.New("stop walk")

// Ensure Finder implements navstrip.FileFinder at compile time.
var _ navstrip.FileFinder = (*Finder)(nil)

// Finder walks a directory tree for HTML files.
type Finder struct {
	// Exclude lists directory names that are never descended into.
	Exclude []string
}

// NewFinder creates a new Finder. With no names it excludes
// navstrip.DefaultExcludes.
func NewFinder(exclude ...string) *Finder {
	if len(exclude) == 0 {
		exclude = navstrip.DefaultExcludes
	}
	return &Finder{Exclude: exclude}
}

// FindFiles yields .html files under root in walk order. Directory names are
// compared exactly against Exclude; the root itself is never excluded.
// A symlinked root is followed, and yielded paths stay under root as given.
func (f *Finder) FindFiles(ctx context.Context, root string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		walkRoot, err := filepath.EvalSymlinks(root)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				err = navstrip.Errorf(navstrip.ENOTFOUND, "root directory %q not found", root)
			}
			yield("", err)
			return
		}

		err = filepath.WalkDir(walkRoot, func(path string, d os.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if err := ctx.Err(); err != nil {
				return err
			}

			if d.IsDir() {
				if path != walkRoot && f.excluded(d.Name()) {
					return filepath.SkipDir
				}
				return nil
			}

			if !strings.HasSuffix(d.Name(), htmlExt) {
				return nil
			}
			if !yield(underRoot(root, walkRoot, path), nil) {
				return errStop
			}
			return nil
		})
		if err != nil && !errors.Is(err, errStop) {
			yield("", err)
		}
	}
}

// underRoot rebases a path found beneath walkRoot onto root.
func underRoot(root, walkRoot, path string) string {
	if root == walkRoot {
		return path
	}
	rel, err := filepath.Rel(walkRoot, path)
	if err != nil {
		return path
	}
	return filepath.Join(root, rel)
}

func (f *Finder) excluded(name string) bool {
	return slices.Contains(f.Exclude, name)
}
