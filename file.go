package navstrip

import (
	"context"
	"iter"
)

// DefaultExcludes are directory names never descended into during discovery.
var DefaultExcludes = []string{".git", "node_modules"}

// FileFinder discovers HTML files beneath a root directory.
type FileFinder interface {
	// FindFiles yields the path of every .html file under root, skipping
	// excluded directories at any depth. A yielded error ends the sequence.
	FindFiles(ctx context.Context, root string) iter.Seq2[string, error]
}

// FileStore reads and writes whole text files.
type FileStore interface {
	// ReadFile returns the file content as text.
	// Returns EINVALID if the content is not valid UTF-8.
	ReadFile(ctx context.Context, path string) (string, error)

	// WriteFile replaces the file content.
	WriteFile(ctx context.Context, path string, content string) error
}

// FileResult describes the outcome of processing a single file.
type FileResult struct {
	Path        string
	Changed     bool
	NavsRemoved int
	BytesBefore int
	BytesAfter  int

	// HashBefore and HashAfter are only set for changed files.
	HashBefore string
	HashAfter  string

	// Residue counts nav elements still nested in a site header after
	// stripping. Only populated when an Auditor is configured.
	Residue int
}

// ProgressFunc is called after each file is processed.
type ProgressFunc func(*FileResult)

// Report summarises a run over a directory tree.
type Report struct {
	Root    string
	DryRun  bool
	Scanned int

	// Changed holds changed file paths relative to Root, sorted.
	Changed []string
}

// Heading returns the line printed above the changed file list.
func (r *Report) Heading() string {
	if r.DryRun {
		return "Files that would be modified:"
	}
	return "Modified files:"
}
