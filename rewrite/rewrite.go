// Package rewrite provides nav stripping orchestration.
// It coordinates file discovery, stripping, auditing and storage across a
// directory tree.
package rewrite

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fwojciec/navstrip"
)

// Rewriter strips site-header navs from every HTML file under a root.
type Rewriter struct {
	Finder   navstrip.FileFinder
	Store    navstrip.FileStore
	Stripper navstrip.Stripper

	// Auditor, if set, counts navs left in site headers of changed files.
	Auditor navstrip.Auditor

	// DryRun computes changes without writing any file.
	DryRun bool
}

// Run processes every file the Finder yields under root, in walk order.
// The first error aborts the run. The progress callback, if provided,
// receives each file's result.
func (r *Rewriter) Run(ctx context.Context, root string, progress navstrip.ProgressFunc) (*navstrip.Report, error) {
	report := &navstrip.Report{
		Root:    root,
		DryRun:  r.DryRun,
		Changed: []string{},
	}

	for path, err := range r.Finder.FindFiles(ctx, root) {
		if err != nil {
			return nil, fmt.Errorf("discover files: %w", err)
		}

		result, err := r.ProcessFile(ctx, path)
		if err != nil {
			return nil, err
		}
		report.Scanned++

		if progress != nil {
			progress(result)
		}

		if !result.Changed {
			continue
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return nil, fmt.Errorf("relative path for %q: %w", path, err)
		}
		report.Changed = append(report.Changed, rel)
	}

	navstrip.SortPaths(report.Changed)
	return report, nil
}

// ProcessFile strips one file. Unchanged files are never written, and in
// dry-run mode nothing is written at all.
func (r *Rewriter) ProcessFile(ctx context.Context, path string) (*navstrip.FileResult, error) {
	original, err := r.Store.ReadFile(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("read %q: %w", path, err)
	}

	updated, removed, changed := r.Stripper.Strip(original)

	result := &navstrip.FileResult{
		Path:        path,
		Changed:     changed,
		NavsRemoved: removed,
		BytesBefore: len(original),
		BytesAfter:  len(updated),
	}
	if !changed {
		return result, nil
	}
	result.HashBefore = computeHash(original)
	result.HashAfter = computeHash(updated)

	if r.Auditor != nil {
		residue, err := r.Auditor.Audit(updated)
		if err != nil {
			return nil, fmt.Errorf("audit %q: %w", path, err)
		}
		result.Residue = residue
	}

	if r.DryRun {
		return result, nil
	}
	if err := r.Store.WriteFile(ctx, path, updated); err != nil {
		return nil, fmt.Errorf("write %q: %w", path, err)
	}
	return result, nil
}
