package rewrite

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/navstrip"
)

// computeHash computes a hash of the content using xxhash.
func computeHash(content string) string {
	h := xxhash.Sum64String(content)
	return fmt.Sprintf("%x", h)
}

// ComputeHash computes a hash of the content using xxhash.
// This is the exported version for use in CLI commands.
func ComputeHash(content string) string {
	return computeHash(content)
}

// FormatBytes formats bytes in human-readable form.
func FormatBytes(bytes int) string {
	const (
		KB = 1024
		MB = KB * 1024
	)
	switch {
	case bytes >= MB:
		return fmt.Sprintf("%.1f MB", float64(bytes)/float64(MB))
	case bytes >= KB:
		return fmt.Sprintf("%.1f KB", float64(bytes)/float64(KB))
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}

// FormatResult summarises a file result for log output.
func FormatResult(r *navstrip.FileResult) string {
	if !r.Changed {
		return "unchanged"
	}
	return fmt.Sprintf("removed %d nav(s), %s -> %s", r.NavsRemoved, FormatBytes(r.BytesBefore), FormatBytes(r.BytesAfter))
}
