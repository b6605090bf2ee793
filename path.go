package navstrip

import (
	"path/filepath"
	"slices"
	"strings"
)

// ComparePaths orders relative paths component by component, so "a/x"
// sorts before "a-b/x".
func ComparePaths(a, b string) int {
	sep := string(filepath.Separator)
	return slices.Compare(strings.Split(a, sep), strings.Split(b, sep))
}

// SortPaths sorts relative paths in place using ComparePaths.
func SortPaths(paths []string) {
	slices.SortFunc(paths, ComparePaths)
}
