package fileutil

import (
	"errors"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"strings"

	"github.com/harrison/mdfiles/internal/models"
)

// WalkOptions configures traversal
type WalkOptions struct {
	// ExcludeDirs is a list of directory names not to descend into (e.g., ".git", "node_modules")
	ExcludeDirs []string
	// MaxDepth limits recursion depth (0 = unlimited, 1 = root dir only)
	MaxDepth int
	// OnSkip, if set, is called for every entry dropped because of an error
	OnSkip func(path string, err error)
}

// CheckRoot verifies that root exists and is a directory.
// It returns a *models.RootNotFoundError otherwise.
func CheckRoot(root string) error {
	info, err := os.Stat(root)
	if err != nil {
		return &models.RootNotFoundError{Root: root, Err: err}
	}
	if !info.IsDir() {
		return &models.RootNotFoundError{Root: root, Err: errors.New("not a directory")}
	}
	return nil
}

// Walk returns a lazy sequence of the regular files under root, recursing
// into subdirectories. Nothing is read until the sequence is ranged over,
// and breaking out of the range stops the walk.
func Walk(root string, opts WalkOptions) iter.Seq[string] {
	excludeMap := make(map[string]bool, len(opts.ExcludeDirs))
	for _, dir := range opts.ExcludeDirs {
		excludeMap[dir] = true
	}

	return func(yield func(string) bool) {
		base := filepath.Clean(root)

		// WalkDir does not follow a symlinked root; a trailing separator
		// makes the initial Lstat resolve it.
		start := base
		if info, err := os.Lstat(base); err == nil && info.Mode()&fs.ModeSymlink != 0 {
			start = base + string(filepath.Separator)
		}

		filepath.WalkDir(start, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				opts.skip(path, err)
				// A failed ReadDir reports the directory a second time; drop its
				// contents and carry on with its siblings.
				if d != nil && d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}

			if d.IsDir() {
				if path == start {
					return nil
				}
				if excludeMap[d.Name()] {
					return filepath.SkipDir
				}
				if opts.MaxDepth > 0 && depth(base, path) >= opts.MaxDepth {
					return filepath.SkipDir
				}
				return nil
			}

			if !d.Type().IsRegular() {
				return nil
			}

			if !yield(displayPath(root, base, path)) {
				return filepath.SkipAll
			}
			return nil
		})
	}
}

func (o WalkOptions) skip(path string, err error) {
	if o.OnSkip != nil {
		o.OnSkip(path, err)
	}
}

// depth returns how many directory levels path is below base (a direct
// child directory of base has depth 1).
func depth(base, path string) int {
	rel, err := filepath.Rel(base, path)
	if err != nil {
		return 0
	}
	return strings.Count(rel, string(filepath.Separator)) + 1
}

// displayPath re-attaches the root exactly as the caller wrote it, so
// "./src" stays "./src/..." instead of WalkDir's cleaned "src/...".
func displayPath(root, base, path string) string {
	rel, err := filepath.Rel(base, path)
	if err != nil {
		return path
	}
	if rel == "." {
		return root
	}
	if strings.HasSuffix(root, string(filepath.Separator)) {
		return root + rel
	}
	return root + string(filepath.Separator) + rel
}
