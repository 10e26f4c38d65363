// Package selector walks a project tree and returns the files to render, in
// a deterministic case-insensitive order.
package selector

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// IgnoreMatcher reports whether a relative path is ignored by extra patterns.
type IgnoreMatcher interface {
	Match(path string, isDir bool) bool
}

// Options carries the optional parts of a selection.
type Options struct {
	Ignore  IgnoreMatcher // Extra gitignore-style exclusions; may be nil.
	Verbose bool          // Log every skipped entry.
}

// Selection is the result of Select.
type Selection struct {
	Files   []string // Slash-separated paths relative to the root, sorted.
	Skipped error    // Traversal errors that were skipped over, combined with multierr.
}

// Select walks root and returns every file accepted by include that is not
// below a directory named in excludedDirs. Files whose content looks binary
// are left out like unreadable entries: those are logged,
// recorded in Selection.Skipped and otherwise ignored. Only a missing or
// non-directory root is an error.
func Select(root string, excludedDirs []string, include Predicate, opts Options, logger *zap.Logger) (Selection, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	var sel Selection

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return sel, fmt.Errorf("failed to get absolute path: %w", err)
	}
	info, err := os.Stat(absRoot)
	if err != nil {
		return sel, fmt.Errorf("cannot access root %s: %w", absRoot, err)
	}
	if !info.IsDir() {
		return sel, fmt.Errorf("root %s is not a directory", absRoot)
	}

	excluded := make(map[string]bool, len(excludedDirs))
	for _, d := range excludedDirs {
		excluded[d] = true
	}
	logger.Debug("Starting file selection",
		zap.String("root", absRoot),
		zap.Strings("excludedDirs", excludedDirs))

	err = filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			logger.Warn("Error accessing path during traversal", zap.String("path", path), zap.Error(walkErr))
			sel.Skipped = multierr.Append(sel.Skipped, fmt.Errorf("%s: %w", path, walkErr))
			if d != nil && d.IsDir() && path != absRoot {
				return filepath.SkipDir
			}
			return nil
		}
		if path == absRoot {
			return nil
		}

		relPath, err := filepath.Rel(absRoot, path)
		if err != nil {
			return nil
		}
		relPath = filepath.ToSlash(relPath)

		if d.IsDir() {
			if excluded[d.Name()] {
				if opts.Verbose {
					logger.Debug("Skipping excluded directory", zap.String("directory", relPath))
				}
				return filepath.SkipDir
			}
			if opts.Ignore != nil && opts.Ignore.Match(relPath, true) {
				if opts.Verbose {
					logger.Debug("Skipping ignored directory", zap.String("directory", relPath))
				}
				return filepath.SkipDir
			}
			return nil
		}

		if hasSegment(relPath, excluded) {
			return nil
		}
		if d.Type()&fs.ModeSymlink != 0 {
			target, err := os.Stat(path)
			if err != nil {
				logger.Warn("Skipping broken symlink", zap.String("path", relPath), zap.Error(err))
				sel.Skipped = multierr.Append(sel.Skipped, fmt.Errorf("%s: %w", relPath, err))
				return nil
			}
			if !target.Mode().IsRegular() {
				return nil
			}
		} else if !d.Type().IsRegular() {
			return nil
		}

		if opts.Ignore != nil && opts.Ignore.Match(relPath, false) {
			if opts.Verbose {
				logger.Debug("Skipping ignored file", zap.String("filePath", relPath))
			}
			return nil
		}
		if !include(relPath) {
			if opts.Verbose {
				logger.Debug("File does not match include rules", zap.String("filePath", relPath))
			}
			return nil
		}

		isBinary, err := isBinaryFile(path)
		if err != nil {
			logger.Warn("Failed to check if file is binary", zap.String("filePath", relPath), zap.Error(err))
			sel.Skipped = multierr.Append(sel.Skipped, fmt.Errorf("%s: %w", relPath, err))
			return nil
		}
		if isBinary {
			logger.Warn("Skipping binary file", zap.String("filePath", relPath))
			sel.Skipped = multierr.Append(sel.Skipped, fmt.Errorf("%s: %w", relPath, ErrBinary))
			return nil
		}

		sel.Files = append(sel.Files, relPath)
		logger.Debug("Added file to selection", zap.String("filePath", relPath))
		return nil
	})
	if err != nil {
		logger.Error("Error during file traversal", zap.Error(err))
		return sel, fmt.Errorf("failed to walk %s: %w", absRoot, err)
	}

	SortPaths(sel.Files)
	logger.Debug("Completed file selection", zap.Int("files", len(sel.Files)))
	return sel, nil
}

// SortPaths sorts paths by their lower-cased form. Paths that differ only in
// case are ordered by their exact bytes so the order is total.
func SortPaths(paths []string) {
	sort.SliceStable(paths, func(i, j int) bool {
		li, lj := strings.ToLower(paths[i]), strings.ToLower(paths[j])
		if li != lj {
			return li < lj
		}
		return paths[i] < paths[j]
	})
}

func hasSegment(relPath string, names map[string]bool) bool {
	for _, seg := range strings.Split(relPath, "/") {
		if names[seg] {
			return true
		}
	}
	return false
}
