// Package sanitize validates untrusted filesystem paths before they touch disk.
package sanitize

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Validation errors for path checks.
var (
	// ErrEmptyPath indicates an empty path was provided.
	ErrEmptyPath = errors.New("path cannot be empty")

	// ErrAbsolutePath indicates an absolute path was provided where relative was expected.
	ErrAbsolutePath = errors.New("absolute path not allowed")

	// ErrPathTraversal indicates a path contains directory traversal sequences.
	ErrPathTraversal = errors.New("path contains directory traversal")
)

// Destination validates a user-supplied relative destination path and
// resolves it against root. The returned path is absolute, cleaned, and
// guaranteed to live inside root.
//
// Rejected inputs:
//   - empty or whitespace-only paths
//   - absolute paths
//   - any path containing ".." segments, before or after cleaning
func Destination(root, rel string) (string, error) {
	rel = strings.TrimSpace(rel)
	if rel == "" {
		return "", ErrEmptyPath
	}
	if filepath.IsAbs(rel) {
		return "", ErrAbsolutePath
	}
	if containsTraversal(rel) {
		return "", fmt.Errorf("%w: contains '..'", ErrPathTraversal)
	}

	cleaned := filepath.Clean(rel)
	if containsTraversal(cleaned) {
		return "", fmt.Errorf("%w: resolves to traversal", ErrPathTraversal)
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("resolve root: %w", err)
	}

	dest := filepath.Join(absRoot, cleaned)

	// The joined path must still resolve under root.
	relBack, err := filepath.Rel(absRoot, dest)
	if err != nil || strings.HasPrefix(relBack, "..") {
		return "", fmt.Errorf("%w: path escapes root", ErrPathTraversal)
	}

	return dest, nil
}

// WithinRoot reports whether child resolves inside root. Used by file-serving
// handlers where the path is derived from a URL rather than a form field.
func WithinRoot(root, child string) bool {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return false
	}
	absChild, err := filepath.Abs(child)
	if err != nil {
		return false
	}
	rel, err := filepath.Rel(absRoot, absChild)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

func containsTraversal(path string) bool {
	for _, seg := range strings.Split(filepath.ToSlash(path), "/") {
		if seg == ".." {
			return true
		}
	}
	return false
}
