// Package upload writes user-submitted files into the catalog tree.
package upload

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/fernworks/foliod/internal/sanitize"
)

// Handler writes uploads beneath a fixed root directory. Destinations are
// validated before any write: absolute paths and traversal segments are
// rejected, so an upload can never land outside the root. Concurrent writes
// to the same destination are last-writer-wins.
type Handler struct {
	root   string
	logger *zap.Logger
}

// NewHandler creates an upload handler rooted at root.
func NewHandler(root string, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{root: root, logger: logger}
}

// Write stores the payload at the given relative destination under the root,
// creating parent directories as needed. It returns the path written.
func (h *Handler) Write(rel string, r io.Reader) (string, error) {
	dest, err := sanitize.Destination(h.root, rel)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return "", fmt.Errorf("create parent dirs: %w", err)
	}

	f, err := os.Create(dest)
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	defer f.Close()

	n, err := io.Copy(f, r)
	if err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}

	h.logger.Info("upload stored",
		zap.String("dest", dest),
		zap.Int64("bytes", n),
	)
	return dest, nil
}
