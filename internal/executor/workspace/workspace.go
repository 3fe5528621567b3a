// Package workspace manages the per-invocation build directory. Every
// execution gets its own directory and is responsible for removing it on
// all exit paths; nothing leaks across invocations.
package workspace

import (
	"os"
	"path/filepath"

	"github.com/google/uuid"

	appErr "codelab/pkg/errors"
)

// Workspace is a scoped temporary directory for one execution.
type Workspace struct {
	root string
}

// New creates a uniquely named directory under baseDir. An empty baseDir
// falls back to the system temp directory.
func New(baseDir string) (*Workspace, error) {
	if baseDir == "" {
		baseDir = os.TempDir()
	}
	root := filepath.Join(baseDir, "run-"+uuid.NewString())
	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, appErr.Wrapf(err, appErr.ExecutorSystemError, "create workspace failed")
	}
	return &Workspace{root: root}, nil
}

// Root returns the workspace directory path.
func (w *Workspace) Root() string { return w.root }

// Path resolves a file name inside the workspace.
func (w *Workspace) Path(name string) string {
	return filepath.Join(w.root, name)
}

// WriteFile writes content to a file inside the workspace and returns its
// full path.
func (w *Workspace) WriteFile(name, content string) (string, error) {
	path := w.Path(name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", appErr.Wrapf(err, appErr.ExecutorSystemError, "write %s failed", name)
	}
	return path, nil
}

// Cleanup removes the workspace directory and everything in it. Safe to
// call from a defer on every exit path.
func (w *Workspace) Cleanup() {
	if w == nil || w.root == "" {
		return
	}
	_ = os.RemoveAll(w.root)
}
