package workspace_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"codelab/internal/executor/workspace"
)

func TestWorkspaceLifecycle(t *testing.T) {
	base := t.TempDir()
	ws, err := workspace.New(base)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if !strings.HasPrefix(ws.Root(), base) {
		t.Errorf("root %q not under %q", ws.Root(), base)
	}

	path, err := ws.WriteFile("main.py", "print(1)\n")
	if err != nil {
		t.Fatalf("write: %v", err)
	}
	if path != filepath.Join(ws.Root(), "main.py") {
		t.Errorf("path = %q", path)
	}
	data, err := os.ReadFile(path)
	if err != nil || string(data) != "print(1)\n" {
		t.Errorf("read back = %q, %v", data, err)
	}

	ws.Cleanup()
	if _, err := os.Stat(ws.Root()); !os.IsNotExist(err) {
		t.Error("cleanup should remove the workspace directory")
	}
}

func TestWorkspacesAreDistinct(t *testing.T) {
	base := t.TempDir()
	a, err := workspace.New(base)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	defer a.Cleanup()
	b, err := workspace.New(base)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	defer b.Cleanup()
	if a.Root() == b.Root() {
		t.Error("two workspaces must not share a directory")
	}
}
