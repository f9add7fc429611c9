package testutil

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/cartbuild/pkg/filesystem"
	"github.com/arthur-debert/cartbuild/pkg/types"
	"github.com/spf13/afero"
)

// NewTestFS creates a new in-memory filesystem for testing.
func NewTestFS() types.FS {
	return filesystem.NewAferoFS(afero.NewMemMapFs())
}

// CreateFiles writes every path/content pair under root, creating parent
// directories. Paths use forward slashes and are relative to root.
func CreateFiles(t *testing.T, fs types.FS, root string, files map[string]string) {
	t.Helper()

	for rel, content := range files {
		full := filepath.Join(root, filepath.FromSlash(rel))
		if err := fs.MkdirAll(filepath.Dir(full), 0755); err != nil {
			t.Fatalf("Failed to create directory for %s: %v", rel, err)
		}
		if err := fs.WriteFile(full, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write %s: %v", rel, err)
		}
	}
}

// CreateDirs creates every directory under root.
func CreateDirs(t *testing.T, fs types.FS, root string, dirs ...string) {
	t.Helper()

	for _, rel := range dirs {
		if err := fs.MkdirAll(filepath.Join(root, filepath.FromSlash(rel)), 0755); err != nil {
			t.Fatalf("Failed to create directory %s: %v", rel, err)
		}
	}
}
