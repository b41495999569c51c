package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// NewProject writes a throwaway project directory containing the given
// manifest body and returns its root.
func NewProject(t testing.TB, manifest string) string {
	t.Helper()

	root := t.TempDir()
	WriteManifest(t, root, manifest)
	return root
}

// WriteManifest writes manifest.yml at the project root.
func WriteManifest(t testing.TB, root, manifest string) {
	t.Helper()

	if err := os.WriteFile(filepath.Join(root, "manifest.yml"), []byte(manifest), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
}

// WriteSource places a source file (relative to the project root) that build
// steps can copy or concatenate.
func WriteSource(t testing.TB, root, rel, content string) {
	t.Helper()

	path := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", rel, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", rel, err)
	}
}
