package project

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"attest/internal/faults"
)

func writeManifest(t *testing.T, root, content string) string {
	t.Helper()
	path := filepath.Join(root, ManifestFileName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	root := t.TempDir()
	path := writeManifest(t, root, `
steps:
  - op: write
    path: a.txt
    content: hello
`)

	proj, err := Load(path, nil)
	if err != nil {
		t.Fatal(err)
	}
	if proj.Name() != filepath.Base(root) {
		t.Fatalf("name = %q, want directory base name", proj.Name())
	}
	if proj.Root() != root {
		t.Fatalf("root = %q, want %q", proj.Root(), root)
	}
	if proj.OutputDir() != filepath.Join(root, "out") {
		t.Fatalf("output dir = %q, want default out/", proj.OutputDir())
	}
}

func TestRunWriteCopyConcat(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "src"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "src", "part1.txt"), []byte("one"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "src", "part2.txt"), []byte("two"), 0o644); err != nil {
		t.Fatal(err)
	}

	path := writeManifest(t, root, `
name: demo
output: artifacts
steps:
  - op: write
    path: readme.txt
    content: "generated"
  - op: copy
    path: copied/part1.txt
    from: src/part1.txt
  - op: concat
    path: joined.txt
    inputs: [src/part1.txt, src/part2.txt]
`)

	proj, err := Load(path, nil)
	if err != nil {
		t.Fatal(err)
	}
	if proj.Name() != "demo" {
		t.Fatalf("name = %q", proj.Name())
	}
	if err := proj.Run(context.Background()); err != nil {
		t.Fatal(err)
	}

	outDir := filepath.Join(root, "artifacts")
	checks := map[string]string{
		"readme.txt":       "generated",
		"copied/part1.txt": "one",
		"joined.txt":       "onetwo",
	}
	for rel, want := range checks {
		data, err := os.ReadFile(filepath.Join(outDir, filepath.FromSlash(rel)))
		if err != nil {
			t.Fatalf("read %s: %v", rel, err)
		}
		if string(data) != want {
			t.Fatalf("%s = %q, want %q", rel, data, want)
		}
	}
}

func TestRunIsIdempotent(t *testing.T) {
	root := t.TempDir()
	path := writeManifest(t, root, `
steps:
  - op: write
    path: stable.txt
    content: same every run
`)

	proj, err := Load(path, nil)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 2; i++ {
		if err := proj.Run(context.Background()); err != nil {
			t.Fatal(err)
		}
	}
	data, err := os.ReadFile(filepath.Join(proj.OutputDir(), "stable.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "same every run" {
		t.Fatalf("content = %q", data)
	}
}

func TestLoadRejectsUnknownOp(t *testing.T) {
	root := t.TempDir()
	path := writeManifest(t, root, `
steps:
  - op: compile
    path: a.o
`)

	_, err := Load(path, nil)
	if !errors.Is(err, faults.ErrParse) {
		t.Fatalf("expected ErrParse, got %v", err)
	}
}

func TestLoadRejectsEscapingPath(t *testing.T) {
	root := t.TempDir()
	path := writeManifest(t, root, `
steps:
  - op: write
    path: ../escape.txt
    content: nope
`)

	_, err := Load(path, nil)
	if !errors.Is(err, faults.ErrParse) {
		t.Fatalf("expected ErrParse, got %v", err)
	}
}

func TestLoadRejectsIncompleteSteps(t *testing.T) {
	cases := []struct {
		name     string
		manifest string
	}{
		{"copy without from", "steps:\n  - op: copy\n    path: a.txt\n"},
		{"concat without inputs", "steps:\n  - op: concat\n    path: a.txt\n"},
		{"missing path", "steps:\n  - op: write\n    content: x\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeManifest(t, t.TempDir(), tc.manifest)
			if _, err := Load(path, nil); !errors.Is(err, faults.ErrParse) {
				t.Fatalf("expected ErrParse, got %v", err)
			}
		})
	}
}

func TestLoadMissingManifest(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), ManifestFileName), nil)
	if !errors.Is(err, faults.ErrIO) {
		t.Fatalf("expected ErrIO, got %v", err)
	}
}

func TestRunCopyMissingSourceIsBuildError(t *testing.T) {
	root := t.TempDir()
	path := writeManifest(t, root, `
steps:
  - op: copy
    path: a.txt
    from: missing/source.txt
`)

	proj, err := Load(path, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := proj.Run(context.Background()); !errors.Is(err, faults.ErrBuild) {
		t.Fatalf("expected ErrBuild, got %v", err)
	}
}
