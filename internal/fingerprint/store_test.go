package fingerprint

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"attest/internal/faults"
)

func TestStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hashes.txt")

	set := NewSet()
	set.Add("b.txt", strings.Repeat("b", SHA256.HexLen()))
	set.Add("a.txt", strings.Repeat("a", SHA256.HexLen()))
	set.Add("nested/c.bin", strings.Repeat("c", SHA256.HexLen()))

	store := Store{}
	if err := store.Save(path, set); err != nil {
		t.Fatal(err)
	}
	loaded, err := store.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if !loaded.Equal(set) {
		t.Fatal("loaded set differs from saved set")
	}
}

func TestStoreSaveSortedFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hashes.txt")

	set := NewSet()
	set.Add("z.txt", strings.Repeat("1", SHA256.HexLen()))
	set.Add("a.txt", strings.Repeat("2", SHA256.HexLen()))

	if err := (Store{}).Save(path, set); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("lines = %d, want 2", len(lines))
	}
	if !strings.HasSuffix(lines[0], "  a.txt") || !strings.HasSuffix(lines[1], "  z.txt") {
		t.Fatalf("entries not sorted by path: %v", lines)
	}
}

func TestStoreLoadMissingFile(t *testing.T) {
	_, err := (Store{}).Load(filepath.Join(t.TempDir(), "absent.txt"))
	if !errors.Is(err, faults.ErrIO) {
		t.Fatalf("expected ErrIO, got %v", err)
	}
}

func TestStoreLoadMalformedLines(t *testing.T) {
	digest := strings.Repeat("a", SHA256.HexLen())
	cases := []struct {
		name    string
		content string
	}{
		{"missing separator", digest + " a.txt\n"},
		{"short digest", "abc123  a.txt\n"},
		{"uppercase digest", strings.ToUpper(digest) + "  a.txt\n"},
		{"non-hex digest", strings.Repeat("z", SHA256.HexLen()) + "  a.txt\n"},
		{"empty path", digest + "  \n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "hashes.txt")
			if err := os.WriteFile(path, []byte(tc.content), 0o644); err != nil {
				t.Fatal(err)
			}
			_, err := (Store{}).Load(path)
			if !errors.Is(err, faults.ErrParse) {
				t.Fatalf("expected ErrParse, got %v", err)
			}
		})
	}
}

func TestStoreLoadEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hashes.txt")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	set, err := (Store{}).Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if set.Len() != 0 {
		t.Fatalf("len = %d, want 0", set.Len())
	}
}

func TestStoreLoadRespectsAlgorithm(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hashes.txt")
	digest := strings.Repeat("a", SHA1.HexLen())
	if err := os.WriteFile(path, []byte(digest+"  a.txt\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := (Store{Algorithm: SHA1}).Load(path); err != nil {
		t.Fatalf("sha1 store should accept sha1 digests: %v", err)
	}
	if _, err := (Store{Algorithm: SHA256}).Load(path); !errors.Is(err, faults.ErrParse) {
		t.Fatalf("sha256 store must reject sha1-length digests, got %v", err)
	}
}

func TestStoreLoadPathsWithSpaces(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hashes.txt")
	digest := strings.Repeat("d", SHA256.HexLen())
	if err := os.WriteFile(path, []byte(digest+"  dir/with space.txt\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	set, err := (Store{}).Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := set.Digest("dir/with space.txt"); !ok {
		t.Fatal("expected entry with spaces in path")
	}
}
