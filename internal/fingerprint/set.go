package fingerprint

import (
	"path/filepath"
	"sort"
	"strings"
)

// Entry pairs a normalized relative path with its hex digest.
type Entry struct {
	Path   string
	Digest string
}

// Set is a mapping from normalized relative path to hex digest. Entry order
// is irrelevant to equality; Entries and Paths return lexicographic order for
// deterministic serialization.
type Set struct {
	digests map[string]string
}

// NewSet returns an empty fingerprint set.
func NewSet() *Set {
	return &Set{digests: make(map[string]string)}
}

// Add records the digest for path, normalizing the path first. A later Add
// for the same path replaces the earlier digest.
func (s *Set) Add(path, digest string) {
	s.digests[NormalizePath(path)] = strings.ToLower(digest)
}

// Digest returns the digest recorded for path, if present.
func (s *Set) Digest(path string) (string, bool) {
	digest, ok := s.digests[NormalizePath(path)]
	return digest, ok
}

// Len reports the number of entries.
func (s *Set) Len() int {
	return len(s.digests)
}

// Paths returns all paths in lexicographic order.
func (s *Set) Paths() []string {
	paths := make([]string, 0, len(s.digests))
	for path := range s.digests {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

// Entries returns all entries in lexicographic path order.
func (s *Set) Entries() []Entry {
	paths := s.Paths()
	entries := make([]Entry, 0, len(paths))
	for _, path := range paths {
		entries = append(entries, Entry{Path: path, Digest: s.digests[path]})
	}
	return entries
}

// Equal reports whether both sets hold the same paths with the same digests.
func (s *Set) Equal(other *Set) bool {
	if s.Len() != other.Len() {
		return false
	}
	for path, digest := range s.digests {
		if otherDigest, ok := other.digests[path]; !ok || otherDigest != digest {
			return false
		}
	}
	return true
}

// NormalizePath canonicalizes a relative path: slash separators, no leading
// "./", no trailing slash. Two walks over logically identical trees produce
// identical normalized paths regardless of platform or traversal order.
func NormalizePath(path string) string {
	normalized := filepath.ToSlash(strings.TrimSpace(path))
	for strings.HasPrefix(normalized, "./") {
		normalized = normalized[2:]
	}
	normalized = strings.TrimSuffix(normalized, "/")
	return normalized
}
