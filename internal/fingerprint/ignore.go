package fingerprint

import (
	"fmt"
	"path"
)

// IgnorePatterns compiles path-glob patterns into an IgnoreFunc. A pattern
// matches when it matches either the full slash-separated relative path or
// the path's base name, so "*.log" exempts log files anywhere in the tree.
func IgnorePatterns(patterns []string) (IgnoreFunc, error) {
	if len(patterns) == 0 {
		return nil, nil
	}
	compiled := make([]string, 0, len(patterns))
	for _, pattern := range patterns {
		if _, err := path.Match(pattern, "probe"); err != nil {
			return nil, fmt.Errorf("invalid ignore pattern %q: %w", pattern, err)
		}
		compiled = append(compiled, pattern)
	}
	return func(rel string) bool {
		rel = NormalizePath(rel)
		base := path.Base(rel)
		for _, pattern := range compiled {
			if matched, _ := path.Match(pattern, rel); matched {
				return true
			}
			if matched, _ := path.Match(pattern, base); matched {
				return true
			}
		}
		return false
	}, nil
}
