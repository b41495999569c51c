package testsupport

import (
	"path/filepath"
	"testing"

	"attest/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Paths.HistoryDB = filepath.Join(base, "history.db")
	cfg.Verify.HistoryEnabled = false

	for _, opt := range opts {
		opt(&cfg)
	}

	return &cfg
}

// WithIgnore sets ignore patterns on the test config.
func WithIgnore(patterns ...string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Verify.Ignore = patterns
	}
}

// WithAlgorithm overrides the hash algorithm on the test config.
func WithAlgorithm(name string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Hashing.Algorithm = name
	}
}
