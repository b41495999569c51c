package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultValidates(t *testing.T) {
	cfg := Default()
	if err := cfg.normalize(); err != nil {
		t.Fatal(err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config must validate: %v", err)
	}
	if cfg.Hashing.Algorithm != "sha256" {
		t.Fatalf("expected sha256 default, got %q", cfg.Hashing.Algorithm)
	}
	if !cfg.Verify.HistoryEnabled {
		t.Fatal("expected history enabled by default")
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg, resolved, exists, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if exists {
		t.Fatal("file should not exist")
	}
	if resolved != path {
		t.Fatalf("resolved path mismatch: %s", resolved)
	}
	if cfg.Logging.Format != "console" {
		t.Fatalf("expected console default, got %q", cfg.Logging.Format)
	}
}

func TestLoadParsesOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[paths]
log_dir = "` + filepath.Join(dir, "logs") + `"
history_db = "` + filepath.Join(dir, "history.db") + `"

[hashing]
algorithm = "SHA1"
workers = 2

[verify]
ignore = ["*.log", "tmp/*"]
history_enabled = false

[logging]
level = "debug"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, _, exists, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if !exists {
		t.Fatal("expected config file to be found")
	}
	if cfg.Hashing.Algorithm != "sha1" {
		t.Fatalf("algorithm not normalized: %q", cfg.Hashing.Algorithm)
	}
	if cfg.Hashing.Workers != 2 {
		t.Fatalf("workers = %d, want 2", cfg.Hashing.Workers)
	}
	if cfg.Verify.HistoryEnabled {
		t.Fatal("expected history disabled")
	}
	if len(cfg.Verify.Ignore) != 2 {
		t.Fatalf("ignore patterns = %v", cfg.Verify.Ignore)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("level = %q", cfg.Logging.Level)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"algorithm", func(c *Config) { c.Hashing.Algorithm = "md5" }, "hashing.algorithm"},
		{"workers", func(c *Config) { c.Hashing.Workers = -1 }, "hashing.workers"},
		{"ignore", func(c *Config) { c.Verify.Ignore = []string{"[bad"} }, "verify.ignore"},
		{"format", func(c *Config) { c.Logging.Format = "yaml" }, "logging.format"},
		{"level", func(c *Config) { c.Logging.Level = "loud" }, "logging.level"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			cfg.Logging.Format = "console"
			cfg.Logging.Level = "info"
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("error %q does not mention %q", err.Error(), tc.want)
			}
		})
	}
}

func TestCreateSampleParses(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := CreateSample(path); err != nil {
		t.Fatal(err)
	}
	if _, _, exists, err := Load(path); err != nil || !exists {
		t.Fatalf("sample config must load cleanly: exists=%v err=%v", exists, err)
	}
}
