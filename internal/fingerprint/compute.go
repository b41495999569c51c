package fingerprint

import (
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"golang.org/x/sync/errgroup"

	"attest/internal/faults"
	"attest/internal/logging"
)

// IgnoreFunc reports whether a normalized relative path is exempt from
// added/removed reporting. A nil IgnoreFunc ignores nothing.
type IgnoreFunc func(path string) bool

// Options configures a Compute call.
type Options struct {
	// Algorithm selects the file digest. Zero value means SHA256.
	Algorithm Algorithm
	// Workers bounds the hashing pool; zero means one worker per CPU.
	Workers int
	// Ignore excludes paths from the walk entirely.
	Ignore IgnoreFunc
	// Logger receives per-walk progress at debug level. Nil disables output.
	Logger *slog.Logger
}

// Compute walks dir and returns a Set with one digest per regular file,
// keyed by path relative to dir. Symlinks are not followed and not
// fingerprinted, so cyclic links cannot trap the walk. Files are hashed
// concurrently, but the resulting mapping depends only on tree content.
func Compute(ctx context.Context, dir string, opts Options) (*Set, error) {
	logger := logging.OrNop(opts.Logger)

	algo := opts.Algorithm
	if algo == "" {
		algo = SHA256
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	info, err := os.Stat(dir)
	if err != nil {
		return nil, faults.Wrap(faults.ErrIO, "fingerprint", "stat directory", dir, err)
	}
	if !info.IsDir() {
		return nil, faults.Wrap(faults.ErrIO, "fingerprint", "stat directory", fmt.Sprintf("%s is not a directory", dir), nil)
	}

	paths, err := collectFiles(dir, opts.Ignore)
	if err != nil {
		return nil, faults.Wrap(faults.ErrIO, "fingerprint", "walk", dir, err)
	}

	logger.Debug("hashing directory", slog.String("dir", dir), slog.Int("files", len(paths)), slog.Int("workers", workers))

	// Hash into a positional slice so worker scheduling cannot influence the
	// final mapping.
	digests := make([]string, len(paths))
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(workers)
	for i, rel := range paths {
		i, rel := i, rel
		group.Go(func() error {
			select {
			case <-groupCtx.Done():
				return groupCtx.Err()
			default:
			}
			digest, err := hashFile(filepath.Join(dir, filepath.FromSlash(rel)), algo)
			if err != nil {
				return faults.Wrap(faults.ErrIO, "fingerprint", "hash", rel, err)
			}
			digests[i] = digest
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	set := NewSet()
	for i, rel := range paths {
		set.Add(rel, digests[i])
	}
	return set, nil
}

func collectFiles(dir string, ignore IgnoreFunc) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if d.Type()&fs.ModeSymlink != 0 {
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		normalized := NormalizePath(rel)
		if ignore != nil && ignore(normalized) {
			return nil
		}
		paths = append(paths, normalized)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return paths, nil
}

func hashFile(path string, algo Algorithm) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	h := algo.New()
	if _, err := io.Copy(h, file); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
