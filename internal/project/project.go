package project

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"attest/internal/faults"
	"attest/internal/fileutil"
	"attest/internal/logging"
)

// Builder is the capability the verification pipeline needs from a build
// backend: run to completion, then expose where the artifacts landed.
type Builder interface {
	Name() string
	OutputDir() string
	Run(ctx context.Context) error
}

// Project is the built-in manifest-driven Builder.
type Project struct {
	root     string
	manifest *Manifest
	logger   *slog.Logger
}

// Load reads the manifest at manifestPath and returns a Project rooted at the
// manifest's directory.
func Load(manifestPath string, logger *slog.Logger) (*Project, error) {
	manifest, err := LoadManifest(manifestPath)
	if err != nil {
		return nil, err
	}

	root, err := filepath.Abs(filepath.Dir(manifestPath))
	if err != nil {
		return nil, faults.Wrap(faults.ErrIO, "project", "resolve root", manifestPath, err)
	}

	if manifest.Name == "" {
		manifest.Name = filepath.Base(root)
	}

	return &Project{
		root:     root,
		manifest: manifest,
		logger:   logging.OrNop(logger),
	}, nil
}

// Name returns the project's display name.
func (p *Project) Name() string {
	return p.manifest.Name
}

// Root returns the absolute project root directory.
func (p *Project) Root() string {
	return p.root
}

// OutputDir returns the absolute artifact directory.
func (p *Project) OutputDir() string {
	return filepath.Join(p.root, filepath.FromSlash(p.manifest.Output))
}

// Run executes the manifest steps in order. Any step failure aborts the run
// with a BuildError; there is no partial-success state.
func (p *Project) Run(ctx context.Context) error {
	outDir := p.OutputDir()
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return faults.Wrap(faults.ErrBuild, "build", "create output directory", outDir, err)
	}

	p.logger.Debug("running project", slog.String("project", p.Name()), slog.Int("steps", len(p.manifest.Steps)))

	for i, step := range p.manifest.Steps {
		select {
		case <-ctx.Done():
			return faults.Wrap(faults.ErrBuild, "build", "canceled", "", ctx.Err())
		default:
		}
		if err := p.runStep(step); err != nil {
			return faults.Wrap(faults.ErrBuild, "build", fmt.Sprintf("step %d (%s %s)", i+1, step.Op, step.Path), "", err)
		}
	}
	return nil
}

func (p *Project) runStep(step Step) error {
	target := filepath.Join(p.OutputDir(), filepath.FromSlash(step.Path))
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("create target directory: %w", err)
	}

	switch step.Op {
	case OpWrite:
		return os.WriteFile(target, []byte(step.Content), 0o644)
	case OpCopy:
		return fileutil.CopyFile(p.sourcePath(step.From), target)
	case OpConcat:
		return p.concat(step.Inputs, target)
	default:
		// Unreachable for manifests that passed validation.
		return fmt.Errorf("unknown op %q", step.Op)
	}
}

func (p *Project) concat(inputs []string, target string) error {
	out, err := os.Create(target)
	if err != nil {
		return err
	}
	defer out.Close()

	for _, input := range inputs {
		data, err := os.ReadFile(p.sourcePath(input))
		if err != nil {
			return err
		}
		if _, err := out.Write(data); err != nil {
			return err
		}
	}
	return out.Close()
}

func (p *Project) sourcePath(rel string) string {
	return filepath.Join(p.root, filepath.FromSlash(rel))
}
