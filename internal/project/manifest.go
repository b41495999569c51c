package project

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"attest/internal/faults"
)

// ManifestFileName is the conventional manifest name at a project root.
const ManifestFileName = "manifest.yml"

// Step ops supported by the built-in build engine.
const (
	OpWrite  = "write"
	OpCopy   = "copy"
	OpConcat = "concat"
)

// Manifest declares a build project.
type Manifest struct {
	// Name identifies the project in logs and run history. Defaults to the
	// project directory's base name.
	Name string `yaml:"name"`
	// Output is the artifact directory relative to the project root.
	// Defaults to "out".
	Output string `yaml:"output"`
	// Steps run in order; each materializes one file under Output.
	Steps []Step `yaml:"steps"`
}

// Step is a single build action.
type Step struct {
	// Op is one of write, copy, or concat.
	Op string `yaml:"op"`
	// Path is the target file, relative to the output directory.
	Path string `yaml:"path"`
	// Content is the literal payload for write steps.
	Content string `yaml:"content"`
	// From is the source file for copy steps, relative to the project root.
	From string `yaml:"from"`
	// Inputs are the source files for concat steps, relative to the project
	// root.
	Inputs []string `yaml:"inputs"`
}

// LoadManifest reads and validates the manifest at path.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, faults.Wrap(faults.ErrIO, "project", "open manifest", path, err)
	}

	var manifest Manifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, faults.Wrap(faults.ErrParse, "project", "parse manifest", path, err)
	}

	if strings.TrimSpace(manifest.Output) == "" {
		manifest.Output = "out"
	}

	for i, step := range manifest.Steps {
		if err := validateStep(step); err != nil {
			return nil, faults.Wrap(faults.ErrParse, "project", "validate manifest",
				fmt.Sprintf("%s step %d", path, i+1), err)
		}
	}

	return &manifest, nil
}

func validateStep(step Step) error {
	if strings.TrimSpace(step.Path) == "" {
		return fmt.Errorf("step has no target path")
	}
	if isUnsafeRelPath(step.Path) {
		return fmt.Errorf("target path %q escapes the output directory", step.Path)
	}
	switch step.Op {
	case OpWrite:
		return nil
	case OpCopy:
		if strings.TrimSpace(step.From) == "" {
			return fmt.Errorf("copy step needs a source (from)")
		}
		return nil
	case OpConcat:
		if len(step.Inputs) == 0 {
			return fmt.Errorf("concat step needs at least one input")
		}
		return nil
	default:
		return fmt.Errorf("unknown op %q", step.Op)
	}
}

func isUnsafeRelPath(path string) bool {
	normalized := strings.ReplaceAll(path, "\\", "/")
	if strings.HasPrefix(normalized, "/") {
		return true
	}
	for _, part := range strings.Split(normalized, "/") {
		if part == ".." {
			return true
		}
	}
	return false
}
