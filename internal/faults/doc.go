// Package faults defines the error taxonomy shared across the verification
// pipeline.
//
// Every failure surfaced by the core is tagged with one of the exported
// sentinel errors so callers can tell which stage broke without string
// matching: ErrIO for filesystem problems, ErrParse for malformed baseline or
// manifest content, ErrBuild for failures propagated from the build engine.
// Wrap attaches stage and operation context while preserving the marker for
// errors.Is checks.
package faults
