// Package verify orchestrates the build-and-verify pipeline.
//
// A Runner drives one verification run end to end: lock the project, execute
// its build, fingerprint the output directory, load the recorded baseline,
// diff the two fingerprint sets, and reduce the classified diff to a verdict.
// A mismatch (added, removed, or differing files) is not an error; it is a
// successful comparison whose Outcome reports Passed == false. Errors are
// reserved for the pipeline itself breaking: build failures, unreadable
// directories, malformed baselines.
//
// Record drives the companion flow that blesses a fresh build as the new
// baseline.
package verify
