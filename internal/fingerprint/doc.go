// Package fingerprint computes and persists content fingerprints for
// directory trees.
//
// A Set maps normalized relative paths to lowercase hex digests. Compute
// walks a directory and hashes every regular file with a bounded worker
// pool; the result depends only on tree content and structure, never on
// traversal or scheduling order. Symlinks are skipped entirely.
//
// Store reads and writes the baseline file format: one entry per line,
// "<hex-digest>  <relative-path>" with two spaces, matching common
// checksum-tool conventions. Saves are atomic (temp file plus rename) and
// sorted by path so baselines diff cleanly across runs.
package fingerprint
