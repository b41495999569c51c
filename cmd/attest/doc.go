// Command attest builds declaratively defined projects and verifies their
// output directories against recorded fingerprint baselines.
//
// Typical flow: "attest record <project-dir>" blesses a fresh build as the
// baseline (hashes.txt at the project root), then "attest verify
// <project-dir>" rebuilds and reports any added, removed, or differing
// output files. "attest diff" compares two recorded fingerprint files,
// "attest hash" fingerprints an arbitrary directory, and "attest history"
// lists past verification runs.
package main
