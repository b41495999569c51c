// Package project loads and executes declarative build projects.
//
// A project is a directory containing a manifest.yml that names an output
// directory and an ordered list of build steps. Running the project executes
// the steps in manifest order and materializes files under the output
// directory; given the same manifest and source files, repeated runs produce
// byte-identical output, which is what makes output fingerprints comparable
// across runs.
//
// The verification pipeline depends only on the Builder interface, so other
// build backends can slot in without touching the core.
package project
