// Package diff classifies the differences between two fingerprint sets.
//
// Compare performs a set-symmetric-difference with classification: paths
// present in only one set become Added, Removed, or Ignored path events;
// paths present in both become Matches or Differs file events. Ignore rules
// apply only to presence and absence. A path present in both sets is
// classified purely on digest equality, so content drift in an ignored file
// is still reported. That asymmetry is deliberate: "ignored" means "don't
// care if this file appears or disappears", not "don't care what's in it".
//
// Comparison is pure: given two valid sets it cannot fail, and events within
// each category are emitted in lexicographic path order.
package diff
