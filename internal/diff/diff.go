package diff

import (
	"sort"

	"attest/internal/fingerprint"
)

// Kind classifies a single path in the comparison.
type Kind int

const (
	// Added marks a path present only in the current set.
	Added Kind = iota
	// Removed marks a path present only in the baseline set.
	Removed
	// Ignored marks a path present in only one set but exempted by the
	// ignore predicate.
	Ignored
	// Matches marks a path present in both sets with equal digests.
	Matches
	// Differs marks a path present in both sets with unequal digests.
	Differs
)

func (k Kind) String() string {
	switch k {
	case Added:
		return "added"
	case Removed:
		return "removed"
	case Ignored:
		return "ignored"
	case Matches:
		return "matches"
	case Differs:
		return "differs"
	default:
		return "unknown"
	}
}

// Event records the classification of one path. OldDigest and NewDigest are
// populated only for Differs events.
type Event struct {
	Kind      Kind
	Path      string
	OldDigest string
	NewDigest string
}

// Result holds the classified comparison of baseline vs. current.
//
// PathEvents covers paths present in only one set (Added, Removed, Ignored);
// FileEvents covers paths present in both (Matches, Differs). Every path in
// the union of the two sets appears in exactly one event.
type Result struct {
	PathEvents []Event
	FileEvents []Event
}

// Tally counts events by kind.
type Tally struct {
	Added   int
	Removed int
	Ignored int
	Matched int
	Differs int
}

// Compare classifies every path in baseline and current. The ignore predicate
// exempts paths from Added/Removed reporting; nil ignores nothing.
func Compare(baseline, current *fingerprint.Set, ignore fingerprint.IgnoreFunc) Result {
	var result Result

	// Paths present in exactly one set, classified in a single pass over
	// their sorted union so every category comes out in lexicographic order.
	// Two separately-sorted passes would let a baseline-only Ignored path
	// sort after a smaller current-only one.
	var onlyPaths []string
	for _, path := range baseline.Paths() {
		if _, ok := current.Digest(path); !ok {
			onlyPaths = append(onlyPaths, path)
		}
	}
	for _, path := range current.Paths() {
		if _, ok := baseline.Digest(path); !ok {
			onlyPaths = append(onlyPaths, path)
		}
	}
	sort.Strings(onlyPaths)

	for _, path := range onlyPaths {
		_, inBaseline := baseline.Digest(path)
		switch {
		case ignore != nil && ignore(path):
			result.PathEvents = append(result.PathEvents, Event{Kind: Ignored, Path: path})
		case inBaseline:
			result.PathEvents = append(result.PathEvents, Event{Kind: Removed, Path: path})
		default:
			result.PathEvents = append(result.PathEvents, Event{Kind: Added, Path: path})
		}
	}

	// Co-present paths are classified on digest equality alone; ignore rules
	// never suppress content drift.
	for _, path := range baseline.Paths() {
		currentDigest, ok := current.Digest(path)
		if !ok {
			continue
		}
		baselineDigest, _ := baseline.Digest(path)
		if baselineDigest == currentDigest {
			result.FileEvents = append(result.FileEvents, Event{Kind: Matches, Path: path})
		} else {
			result.FileEvents = append(result.FileEvents, Event{
				Kind:      Differs,
				Path:      path,
				OldDigest: baselineDigest,
				NewDigest: currentDigest,
			})
		}
	}

	return result
}

// Clean reports whether the comparison found no Added, Removed, or Differs
// events. Ignored and Matches events do not count against a clean result.
func (r Result) Clean() bool {
	for _, event := range r.PathEvents {
		if event.Kind == Added || event.Kind == Removed {
			return false
		}
	}
	for _, event := range r.FileEvents {
		if event.Kind == Differs {
			return false
		}
	}
	return true
}

// Tally counts the result's events by kind.
func (r Result) Tally() Tally {
	var tally Tally
	for _, event := range r.PathEvents {
		switch event.Kind {
		case Added:
			tally.Added++
		case Removed:
			tally.Removed++
		case Ignored:
			tally.Ignored++
		}
	}
	for _, event := range r.FileEvents {
		switch event.Kind {
		case Matches:
			tally.Matched++
		case Differs:
			tally.Differs++
		}
	}
	return tally
}
