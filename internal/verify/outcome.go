package verify

import (
	"fmt"
	"time"

	"attest/internal/diff"
)

// Outcome is the result of one verification run.
type Outcome struct {
	// Project is the verified project's display name.
	Project string
	// Passed is true iff the diff contains no Added, Removed, or Differs
	// events.
	Passed bool
	// Diff is the full classified comparison that produced the verdict.
	Diff diff.Result
	// StartedAt and Duration describe the run window.
	StartedAt time.Time
	Duration  time.Duration
}

// Report renders the line-oriented console report: one line per diff event
// followed by a verdict summary.
func (o *Outcome) Report() []string {
	lines := o.Diff.Report()
	tally := o.Diff.Tally()
	if o.Passed {
		lines = append(lines, fmt.Sprintf("Verification passed: %d files match", tally.Matched))
	} else {
		lines = append(lines, fmt.Sprintf(
			"Verification failed: %d added, %d removed, %d differ",
			tally.Added, tally.Removed, tally.Differs,
		))
	}
	return lines
}
