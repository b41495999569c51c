package runhistory

import "time"

// Run summarizes one verification run.
type Run struct {
	ID        string
	Project   string
	Passed    bool
	Added     int
	Removed   int
	Ignored   int
	Matched   int
	Differs   int
	StartedAt time.Time
	Duration  time.Duration
}
