// Package runhistory persists verification run summaries in SQLite.
//
// Each completed verification run is recorded with its verdict and event
// counts so regressions can be traced back to the run that introduced them.
// The database is an append-only archive of summaries, not pipeline state:
// verification itself never reads from it.
package runhistory
