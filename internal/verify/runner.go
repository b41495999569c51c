package verify

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"

	"attest/internal/config"
	"attest/internal/diff"
	"attest/internal/faults"
	"attest/internal/fingerprint"
	"attest/internal/logging"
	"attest/internal/project"
	"attest/internal/runhistory"
)

// lockFileName guards a project root against concurrent runs that would race
// on the output directory.
const lockFileName = ".attest.lock"

// Loader resolves a manifest path to a build backend. The default loads the
// built-in manifest-driven engine.
type Loader func(manifestPath string, logger *slog.Logger) (project.Builder, error)

// Runner executes verification and recording runs for build projects. It
// depends only on the Builder capability, so backends other than the
// manifest engine can be swapped in through WithLoader.
type Runner struct {
	cfg     *config.Config
	logger  *slog.Logger
	history *runhistory.Store
	load    Loader
}

// NewRunner constructs a Runner. The history store is optional; without it
// runs are simply not recorded.
func NewRunner(cfg *config.Config, logger *slog.Logger) *Runner {
	return &Runner{
		cfg:    cfg,
		logger: logging.OrNop(logger),
		load: func(manifestPath string, logger *slog.Logger) (project.Builder, error) {
			return project.Load(manifestPath, logger)
		},
	}
}

// WithHistory attaches a run-history store.
func (r *Runner) WithHistory(store *runhistory.Store) *Runner {
	r.history = store
	return r
}

// WithLoader replaces the build backend loader.
func (r *Runner) WithLoader(load Loader) *Runner {
	r.load = load
	return r
}

// Verify runs the project rooted at projectRoot and compares the fingerprints
// of its output directory against the recorded baseline. Build, walk, and
// parse failures abort the run; a mismatching tree is a normal outcome with
// Passed == false.
func (r *Runner) Verify(ctx context.Context, projectRoot string) (*Outcome, error) {
	startedAt := time.Now()

	proj, unlock, err := r.prepare(projectRoot)
	if err != nil {
		return nil, err
	}
	defer unlock()

	if err := proj.Run(ctx); err != nil {
		return nil, r.fail(proj.Name(), err)
	}

	ignore, err := r.ignorePredicate()
	if err != nil {
		return nil, err
	}
	algo, err := fingerprint.ParseAlgorithm(r.cfg.Hashing.Algorithm)
	if err != nil {
		return nil, faults.Wrap(faults.ErrParse, "fingerprint", "algorithm", "", err)
	}

	// Ignored paths still get fingerprinted; the ignore predicate is applied
	// at diff time so their appearance is reported as Ignored rather than
	// silently dropped.
	current, err := fingerprint.Compute(ctx, proj.OutputDir(), fingerprint.Options{
		Algorithm: algo,
		Workers:   r.cfg.Hashing.Workers,
		Logger:    r.logger,
	})
	if err != nil {
		return nil, r.fail(proj.Name(), err)
	}

	store := fingerprint.Store{Algorithm: algo, Logger: r.logger}
	baseline, err := store.Load(filepath.Join(projectRoot, fingerprint.BaselineFileName))
	if err != nil {
		return nil, r.fail(proj.Name(), err)
	}

	result := diff.Compare(baseline, current, ignore)
	outcome := &Outcome{
		Project:   proj.Name(),
		Passed:    result.Clean(),
		Diff:      result,
		StartedAt: startedAt,
		Duration:  time.Since(startedAt),
	}

	tally := result.Tally()
	r.logger.Info("verification finished",
		slog.String("project", proj.Name()),
		slog.Bool("passed", outcome.Passed),
		slog.Int("added", tally.Added),
		slog.Int("removed", tally.Removed),
		slog.Int("differs", tally.Differs),
		slog.Int("matched", tally.Matched),
		slog.Int("ignored", tally.Ignored),
	)

	r.recordRun(ctx, outcome, tally)
	return outcome, nil
}

// Record runs the project and writes its output fingerprints as the new
// baseline, replacing any previous hashes.txt atomically.
func (r *Runner) Record(ctx context.Context, projectRoot string) (*fingerprint.Set, error) {
	proj, unlock, err := r.prepare(projectRoot)
	if err != nil {
		return nil, err
	}
	defer unlock()

	if err := proj.Run(ctx); err != nil {
		return nil, r.fail(proj.Name(), err)
	}

	algo, err := fingerprint.ParseAlgorithm(r.cfg.Hashing.Algorithm)
	if err != nil {
		return nil, faults.Wrap(faults.ErrParse, "fingerprint", "algorithm", "", err)
	}
	set, err := fingerprint.Compute(ctx, proj.OutputDir(), fingerprint.Options{
		Algorithm: algo,
		Workers:   r.cfg.Hashing.Workers,
		Logger:    r.logger,
	})
	if err != nil {
		return nil, r.fail(proj.Name(), err)
	}

	store := fingerprint.Store{Algorithm: algo, Logger: r.logger}
	baselinePath := filepath.Join(projectRoot, fingerprint.BaselineFileName)
	if err := store.Save(baselinePath, set); err != nil {
		return nil, r.fail(proj.Name(), err)
	}

	r.logger.Info("baseline recorded",
		slog.String("project", proj.Name()),
		slog.String("path", baselinePath),
		slog.Int("entries", set.Len()),
	)
	return set, nil
}

func (r *Runner) prepare(projectRoot string) (project.Builder, func(), error) {
	proj, err := r.load(filepath.Join(projectRoot, project.ManifestFileName), r.logger)
	if err != nil {
		return nil, nil, err
	}

	lock := flock.New(filepath.Join(projectRoot, lockFileName))
	locked, err := lock.TryLock()
	if err != nil {
		return nil, nil, faults.Wrap(faults.ErrIO, "lock", "acquire", lock.Path(), err)
	}
	if !locked {
		return nil, nil, faults.Wrap(faults.ErrIO, "lock", "acquire",
			fmt.Sprintf("project %s is locked by another run", proj.Name()), nil)
	}

	return proj, func() { _ = lock.Unlock() }, nil
}

// fail logs an aborting pipeline error with its stage label and passes the
// error through unchanged.
func (r *Runner) fail(project string, err error) error {
	r.logger.Error("run aborted",
		slog.String("project", project),
		slog.String("stage", faults.StageOf(err)),
		slog.String("error", err.Error()),
	)
	return err
}

func (r *Runner) ignorePredicate() (fingerprint.IgnoreFunc, error) {
	ignore, err := fingerprint.IgnorePatterns(r.cfg.Verify.Ignore)
	if err != nil {
		return nil, faults.Wrap(faults.ErrParse, "diff", "ignore patterns", "", err)
	}
	return ignore, nil
}

func (r *Runner) recordRun(ctx context.Context, outcome *Outcome, tally diff.Tally) {
	if r.history == nil || !r.cfg.Verify.HistoryEnabled {
		return
	}
	_, err := r.history.RecordRun(ctx, runhistory.Run{
		Project:   outcome.Project,
		Passed:    outcome.Passed,
		Added:     tally.Added,
		Removed:   tally.Removed,
		Ignored:   tally.Ignored,
		Matched:   tally.Matched,
		Differs:   tally.Differs,
		StartedAt: outcome.StartedAt.UTC(),
		Duration:  outcome.Duration,
	})
	if err != nil {
		// History is bookkeeping; a failed insert must not fail the run.
		r.logger.Warn("record run history", slog.String("error", err.Error()))
	}
}
