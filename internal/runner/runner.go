// Package runner orchestrates scanning of one or more roots. Roots have no
// data dependency on each other and are scanned in parallel across a bounded
// number of workers; each root writes its result at a reserved index so the
// output order always matches the argument order, regardless of completion
// order.
package runner

import (
	"context"
	"runtime"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/projectbridge/reposcan/internal/errors"
	"github.com/projectbridge/reposcan/internal/scan"
	"github.com/projectbridge/reposcan/pkg/log"
)

// Result is the complete outcome of one invocation: the per-root contexts in
// argument order plus aggregate statistics.
type Result struct {
	// Contexts holds one RepositoryContext per successfully scanned root,
	// preserving the command-line root order.
	Contexts []*scan.RepositoryContext

	// FailedRoots names the roots that could not be scanned at all.
	FailedRoots []string

	// FilesScanned is the total number of files yielded across all roots.
	FilesScanned int64

	// Elapsed is the wall-clock scan duration.
	Elapsed time.Duration
}

// Runner scans a set of roots.
type Runner struct {
	logger     log.Logger
	maxWorkers int
}

// New creates a Runner. maxWorkers bounds per-root parallelism; values below
// one fall back to the number of available CPU cores.
func New(logger log.Logger, maxWorkers int) *Runner {
	if maxWorkers <= 0 {
		maxWorkers = runtime.NumCPU()
	}

	return &Runner{
		logger:     logger,
		maxWorkers: maxWorkers,
	}
}

// Run scans all roots. An invalid root is reported as a warning and does not
// abort its siblings; only when every supplied root fails does Run return an
// AllRootsFailedError.
func (runner *Runner) Run(ctx context.Context, roots []string) (*Result, error) {
	start := time.Now()

	var (
		contexts     = make([]*scan.RepositoryContext, len(roots))
		scanErrs     = make([]error, len(roots))
		filesScanned atomic.Int64
	)

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(runner.maxWorkers)

	for i, root := range roots {
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				scanErrs[i] = err
				return nil
			}

			repoCtx, err := scan.NewScanner(runner.logger).ScanRoot(root)
			if err != nil {
				scanErrs[i] = err
				runner.logger.WithField("root", root).Warnf("skipping root: %v", err)

				return nil
			}

			contexts[i] = repoCtx
			filesScanned.Add(int64(repoCtx.FilesScanned))

			return nil
		})
	}

	// Workers never return errors; failures are tracked per root.
	_ = group.Wait()

	result := &Result{
		FilesScanned: filesScanned.Load(),
		Elapsed:      time.Since(start),
	}

	for i, repoCtx := range contexts {
		if repoCtx != nil {
			result.Contexts = append(result.Contexts, repoCtx)
			continue
		}

		result.FailedRoots = append(result.FailedRoots, roots[i])
	}

	if len(result.Contexts) == 0 {
		var merged *errors.MultiError
		merged = merged.Append(scanErrs...)

		return nil, errors.New(AllRootsFailedError{Err: merged.ErrorOrNil()})
	}

	return result, nil
}

// AllRootsFailedError is returned when every supplied root was invalid or
// inaccessible. It is the only condition producing a non-zero exit with no
// payload.
type AllRootsFailedError struct {
	Err error
}

func (err AllRootsFailedError) Error() string {
	if err.Err != nil {
		return "no roots could be scanned: " + err.Err.Error()
	}

	return "no roots could be scanned"
}

func (err AllRootsFailedError) Unwrap() error {
	return err.Err
}
