package feedline

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/fulmenhq/feedline/pkg/logger"
)

// Filter withholds paths from evaluation. A matched path is reported as Skip
// with the returned message and is never classified or opened.
type Filter interface {
	Match(path string) (message string, matched bool)
}

// Options configures a batch run
type Options struct {
	// Jobs bounds the number of concurrent evaluations. 1 (or any negative
	// value) runs sequentially; 0 uses one worker per CPU.
	Jobs   int
	Check  bool
	Filter Filter
}

// Workers returns the effective worker count for n paths
func (o Options) Workers(n int) int {
	workers := o.Jobs
	if workers == 0 {
		workers = runtime.NumCPU()
	}
	if workers < 1 {
		workers = 1
	}
	if n > 0 && workers > n {
		workers = n
	}
	return workers
}

// Evaluate classifies path and, when eligible, repairs it.
func Evaluate(path string, opts Options) Outcome {
	outcome := evaluate(path, opts)
	logger.Trace("evaluated path", logger.String("path", path),
		logger.String("status", outcome.Status.String()), logger.String("reason", string(outcome.Reason)))
	return outcome
}

func evaluate(path string, opts Options) Outcome {
	if opts.Filter != nil {
		if msg, ok := opts.Filter.Match(path); ok {
			return newOutcome(path, Skip, ReasonExcluded, msg)
		}
	}

	outcome, info, eligible := Classify(path)
	if !eligible {
		return outcome
	}
	return Repair(path, info, RepairOptions{Check: opts.Check})
}

// Run evaluates every path and returns one outcome per path in input order.
// Paths are independent: a failure on one never stops the others, and
// repeated paths are evaluated once per occurrence.
func Run(paths []string, opts Options) []Outcome {
	results := make([]Outcome, len(paths))
	workers := opts.Workers(len(paths))

	logger.Debug("starting batch", logger.Int("paths", len(paths)), logger.Int("workers", workers), logger.Bool("check", opts.Check))

	if workers == 1 {
		for idx, path := range paths {
			results[idx] = Evaluate(path, opts)
		}
		return results
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for idx, path := range paths {
		g.Go(func() error {
			results[idx] = Evaluate(path, opts)
			return nil
		})
	}
	// Evaluate never returns an error; Wait only joins the workers.
	_ = g.Wait()

	return results
}
