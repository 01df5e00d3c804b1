package search

import (
	"context"
	"fmt"
	"math/big"
	"runtime"
	"sync"

	multierror "github.com/hashicorp/go-multierror"

	"github.com/dreamware/primesearch/internal/candidate"
	"github.com/dreamware/primesearch/internal/primality"
)

// Oracle decides whether a candidate is a probable prime. Implementations
// must be safe for concurrent use; the engine shares one oracle across all
// workers.
type Oracle interface {
	IsProbablePrime(value *big.Int, witnessRounds int) bool
}

// Engine orchestrates the worker pool. Workers are symmetric and
// independent: no work stealing, no priority, no backoff — the only thing
// they share besides the read-only source and oracle is the coordinator.
type Engine struct {
	// Source yields random candidates. Shared by all workers; must be
	// concurrency-safe.
	Source candidate.Source

	// Oracle tests candidates for probable primality.
	Oracle Oracle

	// Workers is the pool size. Values below 1 are treated as 1.
	Workers int

	// WitnessRounds is passed through to the oracle on every test.
	WitnessRounds int
}

// NewEngine creates an engine with one worker per logical CPU and the
// default number of witness rounds.
func NewEngine(source candidate.Source, oracle Oracle) *Engine {
	return &Engine{
		Source:        source,
		Oracle:        oracle,
		Workers:       runtime.NumCPU(),
		WitnessRounds: primality.DefaultWitnessRounds,
	}
}

// Run searches until the coordinator signals done, then blocks until every
// worker has observed the signal and exited. A candidate-source failure is
// fatal to the whole search: the failing worker cancels its siblings and
// Run returns the aggregated errors. Cancelling ctx stops the search early
// without error.
func (e *Engine) Run(ctx context.Context, target Target, coord *Coordinator) error {
	if err := target.Validate(); err != nil {
		return err
	}

	workers := e.Workers
	if workers < 1 {
		workers = 1
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		wg    sync.WaitGroup
		errMu sync.Mutex
		errs  error
	)

	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			if err := e.worker(ctx, target, coord); err != nil {
				errMu.Lock()
				errs = multierror.Append(errs, err)
				errMu.Unlock()
				cancel()
			}
		}()
	}

	wg.Wait()
	return errs
}

// worker runs the draw-test-report loop until the coordinator is done or
// the context is cancelled. Cancellation is cooperative: a candidate
// already in hand is fully tested before the flags are checked again.
func (e *Engine) worker(ctx context.Context, target Target, coord *Coordinator) error {
	for !coord.Done() {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		value, err := e.Source.Draw(target.ByteWidth)
		if err != nil {
			return fmt.Errorf("draw candidate: %w", err)
		}

		if e.Oracle.IsProbablePrime(value, e.WitnessRounds) {
			coord.ReportIfPrime(value)
		}
	}
	return nil
}
