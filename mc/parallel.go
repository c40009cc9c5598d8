package mc

import (
	"errors"
	"fmt"
	"runtime"
	"sync"
)

// ErrNotMergeable is returned by the Parallel policy when the destination
// aggregator does not implement Mergeable. Replaying partition means as raw
// samples would silently corrupt the variance estimate, so it is refused.
var ErrNotMergeable = errors.New("aggregator does not support merge")

// Parallel executes trials across a fixed-size fork-join worker pool. The
// pool lives only for the duration of one Run call. Worker i draws from the
// substream Derive(seed, i) and owns a private aggregator; locals are merged
// into the destination strictly in worker-index order after all workers have
// joined, so the outcome is a deterministic function of (seed, worker count,
// iteration count) regardless of scheduling.
type Parallel struct {
	workers int
}

// NewParallel creates a parallel policy with the given worker count.
// workers <= 0 means use the available hardware parallelism.
func NewParallel(workers int) *Parallel {
	return &Parallel{workers: workers}
}

// Workers returns the resolved worker count, always >= 1.
func (p *Parallel) Workers() int {
	if p.workers > 0 {
		return p.workers
	}
	if n := runtime.NumCPU(); n > 1 {
		return n
	}
	return 1
}

// Run implements ExecutionPolicy.
//
// Failure semantics: a failing trial stops its own worker, all other
// workers still run to completion, and the captured failure of the
// lowest-indexed failed worker is returned. No merge happens on failure,
// so no partial aggregate is ever observable.
func (p *Parallel) Run(trial TrialFunc, agg Aggregator, iterations, seed uint64, factory RNGFactory) error {
	merger, ok := agg.(Mergeable)
	if !ok {
		return fmt.Errorf("parallel execution with %T: %w", agg, ErrNotMergeable)
	}

	workers := p.Workers()
	counts := partitionTrials(iterations, workers)

	// Arena+index: each worker writes only its own slot, shared state is
	// touched only after the join barrier.
	locals := make([]Mergeable, workers)
	failures := make([]error, workers)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		locals[i] = merger.Fork()
		wg.Add(1)
		go func(worker int, n uint64) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					failures[worker] = fmt.Errorf("worker %d: trial panic: %v", worker, r)
				}
			}()
			rng := Derive(seed, uint64(worker), factory)
			local := locals[worker]
			for i := uint64(0); i < n; i++ {
				v, err := trial(rng)
				if err != nil {
					failures[worker] = fmt.Errorf("worker %d, trial %d: %w", worker, i, err)
					return
				}
				local.Add(v)
			}
		}(i, counts[i])
	}
	wg.Wait()

	for _, err := range failures {
		if err != nil {
			return err
		}
	}

	merger.Reset()
	for i, local := range locals {
		if err := merger.Merge(local); err != nil {
			return fmt.Errorf("merging worker %d: %w", i, err)
		}
	}
	return nil
}

// partitionTrials splits n trials across the given worker count:
// floor(n/workers) each, with the first n mod workers workers (in index
// order) taking one extra. Chunks always sum exactly to n, and the ordering
// is fixed so substream assignment stays reproducible.
func partitionTrials(n uint64, workers int) []uint64 {
	counts := make([]uint64, workers)
	base := n / uint64(workers)
	extra := n % uint64(workers)
	for i := range counts {
		counts[i] = base
		if uint64(i) < extra {
			counts[i]++
		}
	}
	return counts
}
