package mc

import "fmt"

// Sequential executes every trial on the calling goroutine, in order, using
// the single substream Derive(seed, 0). A failing trial aborts the run; no
// retries are performed.
type Sequential struct{}

// Run implements ExecutionPolicy.
func (Sequential) Run(trial TrialFunc, agg Aggregator, iterations, seed uint64, factory RNGFactory) error {
	rng := Derive(seed, 0, factory)
	for i := uint64(0); i < iterations; i++ {
		v, err := trial(rng)
		if err != nil {
			return fmt.Errorf("trial %d: %w", i, err)
		}
		agg.Add(v)
	}
	return nil
}
