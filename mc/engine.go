package mc

import (
	"time"

	"github.com/sirupsen/logrus"
)

// DefaultSeed is the base seed used when callers do not supply one.
const DefaultSeed uint64 = 123456789

// ExecutionPolicy schedules the trials of one run and folds their samples
// into the supplied aggregator. Implementations must be deterministic
// functions of (seed, iteration count) given a fixed configuration.
type ExecutionPolicy interface {
	Run(trial TrialFunc, agg Aggregator, iterations, seed uint64, factory RNGFactory) error
}

// Engine composes a Model, an ExecutionPolicy, a Transform and a base seed
// into a runnable Monte Carlo simulation.
type Engine struct {
	model     Model
	policy    ExecutionPolicy
	transform Transform
	trial     TrialFunc
	seed      uint64
	factory   RNGFactory
	newAgg    func() Aggregator
}

// NewEngine creates an engine. A nil policy defaults to Sequential and a
// nil transform to Identity; the transform is bound to the model once here,
// producing the canonical trial callable used by every run.
func NewEngine(model Model, policy ExecutionPolicy, transform Transform, seed uint64) *Engine {
	if policy == nil {
		policy = Sequential{}
	}
	if transform == nil {
		transform = Identity
	}
	return &Engine{
		model:     model,
		policy:    policy,
		transform: transform,
		trial:     bindTrial(model, transform),
		seed:      seed,
		factory:   DefaultRNGFactory,
		newAgg:    func() Aggregator { return NewWelford() },
	}
}

// NewSequentialEngine creates a single-worker engine with the identity
// transform.
func NewSequentialEngine(model Model, seed uint64) *Engine {
	return NewEngine(model, Sequential{}, nil, seed)
}

// NewParallelEngine creates a fork-join engine with the identity transform.
// workers <= 0 selects the available hardware parallelism.
func NewParallelEngine(model Model, workers int, seed uint64) *Engine {
	return NewEngine(model, NewParallel(workers), nil, seed)
}

// SetRNGFactory substitutes the generator algorithm used for substream
// derivation on subsequent runs.
func (e *Engine) SetRNGFactory(factory RNGFactory) {
	if factory == nil {
		factory = DefaultRNGFactory
	}
	e.factory = factory
}

// SetAggregatorFactory substitutes the aggregator constructed for each run.
// The default is NewWelford. Aggregators without a merge law are only
// compatible with the Sequential policy.
func (e *Engine) SetAggregatorFactory(newAgg func() Aggregator) {
	if newAgg != nil {
		e.newAgg = newAgg
	}
}

// Seed returns the configured base seed.
func (e *Engine) Seed() uint64 {
	return e.seed
}

// SetSeed overwrites the configured base seed for subsequent runs.
func (e *Engine) SetSeed(seed uint64) {
	e.seed = seed
}

// Run executes the configured number of trials and returns the aggregated
// result with elapsed wall-clock time.
func (e *Engine) Run(iterations uint64) (Result, error) {
	return e.runWith(iterations, e.seed)
}

// Simulate runs with a one-off seed override. The engine's configured seed
// is left untouched for subsequent calls.
func (e *Engine) Simulate(iterations, seed uint64) (Result, error) {
	return e.runWith(iterations, seed)
}

func (e *Engine) runWith(iterations, seed uint64) (Result, error) {
	start := time.Now()
	agg := e.newAgg()
	agg.Reset()
	if err := e.policy.Run(e.trial, agg, iterations, seed, e.factory); err != nil {
		return Result{}, err
	}
	res := Result{
		Estimate:   agg.Result(),
		Variance:   agg.Variance(),
		StdError:   agg.StdError(),
		Iterations: iterations,
		Elapsed:    time.Since(start),
	}
	logrus.Debugf("run complete: seed=%d iterations=%d estimate=%g stderr=%g elapsed=%s",
		seed, iterations, res.Estimate, res.StdError, res.Elapsed)
	return res, nil
}
