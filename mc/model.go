package mc

import "math/rand"

// Model produces one raw sample per trial from the supplied generator.
// Implementations must be pure apart from generator consumption: no side
// effects, no hidden state, parameters captured immutably at construction.
// A single Model value is shared by all workers of a parallel run, each
// calling Trial with its own private generator.
type Model interface {
	Trial(rng *rand.Rand) (float64, error)
}

// ModelFunc adapts a plain sampling function into a Model. This is the
// normalization point for the two model shapes (a Trial method vs. a direct
// function): both collapse into one canonical callable when the engine is
// constructed, never re-detected per trial.
type ModelFunc func(rng *rand.Rand) float64

// Trial implements Model.
func (f ModelFunc) Trial(rng *rand.Rand) (float64, error) {
	return f(rng), nil
}

// TrialFunc is the canonical per-trial callable handed to execution
// policies: the model with its transform already bound.
type TrialFunc func(rng *rand.Rand) (float64, error)

// bindTrial composes transform over model once, at engine construction.
func bindTrial(model Model, transform Transform) TrialFunc {
	if transform == nil {
		return model.Trial
	}
	return func(rng *rand.Rand) (float64, error) {
		v, err := model.Trial(rng)
		if err != nil {
			return 0, err
		}
		return transform(v), nil
	}
}
