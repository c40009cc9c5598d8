package mc

import (
	"errors"
	"fmt"
)

// ErrGPUUnsupported is returned by the GPU policy. There is no GPU backend;
// the policy exists so engines configured for one fail fast and explicitly
// instead of attempting partial execution.
var ErrGPUUnsupported = errors.New("gpu execution not supported")

// GPU is a placeholder execution policy for a device backend. The
// configuration fields mirror a typical launch shape but are never acted on.
type GPU struct {
	DeviceID        int
	Blocks          int
	ThreadsPerBlock int
}

// Run implements ExecutionPolicy and always fails.
func (g GPU) Run(TrialFunc, Aggregator, uint64, uint64, RNGFactory) error {
	return fmt.Errorf("device %d: %w", g.DeviceID, ErrGPUUnsupported)
}
