// Package mc provides an online Monte Carlo estimation engine.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - aggregator.go: the Welford online aggregator and its Chan-style merge law
//   - parallel.go: trial partitioning, per-worker substreams, and the join barrier
//   - engine.go: composition of model, transform, policy and seed into a runnable engine
//
// # Architecture
//
// The package is deliberately flat. An Engine wraps a user-supplied Model
// (one sample per trial), an optional Transform applied to each sample, an
// ExecutionPolicy that decides how trials are scheduled, and a base seed.
// Engine.Run asks the policy to execute the trials into an Aggregator and
// wraps the final state into an immutable Result.
//
// Reproducibility comes from substream derivation (rng.go): every worker
// draws from its own generator derived purely from (base seed, stream id),
// and per-worker aggregators are merged in worker-index order after all
// workers have joined. For a fixed configuration the outcome is therefore
// deterministic; changing the worker count changes the partition plan and
// may change the exact floating-point result.
//
// Sub-packages consume only the public contracts:
//   - mc/dist: distribution-backed convenience models built on gonum
package mc
