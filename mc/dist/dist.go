// Package dist provides convenience trial models backed by gonum's
// probability distributions. Each model captures its parameters immutably
// at construction and draws through the engine's substream generators, so
// determinism and worker isolation carry over unchanged.
package dist

import (
	mrand "math/rand"

	xrand "golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/montecarlo-sim/montecarlo-sim/mc"
)

// source adapts the engine's generator to gonum's rand.Source so distuv
// distributions draw from the derived substream rather than a private seed.
type source struct {
	r *mrand.Rand
}

func (s source) Uint64() uint64 {
	return s.r.Uint64()
}

// Seed is a no-op: substream derivation owns all seeding.
func (s source) Seed(uint64) {}

// NewSource wraps a generator for direct use with distuv distributions.
func NewSource(rng *mrand.Rand) xrand.Source {
	return source{r: rng}
}

// Uniform samples uniformly from [min, max).
func Uniform(min, max float64) mc.Model {
	return mc.ModelFunc(func(rng *mrand.Rand) float64 {
		return distuv.Uniform{Min: min, Max: max, Src: source{r: rng}}.Rand()
	})
}

// Normal samples from N(mu, sigma²).
func Normal(mu, sigma float64) mc.Model {
	return mc.ModelFunc(func(rng *mrand.Rand) float64 {
		return distuv.Normal{Mu: mu, Sigma: sigma, Src: source{r: rng}}.Rand()
	})
}

// Exponential samples from Exp(rate).
func Exponential(rate float64) mc.Model {
	return mc.ModelFunc(func(rng *mrand.Rand) float64 {
		return distuv.Exponential{Rate: rate, Src: source{r: rng}}.Rand()
	})
}

// Poisson samples from Pois(lambda).
func Poisson(lambda float64) mc.Model {
	return mc.ModelFunc(func(rng *mrand.Rand) float64 {
		return distuv.Poisson{Lambda: lambda, Src: source{r: rng}}.Rand()
	})
}

// Bernoulli samples 1 with probability p, else 0.
func Bernoulli(p float64) mc.Model {
	return mc.ModelFunc(func(rng *mrand.Rand) float64 {
		return distuv.Bernoulli{P: p, Src: source{r: rng}}.Rand()
	})
}
