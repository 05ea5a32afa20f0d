// SPDX-License-Identifier: MIT
// Package: meshgeo/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Option constructors validate and panic on meaningless inputs.
//   • Determinism is explicit: randomness only through WithSeed or WithRand.

package builder

import "math/rand"

// BuilderOption customizes a constructor before the table is generated.
type BuilderOption func(*builderConfig)

// WithDegree sets K, the number of slots per node. Panics when k < 1.
func WithDegree(k int) BuilderOption {
	if k < 1 {
		panic("builder: WithDegree requires k >= 1")
	}
	return func(c *builderConfig) {
		c.degree = k
	}
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a seeded RNG for reproducible tables.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn overrides the per-edge weight generator. The generator must
// return non-negative values. Panics on nil.
func WithWeightFn(fn func(*rand.Rand) float64) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

// WithPadProb sets the probability that a Random slot is left as
// table.NoNeighbor. Panics outside [0,1].
func WithPadProb(p float64) BuilderOption {
	if p < 0 || p > 1 {
		panic("builder: WithPadProb requires 0 <= p <= 1")
	}
	return func(c *builderConfig) {
		c.padProb = p
	}
}
