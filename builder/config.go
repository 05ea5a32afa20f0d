// SPDX-License-Identifier: MIT
// Package: meshgeo/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • degree   = 3 (triangle-mesh faces)
//   • rng      = nil (Random requires WithSeed or WithRand)
//   • weightFn = constant 1.0
//   • padProb  = 0 (every Random slot holds a neighbor)

package builder

import "math/rand"

const (
	defaultDegree      = 3
	defaultConstWeight = 1.0
)

// builderConfig aggregates all knobs used by constructors.
type builderConfig struct {
	degree   int
	rng      *rand.Rand
	weightFn func(*rand.Rand) float64
	padProb  float64
}

// newBuilderConfig applies opts over the defaults; last option wins.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		degree:   defaultDegree,
		rng:      nil,
		weightFn: func(*rand.Rand) float64 { return defaultConstWeight },
		padProb:  0,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
