// SPDX-License-Identifier: MIT
// Package: meshgeo/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers use errors.Is.
//   • Constructors attach method context with %w.
//   • Constructors never panic; option constructors (WithX) do on bad input.

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter below the constructor minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrDegreeTooSmall indicates WithDegree is too small for the topology
// (a ring needs K ≥ 2, a star needs K ≥ number of leaves).
var ErrDegreeTooSmall = errors.New("builder: degree too small for topology")

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")
