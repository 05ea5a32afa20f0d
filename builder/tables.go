// SPDX-License-Identifier: MIT
// Package: meshgeo/builder
//
// tables.go — deterministic fixed-degree table constructors.
//
// Contract:
//   • Every constructor returns a validated *table.Fixed of degree K
//     (WithDegree, default 3); unused slots hold table.NoNeighbor.
//   • Ring and Star are undirected: both endpoints store the same weight.
//   • Random is directed and requires an RNG (WithSeed / WithRand).
//
// Determinism:
//   • Weights are drawn in ascending edge order, so a fixed seed always
//     yields the same table.

package builder

import (
	"fmt"

	"github.com/katalvlaran/meshgeo/table"
)

const (
	methodRing   = "Ring"
	methodStar   = "Star"
	methodRandom = "Random"

	minRingNodes = 3
)

// Ring returns the n-node cycle 0-1-…-(n-1)-0. Slot 0 of node i points to
// i+1, slot 1 to i-1. Edge {i, i+1} carries the i-th generated weight.
func Ring(n int, opts ...BuilderOption) (*table.Fixed, error) {
	cfg := newBuilderConfig(opts...)
	if n < minRingNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodRing, n, minRingNodes, ErrTooFewVertices)
	}
	if cfg.degree < 2 {
		return nil, fmt.Errorf("%s: K=%d < 2: %w", methodRing, cfg.degree, ErrDegreeTooSmall)
	}

	edge := make([]float64, n)
	for i := range edge {
		edge[i] = cfg.weightFn(cfg.rng)
	}

	k := cfg.degree
	ids, ws := padded(n, k)
	for i := 0; i < n; i++ {
		next, prev := (i+1)%n, (i-1+n)%n
		ids[i*k], ws[i*k] = int32(next), edge[i]
		ids[i*k+1], ws[i*k+1] = int32(prev), edge[prev]
	}

	return table.NewFixed(k, ids, ws)
}

// Star returns a star with center 0 and one leaf per weight; leaf i+1 is
// attached to the center by weights[i].
func Star(weights []float64, opts ...BuilderOption) (*table.Fixed, error) {
	cfg := newBuilderConfig(opts...)
	if len(weights) < 1 {
		return nil, fmt.Errorf("%s: leaves=%d < min=1: %w", methodStar, len(weights), ErrTooFewVertices)
	}
	if cfg.degree < len(weights) {
		return nil, fmt.Errorf("%s: K=%d < leaves=%d: %w", methodStar, cfg.degree, len(weights), ErrDegreeTooSmall)
	}

	k, n := cfg.degree, len(weights)+1
	ids, ws := padded(n, k)
	for i, w := range weights {
		leaf := i + 1
		ids[i], ws[i] = int32(leaf), w
		ids[leaf*k], ws[leaf*k] = 0, w
	}

	return table.NewFixed(k, ids, ws)
}

// Random returns a directed table over n nodes whose slots point at
// uniformly drawn nodes (self-loops and repeats allowed). Each slot is left
// empty with probability WithPadProb.
func Random(n int, opts ...BuilderOption) (*table.Fixed, error) {
	cfg := newBuilderConfig(opts...)
	if n < 1 {
		return nil, fmt.Errorf("%s: n=%d < min=1: %w", methodRandom, n, ErrTooFewVertices)
	}
	if cfg.rng == nil {
		return nil, fmt.Errorf("%s: %w", methodRandom, ErrNeedRandSource)
	}

	ids, ws := padded(n, cfg.degree)
	for i := range ids {
		if cfg.padProb > 0 && cfg.rng.Float64() < cfg.padProb {
			continue
		}
		ids[i] = int32(cfg.rng.Intn(n))
		ws[i] = cfg.weightFn(cfg.rng)
	}

	return table.NewFixed(cfg.degree, ids, ws)
}

// padded allocates n·k slots, all set to table.NoNeighbor.
func padded(n, k int) ([]int32, []float64) {
	ids := make([]int32, n*k)
	for i := range ids {
		ids[i] = table.NoNeighbor
	}
	return ids, make([]float64, n*k)
}
