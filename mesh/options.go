package mesh

import "math"

// Options tunes the edge metric between two adjacent faces.
//
// Delta      – blend factor in [0,1]: weight = (1-Delta)·angular + Delta·geodesic,
//
//	each term normalized by its mean over the mesh.
//
// ConvexEta  – angular scale for convex edges. Must be ≥ 0.
// ConcaveEta – angular scale for concave edges. Must be ≥ 0.
type Options struct {
	Delta      float64
	ConvexEta  float64
	ConcaveEta float64
}

// Option represents a functional option for Build and ReadPLY.
type Option func(*Options)

// DefaultOptions returns Delta=0.8, ConvexEta=0.2, ConcaveEta=1.0.
// Concave creases thus cost five times more than convex ones of equal angle.
func DefaultOptions() Options {
	return Options{
		Delta:      0.8,
		ConvexEta:  0.2,
		ConcaveEta: 1.0,
	}
}

// WithDelta sets the angular/geodesic blend. Panics outside [0,1].
func WithDelta(d float64) Option {
	if d < 0 || d > 1 || math.IsNaN(d) {
		panic("mesh: WithDelta requires 0 <= delta <= 1")
	}
	return func(o *Options) {
		o.Delta = d
	}
}

// WithConvexEta sets the angular scale of convex edges. Panics when negative.
func WithConvexEta(eta float64) Option {
	if eta < 0 || math.IsNaN(eta) {
		panic("mesh: WithConvexEta requires eta >= 0")
	}
	return func(o *Options) {
		o.ConvexEta = eta
	}
}

// WithConcaveEta sets the angular scale of concave edges. Panics when negative.
func WithConcaveEta(eta float64) Option {
	if eta < 0 || math.IsNaN(eta) {
		panic("mesh: WithConcaveEta requires eta >= 0")
	}
	return func(o *Options) {
		o.ConcaveEta = eta
	}
}
