package dijkstra

import (
	"fmt"
	"math"
)

// Negate flips the sign convention of a distance vector in place:
// d becomes -d, +Inf becomes -Inf and vice versa. Zero stays +0.
func Negate(dist []float64) {
	for i, d := range dist {
		if d == 0 {
			dist[i] = 0
			continue
		}
		dist[i] = -d
	}
}

// Compare reports whether a and b agree element-wise within tol.
// Infinities must match exactly (same sign). Returns ErrMismatch wrapped with
// the first differing index, or nil.
func Compare(a, b []float64, tol float64) error {
	if len(a) != len(b) {
		return fmt.Errorf("%w: lengths %d and %d", ErrMismatch, len(a), len(b))
	}
	for i := range a {
		x, y := a[i], b[i]
		if math.IsInf(x, 0) || math.IsInf(y, 0) {
			if x != y {
				return fmt.Errorf("%w: node %d: %g vs %g", ErrMismatch, i, x, y)
			}
			continue
		}
		if math.Abs(x-y) > tol || math.IsNaN(x) || math.IsNaN(y) {
			return fmt.Errorf("%w: node %d: %g vs %g", ErrMismatch, i, x, y)
		}
	}

	return nil
}
