package table

import (
	"fmt"
	"math"
)

// Ragged is a neighbor table whose rows may differ in length, with a
// parallel distance table of identical shape.
type Ragged struct {
	ids     [][]int32
	weights [][]float64
}

// NewRagged deep-copies and validates per-node neighbor and distance lists.
// A node with no neighbors is represented by an empty (or nil) row.
// Complexity: O(N + E).
func NewRagged(ids [][]int32, weights [][]float64) (*Ragged, error) {
	if len(ids) == 0 {
		return nil, ErrEmpty
	}
	if len(ids) != len(weights) {
		return nil, fmt.Errorf("%w: %d neighbor rows, %d distance rows", ErrShapeMismatch, len(ids), len(weights))
	}

	n := int32(len(ids))
	t := &Ragged{
		ids:     make([][]int32, len(ids)),
		weights: make([][]float64, len(ids)),
	}
	for u := range ids {
		if len(ids[u]) != len(weights[u]) {
			return nil, fmt.Errorf("%w: row %d has %d ids and %d distances",
				ErrShapeMismatch, u, len(ids[u]), len(weights[u]))
		}
		for j, v := range ids[u] {
			if v < 0 || v >= n {
				return nil, fmt.Errorf("%w: node %d slot %d id=%d, N=%d", ErrNeighborRange, u, j, v, n)
			}
			if w := weights[u][j]; w < 0 || math.IsNaN(w) {
				return nil, fmt.Errorf("%w: node %d slot %d weight=%g", ErrNegativeWeight, u, j, w)
			}
		}
		t.ids[u] = append([]int32(nil), ids[u]...)
		t.weights[u] = append([]float64(nil), weights[u]...)
	}

	return t, nil
}

// Len returns N, the number of nodes.
func (t *Ragged) Len() int { return len(t.ids) }

// Row returns the neighbor ids and weights of node u. The slices alias the
// table's storage and must not be modified.
func (t *Ragged) Row(u int) ([]int32, []float64) {
	return t.ids[u], t.weights[u]
}

// CheckStart returns ErrInvalidStart unless 0 ≤ start < N.
func (t *Ragged) CheckStart(start int) error {
	return checkStart(start, len(t.ids))
}
