package table

import (
	"fmt"
	"math"
)

// NoNeighbor marks an unused slot in a Fixed row. Both engines skip it.
const NoNeighbor int32 = -1

// Fixed is an N×K neighbor table with a parallel N×K distance table.
// Row u occupies ids[u*K:(u+1)*K] and weights[u*K:(u+1)*K].
// A Fixed is immutable once built; construct it with NewFixed or NewFixedRows.
type Fixed struct {
	n, k    int
	ids     []int32
	weights []float64
}

// NewFixed builds a Fixed table of degree k from flat row-major slices.
// The inputs are copied. Returns ErrEmpty when k < 1 or the tables are empty,
// ErrShapeMismatch when the slice lengths disagree or are not a multiple of k,
// and the errors of validate for bad ids or weights.
// Complexity: O(N·K) time and memory.
func NewFixed(k int, ids []int32, weights []float64) (*Fixed, error) {
	if k < 1 || len(ids) == 0 {
		return nil, ErrEmpty
	}
	if len(ids) != len(weights) {
		return nil, fmt.Errorf("%w: %d neighbor slots, %d distance slots", ErrShapeMismatch, len(ids), len(weights))
	}
	if len(ids)%k != 0 {
		return nil, fmt.Errorf("%w: %d slots is not a multiple of K=%d", ErrShapeMismatch, len(ids), k)
	}

	t := &Fixed{
		n:       len(ids) / k,
		k:       k,
		ids:     append([]int32(nil), ids...),
		weights: append([]float64(nil), weights...),
	}
	if err := t.validate(); err != nil {
		return nil, err
	}

	return t, nil
}

// NewFixedRows builds a Fixed table from per-node rows. K is taken from the
// first neighbor row; every row of both tables must have exactly K entries.
func NewFixedRows(ids [][]int32, weights [][]float64) (*Fixed, error) {
	if len(ids) == 0 || len(ids[0]) == 0 {
		return nil, ErrEmpty
	}
	if len(ids) != len(weights) {
		return nil, fmt.Errorf("%w: %d neighbor rows, %d distance rows", ErrShapeMismatch, len(ids), len(weights))
	}
	k := len(ids[0])
	flatIDs := make([]int32, 0, len(ids)*k)
	flatW := make([]float64, 0, len(ids)*k)
	for u := range ids {
		if len(ids[u]) != k || len(weights[u]) != k {
			return nil, fmt.Errorf("%w: row %d has %d ids and %d distances, want K=%d",
				ErrShapeMismatch, u, len(ids[u]), len(weights[u]), k)
		}
		flatIDs = append(flatIDs, ids[u]...)
		flatW = append(flatW, weights[u]...)
	}

	t := &Fixed{n: len(ids), k: k, ids: flatIDs, weights: flatW}
	if err := t.validate(); err != nil {
		return nil, err
	}

	return t, nil
}

// validate checks every slot: ids in [0,N) or NoNeighbor, weights ≥ 0 and not NaN.
// Weights of NoNeighbor slots are ignored.
func (t *Fixed) validate() error {
	n := int32(t.n)
	for i, v := range t.ids {
		if v == NoNeighbor {
			continue
		}
		if v < 0 || v >= n {
			return fmt.Errorf("%w: node %d slot %d id=%d, N=%d", ErrNeighborRange, i/t.k, i%t.k, v, t.n)
		}
		if w := t.weights[i]; w < 0 || math.IsNaN(w) {
			return fmt.Errorf("%w: node %d slot %d weight=%g", ErrNegativeWeight, i/t.k, i%t.k, w)
		}
	}

	return nil
}

// Len returns N, the number of nodes.
func (t *Fixed) Len() int { return t.n }

// Degree returns K, the fixed number of slots per node.
func (t *Fixed) Degree() int { return t.k }

// Row returns the neighbor ids and weights of node u. The slices alias the
// table's storage and must not be modified.
func (t *Fixed) Row(u int) ([]int32, []float64) {
	lo, hi := u*t.k, (u+1)*t.k
	return t.ids[lo:hi:hi], t.weights[lo:hi:hi]
}

// CheckStart returns ErrInvalidStart unless 0 ≤ start < N.
func (t *Fixed) CheckStart(start int) error {
	return checkStart(start, t.n)
}

// Ragged converts t into a Ragged table, dropping NoNeighbor slots.
// Complexity: O(N·K).
func (t *Fixed) Ragged() *Ragged {
	ids := make([][]int32, t.n)
	weights := make([][]float64, t.n)
	for u := 0; u < t.n; u++ {
		rowIDs, rowW := t.Row(u)
		for j, v := range rowIDs {
			if v == NoNeighbor {
				continue
			}
			ids[u] = append(ids[u], v)
			weights[u] = append(weights[u], rowW[j])
		}
	}

	return &Ragged{ids: ids, weights: weights}
}

func checkStart(start, n int) error {
	if start < 0 || start >= n {
		return fmt.Errorf("%w: start=%d, N=%d", ErrInvalidStart, start, n)
	}

	return nil
}
