package dijkstra

import (
	"math"
	"time"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/meshgeo/metrics"
	"github.com/katalvlaran/meshgeo/table"
)

// Fast computes shortest distances from start over a fixed-degree table.
//
// Every node has exactly K slots laid out contiguously, so the relaxation loop
// walks two flat slices with no per-node allocation. Slots holding
// table.NoNeighbor are skipped. The frontier is a typed binary min-heap of
// (distance, node) pairs ordered by distance and then by node id; the visited
// set is a dense bitset sized to N.
//
// Output convention: true non-negative distances with +Inf for unreached
// nodes. WithNegated reports -d and -Inf instead, matching callers written
// against the max-heap formulation of the same algorithm.
//
// Errors: ErrNilTable, or table.ErrInvalidStart (wrapped) before any traversal.
//
// Complexity:
//
//   - Time:  O(N·K log(N·K)); at most N·K pushes.
//   - Space: O(N·K) worst case for the heap, O(N) otherwise.
func Fast(t *table.Fixed, start int, opts ...Option) (*Result, error) {
	cfg := buildOptions(opts)
	began := time.Now()

	res, err := fast(t, start)
	if err == nil && cfg.Negated {
		Negate(res.Dist)
	}

	nodes, settled := 0, 0
	if t != nil {
		nodes = t.Len()
	}
	if res != nil {
		settled = res.Visited
	}
	cfg.Collector.Observe(metrics.EngineFast, nodes, settled, time.Since(began), err)
	if err != nil {
		return nil, err
	}

	return res, nil
}

func fast(t *table.Fixed, start int) (*Result, error) {
	if t == nil {
		return nil, ErrNilTable
	}
	if err := t.CheckStart(start); err != nil {
		return nil, err
	}

	n, k := t.Len(), t.Degree()
	dist := make([]float64, n)
	inf := math.Inf(1)
	for i := range dist {
		dist[i] = inf
	}
	dist[start] = 0

	visited := bitset.New(uint(n))
	pq := frontier{items: make([]entry, 0, n)}
	pq.push(entry{dist: 0, node: int32(start)})

	settled := 0
	for pq.len() > 0 {
		u := pq.pop().node
		if visited.Test(uint(u)) {
			continue
		}
		visited.Set(uint(u))
		settled++

		du := dist[u]
		ids, weights := t.Row(int(u))
		for j := 0; j < k; j++ {
			v := ids[j]
			if v == table.NoNeighbor || visited.Test(uint(v)) {
				continue
			}
			if cand := du + weights[j]; cand < dist[v] {
				dist[v] = cand
				pq.push(entry{dist: cand, node: v})
			}
		}
	}

	return &Result{Dist: dist, Visited: settled}, nil
}

// entry is one frontier element.
type entry struct {
	dist float64
	node int32
}

func (a entry) less(b entry) bool {
	if a.dist != b.dist {
		return a.dist < b.dist
	}
	return a.node < b.node
}

// frontier is a binary min-heap of entries stored by value.
type frontier struct {
	items []entry
}

func (h *frontier) len() int { return len(h.items) }

func (h *frontier) push(e entry) {
	h.items = append(h.items, e)

	// Sift up.
	i := len(h.items) - 1
	for i > 0 {
		parent := (i - 1) / 2
		if !h.items[i].less(h.items[parent]) {
			break
		}
		h.items[i], h.items[parent] = h.items[parent], h.items[i]
		i = parent
	}
}

func (h *frontier) pop() entry {
	top := h.items[0]
	last := len(h.items) - 1
	h.items[0] = h.items[last]
	h.items = h.items[:last]

	// Sift down.
	i, n := 0, last
	for {
		l := 2*i + 1
		if l >= n {
			break
		}
		m := l
		if r := l + 1; r < n && h.items[r].less(h.items[l]) {
			m = r
		}
		if !h.items[m].less(h.items[i]) {
			break
		}
		h.items[i], h.items[m] = h.items[m], h.items[i]
		i = m
	}

	return top
}
