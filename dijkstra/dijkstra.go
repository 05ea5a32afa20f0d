// Package dijkstra implements single-source shortest distances on graphs whose
// adjacency is given as parallel neighbor/distance tables.
//
// Notes on implementation choices:
//
//   - Tables are validated at construction (package table); engines only check
//     for nil tables and an out-of-range start before doing any work.
//   - Both engines use a "lazy" decrease-key strategy: a node may sit in the
//     heap several times and only its first pop is authoritative.
//   - Reference uses container/heap over ragged rows and records the settled
//     set in a roaring bitmap the caller can inspect.
package dijkstra

import (
	"container/heap"
	"math"
	"time"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/katalvlaran/meshgeo/metrics"
	"github.com/katalvlaran/meshgeo/table"
)

// Reference computes true shortest distances from start over a ragged table.
// It is the correctness oracle for Fast and is not tuned for speed.
//
// Returns:
//
//   - Result.Dist:    minimum distance per node, +Inf if unreachable
//     (negated with a -Inf sentinel under WithNegated).
//   - Result.Visited: number of settled nodes; equals N iff the graph is
//     connected from start.
//   - Result.Settled: bitmap of settled node ids.
//   - err: ErrNilTable or a wrapped table.ErrInvalidStart.
//
// Complexity:
//
//   - Time:  O((N + E) log E)
//   - Space: O(N + E)
func Reference(t *table.Ragged, start int, opts ...Option) (*Result, error) {
	cfg := buildOptions(opts)
	began := time.Now()

	res, err := reference(t, start)
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
	cfg.Collector.Observe(metrics.EngineReference, nodes, settled, time.Since(began), err)
	if err != nil {
		return nil, err
	}

	return res, nil
}

func reference(t *table.Ragged, start int) (*Result, error) {
	// 1) Validate inputs before allocating anything.
	if t == nil {
		return nil, ErrNilTable
	}
	if err := t.CheckStart(start); err != nil {
		return nil, err
	}

	// 2) Initialize runner and run main loop.
	r := &runner{
		t:       t,
		dist:    make([]float64, t.Len()),
		settled: roaring.New(),
		pq:      make(nodePQ, 0, t.Len()),
	}
	r.init(int32(start))
	r.process()

	return &Result{
		Dist:    r.dist,
		Visited: int(r.settled.GetCardinality()),
		Settled: r.settled,
	}, nil
}

// runner holds the mutable state for a single Reference execution.
type runner struct {
	t       *table.Ragged   // Input table; read-only.
	dist    []float64       // Current best distance per node.
	settled *roaring.Bitmap // Nodes whose distance is final.
	pq      nodePQ          // Min-heap of *nodeItem.
}

// init sets every distance to +Inf, the start to zero, and seeds the heap.
func (r *runner) init(start int32) {
	for i := range r.dist {
		r.dist[i] = math.Inf(1)
	}
	r.dist[start] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: start, dist: 0})
}

// process repeatedly extracts the closest unsettled node, settles it and
// relaxes its neighbors, until the heap is empty.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := uint32(item.id)

		// Stale entry for an already finalized node.
		if r.settled.Contains(u) {
			continue
		}
		r.settled.Add(u)

		r.relax(item.id)
	}
}

// relax tries to improve the distance of every neighbor of u through u.
// Assumes r.dist[u] is final.
func (r *runner) relax(u int32) {
	ids, weights := r.t.Row(int(u))
	for j, v := range ids {
		if r.settled.Contains(uint32(v)) {
			continue
		}
		newDist := r.dist[u] + weights[j]
		// Strict improvement only; equal distances would only add duplicates.
		if newDist >= r.dist[v] {
			continue
		}
		r.dist[v] = newDist
		heap.Push(&r.pq, &nodeItem{id: v, dist: newDist})
	}
}

// nodeItem is a node and its tentative distance at the time it was pushed.
type nodeItem struct {
	id   int32
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist, then by id.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
