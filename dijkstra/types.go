// Package dijkstra defines core types and configuration options for the
// fixed-degree (Fast) and ragged (Reference) shortest-distance engines.
//
// Options:
//
//	– Negated:   report negated distances with a -Inf sentinel (legacy convention).
//	– Collector: timing collector notified once per engine call.
//	– Workers:   concurrency bound for batch queries (Many, AllPairs).
//
// Errors (sentinel):
//
//	– ErrNilTable     if the table pointer is nil.
//	– ErrMismatch     if Compare finds two distance vectors that disagree.
//	– table.ErrInvalidStart, table.ErrShapeMismatch, table.ErrNegativeWeight,
//	  table.ErrNeighborRange surface unchanged (wrapped with context).
package dijkstra

import (
	"errors"
	"math"
	"runtime"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/katalvlaran/meshgeo/metrics"
)

// Sentinel errors returned by the engines.
var (
	// ErrNilTable indicates that a nil *table.Fixed or *table.Ragged was passed.
	ErrNilTable = errors.New("dijkstra: table is nil")

	// ErrMismatch indicates two distance vectors differ beyond the tolerance.
	ErrMismatch = errors.New("dijkstra: distance vectors differ")
)

// Options configures the behavior of the engines.
//
// Negated   – if true, distances are reported negated and unreached nodes as -Inf.
// Collector – receives one observation per engine call. Never nil.
// Workers   – maximum number of queries in flight in Many/AllPairs. Must be ≥ 1.
type Options struct {
	Negated   bool
	Collector metrics.Collector
	Workers   int
}

// Option represents a functional option for configuring an engine call.
type Option func(*Options)

// WithNegated switches the output to the negated convention: dist[start] = 0,
// reached nodes hold -d, unreached nodes hold -Inf.
func WithNegated() Option {
	return func(o *Options) {
		o.Negated = true
	}
}

// WithCollector injects a timing collector. Panics on nil.
func WithCollector(c metrics.Collector) Option {
	if c == nil {
		panic("dijkstra: WithCollector(nil)")
	}
	return func(o *Options) {
		o.Collector = c
	}
}

// WithWorkers bounds the number of concurrent queries in Many and AllPairs.
// Panics when n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("dijkstra: WithWorkers requires n >= 1")
	}
	return func(o *Options) {
		o.Workers = n
	}
}

// DefaultOptions returns Options initialized with defaults:
//   - Negated:   false (true non-negative distances, +Inf sentinel).
//   - Collector: metrics.Noop{}.
//   - Workers:   runtime.GOMAXPROCS(0).
func DefaultOptions() Options {
	return Options{
		Negated:   false,
		Collector: metrics.Noop{},
		Workers:   runtime.GOMAXPROCS(0),
	}
}

func buildOptions(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// Result is the outcome of one single-source query.
//
// Dist    – one entry per node; see Options.Negated for the sign convention.
// Visited – number of nodes whose distance was finalized (the start included).
// Settled – the finalized nodes as a bitmap. Populated by Reference only.
type Result struct {
	Dist    []float64
	Visited int
	Settled *roaring.Bitmap
}

// Connected reports whether every node was reached from the start.
func (r *Result) Connected() bool {
	return r.Visited == len(r.Dist)
}

// Unreached returns the ids of nodes still holding the sentinel, ascending.
func (r *Result) Unreached() []int {
	var out []int
	for i, d := range r.Dist {
		if math.IsInf(d, 0) {
			out = append(out, i)
		}
	}

	return out
}
