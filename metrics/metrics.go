// Package metrics defines the timing collector injected into the shortest
// distance engines, plus three implementations: Noop, Basic and Prometheus.
//
// Engines never hold process-wide instrumentation state; a collector is
// supplied per call (dijkstra.WithCollector) and may be shared by concurrent
// queries, so every implementation must be safe for concurrent use.
package metrics

import (
	"sync/atomic"
	"time"
)

// Engine names reported to collectors.
const (
	EngineFast      = "fast"
	EngineReference = "reference"
)

// Collector receives one observation per engine invocation.
//
// engine is EngineFast or EngineReference, nodes is N, settled is the number
// of nodes whose distance was finalized, d is the wall time of the call and
// err is the error returned to the caller (nil on success).
type Collector interface {
	Observe(engine string, nodes, settled int, d time.Duration, err error)
}

// Noop discards every observation.
type Noop struct{}

func (Noop) Observe(string, int, int, time.Duration, error) {}

// Basic keeps in-memory totals using atomics.
type Basic struct {
	calls      atomic.Int64
	errors     atomic.Int64
	settled    atomic.Int64
	totalNanos atomic.Int64
}

// Observe implements Collector.
func (b *Basic) Observe(_ string, _, settled int, d time.Duration, err error) {
	b.calls.Add(1)
	if err != nil {
		b.errors.Add(1)
	}
	b.settled.Add(int64(settled))
	b.totalNanos.Add(d.Nanoseconds())
}

// Stats is a point-in-time copy of Basic's counters.
type Stats struct {
	Calls        int64
	Errors       int64
	SettledNodes int64
	Total        time.Duration
}

// Mean returns the average call duration, or 0 when nothing was observed.
func (s Stats) Mean() time.Duration {
	if s.Calls == 0 {
		return 0
	}
	return s.Total / time.Duration(s.Calls)
}

// Snapshot returns the current totals.
func (b *Basic) Snapshot() Stats {
	return Stats{
		Calls:        b.calls.Load(),
		Errors:       b.errors.Load(),
		SettledNodes: b.settled.Load(),
		Total:        time.Duration(b.totalNanos.Load()),
	}
}
