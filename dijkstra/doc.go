// Package dijkstra computes single-source shortest distances on graphs whose
// nodes carry a small, bounded number of neighbors, such as the faces of a
// triangle mesh (three neighbors per face).
//
// Overview:
//
//   - Fast walks a table.Fixed: N rows of exactly K (neighbor, distance)
//     slots stored contiguously. K is a property of the table, not of the
//     code, so the same engine serves triangle meshes (K=3), quad meshes
//     (K=4) or any other fixed-degree topology.
//   - Reference walks a table.Ragged with arbitrary per-node lists using
//     container/heap. It exists to check Fast, not to compete with it.
//   - Many / AllPairs fan independent Fast queries out over a bounded
//     errgroup, e.g. to fill a face-to-face distance matrix.
//
// Sign convention:
//
//   - Both engines return true, non-negative distances. dist[start] == 0 and
//     unreached nodes hold +Inf.
//   - WithNegated() reports -d with a -Inf sentinel instead, for callers that
//     consume the max-heap formulation. Negate converts a vector either way,
//     so Fast(t, s, WithNegated()) equals Negate(Reference(t.Ragged(), s).Dist).
//
// Performance and complexity:
//
//   - Fast:      O(N·K log(N·K)) time, O(N·K) worst-case heap, O(N/64) words
//     for the visited bitset. No per-node allocation.
//   - Reference: O((N + E) log E) time, one heap allocation per push.
//   - Each node is settled at most once; the heap may hold stale duplicates
//     ("lazy decrease-key"), which are discarded when popped.
//
// Error handling (sentinel errors, test with errors.Is):
//
//   - ErrNilTable:             nil table passed to an engine.
//   - table.ErrInvalidStart:   start outside [0, N); returned before any work.
//   - ErrMismatch:             returned by Compare.
//   - Shape, range and weight errors are raised when the table is built
//     (table.NewFixed, table.NewRagged), so an engine never sees them.
//   - A disconnected graph is not an error: unreached nodes keep the
//     sentinel, and Result.Visited / Result.Connected report coverage.
//
// Instrumentation:
//
//   - WithCollector(c) reports every call to a metrics.Collector (engine
//     name, N, settled count, duration, error). There is no global state.
//
// Thread safety:
//
//   - Engines keep all working state local to the call. Tables are immutable
//     and may be shared by any number of concurrent queries.
//   - A collector shared between goroutines must be safe for concurrent use;
//     all collectors in package metrics are.
//
// API reference:
//
//	func Fast(t *table.Fixed, start int, opts ...Option) (*Result, error)
//	func Reference(t *table.Ragged, start int, opts ...Option) (*Result, error)
//	func Many(ctx context.Context, t *table.Fixed, starts []int, opts ...Option) ([][]float64, error)
//	func AllPairs(ctx context.Context, t *table.Fixed, opts ...Option) ([][]float64, error)
//	func Negate(dist []float64)
//	func Compare(a, b []float64, tol float64) error
package dijkstra
