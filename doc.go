// Package meshgeo computes single-source shortest distances over
// fixed-degree graphs, with triangle-mesh face adjacency as the main source
// of such graphs.
//
// What is inside?
//
//	table/    — validated fixed-degree (flat, row-major) and ragged adjacency tables
//	dijkstra/ — the Fast engine, the Reference engine, batch runs and result comparison
//	mesh/     — ASCII PLY reader and the dihedral/geodesic face-adjacency weights
//	builder/  — deterministic ring, star and seeded random tables for tests and benchmarks
//	metrics/  — per-call timing collectors (in-memory and Prometheus)
//	cmd/      — the meshgeo command-line tool
//
// Quick start:
//
//	m, _ := mesh.ReadPLY(f)
//	t, _ := m.Table()
//	res, _ := dijkstra.Fast(t, 0)
//	fmt.Println(res.Dist)
//
// Distances are true path costs: 0 at the start, positive elsewhere and
// +Inf for unreachable nodes. dijkstra.WithNegated returns the negated form.
//
// Both engines are pure functions of (table, start); they never share
// mutable state and may run from any number of goroutines.
package meshgeo
