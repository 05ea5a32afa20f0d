// Package table holds the two parallel inputs of a shortest-distance query:
// the Neighbor Table (who each node is adjacent to) and the Distance Table
// (the non-negative edge weight to each of those neighbors).
//
// Two shapes are provided:
//
//   - Fixed:  every node has exactly K slots, stored row-major in two flat
//     slices. Slots a node does not need are padded with NoNeighbor.
//     This is the layout the fast engine walks without per-node allocation.
//   - Ragged: every node owns its own neighbor list of arbitrary length.
//     This is the layout the reference engine consumes.
//
// Validation is explicit and happens once, before any traversal:
//
//   - ErrEmpty:          no rows, or K < 1.
//   - ErrShapeMismatch:  the two tables disagree in rows/columns.
//   - ErrNeighborRange:  a neighbor id outside [0, N).
//   - ErrNegativeWeight: a weight < 0 or NaN.
//   - ErrInvalidStart:   start outside [0, N) (see CheckStart).
//
// Tables are never mutated after construction and may be shared freely
// between goroutines running independent queries.
package table
