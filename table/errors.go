package table

import "errors"

// Sentinel errors for table construction and validation.
// Callers branch with errors.Is; implementations attach context with %w.
var (
	// ErrEmpty indicates a table with no rows or a Fixed table with K < 1.
	ErrEmpty = errors.New("table: table must have at least one row and one column")

	// ErrShapeMismatch indicates the neighbor and distance tables disagree in
	// row count, column count, or (for Ragged) the length of a row pair.
	ErrShapeMismatch = errors.New("table: neighbor and distance tables differ in shape")

	// ErrInvalidStart indicates a start node outside [0, N).
	ErrInvalidStart = errors.New("table: start node out of range")

	// ErrNegativeWeight indicates a negative or NaN edge weight.
	ErrNegativeWeight = errors.New("table: negative edge weight")

	// ErrNeighborRange indicates a neighbor id outside [0, N).
	ErrNeighborRange = errors.New("table: neighbor id out of range")
)
