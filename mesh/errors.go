package mesh

import "errors"

// Sentinel errors for mesh loading and adjacency construction.
var (
	// ErrBadHeader indicates a missing or unsupported PLY header.
	ErrBadHeader = errors.New("mesh: bad or unsupported PLY header")
	// ErrSyntax indicates a malformed vertex or face line.
	ErrSyntax = errors.New("mesh: malformed element line")
	// ErrEmptyMesh indicates a mesh without faces.
	ErrEmptyMesh = errors.New("mesh: mesh has no faces")
	// ErrNotTriangle indicates a face with other than three vertices.
	ErrNotTriangle = errors.New("mesh: face is not a triangle")
	// ErrVertexRange indicates a face referencing a vertex that does not exist.
	ErrVertexRange = errors.New("mesh: vertex index out of range")
	// ErrBadVertex indicates a vertex coordinate that is NaN or infinite.
	ErrBadVertex = errors.New("mesh: non-finite vertex coordinate")
	// ErrDegenerate indicates an edge metric that is not a finite number.
	ErrDegenerate = errors.New("mesh: non-finite edge metric")
	// ErrLabelCount indicates a label slice whose length differs from the face count.
	ErrLabelCount = errors.New("mesh: one label per face required")
	// ErrNonManifold indicates a face with more than three edge-adjacent faces.
	ErrNonManifold = errors.New("mesh: face has more than three neighbors")
)
