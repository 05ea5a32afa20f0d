package segment

import "errors"

// Sentinel errors returned by Run.
var (
	// ErrNilMesh indicates that a nil *mesh.Mesh was passed.
	ErrNilMesh = errors.New("segment: mesh is nil")

	// ErrShape indicates a distance matrix that is not F×F for F faces.
	ErrShape = errors.New("segment: distance matrix does not match the mesh")

	// ErrDisconnected indicates a distance that is not finite, i.e. two faces
	// that cannot reach each other.
	ErrDisconnected = errors.New("segment: mesh is not connected")

	// ErrTooFewFaces indicates fewer faces than requested classes.
	ErrTooFewFaces = errors.New("segment: fewer faces than classes")
)
