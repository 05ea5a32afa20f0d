// Package segment splits a triangle mesh into patches using the face-to-face
// distances computed by package dijkstra.
//
// Overview:
//
//   - Seeds: one representative face per patch, chosen far apart.
//   - Refinement: faces get a soft membership in every patch (inverse seed
//     distance); seeds move to the face minimizing the membership-weighted
//     distance, until no seed improves.
//   - Clear faces: the best membership beats the runner-up by more than
//     FuzzyMargin.
//   - Fuzzy faces: settled per pair of patches by an Edmonds–Karp minimum cut
//     over the face adjacency. Crossing a sharp crease is cheap and crossing a
//     flat edge is expensive, so patch boundaries follow creases.
//
// Typical use:
//
//	m, _ := mesh.ReadPLY(f)
//	t, _ := m.Table()
//	d, _ := dijkstra.AllPairs(ctx, t)
//	res, _ := segment.Run(ctx, m, d, segment.WithClasses(3))
//	_ = mesh.WritePLY(out, m, res.Labels)
//
// Errors (sentinel, test with errors.Is):
//
//   - ErrNilMesh:      nil mesh.
//   - ErrShape:        the matrix is not F×F.
//   - ErrDisconnected: a distance is not finite; segment each connected
//     component separately.
//   - ErrTooFewFaces:  fewer faces than patches.
//
// Run is deterministic for a given mesh and matrix and keeps no state
// between calls.
package segment
