// Package mesh turns a triangle mesh into the fixed-degree tables consumed by
// the dijkstra engines: one node per face, up to three neighbors per face
// (the faces sharing an edge with it), and an edge metric that blends the
// dihedral-angle cost of crossing the edge with the distance between the two
// face centroids measured across the unfolded edge.
package mesh

import (
	"fmt"
	"math"

	"github.com/katalvlaran/meshgeo/table"
)

// Degree is the number of neighbor slots per face in Table.
const Degree = 3

// convexEps is the tolerance of the convexity test.
const convexEps = 1e-12

// Face is one triangle.
type Face struct {
	V      [3]int32 // vertex ids
	Center Vec3     // centroid
	Normal Vec3     // unit normal; the raw cross product when degenerate
}

// Neighbor describes the edge between a face and one adjacent face.
type Neighbor struct {
	Face    int32    // adjacent face id
	Edge    [2]int32 // shared vertex ids, ascending
	Convex  bool     // whether the fold is convex
	Angle   float64  // angle between the two normals
	AngDist float64  // eta·(1 - cos Angle)
	GeoDist float64  // squared centroid distance across the unfolded edge
	Weight  float64  // blended, normalized metric used as the edge weight
}

// Mesh is an immutable triangle mesh with precomputed face adjacency.
type Mesh struct {
	Vertices  []Vec3
	Faces     []Face
	Neighbors [][]Neighbor // Neighbors[f] lists the faces sharing an edge with f

	// AvgAngDist is the mean AngDist over all adjacencies; 0 for a flat mesh.
	AvgAngDist float64
}

// Build computes faces, adjacency and edge weights.
// Returns ErrEmptyMesh, ErrBadVertex, ErrVertexRange, ErrNonManifold or
// ErrDegenerate.
// Complexity: O(V + F) expected time and memory.
func Build(vertices []Vec3, faces [][3]int32, opts ...Option) (*Mesh, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if len(faces) == 0 {
		return nil, ErrEmptyMesh
	}

	for i, v := range vertices {
		for _, x := range v {
			if math.IsNaN(x) || math.IsInf(x, 0) {
				return nil, fmt.Errorf("%w: vertex %d = %v", ErrBadVertex, i, v)
			}
		}
	}

	m := &Mesh{
		Vertices:  append([]Vec3(nil), vertices...),
		Faces:     make([]Face, len(faces)),
		Neighbors: make([][]Neighbor, len(faces)),
	}
	nv := int32(len(vertices))
	for i, f := range faces {
		for _, v := range f {
			if v < 0 || v >= nv {
				return nil, fmt.Errorf("%w: face %d vertex %d, %d vertices", ErrVertexRange, i, v, nv)
			}
		}
		m.Faces[i] = newFace(m.Vertices, f)
	}

	if err := m.link(cfg); err != nil {
		return nil, err
	}
	if err := m.weigh(cfg); err != nil {
		return nil, err
	}

	return m, nil
}

func newFace(vs []Vec3, ids [3]int32) Face {
	a, b, c := vs[ids[0]], vs[ids[1]], vs[ids[2]]
	n := b.Sub(a).Cross(c.Sub(a))
	if l := n.Norm(); l >= 1e-12 {
		n = n.Scale(1 / l)
	}

	return Face{
		V:      ids,
		Center: a.Add(b).Add(c).Scale(1.0 / 3),
		Normal: n,
	}
}

// link pairs faces through shared edges. The first face seen on an edge is
// linked to every later face on the same edge.
func (m *Mesh) link(cfg Options) error {
	first := make(map[[2]int32]int32, len(m.Faces)*3/2)
	for i, f := range m.Faces {
		fid := int32(i)
		for j := 0; j < 3; j++ {
			a, b := f.V[j], f.V[(j+1)%3]
			if a == b {
				continue
			}
			if a > b {
				a, b = b, a
			}
			key := [2]int32{a, b}
			other, ok := first[key]
			if !ok {
				first[key] = fid
				continue
			}
			nb := m.measure(other, fid, key, cfg)
			m.Neighbors[other] = append(m.Neighbors[other], nb)
			nb.Face = other
			m.Neighbors[fid] = append(m.Neighbors[fid], nb)

			for _, x := range [2]int32{other, fid} {
				if len(m.Neighbors[x]) > Degree {
					return fmt.Errorf("%w: face %d", ErrNonManifold, x)
				}
			}
		}
	}

	return nil
}

// measure computes the raw angular and geodesic terms between faces f0 and
// f1 sharing the edge e. The returned Neighbor points at f1.
func (m *Mesh) measure(f0, f1 int32, e [2]int32, cfg Options) Neighbor {
	a, b := m.Faces[f0], m.Faces[f1]
	cos := clamp(a.Normal.Dot(b.Normal))

	convex := a.Normal.Dot(b.Center.Sub(a.Center)) < convexEps
	eta := cfg.ConcaveEta
	if convex {
		eta = cfg.ConvexEta
	}

	// Unfold both faces into one plane about the shared edge; the centroid
	// distance then follows from the law of cosines.
	e0, e1 := m.Vertices[e[0]], m.Vertices[e[1]]
	axis := e1.Sub(e0)
	d0, d1 := a.Center.Sub(e0), b.Center.Sub(e0)
	l0, l1 := d0.Norm(), d1.Norm()
	theta := angleBetween(d0, axis) + angleBetween(d1, axis)
	geo := l0*l0 + l1*l1 - 2*l0*l1*math.Cos(theta)

	return Neighbor{
		Face:    f1,
		Edge:    e,
		Convex:  convex,
		Angle:   math.Acos(cos),
		AngDist: eta * (1 - cos),
		GeoDist: math.Max(geo, 0),
	}
}

// weigh normalizes both terms by their mesh-wide mean and blends them.
// A term whose mean is zero (e.g. the angular term of a flat mesh) adds nothing.
// A mean or weight that is not finite fails with ErrDegenerate.
func (m *Mesh) weigh(cfg Options) error {
	var sumAng, sumGeo float64
	count := 0
	for _, nbs := range m.Neighbors {
		for _, nb := range nbs {
			sumAng += nb.AngDist
			sumGeo += nb.GeoDist
			count++
		}
	}
	if count == 0 {
		return nil
	}
	avgAng, avgGeo := sumAng/float64(count), sumGeo/float64(count)
	if !finite(avgAng) || !finite(avgGeo) {
		return fmt.Errorf("%w: mean angular=%g geodesic=%g", ErrDegenerate, avgAng, avgGeo)
	}
	m.AvgAngDist = avgAng

	for f, nbs := range m.Neighbors {
		for j := range nbs {
			w := 0.0
			if avgAng > 0 {
				w += (1 - cfg.Delta) * nbs[j].AngDist / avgAng
			}
			if avgGeo > 0 {
				w += cfg.Delta * nbs[j].GeoDist / avgGeo
			}
			if !finite(w) {
				return fmt.Errorf("%w: face %d neighbor %d weight=%g", ErrDegenerate, f, nbs[j].Face, w)
			}
			nbs[j].Weight = w
		}
	}

	return nil
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// Table exports the face adjacency as a K=3 table. Boundary faces pad their
// missing slots with table.NoNeighbor.
func (m *Mesh) Table() (*table.Fixed, error) {
	n := len(m.Faces)
	ids := make([]int32, n*Degree)
	weights := make([]float64, n*Degree)
	for f, nbs := range m.Neighbors {
		for j := 0; j < Degree; j++ {
			slot := f*Degree + j
			if j >= len(nbs) {
				ids[slot] = table.NoNeighbor
				continue
			}
			ids[slot] = nbs[j].Face
			weights[slot] = nbs[j].Weight
		}
	}

	return table.NewFixed(Degree, ids, weights)
}

// Closed reports whether every face has exactly three neighbors.
func (m *Mesh) Closed() bool {
	for _, nbs := range m.Neighbors {
		if len(nbs) != Degree {
			return false
		}
	}
	return true
}
