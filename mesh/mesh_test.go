package mesh_test

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/meshgeo/dijkstra"
	"github.com/katalvlaran/meshgeo/mesh"
	"github.com/katalvlaran/meshgeo/table"
)

// tetraPLY is a unit tetrahedron with outward-facing triangles.
const tetraPLY = `ply
format ascii 1.0
comment unit tetrahedron
element vertex 4
property float x
property float y
property float z
element face 4
property list uchar int vertex_indices
end_header
0 0 0
1 0 0
0 1 0
0 0 1
3 0 2 1
3 0 1 3
3 0 3 2
3 1 2 3
`

// square is the unit square split along its 0-2 diagonal.
func square(t *testing.T, opts ...mesh.Option) *mesh.Mesh {
	t.Helper()
	m, err := mesh.Build(
		[]mesh.Vec3{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}},
		[][3]int32{{0, 1, 2}, {0, 2, 3}},
		opts...,
	)
	require.NoError(t, err)
	return m
}

func TestReadPLY_Tetrahedron(t *testing.T) {
	m, err := mesh.ReadPLY(strings.NewReader(tetraPLY))
	require.NoError(t, err)
	require.Len(t, m.Vertices, 4)
	require.Len(t, m.Faces, 4)
	require.True(t, m.Closed())

	for f, nbs := range m.Neighbors {
		require.Len(t, nbs, 3, "face %d", f)
		for _, nb := range nbs {
			require.True(t, nb.Convex, "tetrahedron edges are convex")
			require.Greater(t, nb.Weight, 0.0)
			require.InDelta(t, 0.2*(1-m.Faces[f].Normal.Dot(m.Faces[nb.Face].Normal)), nb.AngDist, 1e-12)
		}
	}

	tbl, err := m.Table()
	require.NoError(t, err)
	require.Equal(t, 4, tbl.Len())
	require.Equal(t, mesh.Degree, tbl.Degree())

	// Edge weights are shared by both faces, so the matrix is symmetric.
	d, err := dijkstra.AllPairs(context.Background(), tbl)
	require.NoError(t, err)
	for i := range d {
		require.Equal(t, 0.0, d[i][i])
		for j := range d {
			require.InDelta(t, d[i][j], d[j][i], 1e-12)
		}
	}
}

func TestBuild_FlatSquare(t *testing.T) {
	m := square(t)
	require.False(t, m.Closed())

	nb := m.Neighbors[0][0]
	require.Equal(t, int32(1), nb.Face)
	require.Equal(t, [2]int32{0, 2}, nb.Edge)
	require.InDelta(t, 0, nb.Angle, 1e-9)
	require.InDelta(t, 2.0/9, nb.GeoDist, 1e-12)
	// Flat mesh: the angular mean is zero and only the geodesic term counts.
	require.InDelta(t, 0.8, nb.Weight, 1e-12)

	tbl, err := m.Table()
	require.NoError(t, err)
	ids, ws := tbl.Row(1)
	require.Equal(t, []int32{0, table.NoNeighbor, table.NoNeighbor}, ids)
	require.InDelta(t, 0.8, ws[0], 1e-12)
}

func TestBuild_DeltaOption(t *testing.T) {
	m := square(t, mesh.WithDelta(0.5))
	require.InDelta(t, 0.5, m.Neighbors[0][0].Weight, 1e-12)
}

func TestBuild_ConcaveFold(t *testing.T) {
	// Two triangles hinged on the x axis, the second folded upward toward
	// the first face's normal.
	m, err := mesh.Build(
		[]mesh.Vec3{{0, 0, 0}, {1, 0, 0}, {0.5, 1, 0}, {0.5, -1, 1}},
		[][3]int32{{0, 1, 2}, {1, 0, 3}},
		mesh.WithConcaveEta(2),
	)
	require.NoError(t, err)
	nb := m.Neighbors[0][0]
	require.False(t, nb.Convex)
	require.InDelta(t, 2*(1-m.Faces[0].Normal.Dot(m.Faces[1].Normal)), nb.AngDist, 1e-12)
}

func TestBuild_Errors(t *testing.T) {
	vs := []mesh.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}

	_, err := mesh.Build(vs, nil)
	require.ErrorIs(t, err, mesh.ErrEmptyMesh)

	_, err = mesh.Build(vs, [][3]int32{{0, 1, 7}})
	require.ErrorIs(t, err, mesh.ErrVertexRange)

	// Five faces fanned around edge 0-1: the first one collects four neighbors.
	fan := []mesh.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, -1, 0}, {0, 0, 1}, {0, 0, -1}, {0, 1, 1}}
	_, err = mesh.Build(fan, [][3]int32{{0, 1, 2}, {0, 1, 3}, {0, 1, 4}, {0, 1, 5}, {0, 1, 6}})
	require.ErrorIs(t, err, mesh.ErrNonManifold)
}

func TestReadPLY_Errors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want error
	}{
		{"NoMagic", "plx\n", mesh.ErrBadHeader},
		{"Binary", "ply\nformat binary_little_endian 1.0\nend_header\n", mesh.ErrBadHeader},
		{"NoEndHeader", "ply\nformat ascii 1.0\nelement vertex 0\n", mesh.ErrBadHeader},
		{"BadCount", "ply\nformat ascii 1.0\nelement vertex x\nend_header\n", mesh.ErrBadHeader},
		{"Truncated", "ply\nformat ascii 1.0\nelement vertex 2\nend_header\n0 0 0\n", mesh.ErrSyntax},
		{"BadFloat", "ply\nformat ascii 1.0\nelement vertex 1\nend_header\n0 zero 0\n", mesh.ErrSyntax},
		{"Quad", "ply\nformat ascii 1.0\nelement vertex 4\nelement face 1\nend_header\n0 0 0\n1 0 0\n1 1 0\n0 1 0\n4 0 1 2 3\n", mesh.ErrNotTriangle},
		{"NoFaces", "ply\nformat ascii 1.0\nelement vertex 1\nelement face 0\nend_header\n0 0 0\n", mesh.ErrEmptyMesh},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := mesh.ReadPLY(strings.NewReader(tc.src))
			require.Truef(t, errors.Is(err, tc.want), "got %v, want %v", err, tc.want)
		})
	}
}

func TestReadPLY_NonFiniteVertex(t *testing.T) {
	for _, bad := range []string{"nan", "NaN", "inf", "-Inf"} {
		t.Run(bad, func(t *testing.T) {
			src := strings.Replace(tetraPLY, "0 0 0\n", bad+" 0 0\n", 1)
			_, err := mesh.ReadPLY(strings.NewReader(src))
			require.ErrorIs(t, err, mesh.ErrBadVertex)
		})
	}
}

func TestBuild_NonFiniteVertex(t *testing.T) {
	vs := []mesh.Vec3{{math.NaN(), 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	_, err := mesh.Build(vs, [][3]int32{{0, 2, 1}, {0, 1, 3}, {0, 3, 2}, {1, 2, 3}})
	require.ErrorIs(t, err, mesh.ErrBadVertex)

	vs[0] = mesh.Vec3{0, math.Inf(1), 0}
	_, err = mesh.Build(vs, [][3]int32{{0, 2, 1}})
	require.ErrorIs(t, err, mesh.ErrBadVertex)
}

func TestBuild_OverflowingMetric(t *testing.T) {
	// Finite coordinates whose squared centroid distances overflow float64.
	const big = 1e200
	_, err := mesh.Build(
		[]mesh.Vec3{{0, 0, 0}, {big, 0, 0}, {big, big, 0}, {0, big, 0}},
		[][3]int32{{0, 1, 2}, {0, 2, 3}},
	)
	require.ErrorIs(t, err, mesh.ErrDegenerate)
}

func TestBuild_AvgAngDist(t *testing.T) {
	require.Zero(t, square(t).AvgAngDist)

	m, err := mesh.ReadPLY(strings.NewReader(tetraPLY))
	require.NoError(t, err)
	var sum float64
	count := 0
	for _, nbs := range m.Neighbors {
		for _, nb := range nbs {
			sum += nb.AngDist
			count++
		}
	}
	require.InDelta(t, sum/float64(count), m.AvgAngDist, 1e-12)
}

func TestReadPLY_SkipsUnknownElements(t *testing.T) {
	src := "ply\nformat ascii 1.0\nelement vertex 3\nelement material 2\nelement face 1\nend_header\n" +
		"0 0 0\n1 0 0\n0 1 0\nred\nblue\n3 0 1 2\n"
	m, err := mesh.ReadPLY(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, m.Faces, 1)
	require.Empty(t, m.Neighbors[0])
}

func TestOptions_Panics(t *testing.T) {
	require.Panics(t, func() { mesh.WithDelta(1.5) })
	require.Panics(t, func() { mesh.WithDelta(-0.1) })
	require.Panics(t, func() { mesh.WithConvexEta(-1) })
	require.Panics(t, func() { mesh.WithConcaveEta(-1) })
}
