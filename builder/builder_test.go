package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/meshgeo/builder"
	"github.com/katalvlaran/meshgeo/table"
)

func TestRing(t *testing.T) {
	tbl, err := builder.Ring(4)
	require.NoError(t, err)
	require.Equal(t, 4, tbl.Len())
	require.Equal(t, 3, tbl.Degree())

	ids, ws := tbl.Row(0)
	require.Equal(t, []int32{1, 3, table.NoNeighbor}, ids)
	require.Equal(t, []float64{1, 1, 0}, ws)
}

func TestRing_SymmetricWeights(t *testing.T) {
	tbl, err := builder.Ring(6, builder.WithDegree(2), builder.WithSeed(3),
		builder.WithWeightFn(func(r *rand.Rand) float64 { return r.Float64() }))
	require.NoError(t, err)

	for u := 0; u < tbl.Len(); u++ {
		ids, ws := tbl.Row(u)
		next := int(ids[0])
		nextIDs, nextWs := tbl.Row(next)
		require.Equal(t, int32(u), nextIDs[1])
		require.Equal(t, ws[0], nextWs[1])
	}
}

func TestStar(t *testing.T) {
	tbl, err := builder.Star([]float64{5, 10, 15})
	require.NoError(t, err)
	require.Equal(t, 4, tbl.Len())

	ids, ws := tbl.Row(0)
	require.Equal(t, []int32{1, 2, 3}, ids)
	require.Equal(t, []float64{5, 10, 15}, ws)

	ids, ws = tbl.Row(2)
	require.Equal(t, []int32{0, table.NoNeighbor, table.NoNeighbor}, ids)
	require.Equal(t, 10.0, ws[0])
}

func TestRandom_Deterministic(t *testing.T) {
	a, err := builder.Random(50, builder.WithSeed(9), builder.WithPadProb(0.3))
	require.NoError(t, err)
	b, err := builder.Random(50, builder.WithSeed(9), builder.WithPadProb(0.3))
	require.NoError(t, err)

	for u := 0; u < a.Len(); u++ {
		ai, aw := a.Row(u)
		bi, bw := b.Row(u)
		require.Equal(t, ai, bi)
		require.Equal(t, aw, bw)
	}
}

func TestConstructors_Errors(t *testing.T) {
	_, err := builder.Ring(2)
	require.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.Ring(5, builder.WithDegree(1))
	require.ErrorIs(t, err, builder.ErrDegreeTooSmall)

	_, err = builder.Star(nil)
	require.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.Star([]float64{1, 2, 3, 4})
	require.ErrorIs(t, err, builder.ErrDegreeTooSmall)

	_, err = builder.Random(0, builder.WithSeed(1))
	require.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.Random(10)
	require.ErrorIs(t, err, builder.ErrNeedRandSource)

	_, err = builder.Random(3, builder.WithSeed(1),
		builder.WithWeightFn(func(*rand.Rand) float64 { return -1 }))
	require.ErrorIs(t, err, table.ErrNegativeWeight)
}

func TestOptions_Panics(t *testing.T) {
	require.Panics(t, func() { builder.WithDegree(0) })
	require.Panics(t, func() { builder.WithRand(nil) })
	require.Panics(t, func() { builder.WithWeightFn(nil) })
	require.Panics(t, func() { builder.WithPadProb(1.5) })
}
