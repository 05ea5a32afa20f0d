package dijkstra_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/meshgeo/dijkstra"
	"github.com/katalvlaran/meshgeo/metrics"
	"github.com/katalvlaran/meshgeo/table"
)

func TestMany_MatchesSingleQueries(t *testing.T) {
	tbl := randomFixed(rand.New(rand.NewSource(7)), 120, 3, 0.05)
	starts := []int{5, 0, 119, 5, 64}

	rows, err := dijkstra.Many(context.Background(), tbl, starts, dijkstra.WithWorkers(3))
	require.NoError(t, err)
	require.Len(t, rows, len(starts))

	for i, s := range starts {
		res, err := dijkstra.Fast(tbl, s)
		require.NoError(t, err)
		require.Equal(t, res.Dist, rows[i], "start %d", s)
	}
}

func TestAllPairs_RingIsSymmetric(t *testing.T) {
	var c metrics.Basic
	m, err := dijkstra.AllPairs(context.Background(), ringTable(t), dijkstra.WithCollector(&c))
	require.NoError(t, err)

	require.Equal(t, [][]float64{
		{0, 1, 2, 1},
		{1, 0, 1, 2},
		{2, 1, 0, 1},
		{1, 2, 1, 0},
	}, m)
	require.Equal(t, int64(4), c.Snapshot().Calls)
}

func TestMany_InvalidStartFailsWholeBatch(t *testing.T) {
	var c metrics.Basic
	_, err := dijkstra.Many(context.Background(), ringTable(t), []int{0, 1, 4}, dijkstra.WithCollector(&c))
	require.ErrorIs(t, err, table.ErrInvalidStart)
	require.Zero(t, c.Snapshot().Calls, "no query may run when a start is invalid")
}

func TestMany_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := dijkstra.Many(ctx, ringTable(t), []int{0, 1, 2})
	require.ErrorIs(t, err, context.Canceled)
}

func TestMany_NilTable(t *testing.T) {
	_, err := dijkstra.Many(context.Background(), nil, []int{0})
	require.ErrorIs(t, err, dijkstra.ErrNilTable)

	_, err = dijkstra.AllPairs(context.Background(), nil)
	require.ErrorIs(t, err, dijkstra.ErrNilTable)
}

func TestMany_EmptyStarts(t *testing.T) {
	rows, err := dijkstra.Many(context.Background(), ringTable(t), nil)
	require.NoError(t, err)
	require.Empty(t, rows)
}
