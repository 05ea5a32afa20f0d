package metrics_test

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/meshgeo/metrics"
)

func TestBasic_Snapshot(t *testing.T) {
	var b metrics.Basic
	b.Observe(metrics.EngineFast, 4, 4, 2*time.Millisecond, nil)
	b.Observe(metrics.EngineReference, 4, 3, 4*time.Millisecond, errors.New("boom"))

	s := b.Snapshot()
	require.Equal(t, int64(2), s.Calls)
	require.Equal(t, int64(1), s.Errors)
	require.Equal(t, int64(7), s.SettledNodes)
	require.Equal(t, 6*time.Millisecond, s.Total)
	require.Equal(t, 3*time.Millisecond, s.Mean())
}

func TestBasic_Concurrent(t *testing.T) {
	var b metrics.Basic
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			b.Observe(metrics.EngineFast, 1, 1, time.Microsecond, nil)
		}()
	}
	wg.Wait()
	require.Equal(t, int64(50), b.Snapshot().Calls)
}

func TestStats_MeanEmpty(t *testing.T) {
	require.Zero(t, metrics.Stats{}.Mean())
}

func TestPrometheus_Observe(t *testing.T) {
	reg := prometheus.NewRegistry()
	p, err := metrics.NewPrometheus(reg, "meshgeo")
	require.NoError(t, err)

	p.Observe(metrics.EngineFast, 10, 10, time.Millisecond, nil)
	p.Observe(metrics.EngineFast, 10, 6, time.Millisecond, nil)
	p.Observe(metrics.EngineReference, 10, 0, time.Millisecond, errors.New("bad start"))

	n, err := testutil.GatherAndCount(reg, "meshgeo_shortest_path_duration_seconds")
	require.NoError(t, err)
	require.Equal(t, 2, n) // fast/success and reference/error series

	n, err = testutil.GatherAndCount(reg, "meshgeo_settled_nodes_total")
	require.NoError(t, err)
	require.Equal(t, 2, n)

	_, err = metrics.NewPrometheus(reg, "meshgeo")
	require.Error(t, err, "duplicate registration must fail")
}
