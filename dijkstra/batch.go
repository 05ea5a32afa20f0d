package dijkstra

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/meshgeo/table"
)

// Many runs one Fast query per start on a bounded pool of goroutines and
// returns the distance vectors in the order of starts.
//
// Each query owns its working state; t is only read. Every start is checked
// before any query runs, so an invalid start fails the whole batch with no
// partial result. ctx is consulted between queries, never inside one.
// Options apply to every query (WithNegated, WithCollector), and
// WithWorkers bounds the number of queries in flight.
func Many(ctx context.Context, t *table.Fixed, starts []int, opts ...Option) ([][]float64, error) {
	if t == nil {
		return nil, ErrNilTable
	}
	for _, s := range starts {
		if err := t.CheckStart(s); err != nil {
			return nil, err
		}
	}
	cfg := buildOptions(opts)

	out := make([][]float64, len(starts))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)
	for i, s := range starts {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := Fast(t, s, opts...)
			if err != nil {
				return err
			}
			out[i] = res.Dist
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

// AllPairs computes the full N×N distance matrix of t: row s holds the
// distances from node s. Equivalent to Many over 0..N-1.
func AllPairs(ctx context.Context, t *table.Fixed, opts ...Option) ([][]float64, error) {
	if t == nil {
		return nil, ErrNilTable
	}
	starts := make([]int, t.Len())
	for i := range starts {
		starts[i] = i
	}

	return Many(ctx, t, starts, opts...)
}
