package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/meshgeo/dijkstra"
	"github.com/katalvlaran/meshgeo/metrics"
)

type checkOpts struct {
	starts []int
	tol    float64
}

func newCheckCmd(flags *rootFlags) *cobra.Command {
	opts := &checkOpts{}
	cmd := &cobra.Command{
		Use:   "check <mesh.ply>",
		Short: "Cross-validate the fast engine against the reference engine",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags.configPath)
			if err != nil {
				return err
			}
			return runCheck(cmd, args[0], cfg, opts)
		},
	}
	cmd.Flags().IntSliceVar(&opts.starts, "starts", nil, "start faces to check (default: every face)")
	cmd.Flags().Float64Var(&opts.tol, "tol", 1e-9, "absolute tolerance")

	return cmd
}

func runCheck(cmd *cobra.Command, path string, cfg Config, opts *checkOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	t, err := loadTable(ctx, path, cfg)
	if err != nil {
		return err
	}
	starts := opts.starts
	if len(starts) == 0 {
		starts = make([]int, t.Len())
		for i := range starts {
			starts[i] = i
		}
	}

	var fastCol, refCol metrics.Basic
	ragged := t.Ragged()
	p := newProgress(logger)
	for _, s := range starts {
		if err := ctx.Err(); err != nil {
			return err
		}
		fast, err := dijkstra.Fast(t, s, dijkstra.WithNegated(), dijkstra.WithCollector(&fastCol))
		if err != nil {
			return err
		}
		ref, err := dijkstra.Reference(ragged, s, dijkstra.WithCollector(&refCol))
		if err != nil {
			return err
		}
		dijkstra.Negate(ref.Dist)
		if err := dijkstra.Compare(fast.Dist, ref.Dist, opts.tol); err != nil {
			return fmt.Errorf("start %d: %w", s, err)
		}
		logger.Debug("Engines agree", "start", s, "settled", ref.Visited)
	}
	p.done("Engines agree", "starts", len(starts))
	logTimings(ctx, metrics.EngineFast, &fastCol)
	logTimings(ctx, metrics.EngineReference, &refCol)
	fmt.Fprintf(cmd.OutOrStdout(), "ok: %d starts, fast mean %s, reference mean %s\n",
		len(starts), fastCol.Snapshot().Mean(), refCol.Snapshot().Mean())

	return nil
}
