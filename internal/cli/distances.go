package cli

import (
	"bufio"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/meshgeo/dijkstra"
	"github.com/katalvlaran/meshgeo/metrics"
)

type distancesOpts struct {
	start  int
	engine string
}

func newDistancesCmd(flags *rootFlags) *cobra.Command {
	opts := &distancesOpts{}
	cmd := &cobra.Command{
		Use:   "distances <mesh.ply>",
		Short: "Print the distance from one start face to every face",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags.configPath)
			if err != nil {
				return err
			}
			return runDistances(cmd, args[0], cfg, opts)
		},
	}
	cmd.Flags().IntVarP(&opts.start, "start", "s", 0, "start face id")
	cmd.Flags().StringVar(&opts.engine, "engine", metrics.EngineFast, "engine: fast or reference")

	return cmd
}

func runDistances(cmd *cobra.Command, path string, cfg Config, opts *distancesOpts) error {
	ctx := cmd.Context()
	t, err := loadTable(ctx, path, cfg)
	if err != nil {
		return err
	}

	var c metrics.Basic
	var res *dijkstra.Result
	switch opts.engine {
	case metrics.EngineFast:
		res, err = dijkstra.Fast(t, opts.start, dijkstra.WithCollector(&c))
	case metrics.EngineReference:
		res, err = dijkstra.Reference(t.Ragged(), opts.start, dijkstra.WithCollector(&c))
	default:
		return fmt.Errorf("unknown engine %q (want fast or reference)", opts.engine)
	}
	if err != nil {
		return err
	}
	logTimings(ctx, opts.engine, &c)
	if !res.Connected() {
		loggerFromContext(ctx).Warn("Some faces are unreachable", "start", opts.start, "unreached", t.Len()-res.Visited)
	}

	w := bufio.NewWriter(cmd.OutOrStdout())
	for i, d := range res.Dist {
		fmt.Fprintf(w, "%d\t%s\n", i, strconv.FormatFloat(d, 'g', -1, 64))
	}

	return w.Flush()
}
