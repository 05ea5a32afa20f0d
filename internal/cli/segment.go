package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/meshgeo/dijkstra"
	"github.com/katalvlaran/meshgeo/mesh"
	"github.com/katalvlaran/meshgeo/metrics"
	"github.com/katalvlaran/meshgeo/segment"
)

type segmentOpts struct {
	output   string
	matrix   string
	compress string
	classes  int
	workers  int
}

func newSegmentCmd(flags *rootFlags) *cobra.Command {
	opts := &segmentOpts{}
	cmd := &cobra.Command{
		Use:   "segment <mesh.ply>",
		Short: "Split the mesh into patches and write a colored PLY",
		Long: `Splits the faces of the mesh into patches whose boundaries follow creases,
and writes the mesh with one color per patch.

The face-to-face distances are computed on the fly, or read from a matrix
previously written by "allpairs" (--matrix, with the same --compress).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags.configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("compress") {
				cfg.Compress = opts.compress
			}
			if cmd.Flags().Changed("workers") {
				cfg.Workers = opts.workers
			}
			if cmd.Flags().Changed("classes") {
				cfg.Classes = opts.classes
			}
			if err := cfg.validate(); err != nil {
				return err
			}
			return runSegment(cmd, args[0], cfg, opts)
		},
	}
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output PLY file (required)")
	cmd.Flags().StringVar(&opts.matrix, "matrix", "", "distance matrix written by allpairs (default: compute)")
	cmd.Flags().StringVar(&opts.compress, "compress", string(codecNone), "compression of --matrix: none, zstd or lz4")
	cmd.Flags().IntVarP(&opts.classes, "classes", "k", 0, "number of patches (default: config, else 2)")
	cmd.Flags().IntVarP(&opts.workers, "workers", "w", 0, "concurrent queries (default: config, else GOMAXPROCS)")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}

func runSegment(cmd *cobra.Command, path string, cfg Config, opts *segmentOpts) (err error) {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	m, err := loadMesh(ctx, path, cfg)
	if err != nil {
		return err
	}
	dist, err := faceDistances(ctx, m, cfg, opts.matrix)
	if err != nil {
		return err
	}

	p := newProgress(logger)
	res, err := segment.Run(ctx, m, dist, segment.WithClasses(cfg.Classes))
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	p.done("Segmented mesh", "classes", cfg.Classes, "fuzzy", res.Fuzzy, "iterations", res.Iterations)
	logger.Debug("Patch seeds", "seeds", res.Seeds)

	f, err := os.Create(opts.output)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	if err := mesh.WritePLY(f, m, res.Labels); err != nil {
		return fmt.Errorf("write %s: %w", opts.output, err)
	}
	logger.Info("Wrote segmented mesh", "path", opts.output)

	return nil
}

// faceDistances reads the matrix at matrixPath, or computes it when the
// path is empty.
func faceDistances(ctx context.Context, m *mesh.Mesh, cfg Config, matrixPath string) ([][]float64, error) {
	logger := loggerFromContext(ctx)
	p := newProgress(logger)

	if matrixPath != "" {
		c, err := parseCodec(cfg.Compress)
		if err != nil {
			return nil, err
		}
		f, err := os.Open(matrixPath)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		dist, err := readMatrix(f, c, len(m.Faces))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", matrixPath, err)
		}
		p.done("Read distance matrix", "path", matrixPath)
		return dist, nil
	}

	t, err := m.Table()
	if err != nil {
		return nil, err
	}
	var col metrics.Basic
	dist, err := dijkstra.AllPairs(ctx, t, dijkstra.WithWorkers(cfg.Workers), dijkstra.WithCollector(&col))
	if err != nil {
		return nil, err
	}
	p.done("Computed distance matrix", "faces", t.Len(), "workers", cfg.Workers)
	logTimings(ctx, metrics.EngineFast, &col)

	return dist, nil
}
