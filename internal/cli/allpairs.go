package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

type allPairsOpts struct {
	output   string
	compress string
	workers  int
}

func newAllPairsCmd(flags *rootFlags) *cobra.Command {
	opts := &allPairsOpts{}
	cmd := &cobra.Command{
		Use:   "allpairs <mesh.ply>",
		Short: "Write the face-to-face distance matrix",
		Long: `Computes the distance from every face to every other face and writes the
N×N matrix as a uint32 N followed by N rows of little-endian float64,
optionally compressed with zstd or lz4.`,
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
			if err := cfg.validate(); err != nil {
				return err
			}
			return runAllPairs(cmd, args[0], cfg, opts.output)
		},
	}
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (required)")
	cmd.Flags().StringVar(&opts.compress, "compress", string(codecNone), "compression: none, zstd or lz4")
	cmd.Flags().IntVarP(&opts.workers, "workers", "w", 0, "concurrent queries (default: config, else GOMAXPROCS)")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}

func runAllPairs(cmd *cobra.Command, path string, cfg Config, output string) (err error) {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	c, err := parseCodec(cfg.Compress)
	if err != nil {
		return err
	}
	mm, err := loadMesh(ctx, path, cfg)
	if err != nil {
		return err
	}
	m, err := faceDistances(ctx, mm, cfg, "")
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	f, err := os.Create(output)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	if err := writeMatrix(f, m, c); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}
	logger.Info("Wrote matrix", "path", output, "compress", c)

	return nil
}
