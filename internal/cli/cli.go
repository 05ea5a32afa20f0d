// Package cli implements the meshgeo command-line interface.
//
// The commands load an ASCII PLY triangle mesh, turn its face adjacency into
// a fixed-degree table, and run the shortest-distance engines on it:
//
//   - distances: distances from one start face, one line per face
//   - allpairs:  the full face-to-face matrix, computed concurrently
//   - check:     cross-validates the fast engine against the reference one
//   - segment:   splits the mesh into patches and writes a colored PLY
//
// Every command accepts --config (TOML defaults, see Config) and --verbose.
// The logger travels in the command context and tags every line with a
// per-invocation run id.
package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/meshgeo/mesh"
	"github.com/katalvlaran/meshgeo/metrics"
	"github.com/katalvlaran/meshgeo/table"
)

var version = "dev"

// SetVersion sets the string printed by --version.
func SetVersion(v string) { version = v }

// rootFlags are shared by every subcommand.
type rootFlags struct {
	configPath string
	verbose    bool
}

// Execute builds the command tree and runs it with ctx.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

// NewRootCommand returns the meshgeo command with all subcommands attached.
func NewRootCommand() *cobra.Command {
	flags := &rootFlags{}
	root := &cobra.Command{
		Use:           "meshgeo",
		Short:         "Shortest distances across the faces of a triangle mesh",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if flags.verbose {
				level = charmlog.DebugLevel
			}
			logger := newLogger(cmd.ErrOrStderr(), level).With("run", uuid.NewString())
			cmd.SetContext(withLogger(cmd.Context(), logger))
		},
	}
	root.PersistentFlags().StringVar(&flags.configPath, "config", "", "TOML file with default settings")
	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newDistancesCmd(flags))
	root.AddCommand(newAllPairsCmd(flags))
	root.AddCommand(newCheckCmd(flags))
	root.AddCommand(newSegmentCmd(flags))

	return root
}

// loadMesh reads and links the mesh at path.
func loadMesh(ctx context.Context, path string, cfg Config) (*mesh.Mesh, error) {
	logger := loggerFromContext(ctx)
	p := newProgress(logger)

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := mesh.ReadPLY(f, cfg.meshOptions()...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if !m.Closed() {
		logger.Warn("Mesh has boundary faces; missing neighbors are padded", "path", path)
	}
	p.done("Loaded mesh", "faces", len(m.Faces), "vertices", len(m.Vertices))

	return m, nil
}

// loadTable reads the mesh at path and exports its K=3 table.
func loadTable(ctx context.Context, path string, cfg Config) (*table.Fixed, error) {
	m, err := loadMesh(ctx, path, cfg)
	if err != nil {
		return nil, err
	}
	t, err := m.Table()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return t, nil
}

// logTimings reports a collector's totals at debug level.
func logTimings(ctx context.Context, engine string, c *metrics.Basic) {
	s := c.Snapshot()
	loggerFromContext(ctx).Debug("Engine timings",
		"engine", engine, "calls", s.Calls, "errors", s.Errors, "mean", s.Mean(), "total", s.Total)
}
