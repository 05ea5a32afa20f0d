package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/meshgeo/mesh"
)

const tetraPLY = `ply
format ascii 1.0
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

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// run executes the root command and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := NewRootCommand()
	root.SetArgs(args)
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	err := root.ExecuteContext(context.Background())
	return stdout.String(), err
}

func TestDistancesCommand(t *testing.T) {
	ply := writeFile(t, "tetra.ply", tetraPLY)

	out, err := run(t, "distances", ply, "--start", "2")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	require.Equal(t, "2\t0", lines[2])

	ref, err := run(t, "distances", ply, "--start", "2", "--engine", "reference")
	require.NoError(t, err)
	require.Equal(t, out, ref)
}

func TestDistancesCommand_Errors(t *testing.T) {
	ply := writeFile(t, "tetra.ply", tetraPLY)

	_, err := run(t, "distances", ply, "--start", "9")
	require.Error(t, err)

	_, err = run(t, "distances", ply, "--engine", "bogus")
	require.ErrorContains(t, err, "unknown engine")

	_, err = run(t, "distances", filepath.Join(t.TempDir(), "missing.ply"))
	require.Error(t, err)
}

func TestCheckCommand(t *testing.T) {
	ply := writeFile(t, "tetra.ply", tetraPLY)

	out, err := run(t, "check", ply)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "ok: 4 starts"), out)

	out, err = run(t, "check", ply, "--starts", "1,3", "-v")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "ok: 2 starts"), out)
}

func TestAllPairsCommand(t *testing.T) {
	ply := writeFile(t, "tetra.ply", tetraPLY)

	for _, c := range []codec{codecNone, codecZstd, codecLZ4} {
		t.Run(string(c), func(t *testing.T) {
			dst := filepath.Join(t.TempDir(), "matrix.bin")
			_, err := run(t, "allpairs", ply, "-o", dst, "--compress", string(c), "-w", "2")
			require.NoError(t, err)

			f, err := os.Open(dst)
			require.NoError(t, err)
			defer f.Close()

			m, err := readMatrix(f, c, 4)
			require.NoError(t, err)
			require.Len(t, m, 4)
			for i := range m {
				require.Equal(t, 0.0, m[i][i])
				for j := range m {
					require.InDelta(t, m[i][j], m[j][i], 1e-12)
				}
			}
		})
	}
}

func TestAllPairsCommand_ConfigFile(t *testing.T) {
	ply := writeFile(t, "tetra.ply", tetraPLY)
	cfg := writeFile(t, "meshgeo.toml", "delta = 0.5\ncompress = \"zstd\"\nworkers = 2\n")
	dst := filepath.Join(t.TempDir(), "matrix.zst")

	_, err := run(t, "allpairs", ply, "-o", dst, "--config", cfg)
	require.NoError(t, err)

	f, err := os.Open(dst)
	require.NoError(t, err)
	defer f.Close()
	m, err := readMatrix(f, codecZstd, 4)
	require.NoError(t, err)
	require.Len(t, m, 4)
}

func TestAllPairsCommand_RequiresOutput(t *testing.T) {
	ply := writeFile(t, "tetra.ply", tetraPLY)
	_, err := run(t, "allpairs", ply)
	require.Error(t, err)
}

func TestLoadConfig(t *testing.T) {
	cfg, err := loadConfig("")
	require.NoError(t, err)
	require.Equal(t, defaultConfig(), cfg)

	path := writeFile(t, "ok.toml", "convex_eta = 0.1\nconcave_eta = 2.0\n")
	cfg, err = loadConfig(path)
	require.NoError(t, err)
	require.Equal(t, 0.1, cfg.ConvexEta)
	require.Equal(t, 2.0, cfg.ConcaveEta)
	require.Equal(t, 0.8, cfg.Delta)

	_, err = loadConfig(writeFile(t, "unknown.toml", "deltaa = 0.5\n"))
	require.ErrorContains(t, err, "unknown keys")

	_, err = loadConfig(writeFile(t, "range.toml", "delta = 2.0\n"))
	require.ErrorContains(t, err, "delta")

	_, err = loadConfig(writeFile(t, "codec.toml", "compress = \"gzip\"\n"))
	require.ErrorContains(t, err, "unknown compression")

	_, err = loadConfig(writeFile(t, "workers.toml", "workers = 0\n"))
	require.ErrorContains(t, err, "workers")

	_, err = loadConfig(writeFile(t, "classes.toml", "classes = 1\n"))
	require.ErrorContains(t, err, "classes")
}

func TestMatrixRoundTrip_RejectsRagged(t *testing.T) {
	var buf bytes.Buffer
	err := writeMatrix(&buf, [][]float64{{0, 1}, {1}}, codecNone)
	require.Error(t, err)
}

// A header that disagrees with the mesh is rejected before any row is read.
func TestReadMatrix_SizeMismatch(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeMatrix(&buf, [][]float64{{0, 1}, {1, 0}}, codecNone))

	_, err := readMatrix(bytes.NewReader(buf.Bytes()), codecNone, 4)
	require.ErrorContains(t, err, "matrix holds 2 faces, mesh has 4")

	m, err := readMatrix(bytes.NewReader(buf.Bytes()), codecNone, 2)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{0, 1}, {1, 0}}, m)
}

func TestSegmentCommand(t *testing.T) {
	ply := writeFile(t, "tetra.ply", tetraPLY)
	dir := t.TempDir()

	computed := filepath.Join(dir, "computed.ply")
	_, err := run(t, "segment", ply, "-o", computed, "-w", "2")
	require.NoError(t, err)

	matrix := filepath.Join(dir, "matrix.zst")
	_, err = run(t, "allpairs", ply, "-o", matrix, "--compress", "zstd")
	require.NoError(t, err)
	fromMatrix := filepath.Join(dir, "matrix.ply")
	_, err = run(t, "segment", ply, "-o", fromMatrix, "--matrix", matrix, "--compress", "zstd")
	require.NoError(t, err)

	a, err := os.ReadFile(computed)
	require.NoError(t, err)
	b, err := os.ReadFile(fromMatrix)
	require.NoError(t, err)
	require.Equal(t, string(a), string(b))
	require.Contains(t, string(a), "property uchar red")

	m, err := mesh.ReadPLY(bytes.NewReader(a))
	require.NoError(t, err)
	require.Len(t, m.Faces, 4)
}

func TestSegmentCommand_Errors(t *testing.T) {
	ply := writeFile(t, "tetra.ply", tetraPLY)
	dst := filepath.Join(t.TempDir(), "out.ply")

	_, err := run(t, "segment", ply)
	require.Error(t, err, "--output is required")

	_, err = run(t, "segment", ply, "-o", dst, "-k", "1")
	require.ErrorContains(t, err, "classes")

	_, err = run(t, "segment", ply, "-o", dst, "-k", "5")
	require.Error(t, err)

	var buf bytes.Buffer
	require.NoError(t, writeMatrix(&buf, [][]float64{{0, 1}, {1, 0}}, codecNone))
	small := writeFile(t, "small.bin", buf.String())
	_, err = run(t, "segment", ply, "-o", dst, "--matrix", small)
	require.ErrorContains(t, err, "mesh has 4")
}
