package segment

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/meshgeo/mesh"
)

// probEps keeps 1/d finite when a face sits at distance 0 from a seed.
const probEps = 1e-12

// Result is the outcome of one segmentation run.
//
// Labels     – patch id per face, in [0, Classes).
// Seeds      – representative face of each patch; a patch whose seed
// repeats a lower patch's seed stays empty.
// Fuzzy      – number of faces that were settled by a min cut.
// Iterations – seed refinement rounds performed.
type Result struct {
	Labels     []int
	Seeds      []int
	Fuzzy      int
	Iterations int
}

// Run splits the faces of m into patches.
//
// dist must be the face-to-face distance matrix of m, as returned by
// dijkstra.AllPairs on m.Table(). The algorithm:
//
//  1. Picks one seed per patch: the two most distant faces for two patches,
//     otherwise the most central face followed by greedy farthest-point
//     picks.
//  2. Refines the seeds. Each face belongs to every patch with a probability
//     proportional to its inverse distance; each seed moves to the face that
//     minimizes the probability-weighted distance to all faces. Refinement
//     stops when no seed improves, or after MaxIterations rounds.
//  3. Labels every face whose two best probabilities differ by more than
//     FuzzyMargin. Remaining faces form fuzzy regions between two patches;
//     each region is split along a minimum cut whose edge cost grows with
//     flatness, so boundaries follow creases.
//
// Returns ErrNilMesh, ErrShape, ErrDisconnected, ErrTooFewFaces or the
// context error. No partial result is returned.
//
// Complexity: O(I · k · F²) time for I refinement rounds, plus one
// Edmonds–Karp run per patch pair. Memory: O(k · F).
func Run(ctx context.Context, m *mesh.Mesh, dist [][]float64, opts ...Option) (*Result, error) {
	if m == nil {
		return nil, ErrNilMesh
	}
	cfg := buildOptions(opts)
	if err := checkMatrix(dist, len(m.Faces)); err != nil {
		return nil, err
	}
	if len(m.Faces) < cfg.Classes {
		return nil, fmt.Errorf("%w: %d faces, %d classes", ErrTooFewFaces, len(m.Faces), cfg.Classes)
	}

	s := newSegmenter(m, dist, cfg)
	s.seed()

	iter := 0
	for iter < cfg.MaxIterations {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		iter++
		s.computeProb()
		reps, cost := s.recomputeSeeds()
		if !s.improves(reps, cost) {
			break
		}
		s.setSeeds(reps)
	}

	s.recomputeSeeds()
	s.assign()
	fuzzy, err := s.resolveFuzzy(ctx)
	if err != nil {
		return nil, err
	}

	return &Result{
		Labels:     s.labels,
		Seeds:      s.reps,
		Fuzzy:      fuzzy,
		Iterations: iter,
	}, nil
}

func checkMatrix(dist [][]float64, faces int) error {
	if len(dist) != faces {
		return fmt.Errorf("%w: %d rows, %d faces", ErrShape, len(dist), faces)
	}
	for i, row := range dist {
		if len(row) != faces {
			return fmt.Errorf("%w: row %d has %d entries, %d faces", ErrShape, i, len(row), faces)
		}
		for j, d := range row {
			if math.IsNaN(d) || math.IsInf(d, 0) || d < 0 {
				return fmt.Errorf("%w: dist[%d][%d]=%g", ErrDisconnected, i, j, d)
			}
		}
	}

	return nil
}

// segmenter holds the mutable state of one Run.
type segmenter struct {
	m    *mesh.Mesh
	dist [][]float64
	cfg  Options
	n, k int

	reps    []int       // seed face per class
	uniques []int       // classes whose seed is not shared with a lower class, ascending
	prob    [][]float64 // prob[c][f]: membership of face f in class c
	labels  []int       // clear class per face, -1 when fuzzy
	pair    [][2]int    // best two classes of a fuzzy face
}

func newSegmenter(m *mesh.Mesh, dist [][]float64, cfg Options) *segmenter {
	n, k := len(m.Faces), cfg.Classes
	s := &segmenter{
		m: m, dist: dist, cfg: cfg, n: n, k: k,
		prob:   make([][]float64, k),
		labels: make([]int, n),
		pair:   make([][2]int, n),
	}
	for c := range s.prob {
		s.prob[c] = make([]float64, n)
	}

	return s
}

// seed picks the initial representatives.
func (s *segmenter) seed() {
	reps := make([]int, 0, s.k)
	if s.k == 2 {
		a, b, best := 0, 0, -1.0
		for i := 0; i < s.n; i++ {
			for j := i + 1; j < s.n; j++ {
				if s.dist[i][j] > best {
					a, b, best = i, j, s.dist[i][j]
				}
			}
		}
		s.setSeeds(append(reps, a, b))
		return
	}

	center, bestSum := 0, math.Inf(1)
	for i, row := range s.dist {
		var sum float64
		for _, d := range row {
			sum += d
		}
		if sum < bestSum {
			center, bestSum = i, sum
		}
	}
	reps = append(reps, center)
	for len(reps) < s.k {
		next, far := 0, 0.0
		for f := 0; f < s.n; f++ {
			near := math.Inf(1)
			for _, r := range reps {
				near = math.Min(near, s.dist[f][r])
			}
			if near > far {
				next, far = f, near
			}
		}
		reps = append(reps, next)
	}
	s.setSeeds(reps)
}

func (s *segmenter) setSeeds(reps []int) {
	s.reps = reps
	s.uniques = s.uniques[:0]
	seen := make(map[int]bool, len(reps))
	for c, r := range reps {
		if !seen[r] {
			seen[r] = true
			s.uniques = append(s.uniques, c)
		}
	}
}

// seedClass returns the lowest class seeded at face f, or -1.
func (s *segmenter) seedClass(f int) int {
	for c, r := range s.reps {
		if r == f {
			return c
		}
	}
	return -1
}

// computeProb sets membership probabilities from inverse seed distances.
func (s *segmenter) computeProb() {
	for f := 0; f < s.n; f++ {
		if c := s.seedClass(f); c >= 0 {
			for k := range s.prob {
				s.prob[k][f] = 0
			}
			s.prob[c][f] = 1
			continue
		}
		var sum float64
		for _, u := range s.uniques {
			sum += 1 / (s.dist[f][s.reps[u]] + probEps)
		}
		for c := range s.prob {
			s.prob[c][f] = 1 / (s.dist[f][s.reps[c]] + probEps) / sum
		}
	}
}

// assign labels clear faces and records the two best classes of fuzzy
// ones. Classes without a unique seed never win.
func (s *segmenter) assign() {
	for c := range s.prob {
		if !s.isUnique(c) {
			for f := range s.prob[c] {
				s.prob[c][f] = 0
			}
		}
	}
	for f := 0; f < s.n; f++ {
		if len(s.uniques) < 2 {
			s.labels[f] = s.uniques[0]
			continue
		}
		c1, c2 := -1, -1
		for _, c := range s.uniques {
			switch p := s.prob[c][f]; {
			case c1 < 0 || p > s.prob[c1][f]:
				c1, c2 = c, c1
			case c2 < 0 || p > s.prob[c2][f]:
				c2 = c
			}
		}
		if s.prob[c1][f]-s.prob[c2][f] > s.cfg.FuzzyMargin {
			s.labels[f] = c1
			continue
		}
		s.labels[f] = -1
		s.pair[f] = [2]int{min(c1, c2), max(c1, c2)}
	}
}

func (s *segmenter) isUnique(c int) bool {
	for _, u := range s.uniques {
		if u == c {
			return true
		}
	}
	return false
}

// recomputeSeeds re-estimates memberships from the current clear faces and
// returns, per class, the face that minimizes the membership-weighted
// distance to all faces, together with the full cost table.
//
// The distance of face i to class c is the mean distance from i to the clear
// faces of c, or +Inf when c has none.
func (s *segmenter) recomputeSeeds() ([]int, [][]float64) {
	s.assign()

	classDist := make([][]float64, s.k)
	for c := range classDist {
		classDist[c] = make([]float64, s.n)
	}
	counts := make([]int, s.k)
	for f, c := range s.labels {
		if c < 0 {
			continue
		}
		counts[c]++
		for i, d := range s.dist[f] {
			classDist[c][i] += d
		}
	}
	for c := range classDist {
		for i := range classDist[c] {
			if counts[c] == 0 {
				classDist[c][i] = math.Inf(1)
			} else {
				classDist[c][i] /= float64(counts[c])
			}
		}
	}

	for i := 0; i < s.n; i++ {
		var sum float64
		for c := range classDist {
			sum += 1 / (classDist[c][i] + probEps)
		}
		for c := range classDist {
			if sum == 0 {
				s.prob[c][i] = 1 / float64(s.k)
				continue
			}
			s.prob[c][i] = 1 / (classDist[c][i] + probEps) / sum
		}
	}

	reps := make([]int, s.k)
	cost := make([][]float64, s.k)
	for c := range cost {
		cost[c] = make([]float64, s.n)
		for j, p := range s.prob[c] {
			if p == 0 {
				continue
			}
			for i, d := range s.dist[j] {
				cost[c][i] += p * d
			}
		}
		for i, v := range cost[c] {
			if v < cost[c][reps[c]] {
				reps[c] = i
			}
		}
	}

	return reps, cost
}

// improves reports whether any class found a different, strictly cheaper seed.
func (s *segmenter) improves(reps []int, cost [][]float64) bool {
	for c, r := range reps {
		if old := s.reps[c]; r != old && cost[c][r] < cost[c][old]-probEps {
			return true
		}
	}
	return false
}

// resolveFuzzy splits every fuzzy region between two classes along a
// minimum cut and returns the number of faces it labeled.
func (s *segmenter) resolveFuzzy(ctx context.Context) (int, error) {
	resolved := 0
	roles := make([]faceRole, s.n)
	for x, i := range s.uniques {
		for _, j := range s.uniques[x+1:] {
			for f := range roles {
				roles[f] = roleNone
			}
			count := 0
			for f, c := range s.labels {
				if c >= 0 || s.pair[f] != [2]int{i, j} {
					continue
				}
				roles[f] = roleFuzzy
				count++
				for _, nb := range s.m.Neighbors[f] {
					switch s.labels[nb.Face] {
					case i:
						roles[nb.Face] = roleSource
					case j:
						roles[nb.Face] = roleSink
					}
				}
			}
			if count == 0 {
				continue
			}

			if err := cut(ctx, s.m, roles); err != nil {
				return 0, err
			}
			for f, r := range roles {
				switch r {
				case roleSource:
					s.labels[f] = i
				case roleSink:
					s.labels[f] = j
				}
			}
			resolved += count
		}
	}

	return resolved, nil
}
