package segment

import (
	"context"
	"math"

	"github.com/katalvlaran/meshgeo/mesh"
)

// flowEps treats residual capacities at or below it as exhausted.
const flowEps = 1e-12

// faceRole is the part a face plays in one min-cut problem.
type faceRole uint8

const (
	roleNone   faceRole = iota // not part of the network
	roleSource                 // clear face of the first class, tied to the source
	roleSink                   // clear face of the second class, tied to the sink
	roleFuzzy                  // undecided face, placed by the cut
)

// arc is one directed residual edge. rev indexes the paired arc in
// arcs[to], so pushing flow on one arc frees capacity on the other.
type arc struct {
	to   int32
	rev  int32
	cap  float64
	flow float64
}

func (a *arc) residual() float64 { return a.cap - a.flow }

// network is a residual graph over F faces plus a source (F) and sink (F+1).
type network struct {
	arcs         [][]arc
	source, sink int32
}

func newNetwork(faces int) *network {
	return &network{
		arcs:   make([][]arc, faces+2),
		source: int32(faces),
		sink:   int32(faces + 1),
	}
}

// addEdge adds an undirected edge: both directions start with capacity c.
func (g *network) addEdge(u, v int32, c float64) {
	g.link(u, v, c, c)
}

// addArc adds a directed arc u→v of capacity c.
func (g *network) addArc(u, v int32, c float64) {
	g.link(u, v, c, 0)
}

func (g *network) link(u, v int32, fwd, back float64) {
	iu, iv := int32(len(g.arcs[u])), int32(len(g.arcs[v]))
	g.arcs[u] = append(g.arcs[u], arc{to: v, rev: iv, cap: fwd})
	g.arcs[v] = append(g.arcs[v], arc{to: u, rev: iu, cap: back})
}

// maxFlow saturates the network with BFS augmenting paths (Edmonds–Karp)
// and returns the total flow. ctx is checked once per augmenting search.
//
// Complexity: O(V · E²).
func (g *network) maxFlow(ctx context.Context) (float64, error) {
	n := len(g.arcs)
	parent := make([]int32, n)    // predecessor node on the BFS tree
	parentArc := make([]int32, n) // index of the arc used in arcs[parent]
	var total float64
	for {
		if err := ctx.Err(); err != nil {
			return total, err
		}
		bottle := g.augmentingPath(parent, parentArc)
		if bottle <= flowEps {
			return total, nil
		}
		for v := g.sink; v != g.source; v = parent[v] {
			a := &g.arcs[parent[v]][parentArc[v]]
			a.flow += bottle
			g.arcs[v][a.rev].flow -= bottle
		}
		total += bottle
	}
}

// augmentingPath runs a BFS from the source over arcs with residual
// capacity and fills parent/parentArc. It returns the bottleneck of the
// fewest-arcs path to the sink, or 0 if the sink is unreachable.
func (g *network) augmentingPath(parent, parentArc []int32) float64 {
	bottle := make([]float64, len(g.arcs))
	bottle[g.source] = math.Inf(1)
	queue := []int32{g.source}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for i := range g.arcs[u] {
			a := &g.arcs[u][i]
			if bottle[a.to] > 0 || a.to == g.source || a.residual() <= flowEps {
				continue
			}
			parent[a.to], parentArc[a.to] = u, int32(i)
			bottle[a.to] = math.Min(bottle[u], a.residual())
			if a.to == g.sink {
				return bottle[g.sink]
			}
			queue = append(queue, a.to)
		}
	}

	return 0
}

// reachable marks every node reachable from the source in the residual graph.
func (g *network) reachable() []bool {
	seen := make([]bool, len(g.arcs))
	seen[g.source] = true
	queue := []int32{g.source}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for i := range g.arcs[u] {
			a := &g.arcs[u][i]
			if seen[a.to] || a.residual() <= flowEps {
				continue
			}
			seen[a.to] = true
			queue = append(queue, a.to)
		}
	}

	return seen
}

// cut places every roleFuzzy face on the source or sink side of a minimum
// cut. Only faces with a role take part; an edge between two of them costs
// 1/(1 + AngDist/mean), so the cut prefers creases with a large dihedral
// angle. Clear faces are tied to their terminal with infinite capacity.
// On return roles holds only roleNone, roleSource and roleSink.
func cut(ctx context.Context, m *mesh.Mesh, roles []faceRole) error {
	g := newNetwork(len(m.Faces))
	for f, nbs := range m.Neighbors {
		if roles[f] == roleNone {
			continue
		}
		for _, nb := range nbs {
			if int(nb.Face) <= f || roles[nb.Face] == roleNone {
				continue
			}
			g.addEdge(int32(f), nb.Face, capacity(nb.AngDist, m.AvgAngDist))
		}
		switch roles[f] {
		case roleSource:
			g.addArc(g.source, int32(f), math.Inf(1))
		case roleSink:
			g.addArc(int32(f), g.sink, math.Inf(1))
		}
	}

	if _, err := g.maxFlow(ctx); err != nil {
		return err
	}

	side := g.reachable()
	for f, r := range roles {
		switch {
		case r == roleNone:
		case side[f]:
			roles[f] = roleSource
		case r == roleFuzzy:
			roles[f] = roleSink
		}
	}

	return nil
}

// capacity converts an angular distance into an edge capacity in (0, 1].
func capacity(angDist, mean float64) float64 {
	if mean <= 0 {
		return 1
	}
	return 1 / (1 + angDist/mean)
}
