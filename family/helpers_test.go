package family_test

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/modulus/core"
	"github.com/katalvlaran/modulus/topology"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/simple"
)

// triangle builds A–B, B–C, C–A, enumerated as AB=0, BC=1, CA=2.
func triangle(t testing.TB) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, e := range [][2]string{{"A", "B"}, {"B", "C"}, {"C", "A"}} {
		_, err := g.AddEdge(e[0], e[1], 1)
		require.NoError(t, err)
	}

	return g
}

// twoIslands builds {A–B, B–C} and {D–E}.
func twoIslands(t testing.TB) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, e := range [][2]string{{"A", "B"}, {"B", "C"}, {"D", "E"}} {
		_, err := g.AddEdge(e[0], e[1], 1)
		require.NoError(t, err)
	}

	return g
}

func nodeName(i int) string { return fmt.Sprintf("V%03d", i) }

// randomGraph returns an undirected graph on n nodes where each pair is
// joined with probability p, mirrored as a gonum graph with node ID i for
// vertex nodeName(i). rho is drawn per edge from [0, maxW).
func randomGraph(t testing.TB, r *rand.Rand, n int, p, maxW float64) (*core.Graph, *simple.WeightedUndirectedGraph, []float64) {
	t.Helper()
	g := core.NewGraph()
	o := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	var rho []float64
	for i := 0; i < n; i++ {
		require.NoError(t, g.AddVertex(nodeName(i)))
		o.AddNode(simple.Node(i))
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if r.Float64() >= p {
				continue
			}
			w := math.Floor(r.Float64() * maxW)
			_, err := g.AddEdge(nodeName(i), nodeName(j), w)
			require.NoError(t, err)
			o.SetWeightedEdge(o.NewWeightedEdge(simple.Node(i), simple.Node(j), w))
			rho = append(rho, w)
		}
	}

	return g, o, rho
}

// splitSets picks disjoint, non-empty S and T from n >= 2 nodes.
func splitSets(r *rand.Rand, n int) (S, T []string) {
	perm := r.Perm(n)
	ns := 1 + r.Intn(min(2, n-1))
	nt := 1 + r.Intn(min(2, n-ns))
	for _, i := range perm[:ns] {
		S = append(S, nodeName(i))
	}
	for _, i := range perm[ns : ns+nt] {
		T = append(T, nodeName(i))
	}

	return S, T
}

// bruteForceCost enumerates every simple path with at least one edge from a
// node of S to a node of T and returns the minimum rho-length, or +Inf.
func bruteForceCost(top *topology.Topology, rho []float64, S, T []string) float64 {
	isTarget := make(map[int]bool, len(T))
	for _, id := range T {
		i, _ := top.NodeIndex(id)
		isTarget[i] = true
	}
	best := math.Inf(1)
	onPath := make([]bool, top.NumNodes())

	var walk func(u int, cost float64, depth int)
	walk = func(u int, cost float64, depth int) {
		if depth > 0 && isTarget[u] && cost < best {
			best = cost
		}
		onPath[u] = true
		for _, e := range top.Incident(u) {
			if !top.Traversable(e, u) || math.IsInf(rho[e], 1) {
				continue
			}
			v := top.Opposite(e, u)
			if onPath[v] {
				continue
			}
			walk(v, cost+rho[e], depth+1)
		}
		onPath[u] = false
	}
	for _, id := range S {
		s, _ := top.NodeIndex(id)
		walk(s, 0, 0)
	}

	return best
}

func sum(xs []float64) float64 {
	var s float64
	for _, x := range xs {
		s += x
	}

	return s
}
