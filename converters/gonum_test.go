package converters_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/modulus/converters"
	"github.com/katalvlaran/modulus/core"
	"github.com/katalvlaran/modulus/family"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"
)

func TestFromGonum(t *testing.T) {
	src := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	// inserted out of order on purpose
	src.SetWeightedEdge(src.NewWeightedEdge(simple.Node(3), simple.Node(1), 4))
	src.SetWeightedEdge(src.NewWeightedEdge(simple.Node(1), simple.Node(2), 2))
	src.SetWeightedEdge(src.NewWeightedEdge(simple.Node(2), simple.Node(3), 1))
	src.AddNode(simple.Node(9))

	g, err := converters.FromGonum(src)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3", "9"}, g.Vertices())

	edges := g.Edges()
	require.Len(t, edges, 3)
	got := make([][3]interface{}, len(edges))
	for i, e := range edges {
		got[i] = [3]interface{}{e.From, e.To, e.Weight}
	}
	assert.Equal(t, [][3]interface{}{
		{"1", "2", 2.0},
		{"1", "3", 4.0},
		{"2", "3", 1.0},
	}, got)

	_, err = converters.FromGonum(nil)
	assert.ErrorIs(t, err, converters.ErrNilGraph)
}

func TestToGonum(t *testing.T) {
	g := core.NewGraph(core.WithMultiEdges(), core.WithLoops())
	_, _ = g.AddEdge("A", "B", 5)
	_, _ = g.AddEdge("A", "B", 2)
	_, _ = g.AddEdge("B", "C", 1)
	_, _ = g.AddEdge("C", "C", 7)
	require.NoError(t, g.AddVertex("D"))

	dst, ids, err := converters.ToGonum(g)
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"A": 0, "B": 1, "C": 2, "D": 3}, ids)
	assert.Equal(t, 4, dst.Nodes().Len())
	assert.Equal(t, 2, dst.Edges().Len(), "parallel collapsed, loop dropped")

	w, ok := dst.Weight(ids["A"], ids["B"])
	require.True(t, ok)
	assert.Equal(t, 2.0, w)
	_, ok = dst.Weight(ids["A"], ids["D"])
	assert.False(t, ok)
}

func TestToGonum_Errors(t *testing.T) {
	_, _, err := converters.ToGonum(nil)
	assert.ErrorIs(t, err, converters.ErrNilGraph)

	g := core.NewGraph(core.WithMixedEdges())
	_, _ = g.AddEdge("A", "B", 1, core.WithEdgeDirected(true))
	_, _, err = converters.ToGonum(g)
	assert.ErrorIs(t, err, converters.ErrDirected)
}

func TestRoundTrip(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("B", "C", 2)
	_, _ = g.AddEdge("C", "A", 3)

	dst, _, err := converters.ToGonum(g)
	require.NoError(t, err)
	back, err := converters.FromGonum(dst)
	require.NoError(t, err)

	assert.Equal(t, g.EdgeCount(), back.EdgeCount())
	var sumG, sumB float64
	for _, e := range g.Edges() {
		sumG += e.Weight
	}
	for _, e := range back.Edges() {
		sumB += e.Weight
	}
	assert.Equal(t, sumG, sumB)
}

// TestFamilyOnConvertedGraph runs the path family on a graph built with gonum
// and compares against gonum's own Dijkstra.
func TestFamilyOnConvertedGraph(t *testing.T) {
	src := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	for _, e := range []struct {
		u, v int64
		w    float64
	}{
		{0, 1, 4}, {0, 2, 1}, {2, 1, 1}, {1, 3, 1}, {2, 3, 5}, {3, 4, 3},
	} {
		src.SetWeightedEdge(src.NewWeightedEdge(simple.Node(e.u), simple.Node(e.v), e.w))
	}

	g, err := converters.FromGonum(src)
	require.NoError(t, err)
	f, err := family.NewShortestConnectingPath(g, []string{"0"}, []string{"4"})
	require.NoError(t, err)

	rho := f.Topology().BaseWeights()
	res, err := f.Evaluate(rho, 0)
	require.NoError(t, err)

	want := path.DijkstraFrom(simple.Node(0), src).WeightTo(4)
	assert.Equal(t, want, res.Cost)
	assert.Equal(t, []string{"0", "2", "1", "3", "4"}, res.Path)
}
