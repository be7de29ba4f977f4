package topology_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/katalvlaran/modulus/core"
	"github.com/katalvlaran/modulus/topology"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildTriangle returns the triangle A–B, B–C, C–A (indices 0, 1, 2).
func buildTriangle(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, e := range [][2]string{{"A", "B"}, {"B", "C"}, {"C", "A"}} {
		_, err := g.AddEdge(e[0], e[1], 1)
		require.NoError(t, err)
	}

	return g
}

func TestEnumerate_Nil(t *testing.T) {
	_, err := topology.Enumerate(nil)
	assert.ErrorIs(t, err, topology.ErrNilGraph)
}

func TestEnumerate_Triangle(t *testing.T) {
	top, err := topology.Enumerate(buildTriangle(t))
	require.NoError(t, err)

	assert.Equal(t, 3, top.NumNodes())
	assert.Equal(t, 3, top.NumEdges())
	assert.Equal(t, 3, top.NumReal())
	assert.False(t, top.HasDirected())

	want := [][2]string{{"A", "B"}, {"B", "C"}, {"C", "A"}}
	for i, e := range top.Edges() {
		assert.Equal(t, i, e.Index)
		assert.Equal(t, want[i][0], e.From)
		assert.Equal(t, want[i][1], e.To)
		assert.Equal(t, e.From, top.Node(e.U))
		assert.Equal(t, e.To, top.Node(e.V))
		assert.False(t, e.Virtual)

		idx, ok := top.EdgeIndex(e.ID)
		require.True(t, ok)
		assert.Equal(t, i, idx)
	}

	a, ok := top.NodeIndex("A")
	require.True(t, ok)
	assert.Equal(t, []int{0, 2}, top.Incident(a))
	assert.Equal(t, 1, top.Opposite(0, a))
	assert.True(t, top.Traversable(2, a))

	_, ok = top.NodeIndex("Z")
	assert.False(t, ok)
}

func TestEnumerate_StableAgainstLaterMutation(t *testing.T) {
	g := buildTriangle(t)
	top, err := topology.Enumerate(g)
	require.NoError(t, err)
	before := top.Edges()

	_, err = g.AddEdge("C", "D", 4)
	require.NoError(t, err)
	require.NoError(t, g.RemoveVertex("A"))

	assert.Equal(t, before, top.Edges())
	assert.Equal(t, 3, top.NumNodes())
}

func TestEnumerate_InsertionOrderBeyondNine(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 15; i++ {
		_, err := g.AddEdge(fmt.Sprintf("n%d", i), fmt.Sprintf("n%d", i+1), float64(i))
		require.NoError(t, err)
	}
	top, err := topology.Enumerate(g)
	require.NoError(t, err)

	for i, e := range top.Edges() {
		assert.Equal(t, fmt.Sprintf("e%d", i+1), e.ID)
	}
	base := top.BaseWeights()
	for i, w := range base {
		assert.Equal(t, float64(i), w)
	}

	// BaseWeights hands out copies.
	base[0] = 99
	assert.Equal(t, 0.0, top.BaseWeights()[0])
}

func TestEnumerate_DirectedAndLoops(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithLoops())
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("B", "B", 1)
	top, err := topology.Enumerate(g)
	require.NoError(t, err)

	a, _ := top.NodeIndex("A")
	b, _ := top.NodeIndex("B")
	assert.True(t, top.HasDirected())
	assert.True(t, top.Traversable(0, a))
	assert.False(t, top.Traversable(0, b))
	assert.Equal(t, []int{0, 1}, top.Incident(b), "loop listed once")
	assert.Equal(t, b, top.Opposite(1, b))
}

func TestAugment(t *testing.T) {
	top, err := topology.Enumerate(buildTriangle(t))
	require.NoError(t, err)

	h, err := top.Augment(
		[]string{"src", "dst"},
		[]topology.Arc{
			{From: "src", To: "A", Directed: true},
			{From: "C", To: "dst", Directed: true},
		},
	)
	require.NoError(t, err)

	assert.Equal(t, 5, h.NumNodes())
	assert.Equal(t, 5, h.NumEdges())
	assert.Equal(t, 3, h.NumReal())
	assert.Equal(t, top.Edges(), h.Edges(), "real edges unchanged")

	v := h.Edge(3)
	assert.True(t, v.Virtual)
	assert.Equal(t, "v1", v.ID)
	src, _ := h.NodeIndex("src")
	assert.Equal(t, src, v.U)

	// receiver untouched
	assert.Equal(t, 3, top.NumNodes())
	a, _ := top.NodeIndex("A")
	assert.Equal(t, []int{0, 2}, top.Incident(a))
	assert.Equal(t, []int{0, 2, 3}, h.Incident(a))

	// indicator drops virtual indices
	assert.Equal(t, []float64{1, 0, 1}, h.Indicator([]int{3, 0, 2, 4}))
}

func TestAugment_Errors(t *testing.T) {
	top, err := topology.Enumerate(buildTriangle(t))
	require.NoError(t, err)

	_, err = top.Augment([]string{"A"}, nil)
	assert.ErrorIs(t, err, topology.ErrDuplicateVertex)

	_, err = top.Augment([]string{""}, nil)
	assert.ErrorIs(t, err, topology.ErrEmptyVertexID)

	_, err = top.Augment([]string{"s"}, []topology.Arc{{From: "s", To: "Q"}})
	assert.ErrorIs(t, err, topology.ErrVertexNotFound)
}

func TestCheckWeights(t *testing.T) {
	top, err := topology.Enumerate(buildTriangle(t))
	require.NoError(t, err)

	assert.NoError(t, top.CheckWeights([]float64{1, -2, math.Inf(1)}))
	assert.ErrorIs(t, top.CheckWeights([]float64{1, 2}), topology.ErrWeightsLength)
	assert.ErrorIs(t, top.CheckWeights([]float64{1, math.NaN(), 3}), topology.ErrBadWeight)
}
