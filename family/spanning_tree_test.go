package family_test

import (
	"math"
	"math/rand"
	"sort"
	"sync"
	"testing"

	"github.com/katalvlaran/modulus/bfs"
	"github.com/katalvlaran/modulus/core"
	"github.com/katalvlaran/modulus/family"
	"github.com/katalvlaran/modulus/prim_kruskal"
	"github.com/katalvlaran/modulus/topology"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"
)

var methods = []string{prim_kruskal.MethodKruskal, prim_kruskal.MethodPrim}

func edgeIDs(refs []topology.EdgeRef) []string {
	out := make([]string, len(refs))
	for i, e := range refs {
		out[i] = e.ID
	}
	sort.Strings(out)

	return out
}

func TestMinimumSpanningTree_Triangle(t *testing.T) {
	for _, m := range methods {
		t.Run(m, func(t *testing.T) {
			f, err := family.NewMinimumSpanningTree(triangle(t), family.WithMethod(m))
			require.NoError(t, err)
			assert.Equal(t, m, f.Method())
			assert.Equal(t, 3, f.NumEdges())

			res, err := f.Evaluate([]float64{1, 2, 3}, 0)
			require.NoError(t, err)
			assert.Equal(t, []float64{1, 1, 0}, res.Indicator)
			assert.Equal(t, []string{"e1", "e2"}, edgeIDs(res.Edges))
			assert.Equal(t, 3.0, res.Weight)
			assert.Equal(t, 1, res.Components)

			ind, err := f.Direction([]float64{3, 2, 1}, 0)
			require.NoError(t, err)
			assert.Equal(t, []float64{0, 1, 1}, ind)
		})
	}
}

func TestMinimumSpanningTree_ConstructionErrors(t *testing.T) {
	_, err := family.NewMinimumSpanningTree(nil)
	assert.ErrorIs(t, err, family.ErrConfiguration)

	dg := core.NewGraph(core.WithDirected(true))
	_, _ = dg.AddEdge("A", "B", 1)
	_, err = family.NewMinimumSpanningTree(dg)
	assert.ErrorIs(t, err, family.ErrConfiguration)
	assert.ErrorIs(t, err, prim_kruskal.ErrDirected)

	_, err = family.NewMinimumSpanningTree(triangle(t), family.WithMethod("boruvka"))
	assert.ErrorIs(t, err, family.ErrConfiguration)
	assert.ErrorIs(t, err, prim_kruskal.ErrUnknownMethod)
}

func TestMinimumSpanningTree_EvaluateErrors(t *testing.T) {
	f, err := family.NewMinimumSpanningTree(triangle(t))
	require.NoError(t, err)

	_, err = f.Evaluate([]float64{1, 2, 3, 4}, 0)
	assert.ErrorIs(t, err, family.ErrConfiguration)
	assert.ErrorIs(t, err, topology.ErrWeightsLength)

	_, err = f.Evaluate([]float64{1, math.NaN(), 3}, 0)
	assert.ErrorIs(t, err, family.ErrConfiguration)

	res, err := f.Evaluate([]float64{1, 2, 3}, -0.1)
	require.NoError(t, err, "tol is not validated")
	assert.Equal(t, []float64{1, 1, 0}, res.Indicator)

	var nilFamily *family.MinimumSpanningTree
	_, err = nilFamily.Direction([]float64{1, 2, 3}, 0)
	assert.ErrorIs(t, err, family.ErrConfiguration)
}

func TestMinimumSpanningTree_NegativeAndInfinite(t *testing.T) {
	f, err := family.NewMinimumSpanningTree(triangle(t))
	require.NoError(t, err)

	res, err := f.Evaluate([]float64{-2, math.Inf(1), -1}, 0)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 0, 1}, res.Indicator)
	assert.Equal(t, -3.0, res.Weight)
}

func TestMinimumSpanningTree_Forest(t *testing.T) {
	g := twoIslands(t)
	require.NoError(t, g.AddVertex("Z"))
	pf, err := family.NewShortestConnectingPath(g, []string{"A"}, []string{"E"})
	require.NoError(t, err)

	for _, m := range methods {
		f, err := family.NewMinimumSpanningTree(g, family.WithMethod(m))
		require.NoError(t, err)
		assert.Equal(t, 3, f.Components())

		res, err := f.Evaluate([]float64{1, 1, 1}, 0)
		require.NoError(t, err, "disconnection is not an error")
		assert.Equal(t, 3, res.Components)
		assert.Equal(t, float64(6-3), sum(res.Indicator))
	}

	_, err = pf.Evaluate([]float64{1, 1, 1}, 0)
	assert.ErrorIs(t, err, family.ErrNoPath)
}

// TestMinimumSpanningTree_Properties checks n−k indicator sums, agreement
// between the two methods and gonum's Kruskal on random graphs.
func TestMinimumSpanningTree_Properties(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	for trial := 0; trial < 50; trial++ {
		n := 2 + r.Intn(40)
		g, o, rho := randomGraph(t, r, n, 0.1, 50)

		kf, err := family.NewMinimumSpanningTree(g)
		require.NoError(t, err)
		pf, err := family.NewMinimumSpanningTree(g, family.WithMethod(prim_kruskal.MethodPrim))
		require.NoError(t, err)
		_, k, err := bfs.Components(kf.Topology())
		require.NoError(t, err)

		kr, err := kf.Evaluate(rho, 0)
		require.NoError(t, err)
		pr, err := pf.Evaluate(rho, 0)
		require.NoError(t, err)

		want := path.Kruskal(simple.NewWeightedUndirectedGraph(0, math.Inf(1)), o)
		for _, res := range []*family.TreeResult{kr, pr} {
			assert.Equal(t, k, res.Components, "trial %d", trial)
			assert.Equal(t, float64(n-k), sum(res.Indicator), "trial %d", trial)
			assert.InDelta(t, want, res.Weight, 1e-9, "trial %d", trial)
			assert.InDelta(t, res.Weight, family.IndicatorWeight(res.Indicator, rho), 1e-9)
			for _, e := range res.Edges {
				assert.Equal(t, 1.0, res.Indicator[e.Index])
			}
		}

		// repeatable for a fixed rho
		again, err := kf.Evaluate(rho, 0)
		require.NoError(t, err)
		assert.Equal(t, kr, again)
	}
}

func TestMinimumSpanningTree_ConcurrentEvaluate(t *testing.T) {
	r := rand.New(rand.NewSource(9))
	g, _, _ := randomGraph(t, r, 25, 0.3, 10)
	f, err := family.NewMinimumSpanningTree(g)
	require.NoError(t, err)

	rhos := make([][]float64, 12)
	want := make([][]float64, len(rhos))
	for i := range rhos {
		rhos[i] = make([]float64, f.NumEdges())
		for j := range rhos[i] {
			rhos[i][j] = r.Float64()
		}
		want[i], err = f.Direction(rhos[i], 0)
		require.NoError(t, err)
	}

	var wg sync.WaitGroup
	for round := 0; round < 8; round++ {
		for i := range rhos {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				got, err := f.Direction(rhos[i], 0)
				if assert.NoError(t, err) {
					assert.Equal(t, want[i], got)
				}
			}(i)
		}
	}
	wg.Wait()
}
