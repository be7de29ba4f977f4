// SPDX-License-Identifier: MIT

package family

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/modulus/bfs"
	"github.com/katalvlaran/modulus/core"
	"github.com/katalvlaran/modulus/prim_kruskal"
	"github.com/katalvlaran/modulus/topology"
)

// MinimumSpanningTree finds, for a weight vector rho, a minimum spanning
// forest of the caller's graph. The enumeration is taken once at
// construction and never changes; Evaluate only reads rho, so one instance
// may be evaluated from many goroutines at once.
type MinimumSpanningTree struct {
	top        *topology.Topology
	method     string
	components int
	log        *zap.Logger
}

// TreeResult is one evaluation of the spanning family.
//
//   - Edges:      selected edges, in the order the algorithm accepted them.
//   - Weight:     sum of rho over Edges.
//   - Components: connected components; len(Edges) == nodes - Components.
//   - Indicator:  length-m 0/1 vector, 1 exactly at the indices of Edges.
type TreeResult struct {
	Edges      []topology.EdgeRef
	Weight     float64
	Components int
	Indicator  []float64
}

// NewMinimumSpanningTree enumerates g once.
//
// Errors (all wrap ErrConfiguration):
//   - g is nil.
//   - g has a directed edge (prim_kruskal.ErrDirected in the chain).
//   - the method set with WithMethod is unknown (prim_kruskal.ErrUnknownMethod).
//
// Complexity: O(V log V + E log E).
func NewMinimumSpanningTree(g *core.Graph, opts ...Option) (*MinimumSpanningTree, error) {
	o := buildOptions(opts)

	if g == nil {
		return nil, fmt.Errorf("%w: graph is nil", ErrConfiguration)
	}
	switch o.Method {
	case prim_kruskal.MethodKruskal, prim_kruskal.MethodPrim:
	default:
		return nil, fmt.Errorf("%w: %w: %q", ErrConfiguration, prim_kruskal.ErrUnknownMethod, o.Method)
	}

	top, err := topology.Enumerate(g)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}
	if top.HasDirected() {
		return nil, fmt.Errorf("%w: %w", ErrConfiguration, prim_kruskal.ErrDirected)
	}

	_, k, err := bfs.Components(top)
	if err != nil {
		return nil, err
	}

	f := &MinimumSpanningTree{
		top:        top,
		method:     o.Method,
		components: k,
		log:        o.Logger.With(zap.String("family", "minimum_spanning_tree")),
	}
	f.log.Debug("family built",
		zap.Int("nodes", top.NumNodes()),
		zap.Int("edges", top.NumEdges()),
		zap.Int("components", k),
		zap.String("method", o.Method),
	)

	return f, nil
}

// Evaluate computes a minimum spanning forest under rho.
//
// rho must have NumEdges() entries and no NaN; negative and infinite values
// are legal. tol is accepted as is and does not influence the result. Ties are broken by edge index, so the result is a pure function of
// rho for a fixed enumeration. A disconnected graph yields a forest, never
// an error.
//
// Complexity: O(E log E).
func (f *MinimumSpanningTree) Evaluate(rho []float64, tol float64) (*TreeResult, error) {
	if f == nil {
		return nil, errNilFamily
	}
	if err := checkRho(rho, f.top.NumEdges(), false); err != nil {
		return nil, err
	}

	forest, err := prim_kruskal.Compute(f.top, rho, prim_kruskal.WithMethod(f.method))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}

	res := &TreeResult{
		Edges:      edgeRefs(f.top, forest.Edges),
		Weight:     forest.Weight,
		Components: forest.Components,
		Indicator:  f.top.Indicator(forest.Edges),
	}
	f.log.Debug("tree evaluated",
		zap.Float64("weight", res.Weight),
		zap.Int("edges", len(res.Edges)),
		zap.Int("components", res.Components),
	)

	return res, nil
}

// Direction returns only the indicator of Evaluate(rho, tol).
func (f *MinimumSpanningTree) Direction(rho []float64, tol float64) ([]float64, error) {
	res, err := f.Evaluate(rho, tol)
	if err != nil {
		return nil, err
	}

	return res.Indicator, nil
}

// Topology returns the enumeration of the caller's graph.
func (f *MinimumSpanningTree) Topology() *topology.Topology { return f.top }

// NumEdges returns m, the required length of rho.
func (f *MinimumSpanningTree) NumEdges() int { return f.top.NumEdges() }

// Components returns the number of connected components of the graph.
// Every evaluation selects NumNodes()-Components() edges.
func (f *MinimumSpanningTree) Components() int { return f.components }

// Method returns the algorithm in use.
func (f *MinimumSpanningTree) Method() string { return f.method }
