// Package prim_kruskal defines configuration options and sentinel errors for
// minimum spanning forest computation over a topology.Topology.
// It supports selecting between Kruskal and Prim via WithMethod.
package prim_kruskal

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/modulus/topology"
)

var (
	// ErrNilTopology indicates that a nil *topology.Topology was passed.
	ErrNilTopology = errors.New("prim_kruskal: topology is nil")

	// ErrDirected indicates that the topology carries a directed edge.
	// Spanning trees are defined on undirected graphs only.
	ErrDirected = errors.New("prim_kruskal: spanning forest requires undirected edges")

	// ErrWeightsLength indicates a weight vector not aligned with the edge index.
	ErrWeightsLength = errors.New("prim_kruskal: weight vector length mismatch")

	// ErrBadWeight indicates a NaN weight. Negative and infinite weights are legal.
	ErrBadWeight = errors.New("prim_kruskal: NaN edge weight")

	// ErrUnknownMethod indicates an unsupported Method in Options.
	ErrUnknownMethod = errors.New("prim_kruskal: unknown method")
)

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// MethodPrim selects Prim's algorithm (grow from each unvisited node using a min-heap).
const MethodPrim = "prim"

// Options configures which algorithm Compute runs.
// Use DefaultOptions() to get a default setup (Kruskal).
//
// Complexity: O(E log E) for both methods.
type Options struct {
	// Method to use: MethodKruskal or MethodPrim.
	Method string
}

// Option configures Options.
type Option func(*Options)

// WithMethod returns an Option that sets the algorithm Method.
// Unknown values surface as ErrUnknownMethod from Compute.
func WithMethod(m string) Option {
	return func(o *Options) {
		o.Method = m
	}
}

// DefaultOptions returns Options with Method = MethodKruskal.
func DefaultOptions() Options {
	return Options{Method: MethodKruskal}
}

// Forest is a minimum spanning forest, expressed in topology edge indices.
//
//   - Edges:      chosen edges, in the order the algorithm accepted them.
//   - Weight:     sum of the weights of Edges.
//   - Components: number of connected components; len(Edges) == NumNodes()-Components.
type Forest struct {
	Edges      []int
	Weight     float64
	Components int
}

// Compute selects and runs the algorithm named by the options.
//
//	– MethodKruskal (default): Kruskal(t, w).
//	– MethodPrim:              Prim(t, w).
//	– anything else:           ErrUnknownMethod.
func Compute(t *topology.Topology, w []float64, opts ...Option) (*Forest, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	switch o.Method {
	case MethodKruskal:
		return Kruskal(t, w)
	case MethodPrim:
		return Prim(t, w)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, o.Method)
	}
}

// validate runs the checks shared by both algorithms, in order:
// nil topology, directed edges, weight length, NaN weights.
func validate(t *topology.Topology, w []float64) error {
	if t == nil {
		return ErrNilTopology
	}
	m := t.NumEdges()
	for i := 0; i < m; i++ {
		if e := t.Edge(i); e.Directed {
			return fmt.Errorf("%w: edge %s %s→%s", ErrDirected, e.ID, e.From, e.To)
		}
	}
	if len(w) != m {
		return fmt.Errorf("%w: got %d, want %d", ErrWeightsLength, len(w), m)
	}
	for i, x := range w {
		if math.IsNaN(x) {
			return fmt.Errorf("%w: edge %d", ErrBadWeight, i)
		}
	}

	return nil
}
