// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm over a topology.Topology.
//
// Weights are supplied per call as a []float64 aligned with the topology's
// edge index, so the same topology may be searched under many weight vectors,
// concurrently if desired.
//
// Options:
//
//	– MaxDistance:      optional cap on distances to explore; nodes beyond this are skipped.
//	– InfEdgeThreshold: edges with weight >= this threshold are treated as impassable.
//
// Errors (sentinel):
//
//	– ErrNilTopology      if the provided topology pointer is nil.
//	– ErrVertexOutOfRange if a source or destination index is not a node.
//	– ErrNegativeWeight   if a negative edge weight is detected.
//	– ErrNoPath           if the destination cannot be reached.
//	– ErrOptionViolation  if MaxDistance < 0 or InfEdgeThreshold <= 0 (or NaN).
//	– topology.ErrWeightsLength / topology.ErrBadWeight for malformed weight slices.
package dijkstra

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilTopology indicates that a nil *topology.Topology was passed.
	ErrNilTopology = errors.New("dijkstra: topology is nil")

	// ErrVertexOutOfRange indicates a node index outside [0, NumNodes()).
	ErrVertexOutOfRange = errors.New("dijkstra: vertex index out of range")

	// ErrNegativeWeight indicates that a negative edge weight was detected.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrNoPath indicates that the destination is unreachable under the given weights.
	ErrNoPath = errors.New("dijkstra: no path to destination")

	// ErrOptionViolation indicates an invalid functional option value.
	ErrOptionViolation = errors.New("dijkstra: invalid option supplied")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// MaxDistance      – nodes whose distance would exceed this value are not explored.
//
//	Must be ≥ 0. Default is +Inf (no cap).
//
// InfEdgeThreshold – treat edges with weight ≥ this threshold as impassable.
//
//	Must be > 0. Default is +Inf, so only +Inf weights are impassable.
type Options struct {
	MaxDistance      float64
	InfEdgeThreshold float64

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithMaxDistance sets a maximum distance threshold.
// Negative or NaN values surface as ErrOptionViolation.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			o.err = fmt.Errorf("%w: MaxDistance must be non-negative (%v)", ErrOptionViolation, max)
			return
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight threshold at or above which edges are
// considered non-traversable. Zero, negative or NaN values surface as
// ErrOptionViolation.
func WithInfEdgeThreshold(threshold float64) Option {
	return func(o *Options) {
		if !(threshold > 0) {
			o.err = fmt.Errorf("%w: InfEdgeThreshold must be positive (%v)", ErrOptionViolation, threshold)
			return
		}
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns an Options struct initialized with defaults:
//   - MaxDistance:      +Inf (explore all reachable).
//   - InfEdgeThreshold: +Inf (only +Inf weights are walls).
func DefaultOptions() Options {
	return Options{
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}

// Path is one shortest path, expressed in topology indices.
//
// Nodes has len(Edges)+1 entries; Edges[i] joins Nodes[i] and Nodes[i+1].
// Cost is the sum of the weights of Edges.
type Path struct {
	Nodes []int
	Edges []int
	Cost  float64
}

// Result holds single-source distances.
//
//   - Dist[v]:     minimal distance from the source, +Inf if unreachable or
//     if every path to v overflows float64 (use Reached to tell them apart).
//   - PrevEdge[v]: edge entering v on one shortest path, -1 for the source
//     and unreachable nodes.
type Result struct {
	Source   int
	Dist     []float64
	PrevEdge []int

	prevNode []int
}
