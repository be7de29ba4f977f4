// SPDX-License-Identifier: MIT

package topology

import "errors"

// Sentinel errors for topology construction and weight validation.
var (
	// ErrNilGraph indicates that Enumerate received a nil graph.
	ErrNilGraph = errors.New("topology: graph is nil")

	// ErrWeightsLength indicates a weight slice not aligned with the edge enumeration.
	ErrWeightsLength = errors.New("topology: weight vector length mismatch")

	// ErrBadWeight indicates a NaN weight.
	ErrBadWeight = errors.New("topology: weight is NaN")

	// ErrDuplicateVertex indicates a virtual node name already present in the topology.
	ErrDuplicateVertex = errors.New("topology: duplicate vertex")

	// ErrVertexNotFound indicates an arc endpoint that is not a node of the topology.
	ErrVertexNotFound = errors.New("topology: vertex not found")

	// ErrEmptyVertexID indicates an empty virtual node name.
	ErrEmptyVertexID = errors.New("topology: vertex ID is empty")
)

// EdgeRef describes one enumerated edge.
//
// U and V are the node indices of From and To. Index is the stable edge index;
// for real edges it lies in [0, NumReal()).
type EdgeRef struct {
	Index    int
	ID       string
	From     string
	To       string
	U        int
	V        int
	Directed bool
	Virtual  bool
}

// Arc is a virtual connection added by Augment. Endpoints are node names;
// either may be a node introduced in the same Augment call.
type Arc struct {
	From     string
	To       string
	Directed bool
}

// Topology is an immutable node/edge enumeration.
// All methods are safe for concurrent use.
type Topology struct {
	nodes     []string
	nodeIndex map[string]int
	edges     []EdgeRef
	edgeIndex map[string]int
	base      []float64
	incident  [][]int // node index → incident edge indices, ascending
	real      int     // number of real (non-virtual) edges
	directed  bool    // at least one real directed edge
}
