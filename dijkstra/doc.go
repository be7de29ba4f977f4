// Package dijkstra provides Dijkstra's shortest-path algorithm over an
// immutable topology.Topology, with edge weights supplied per call.
//
// Overview:
//
//   - Distances computes single-source distances and predecessor edges to
//     every node in O((V + E) log V).
//   - ShortestPath returns one minimum-cost path between two nodes, stopping
//     as soon as the destination is settled.
//   - The topology is never written, so any number of calls may run in
//     parallel against one snapshot, each with its own weight vector.
//
// Key features:
//
//   - Functional options fine-tune behavior without changing the API signature.
//   - MaxDistance: nodes farther than the cap are left unreached.
//   - InfEdgeThreshold: any edge with weight ≥ threshold is impassable.
//     With the default (+Inf), an edge weighted +Inf is a wall.
//   - Mixed edges: directed edges are walked from tail to head only,
//     undirected edges both ways.
//   - Deterministic tie-breaking: heap order is (distance, node index) and a
//     node keeps the first predecessor that reached its final distance.
//
// Error handling (sentinel errors):
//
//   - ErrNilTopology:      nil *topology.Topology.
//   - topology.ErrWeightsLength / topology.ErrBadWeight: malformed weights.
//   - ErrVertexOutOfRange: source or destination is not a node index.
//   - ErrNegativeWeight:   some weight is negative (fast O(E) pre-scan).
//   - ErrNoPath:           destination unreachable.
//   - ErrOptionViolation:  invalid MaxDistance or InfEdgeThreshold.
//
// API reference:
//
//	func Distances(t *topology.Topology, w []float64, src int, opts ...Option) (*Result, error)
//	func ShortestPath(t *topology.Topology, w []float64, src, dst int, opts ...Option) (*Path, error)
//	func (r *Result) PathTo(v int) (*Path, error)
//
// See also:
//
//   - topology.Enumerate / Augment: build the snapshot searched here.
//   - family.NewShortestConnectingPath: set-to-set paths via virtual endpoints.
package dijkstra
