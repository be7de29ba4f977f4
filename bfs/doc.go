// Package bfs provides breadth-first search over a topology.Topology.
//
// What
//
//   - Multi-source BFS returning visit Order, per-node Depth and ParentEdge.
//   - Reachable: which nodes can be reached from a source set, honouring
//     edge direction (used to detect S/T disconnection once, at family build time).
//   - Components: weakly connected component labels and their count.
//
// Determinism
//
//	topology.Incident lists edges in ascending index order and sources are
//	seeded in argument order, so the visit sequence is fully reproducible.
//
// Complexity (V = nodes, E = edges)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Errors
//
//	ErrNilTopology, ErrVertexOutOfRange, ErrOptionViolation, ErrNotReached,
//	plus ctx.Err() on cancellation and wrapped OnVisit errors.
package bfs
