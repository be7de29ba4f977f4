// Package core provides a thread-safe in-memory Graph implementation with a
// minimal, composable API surface. It is the caller-facing representation from
// which topology.Enumerate takes an immutable, index-based snapshot.
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Per-edge orientation in “mixed” graphs (WithMixedEdges + WithEdgeDirected)
//   - Parallel edges / multi-graphs (WithMultiEdges)
//   - Self-loops (WithLoops)
//   - Float64 base weights on every edge (NaN rejected with ErrBadWeight)
//   - Collision-free monotonic Edge.ID generation (“e1”, “e2”, …)
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj)
//
// Determinism:
//
//	Vertices()     – lexicographic ascending
//	Edges()        – insertion order (numeric suffix of Edge.ID, so e2 < e10)
//	Neighbors(id)  – insertion order of the incident edges
//	NeighborIDs(id)– lexicographic ascending, unique
//
// Core Methods:
//
//	AddVertex(id string) error                                   // O(1)
//	HasVertex(id string) bool                                    // O(1)
//	RemoveVertex(id string) error                                // O(E)
//	AddEdge(from, to string, weight float64, opts ...EdgeOption) (string, error) // O(1)
//	RemoveEdge(edgeID string) error                              // O(1)
//	HasEdge(from, to string) bool                                // O(1)
//	GetEdge(edgeID string) (*Edge, error)                        // O(1)
//	Neighbors(id string) ([]*Edge, error)                        // O(d·log d)
//	NeighborIDs(id string) ([]string, error)                     // O(d·log d)
//	Vertices() []string                                          // O(V·log V)
//	Edges() []*Edge                                              // O(E·log E)
//	Clone() *Graph / CloneEmpty() *Graph / Clear()
//
// Errors:
//
//	ErrEmptyVertexID        – zero-length vertex ID
//	ErrVertexNotFound       – missing vertex
//	ErrEdgeNotFound         – missing edge
//	ErrBadWeight            – NaN weight
//	ErrLoopNotAllowed       – self-loop when loops disabled
//	ErrMultiEdgeNotAllowed  – parallel edge when multi-edges disabled
//	ErrMixedEdgesNotAllowed – per-edge override without mixed-mode
package core
