// Package topology takes an immutable, index-based snapshot of a core.Graph.
//
// Enumerate assigns every vertex a node index (position in g.Vertices(), i.e.
// lexicographic) and every edge an edge index (position in g.Edges(), i.e.
// insertion order). The resulting mapping never changes: a Topology has no
// mutating methods, and later changes to the source graph are not observed.
// Algorithms in dijkstra, prim_kruskal and bfs address nodes and edges purely
// by these indices and take weights as a separate []float64 aligned with the
// edge index, so a single Topology can be evaluated under many weight vectors,
// concurrently if desired.
//
// Augment derives a new Topology with extra virtual nodes and arcs appended
// after the real ones. Real indices are preserved, NumReal() is unchanged, and
// virtual edges are marked so callers can drop them from indicator vectors.
//
// Errors:
//
//	ErrNilGraph         – Enumerate(nil)
//	ErrWeightsLength    – weight slice length differs from NumEdges()
//	ErrBadWeight        – NaN weight
//	ErrDuplicateVertex  – virtual node collides with an existing node
//	ErrVertexNotFound   – arc endpoint unknown
//	ErrEmptyVertexID    – empty virtual node name
package topology
