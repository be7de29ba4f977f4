// Package prim_kruskal computes minimum spanning forests over an undirected
// topology.Topology with a per-call weight vector: Kruskal’s algorithm and
// Prim’s algorithm.
//
// What & Why
//
//   - A minimum spanning forest picks, for every connected component, a tree
//     T that touches all of the component’s nodes while minimizing the sum of
//     edge weights. On a connected graph with n nodes it has n−1 edges; with k
//     components it has n−k.
//   - Disconnection is therefore not an error: both algorithms return the
//     forest and its component count.
//
// Algorithms Provided
//
//   - Kruskal(t, w) (*Forest, error)
//
//   - Strategy: stable sort of edge indices by weight, then union-find with
//     path halving and union by rank. Ties keep ascending edge index.
//
//   - Complexity: O(E log E + α(V)·E) time, O(V + E) space.
//
//   - Prim(t, w) (*Forest, error)
//
//   - Strategy: grow a tree from each unvisited node in index order with a
//     min-heap of candidate edges ordered by (weight, edge index).
//
//   - Complexity: O(E log E) time, O(V + E) space.
//
//   - Compute(t, w, WithMethod(...)) dispatches on MethodKruskal (default) or MethodPrim.
//
// Weights
//
//   - Negative and ±Inf weights are legal; NaN is rejected with ErrBadWeight.
//   - Self-loops never join two components and are skipped.
//   - Parallel edges compete on weight; the lighter one wins.
//
// Both algorithms return forests of equal total weight. When weights are not
// distinct they may pick different edge sets; each is deterministic for a
// fixed (topology, weights) pair.
//
// Errors
//
//   - ErrNilTopology, ErrDirected, ErrWeightsLength, ErrBadWeight, ErrUnknownMethod.
package prim_kruskal
