// Package family provides extremal-structure oracles over a weighted graph:
// reusable computations bound to a fixed edge enumeration and re-evaluated
// under many edge-weight vectors rho, as an outer optimizer (p-modulus style
// projected subgradient, for example) would do.
//
// Families
//
//   - ShortestConnectingPath: cheapest path from a node set S to a node set T.
//     A virtual source feeds every node of S and every node of T feeds a
//     virtual sink through zero-weight arcs, reducing the set-to-set query to
//     one Dijkstra run. The virtual endpoints are stripped from the result.
//   - MinimumSpanningTree: minimum spanning forest (Kruskal by default,
//     Prim with WithMethod). Disconnected graphs yield a forest.
//
// Both return the structure together with a dense indicator: a fresh []float64
// of length m (the number of real edges) with 1 at the index of every edge in
// the structure and 0 elsewhere. Edge index i is the position of the edge in
// core.Graph.Edges() when the family was built (insertion order) and never
// changes for the life of the family.
//
// Contract
//
//	f, err := family.NewShortestConnectingPath(g, S, T, family.WithLogger(log))
//	res, err := f.Evaluate(rho, tol)   // res.Path, res.Edges, res.Cost, res.Indicator
//
//	t, err := family.NewMinimumSpanningTree(g)
//	res, err := t.Evaluate(rho, tol)   // res.Edges, res.Weight, res.Components, res.Indicator
//
//	dirs, err := family.EvaluateAll(ctx, f, rhos, tol, workers)
//
// rho is read, never retained or modified. tol is accepted for signature
// compatibility with outer solvers and does not change the result.
//
// Concurrency
//
//	Families are immutable after construction. Evaluate allocates its own
//	weight buffer, so concurrent calls on one instance are safe and return
//	the same result as sequential calls. EvaluateAll fans out over an
//	errgroup with a bounded number of workers.
//
// Errors
//
//	ErrConfiguration  malformed construction or call arguments
//	ErrNoPath         S and T not connected under rho (path family only)
//
// Lower-level sentinels (topology.ErrWeightsLength, topology.ErrBadWeight,
// dijkstra.ErrNegativeWeight, prim_kruskal.ErrDirected, ...) remain in the
// error chain.
package family
