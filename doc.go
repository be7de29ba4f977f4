// Package modulus provides extremal-structure oracles over weighted graphs:
// the two "families" an outer optimizer (for example a p-modulus solver)
// evaluates again and again under changing edge weights.
//
// What is in the box?
//
//	A thread-safe graph store and, on top of it, immutable index-based
//	snapshots searched with per-call weight vectors:
//		• core:         vertices & edges, monotonic edge IDs, deterministic order
//		• topology:     stable node/edge enumeration, virtual node augmentation
//		• bfs:          reachability and connected components
//		• dijkstra:     shortest paths under a weight slice
//		• prim_kruskal: minimum spanning forests under a weight slice
//		• family:       ShortestConnectingPath and MinimumSpanningTree
//		• converters:   gonum.org/v1/gonum/graph interop
//
// Each family is built once from a graph and answers
//
//	Evaluate(rho []float64, tol float64)
//
// with the optimal structure and a dense 0/1 indicator over the edge
// enumeration, which the outer solver uses as an extremal direction.
//
// Quick ASCII example:
//
//	    A───B
//	     \  │
//	      \ │
//	        C      edges enumerated AB=0, BC=1, CA=2
//
//	rho = [1 1 5], S = {A}, T = {C}  →  path [A B C], indicator [1 1 0]
//	rho = [1 2 3]                    →  tree {AB, BC}, indicator [1 1 0]
//
// See examples/ for a projected-subgradient modulus estimate driving both
// families.
//
//	go get github.com/katalvlaran/modulus
package modulus
