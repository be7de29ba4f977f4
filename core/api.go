// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only configuration getters.
// Policy:
//   - No algorithms or hidden state here.
//   - Flags are fixed at construction; getters take muVert read lock only.

package core

// Directed reports the graph-wide default directedness applied to newly created edges.
//
// Notes:
//   - This does not indicate whether the graph currently contains directed edges;
//     use HasDirectedEdges for that.
//
// Complexity: O(1).
func (g *Graph) Directed() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.directed
}

// Looped reports whether self-loops (from==to) are permitted by policy.
// Complexity: O(1).
func (g *Graph) Looped() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowLoops
}

// Multigraph reports whether parallel edges between the same endpoints are permitted.
// Complexity: O(1).
func (g *Graph) Multigraph() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowMulti
}

// MixedEdges reports whether per-edge Directed overrides are permitted via WithEdgeDirected.
// Complexity: O(1).
func (g *Graph) MixedEdges() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowMixed
}
