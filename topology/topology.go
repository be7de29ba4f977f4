// SPDX-License-Identifier: MIT

package topology

import (
	"fmt"
	"math"

	"github.com/katalvlaran/modulus/core"
)

// Enumerate snapshots g into a Topology.
//
// Steps:
//  1. Node index i is the position of the vertex in g.Vertices().
//  2. Edge index i is the position of the edge in g.Edges() (insertion order).
//  3. Each edge is registered in the incident list of both endpoints
//     (self-loops once); lists are ascending by edge index.
//
// Enumerate is the only place indices are assigned. Callers must not mutate g
// while Enumerate runs; mutations afterwards are invisible to the Topology.
//
// Complexity: O(V log V + E log E).
func Enumerate(g *core.Graph) (*Topology, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	vertices := g.Vertices()
	edges := g.Edges()

	t := &Topology{
		nodes:     make([]string, 0, len(vertices)),
		nodeIndex: make(map[string]int, len(vertices)),
		edges:     make([]EdgeRef, 0, len(edges)),
		edgeIndex: make(map[string]int, len(edges)),
		base:      make([]float64, 0, len(edges)),
		incident:  make([][]int, 0, len(vertices)),
	}
	for _, id := range vertices {
		t.addNode(id)
	}

	for _, e := range edges {
		// An endpoint missing from the vertex listing means g changed between
		// the two reads; keep the snapshot self-consistent anyway.
		u := t.ensureNode(e.From)
		v := t.ensureNode(e.To)
		t.addEdge(EdgeRef{
			ID:       e.ID,
			From:     e.From,
			To:       e.To,
			U:        u,
			V:        v,
			Directed: e.Directed,
		}, e.Weight)
		if e.Directed {
			t.directed = true
		}
	}
	t.real = len(t.edges)

	return t, nil
}

// Augment returns a new Topology extended with virtual nodes and arcs.
// The receiver is not modified. Real node and edge indices are preserved;
// new nodes get indices from NumNodes() upwards and arcs from NumEdges()
// upwards, in argument order. Virtual arcs get IDs "v1", "v2", ... and base
// weight 0.
//
// Errors:
//   - ErrEmptyVertexID, ErrDuplicateVertex for bad node names.
//   - ErrVertexNotFound for arcs referencing unknown nodes.
//
// Complexity: O(V + E + len(nodes) + len(arcs)).
func (t *Topology) Augment(nodes []string, arcs []Arc) (*Topology, error) {
	h := &Topology{
		nodes:     append(make([]string, 0, len(t.nodes)+len(nodes)), t.nodes...),
		nodeIndex: make(map[string]int, len(t.nodes)+len(nodes)),
		edges:     append(make([]EdgeRef, 0, len(t.edges)+len(arcs)), t.edges...),
		edgeIndex: make(map[string]int, len(t.edges)+len(arcs)),
		base:      append(make([]float64, 0, len(t.base)+len(arcs)), t.base...),
		incident:  make([][]int, len(t.incident), len(t.incident)+len(nodes)),
		real:      t.real,
		directed:  t.directed,
	}
	for id, i := range t.nodeIndex {
		h.nodeIndex[id] = i
	}
	for id, i := range t.edgeIndex {
		h.edgeIndex[id] = i
	}
	for i, inc := range t.incident {
		h.incident[i] = append(make([]int, 0, len(inc)), inc...)
	}

	for _, id := range nodes {
		if id == "" {
			return nil, ErrEmptyVertexID
		}
		if _, exists := h.nodeIndex[id]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateVertex, id)
		}
		h.addNode(id)
	}

	for k, a := range arcs {
		u, ok := h.nodeIndex[a.From]
		if !ok {
			return nil, fmt.Errorf("%w: arc %d from %q", ErrVertexNotFound, k, a.From)
		}
		v, ok := h.nodeIndex[a.To]
		if !ok {
			return nil, fmt.Errorf("%w: arc %d to %q", ErrVertexNotFound, k, a.To)
		}
		h.addEdge(EdgeRef{
			ID:       fmt.Sprintf("v%d", k+1),
			From:     a.From,
			To:       a.To,
			U:        u,
			V:        v,
			Directed: a.Directed,
			Virtual:  true,
		}, 0)
	}

	return h, nil
}

// addNode appends a node; callers guarantee id is new.
func (t *Topology) addNode(id string) int {
	i := len(t.nodes)
	t.nodes = append(t.nodes, id)
	t.nodeIndex[id] = i
	t.incident = append(t.incident, nil)

	return i
}

func (t *Topology) ensureNode(id string) int {
	if i, ok := t.nodeIndex[id]; ok {
		return i
	}

	return t.addNode(id)
}

// addEdge appends e with the next index. Indices grow monotonically, so the
// incident lists stay ascending without sorting.
func (t *Topology) addEdge(e EdgeRef, w float64) {
	e.Index = len(t.edges)
	t.edges = append(t.edges, e)
	t.edgeIndex[e.ID] = e.Index
	t.base = append(t.base, w)
	t.incident[e.U] = append(t.incident[e.U], e.Index)
	if e.V != e.U {
		t.incident[e.V] = append(t.incident[e.V], e.Index)
	}
}

// NumNodes returns the number of nodes, virtual ones included.
func (t *Topology) NumNodes() int { return len(t.nodes) }

// NumEdges returns the number of edges, virtual ones included.
// Weight slices passed to algorithms must have exactly this length.
func (t *Topology) NumEdges() int { return len(t.edges) }

// NumReal returns m, the number of real edges. Indicator vectors have this length.
func (t *Topology) NumReal() int { return t.real }

// HasDirected reports whether any real edge is directed.
func (t *Topology) HasDirected() bool { return t.directed }

// Node returns the name of node i. It panics if i is out of range.
func (t *Topology) Node(i int) string { return t.nodes[i] }

// NodeIndex returns the index of the named node.
func (t *Topology) NodeIndex(id string) (int, bool) {
	i, ok := t.nodeIndex[id]

	return i, ok
}

// Edge returns the descriptor of edge i. It panics if i is out of range.
func (t *Topology) Edge(i int) EdgeRef { return t.edges[i] }

// EdgeIndex returns the index of the edge with the given core edge ID.
func (t *Topology) EdgeIndex(id string) (int, bool) {
	i, ok := t.edgeIndex[id]

	return i, ok
}

// Edges returns a copy of the real edge descriptors in index order.
func (t *Topology) Edges() []EdgeRef {
	out := make([]EdgeRef, t.real)
	copy(out, t.edges[:t.real])

	return out
}

// Incident returns the indices of edges touching node u, ascending.
// The slice is shared with the Topology and must not be modified.
func (t *Topology) Incident(u int) []int { return t.incident[u] }

// Opposite returns the endpoint of edge e that is not u (u itself for loops).
func (t *Topology) Opposite(e, u int) int {
	ref := t.edges[e]
	if ref.U == u {
		return ref.V
	}

	return ref.U
}

// Traversable reports whether edge e may be walked starting at node u.
func (t *Topology) Traversable(e, u int) bool {
	ref := t.edges[e]
	if ref.Directed {
		return ref.U == u
	}

	return ref.U == u || ref.V == u
}

// BaseWeights returns the real edges' weights recorded in the source graph,
// aligned with the enumeration. The slice is a fresh copy.
func (t *Topology) BaseWeights() []float64 {
	out := make([]float64, t.real)
	copy(out, t.base[:t.real])

	return out
}

// CheckWeights validates w against the full enumeration (virtual edges included).
//
// Errors:
//   - ErrWeightsLength if len(w) != NumEdges().
//   - ErrBadWeight if any entry is NaN.
//
// Complexity: O(E).
func (t *Topology) CheckWeights(w []float64) error {
	if len(w) != len(t.edges) {
		return fmt.Errorf("%w: got %d, want %d", ErrWeightsLength, len(w), len(t.edges))
	}
	for i, x := range w {
		if math.IsNaN(x) {
			return fmt.Errorf("%w: edge %d", ErrBadWeight, i)
		}
	}

	return nil
}

// Indicator returns a fresh 0/1 vector of length NumReal() with ones at the
// given edge indices. Virtual indices are ignored.
func (t *Topology) Indicator(edges []int) []float64 {
	out := make([]float64, t.real)
	for _, e := range edges {
		if e >= 0 && e < t.real {
			out[e] = 1
		}
	}

	return out
}
