// SPDX-License-Identifier: MIT

package converters

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/modulus/core"
)

var (
	// ErrNilGraph is returned for a nil source graph.
	ErrNilGraph = errors.New("converters: graph is nil")

	// ErrDirected is returned when an undirected target cannot hold a directed edge.
	ErrDirected = errors.New("converters: directed edges are not supported")
)

// FromGonum copies an undirected weighted gonum graph into a new core.Graph.
//
// Node IDs become decimal vertex IDs ("7", "-2", ...). Isolated nodes are
// kept. Each undirected edge is added once, in ascending (min ID, max ID)
// order, with the weight reported by src.Weight. Self-loops are skipped.
//
// Errors: ErrNilGraph, or a wrapped core error (NaN weight).
//
// Complexity: O(V log V + E log E).
func FromGonum(src graph.WeightedUndirected) (*core.Graph, error) {
	if src == nil {
		return nil, ErrNilGraph
	}

	nodes := graph.NodesOf(src.Nodes())
	sortNodes(nodes)

	g := core.NewGraph()
	for _, n := range nodes {
		if err := g.AddVertex(nodeID(n)); err != nil {
			return nil, err
		}
	}
	for _, u := range nodes {
		uid := u.ID()
		nbrs := graph.NodesOf(src.From(uid))
		sortNodes(nbrs)
		for _, v := range nbrs {
			vid := v.ID()
			if vid <= uid {
				continue
			}
			w, ok := src.Weight(uid, vid)
			if !ok {
				continue
			}
			if _, err := g.AddEdge(nodeID(u), nodeID(v), w); err != nil {
				return nil, fmt.Errorf("converters: edge %d-%d: %w", uid, vid, err)
			}
		}
	}

	return g, nil
}

// ToGonum copies an undirected core.Graph into a gonum simple graph.
//
// Vertex i of g.Vertices() becomes gonum node i; the returned map gives the
// node ID of every vertex. Parallel edges collapse to the lowest weight and
// self-loops are dropped, since simple graphs hold neither. Absent edges
// weigh +Inf and a node reaches itself at 0.
//
// Errors: ErrNilGraph, ErrDirected.
//
// Complexity: O(V log V + E log E).
func ToGonum(g *core.Graph) (*simple.WeightedUndirectedGraph, map[string]int64, error) {
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if g.Directed() || g.HasDirectedEdges() {
		return nil, nil, ErrDirected
	}

	dst := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	vertices := g.Vertices()
	ids := make(map[string]int64, len(vertices))
	for i, v := range vertices {
		ids[v] = int64(i)
		dst.AddNode(simple.Node(i))
	}

	for _, e := range g.Edges() {
		if e.From == e.To {
			continue
		}
		u, v := ids[e.From], ids[e.To]
		if prev := dst.WeightedEdge(u, v); prev != nil && prev.Weight() <= e.Weight {
			continue
		}
		dst.SetWeightedEdge(dst.NewWeightedEdge(simple.Node(u), simple.Node(v), e.Weight))
	}

	return dst, ids, nil
}

func nodeID(n graph.Node) string { return strconv.FormatInt(n.ID(), 10) }

func sortNodes(nodes []graph.Node) {
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].ID() < nodes[j].ID() })
}
