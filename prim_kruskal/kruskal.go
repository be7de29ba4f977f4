// Package prim_kruskal provides an implementation of Kruskal’s minimum spanning
// forest algorithm over a topology.Topology and a per-call weight vector.
package prim_kruskal

import (
	"sort"

	"github.com/katalvlaran/modulus/topology"
)

// Kruskal computes a minimum spanning forest of t under weights w.
// It uses a disjoint-set (union-find) with path compression and union by rank.
//
// Error Conditions:
//   - ErrNilTopology  : t is nil.
//   - ErrDirected     : some edge is directed.
//   - ErrWeightsLength: len(w) != t.NumEdges().
//   - ErrBadWeight    : some weight is NaN.
//
// A disconnected topology is not an error: the result spans every component.
//
// Steps:
//  1. Validate inputs.
//  2. Collect edge indices, skipping self-loops.
//  3. Stable-sort by weight; ties keep ascending edge index.
//  4. Accept each edge joining two different DSU sets.
//  5. Stop early once n-1 edges are accepted.
//
// Complexity: O(E log E + α(V)·E). Memory: O(E + V).
func Kruskal(t *topology.Topology, w []float64) (*Forest, error) {
	if err := validate(t, w); err != nil {
		return nil, err
	}

	n := t.NumNodes()
	m := t.NumEdges()

	order := make([]int, 0, m)
	for i := 0; i < m; i++ {
		if e := t.Edge(i); e.U != e.V {
			order = append(order, i)
		}
	}
	sort.SliceStable(order, func(i, j int) bool {
		return w[order[i]] < w[order[j]]
	})

	ds := newDSU(n)
	f := &Forest{Edges: make([]int, 0, max(n-1, 0))}
	for _, idx := range order {
		if n > 0 && len(f.Edges) == n-1 {
			break
		}
		e := t.Edge(idx)
		if ds.union(e.U, e.V) {
			f.Edges = append(f.Edges, idx)
			f.Weight += w[idx]
		}
	}
	f.Components = n - len(f.Edges)

	return f, nil
}

// dsu is a disjoint-set forest over node indices.
type dsu struct {
	parent []int
	rank   []int
}

func newDSU(n int) *dsu {
	d := &dsu{parent: make([]int, n), rank: make([]int, n)}
	for i := range d.parent {
		d.parent[i] = i
	}

	return d
}

// find returns the root of u, halving the path as it goes.
func (d *dsu) find(u int) int {
	for d.parent[u] != u {
		d.parent[u] = d.parent[d.parent[u]]
		u = d.parent[u]
	}

	return u
}

// union merges the sets of u and v by rank. It reports false if they
// were already joined.
func (d *dsu) union(u, v int) bool {
	ru, rv := d.find(u), d.find(v)
	if ru == rv {
		return false
	}
	if d.rank[ru] < d.rank[rv] {
		ru, rv = rv, ru
	}
	d.parent[rv] = ru
	if d.rank[ru] == d.rank[rv] {
		d.rank[ru]++
	}

	return true
}
