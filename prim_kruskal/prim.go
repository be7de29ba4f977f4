// Package prim_kruskal provides an implementation of Prim’s minimum spanning
// forest algorithm over a topology.Topology and a per-call weight vector.
package prim_kruskal

import (
	"container/heap"

	"github.com/katalvlaran/modulus/topology"
)

// Prim computes a minimum spanning forest of t under weights w by growing a
// tree from each not-yet-visited node, in node-index order, using a min-heap
// of candidate edges ordered by (weight, edge index).
//
// Error Conditions: identical to Kruskal.
//
// Steps:
//  1. Validate inputs.
//  2. For each unvisited root r (ascending index):
//     a. mark r visited and push its incident non-loop edges;
//     b. pop the lightest edge; skip it if its far end is visited;
//     c. otherwise accept it, mark the far end and push its edges.
//  3. Components is the number of roots started.
//
// Complexity: O(E log E) time, O(V + E) memory.
func Prim(t *topology.Topology, w []float64) (*Forest, error) {
	if err := validate(t, w); err != nil {
		return nil, err
	}

	n := t.NumNodes()
	visited := make([]bool, n)
	f := &Forest{Edges: make([]int, 0, max(n-1, 0))}
	pq := make(edgePQ, 0, t.NumEdges())

	push := func(u int) {
		for _, e := range t.Incident(u) {
			v := t.Opposite(e, u)
			if v == u || visited[v] {
				continue
			}
			heap.Push(&pq, edgeItem{edge: e, to: v, weight: w[e]})
		}
	}

	for root := 0; root < n; root++ {
		if visited[root] {
			continue
		}
		f.Components++
		visited[root] = true
		push(root)

		for pq.Len() > 0 {
			it := heap.Pop(&pq).(edgeItem)
			if visited[it.to] {
				continue
			}
			visited[it.to] = true
			f.Edges = append(f.Edges, it.edge)
			f.Weight += it.weight
			push(it.to)
		}
	}

	return f, nil
}

// edgeItem is a candidate edge leading to node to.
type edgeItem struct {
	edge   int
	to     int
	weight float64
}

// edgePQ implements heap.Interface for a min-heap of edgeItem ordered by
// (weight, edge index).
type edgePQ []edgeItem

func (pq edgePQ) Len() int { return len(pq) }

func (pq edgePQ) Less(i, j int) bool {
	if pq[i].weight != pq[j].weight {
		return pq[i].weight < pq[j].weight
	}

	return pq[i].edge < pq[j].edge
}

func (pq edgePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *edgePQ) Push(x interface{}) { *pq = append(*pq, x.(edgeItem)) }

func (pq *edgePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	it := old[n-1]
	*pq = old[:n-1]

	return it
}
