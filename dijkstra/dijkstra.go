// Package dijkstra implements Dijkstra's shortest-path algorithm on a
// topology.Topology with a caller-supplied weight vector.
//
// Dijkstra computes the minimum-cost path from a single source node to all
// other reachable nodes when every edge weight is non-negative. It settles
// nodes in order of increasing distance using a min-heap priority queue,
// relaxing incident edges as it goes.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each node is settled at most once: V extractions from the heap.
//   - Each successful relaxation pushes one entry: up to E pushes.
//   - Space: O(V + E)
//
// Notes on implementation choices:
//
//   - An upfront O(E) scan rejects negative weights before any work is done.
//   - Edges with weight ≥ InfEdgeThreshold are impassable walls.
//   - Exploration stops once the minimum distance in the heap exceeds MaxDistance.
//   - "Lazy" decrease-key: duplicates are pushed and stale entries skipped on pop.
//   - The heap is ordered by (distance, node index) and relaxation uses a strict
//     "<", so the chosen path is a pure function of (topology, weights).
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/modulus/topology"
)

// Distances computes shortest distances from node src to every node of t
// under the weight vector w (aligned with t's edge index, virtual edges included).
//
// Preconditions and validation (in order):
//  1. t must be non-nil (ErrNilTopology).
//  2. Options must be valid (ErrOptionViolation).
//  3. w must match t (topology.ErrWeightsLength, topology.ErrBadWeight).
//  4. src must be a node index (ErrVertexOutOfRange).
//  5. No entry of w can be negative (ErrNegativeWeight).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Distances(t *topology.Topology, w []float64, src int, opts ...Option) (*Result, error) {
	r, err := newRunner(t, w, src, -1, opts)
	if err != nil {
		return nil, err
	}
	r.process()

	return r.res, nil
}

// ShortestPath returns one minimum-cost path from src to dst.
// The search stops as soon as dst is settled.
//
// Validation is the same as Distances, with dst range-checked after src.
// Returns ErrNoPath when dst cannot be reached under w and the options.
//
// Complexity: O((V + E) log V) worst case.
func ShortestPath(t *topology.Topology, w []float64, src, dst int, opts ...Option) (*Path, error) {
	r, err := newRunner(t, w, src, dst, opts)
	if err != nil {
		return nil, err
	}
	r.process()

	return r.res.PathTo(dst)
}

// runner holds the mutable state for a single Dijkstra execution.
// Nothing in it is shared with the topology, so runs are independent.
type runner struct {
	top     *topology.Topology // read-only
	w       []float64          // read-only
	options Options
	target  int // node at which to stop, -1 for none
	res     *Result
	settled []bool
	pq      nodePQ
}

// newRunner validates the inputs and prepares the initial state.
func newRunner(t *topology.Topology, w []float64, src, dst int, opts []Option) (*runner, error) {
	// 1) Validate topology is non-nil
	if t == nil {
		return nil, ErrNilTopology
	}

	// 2) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 3) Validate weights shape
	if err := t.CheckWeights(w); err != nil {
		return nil, err
	}

	// 4) Validate endpoints
	n := t.NumNodes()
	if src < 0 || src >= n {
		return nil, fmt.Errorf("%w: source %d", ErrVertexOutOfRange, src)
	}
	if dst != -1 && (dst < 0 || dst >= n) {
		return nil, fmt.Errorf("%w: destination %d", ErrVertexOutOfRange, dst)
	}

	// 5) Pre-scan for negative weights. Fail fast.
	for i, x := range w {
		if x < 0 {
			e := t.Edge(i)
			return nil, fmt.Errorf("%w: edge %s %s→%s weight=%v", ErrNegativeWeight, e.ID, e.From, e.To, x)
		}
	}

	r := &runner{
		top:     t,
		w:       w,
		options: cfg,
		target:  dst,
		res: &Result{
			Source:   src,
			Dist:     make([]float64, n),
			PrevEdge: make([]int, n),
			prevNode: make([]int, n),
		},
		settled: make([]bool, n),
		pq:      make(nodePQ, 0, n),
	}
	r.init()

	return r, nil
}

// init sets every distance to +Inf and seeds the heap with the source.
func (r *runner) init() {
	for v := range r.res.Dist {
		r.res.Dist[v] = math.Inf(1)
		r.res.PrevEdge[v] = -1
		r.res.prevNode[v] = -1
	}
	src := r.res.Source
	r.res.Dist[src] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, nodeItem{node: src, dist: 0})
}

// process is the main loop. It terminates when the heap is empty, the
// target is settled, or the minimum distance exceeds MaxDistance.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(nodeItem)
		u := item.node

		// stale entry
		if r.settled[u] || item.dist > r.res.Dist[u] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.settled[u] = true
		if u == r.target {
			return
		}
		r.relax(u)
	}
}

// relax tries to improve every neighbour reachable from u in one step.
func (r *runner) relax(u int) {
	du := r.res.Dist[u]
	for _, e := range r.top.Incident(u) {
		if !r.top.Traversable(e, u) {
			continue
		}
		w := r.w[e]
		if w >= r.options.InfEdgeThreshold {
			continue
		}
		v := r.top.Opposite(e, u)
		if r.settled[v] {
			continue
		}
		nd := du + w
		if nd > r.options.MaxDistance {
			continue
		}
		// strict: the first edge to reach a distance keeps it. An unreached
		// node takes any distance, +Inf from an overflowing sum included.
		if r.res.Reached(v) && nd >= r.res.Dist[v] {
			continue
		}
		r.res.Dist[v] = nd
		r.res.PrevEdge[v] = e
		r.res.prevNode[v] = u
		heap.Push(&r.pq, nodeItem{node: v, dist: nd})
	}
}

// Reached reports whether some path from the source ends at v.
// Dist[v] may still be +Inf when the path's weights overflow float64.
func (r *Result) Reached(v int) bool {
	if v < 0 || v >= len(r.Dist) {
		return false
	}

	return v == r.Source || r.PrevEdge[v] != -1
}

// PathTo reconstructs the path from the source to v by walking PrevEdge.
// Returns ErrNoPath if v was not reached.
func (r *Result) PathTo(v int) (*Path, error) {
	if !r.Reached(v) {
		return nil, fmt.Errorf("%w: %d", ErrNoPath, v)
	}

	p := &Path{Cost: r.Dist[v]}
	for cur := v; cur != r.Source; cur = r.prevNode[cur] {
		p.Nodes = append(p.Nodes, cur)
		p.Edges = append(p.Edges, r.PrevEdge[cur])
	}
	p.Nodes = append(p.Nodes, r.Source)
	reverseInts(p.Nodes)
	reverseInts(p.Edges)
	if p.Edges == nil {
		p.Edges = []int{}
	}

	return p, nil
}

func reverseInts(s []int) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

// nodeItem is a heap entry: a node and its tentative distance.
type nodeItem struct {
	node int
	dist float64
}

// nodePQ is a min-heap of nodeItem ordered by (dist, node) ascending.
type nodePQ []nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].node < pq[j].node
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
