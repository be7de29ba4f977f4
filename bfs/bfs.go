// Package bfs provides breadth-first search over a topology.Topology,
// returning unweighted distances, parent links, visit order, reachability
// and connected components.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/modulus/topology"
)

// walker encapsulates mutable BFS state.
type walker struct {
	top   *topology.Topology
	opts  Options
	queue []int
	res   *Result
}

// BFS runs a multi-source breadth-first search on t from the given node indices.
// Sources are visited first, in argument order; duplicates are ignored.
// Returns ErrNilTopology, ErrVertexOutOfRange, ErrOptionViolation,
// the context error on cancellation, or any OnVisit error.
//
// Complexity: O(V + E).
func BFS(t *topology.Topology, sources []int, opts ...Option) (*Result, error) {
	if t == nil {
		return nil, ErrNilTopology
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := t.NumNodes()
	for _, s := range sources {
		if s < 0 || s >= n {
			return nil, fmt.Errorf("%w: %d", ErrVertexOutOfRange, s)
		}
	}

	w := &walker{
		top:   t,
		opts:  o,
		queue: make([]int, 0, n),
		res: &Result{
			Order:      make([]int, 0, n),
			Depth:      make([]int, n),
			ParentEdge: make([]int, n),
			parent:     make([]int, n),
		},
	}
	for i := 0; i < n; i++ {
		w.res.Depth[i] = -1
		w.res.ParentEdge[i] = -1
		w.res.parent[i] = -1
	}
	for _, s := range sources {
		if w.res.Depth[s] < 0 {
			w.enqueue(s, 0, -1, -1)
		}
	}

	return w.res, w.loop()
}

// enqueue marks u reached at depth d via edge e from parent p.
func (w *walker) enqueue(u, d, e, p int) {
	w.res.Depth[u] = d
	w.res.ParentEdge[u] = e
	w.res.parent[u] = p
	w.queue = append(w.queue, u)
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		u := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, u)
		d := w.res.Depth[u]
		if err := w.opts.OnVisit(u, d); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", u, err)
		}
		if w.opts.MaxDepth > 0 && d+1 > w.opts.MaxDepth {
			continue
		}
		for _, e := range w.top.Incident(u) {
			if !w.opts.IgnoreDirection && !w.top.Traversable(e, u) {
				continue
			}
			v := w.top.Opposite(e, u)
			if w.res.Depth[v] < 0 {
				w.enqueue(v, d+1, e, u)
			}
		}
	}

	return nil
}

// Reachable reports, per node index, whether the node can be reached from any
// of the sources following edge directions.
//
// Complexity: O(V + E).
func Reachable(t *topology.Topology, sources []int) ([]bool, error) {
	res, err := BFS(t, sources)
	if err != nil {
		return nil, err
	}
	out := make([]bool, len(res.Depth))
	for i, d := range res.Depth {
		out[i] = d >= 0
	}

	return out, nil
}

// Components labels weakly connected components (direction ignored).
// Labels are assigned 0, 1, ... in order of the lowest node index in each
// component, so the labelling is deterministic.
//
// Complexity: O(V + E).
func Components(t *topology.Topology) ([]int, int, error) {
	if t == nil {
		return nil, 0, ErrNilTopology
	}
	n := t.NumNodes()
	labels := make([]int, n)
	for i := range labels {
		labels[i] = -1
	}
	count := 0
	queue := make([]int, 0, n)
	for s := 0; s < n; s++ {
		if labels[s] >= 0 {
			continue
		}
		labels[s] = count
		queue = append(queue[:0], s)
		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			for _, e := range t.Incident(u) {
				v := t.Opposite(e, u)
				if labels[v] < 0 {
					labels[v] = count
					queue = append(queue, v)
				}
			}
		}
		count++
	}

	return labels, count, nil
}
