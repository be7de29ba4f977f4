// Package bfs provides tunable options and error definitions
// for breadth-first search over a topology.Topology.
package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrNilTopology is returned if a nil topology pointer is passed.
	ErrNilTopology = errors.New("bfs: topology is nil")

	// ErrVertexOutOfRange is returned when a source index is not a node of the topology.
	ErrVertexOutOfRange = errors.New("bfs: vertex index out of range")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNotReached is returned by PathTo for nodes the search never reached.
	ErrNotReached = errors.New("bfs: vertex not reached")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when visiting a node. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(node, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	MaxDepth int

	// IgnoreDirection walks directed edges both ways (weak connectivity).
	IgnoreDirection bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
// background context, no depth limit, direction respected, no-op hook.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnVisit: func(int, int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(node, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithIgnoreDirection treats every edge as undirected.
func WithIgnoreDirection() Option {
	return func(o *Options) { o.IgnoreDirection = true }
}

// Result holds the outcome of a BFS traversal, indexed by node index:
//   - Order: nodes visited, in visit sequence.
//   - Depth: distance in edges from the nearest source, -1 if unreached.
//   - ParentEdge: edge used to reach the node, -1 for sources and unreached nodes.
type Result struct {
	Order      []int
	Depth      []int
	ParentEdge []int

	parent []int
}

// Reached reports whether node u was visited.
func (r *Result) Reached(u int) bool {
	return u >= 0 && u < len(r.Depth) && r.Depth[u] >= 0
}

// PathTo reconstructs the node sequence from a source to u.
func (r *Result) PathTo(u int) ([]int, error) {
	if !r.Reached(u) {
		return nil, fmt.Errorf("%w: %d", ErrNotReached, u)
	}
	path := []int{}
	for cur := u; cur >= 0; cur = r.parent[cur] {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
