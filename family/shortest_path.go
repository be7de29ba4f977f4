// SPDX-License-Identifier: MIT

package family

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/katalvlaran/modulus/bfs"
	"github.com/katalvlaran/modulus/core"
	"github.com/katalvlaran/modulus/dijkstra"
	"github.com/katalvlaran/modulus/topology"
)

// Names of the virtual endpoints added to the augmented topology.
// A graph already using either name is rejected with ErrConfiguration.
const (
	SourceNode = "__source__"
	SinkNode   = "__sink__"
)

// ShortestConnectingPath finds, for a weight vector rho, the cheapest path
// from any node of S to any node of T.
//
// It owns two immutable topologies: the enumeration of the caller's graph
// (m real edges) and an augmented copy H with a virtual source feeding every
// node of S and a virtual sink fed by every node of T through zero-weight
// directed arcs. Evaluate writes rho into a call-local weight buffer for H,
// so one instance may be evaluated from many goroutines at once.
type ShortestConnectingPath struct {
	base    *topology.Topology
	aug     *topology.Topology
	sources []string
	targets []string
	source  int // index of SourceNode in aug
	sink    int // index of SinkNode in aug

	// connected is false when no target is reachable even with every edge
	// open; Evaluate then fails without searching.
	connected bool

	log *zap.Logger
}

// PathResult is one evaluation of the path family.
//
//   - Path:      node sequence starting in S and ending in T, at least two nodes.
//   - Edges:     the len(Path)-1 real edges walked, in order.
//   - Cost:      sum of rho over Edges.
//   - Indicator: length-m 0/1 vector, 1 exactly at the indices of Edges.
type PathResult struct {
	Path      []string
	Edges     []topology.EdgeRef
	Cost      float64
	Indicator []float64
}

// NewShortestConnectingPath enumerates g once and builds the augmented
// topology for the node sets sources (S) and targets (T).
// Repeated IDs in S or T are collapsed. g is snapshotted: mutating it
// afterwards has no effect on the family.
//
// Errors (all wrap ErrConfiguration):
//   - g is nil, S is empty or T is empty.
//   - some S or T node is not in g; every missing node is reported.
//   - S and T share a node (a connecting path needs at least one edge).
//   - g already has a vertex named SourceNode or SinkNode.
//
// Directed edges are honoured: the path follows them from tail to head only.
//
// Complexity: O(V log V + E log E).
func NewShortestConnectingPath(g *core.Graph, sources, targets []string, opts ...Option) (*ShortestConnectingPath, error) {
	o := buildOptions(opts)

	// 1) Validate arguments
	if g == nil {
		return nil, fmt.Errorf("%w: graph is nil", ErrConfiguration)
	}
	if len(sources) == 0 {
		return nil, fmt.Errorf("%w: empty source set", ErrConfiguration)
	}
	if len(targets) == 0 {
		return nil, fmt.Errorf("%w: empty target set", ErrConfiguration)
	}
	sources, targets = dedupe(sources), dedupe(targets)

	// 2) Snapshot the graph
	base, err := topology.Enumerate(g)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}

	// 3) Every S and T node must exist; S and T must be disjoint
	var missing error
	for _, id := range sources {
		if _, ok := base.NodeIndex(id); !ok {
			missing = multierr.Append(missing, fmt.Errorf("source %q: %w", id, topology.ErrVertexNotFound))
		}
	}
	for _, id := range targets {
		if _, ok := base.NodeIndex(id); !ok {
			missing = multierr.Append(missing, fmt.Errorf("target %q: %w", id, topology.ErrVertexNotFound))
		}
	}
	if missing != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfiguration, missing)
	}
	if both := intersect(sources, targets); len(both) > 0 {
		return nil, fmt.Errorf("%w: nodes in both source and target sets: %s",
			ErrConfiguration, strings.Join(both, ", "))
	}

	// 4) Augment with the virtual endpoints
	arcs := make([]topology.Arc, 0, len(sources)+len(targets))
	for _, s := range sources {
		arcs = append(arcs, topology.Arc{From: SourceNode, To: s, Directed: true})
	}
	for _, t := range targets {
		arcs = append(arcs, topology.Arc{From: t, To: SinkNode, Directed: true})
	}
	aug, err := base.Augment([]string{SourceNode, SinkNode}, arcs)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}

	f := &ShortestConnectingPath{
		base:    base,
		aug:     aug,
		sources: sources,
		targets: targets,
		log:     o.Logger.With(zap.String("family", "shortest_connecting_path")),
	}
	f.source, _ = aug.NodeIndex(SourceNode)
	f.sink, _ = aug.NodeIndex(SinkNode)

	// 5) Structural reachability, once
	reach, err := bfs.Reachable(aug, []int{f.source})
	if err != nil {
		return nil, err
	}
	f.connected = reach[f.sink]

	f.log.Debug("family built",
		zap.Int("nodes", base.NumNodes()),
		zap.Int("edges", base.NumEdges()),
		zap.Int("sources", len(sources)),
		zap.Int("targets", len(targets)),
	)
	if !f.connected {
		f.log.Warn("no target reachable from the source set; every evaluation will fail",
			zap.Strings("sources", sources),
			zap.Strings("targets", targets),
		)
	}

	return f, nil
}

// Evaluate computes a shortest S–T path under rho.
//
// rho must have NumEdges() entries, none NaN or negative; +Inf closes an
// edge. Finite weights whose sum overflows still give a path, with Cost
// +Inf. tol is accepted as is and does not influence the result. Among
// equal-cost paths the choice is deterministic for a fixed rho but callers
// must not rely on which one is returned.
//
// Errors: ErrConfiguration for bad rho or a nil receiver, ErrNoPath when S
// and T are not connected under rho.
//
// Complexity: O((V + E) log V).
func (f *ShortestConnectingPath) Evaluate(rho []float64, tol float64) (*PathResult, error) {
	if f == nil {
		return nil, errNilFamily
	}
	if err := checkRho(rho, f.base.NumEdges(), true); err != nil {
		return nil, err
	}
	if !f.connected {
		return nil, fmt.Errorf("%w: targets unreachable from sources", ErrNoPath)
	}

	// virtual arcs keep weight 0
	w := make([]float64, f.aug.NumEdges())
	copy(w, rho)

	p, err := dijkstra.ShortestPath(f.aug, w, f.source, f.sink)
	if errors.Is(err, dijkstra.ErrNoPath) {
		f.log.Debug("no path under rho")
		return nil, fmt.Errorf("%w: %w", ErrNoPath, err)
	}
	if err != nil {
		return nil, fmt.Errorf("family: shortest path: %w", err)
	}

	// strip the virtual endpoints and the arcs touching them
	nodes := p.Nodes[1 : len(p.Nodes)-1]
	edges := p.Edges[1 : len(p.Edges)-1]

	res := &PathResult{
		Path:      make([]string, len(nodes)),
		Edges:     edgeRefs(f.aug, edges),
		Cost:      p.Cost,
		Indicator: f.aug.Indicator(edges),
	}
	for i, u := range nodes {
		res.Path[i] = f.aug.Node(u)
	}

	f.log.Debug("path evaluated",
		zap.Float64("cost", res.Cost),
		zap.Int("edges", len(res.Edges)),
		zap.String("from", res.Path[0]),
		zap.String("to", res.Path[len(res.Path)-1]),
	)

	return res, nil
}

// Direction returns only the indicator of Evaluate(rho, tol).
func (f *ShortestConnectingPath) Direction(rho []float64, tol float64) ([]float64, error) {
	res, err := f.Evaluate(rho, tol)
	if err != nil {
		return nil, err
	}

	return res.Indicator, nil
}

// Topology returns the enumeration of the caller's graph (no virtual parts).
func (f *ShortestConnectingPath) Topology() *topology.Topology { return f.base }

// NumEdges returns m, the required length of rho.
func (f *ShortestConnectingPath) NumEdges() int { return f.base.NumEdges() }

// Sources returns a copy of S after deduplication.
func (f *ShortestConnectingPath) Sources() []string { return append([]string(nil), f.sources...) }

// Targets returns a copy of T after deduplication.
func (f *ShortestConnectingPath) Targets() []string { return append([]string(nil), f.targets...) }

// intersect returns the IDs of a that also appear in b, in a's order.
func intersect(a, b []string) []string {
	in := make(map[string]struct{}, len(b))
	for _, id := range b {
		in[id] = struct{}{}
	}
	var out []string
	for _, id := range a {
		if _, ok := in[id]; ok {
			out = append(out, id)
		}
	}

	return out
}
