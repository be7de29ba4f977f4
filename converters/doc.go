// Package converters provides two-way adapters between core.Graph and
// gonum.org/v1/gonum/graph, so graphs built upstream with gonum can feed the
// families, and family inputs can be checked with gonum's own algorithms.
//
//	FromGonum(src graph.WeightedUndirected) (*core.Graph, error)
//	ToGonum(g *core.Graph) (*simple.WeightedUndirectedGraph, map[string]int64, error)
//
// Determinism: FromGonum adds edges in ascending (min ID, max ID) order, so
// the edge enumeration of the resulting graph depends only on src's content,
// not on gonum's map iteration order.
package converters
