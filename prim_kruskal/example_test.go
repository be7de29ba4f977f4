package prim_kruskal_test

import (
	"fmt"

	"github.com/katalvlaran/modulus/core"
	"github.com/katalvlaran/modulus/prim_kruskal"
	"github.com/katalvlaran/modulus/topology"
)

// ExampleKruskal demonstrates Kruskal’s algorithm on a triangle.
// The tree is {A–B, B–C} with total weight 3.
func ExampleKruskal() {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("B", "C", 2)
	_, _ = g.AddEdge("A", "C", 4)
	top, _ := topology.Enumerate(g)

	f, err := prim_kruskal.Kruskal(top, top.BaseWeights())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("Total: %g, Edges:", f.Weight)
	for _, i := range f.Edges {
		e := top.Edge(i)
		fmt.Printf(" %s-%s", e.From, e.To)
	}
	fmt.Println()
	// Output: Total: 3, Edges: A-B B-C
}

// ExamplePrim demonstrates Prim’s algorithm on a pentagon plus an isolated
// vertex. The result is a forest with two components.
func ExamplePrim() {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("A", "E", 12)
	_, _ = g.AddEdge("B", "C", 2)
	_, _ = g.AddEdge("C", "D", 3)
	_, _ = g.AddEdge("D", "E", 5)
	_ = g.AddVertex("Z")
	top, _ := topology.Enumerate(g)

	f, err := prim_kruskal.Prim(top, top.BaseWeights())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("Total: %g, Components: %d, Edges:", f.Weight, f.Components)
	for _, i := range f.Edges {
		e := top.Edge(i)
		fmt.Printf(" %s-%s", e.From, e.To)
	}
	fmt.Println()
	// Output: Total: 11, Components: 2, Edges: A-B B-C C-D D-E
}
