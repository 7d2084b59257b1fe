// Package euler_test provides runnable examples for the Eulerian path API.
// Each example is runnable via “go test -run Example”, showing both code and
// expected output.
package euler_test

import (
	"fmt"

	"github.com/katalvlaran/strand/core"
	"github.com/katalvlaran/strand/euler"
)

// ExamplePath demonstrates walking an open chain of read-pair edges.
// Complexity: O(V+E) — each edge is pushed and popped exactly once.
func ExamplePath() {
	// 1) Build a directed multigraph with one edge per read-pair.
	g := core.NewGraph()
	_ = g.AddEdge("AC", "CT")
	_ = g.AddEdge("CT", "TG")
	_ = g.AddEdge("TG", "GA")

	// 2) Compute the Eulerian path. The start is chosen automatically:
	//    "AC" is the only vertex whose outdegree exceeds its indegree.
	walk, err := euler.Path(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3) The walk visits every edge exactly once: |walk| = edges + 1.
	fmt.Println(walk)
	// Output: [AC CT TG GA]
}

// ExamplePath_circuit demonstrates the balanced-circuit case: every vertex
// has equal in- and outdegree, so the walk starts at the first inserted
// vertex and closes back on it.
func ExamplePath_circuit() {
	g := core.NewGraph()
	_ = g.AddEdge("A", "B")
	_ = g.AddEdge("B", "C")
	_ = g.AddEdge("C", "A")

	walk, err := euler.Path(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(walk)
	// Output: [A B C A]
}

// ExampleStartVertex shows the degree-imbalance rule in isolation.
func ExampleStartVertex() {
	g := core.NewGraph()
	_ = g.AddEdge("CT", "TG")
	_ = g.AddEdge("AC", "CT") // the chain head, inserted second

	start, err := euler.StartVertex(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("start:", start)
	// Output: start: AC
}

// ExamplePath_withDegreeCheck demonstrates failing fast on a graph whose
// degree profile admits no Eulerian path.
func ExamplePath_withDegreeCheck() {
	// Two disjoint open chains: two vertices hold an outgoing surplus.
	g := core.NewGraph()
	_ = g.AddEdge("AA", "AB")
	_ = g.AddEdge("CC", "CD")

	_, err := euler.Path(g, euler.WithDegreeCheck())
	fmt.Println(err)
	// Output: euler: degree profile admits no eulerian path: 2 surplus and 2 deficit vertices
}
