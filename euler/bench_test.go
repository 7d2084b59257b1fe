package euler_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/strand/core"
	"github.com/katalvlaran/strand/euler"
)

// buildBenchCircuit creates a connected balanced multigraph with n vertices
// and roughly 2n edges: a Hamiltonian cycle for connectivity plus random
// extra cycles so every vertex stays degree-balanced. The generator is
// seeded deterministically for reproducible benchmarks.
func buildBenchCircuit(n int) *core.Graph {
	g := core.NewGraph(core.WithExpectedVertices(n))
	name := func(i int) string { return fmt.Sprintf("V%d", i) }

	// Base cycle V0→V1→...→V(n-1)→V0 keeps the graph connected and balanced.
	for i := 0; i < n; i++ {
		_ = g.AddEdge(name(i), name((i+1)%n))
	}

	// Extra random 3-cycles preserve per-vertex balance while adding
	// parallel-edge and branching pressure.
	r := rand.New(rand.NewSource(42))
	for i := 0; i < n/3; i++ {
		a, b, c := r.Intn(n), r.Intn(n), r.Intn(n)
		_ = g.AddEdge(name(a), name(b))
		_ = g.AddEdge(name(b), name(c))
		_ = g.AddEdge(name(c), name(a))
	}

	return g
}

// BenchmarkPath measures traversal throughput on a dense balanced
// multigraph with 2000 vertices and ~4000 edges.
func BenchmarkPath(b *testing.B) {
	g := buildBenchCircuit(2000) // pre-build graph once
	b.ResetTimer()               // exclude construction from timing
	for i := 0; i < b.N; i++ {
		if _, err := euler.Path(g); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkPath_DegreeCheck isolates the cost of the optional pre-check on
// the same graph.
func BenchmarkPath_DegreeCheck(b *testing.B) {
	g := buildBenchCircuit(2000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := euler.Path(g, euler.WithDegreeCheck()); err != nil {
			b.Fatal(err)
		}
	}
}
