// Package euler implements an iterative Hierholzer traversal over the core
// directed multigraph. See doc.go for the full contract.
package euler

import (
	"fmt"

	"github.com/katalvlaran/strand/core"
)

// StartVertex selects the vertex an Eulerian traversal of g must begin at.
//
// Selection rules:
//  1. Primary: the first vertex (in insertion order) whose outdegree
//     exceeds its indegree by exactly one. In a graph admitting an open
//     Eulerian path there is at most one such vertex.
//  2. Fallback: the first inserted vertex. This covers balanced graphs
//     (closed Eulerian circuits), where any vertex is a valid start, and
//     keeps the choice deterministic for identical input order.
//
// Indegree is the per-vertex occurrence count across every outgoing bag,
// maintained incrementally by core.Graph — an O(1) lookup, never a global
// adjacency rescan.
//
// Errors:
//   - ErrNilGraph   : g is nil.
//   - ErrEmptyGraph : g has no vertices.
//
// Complexity: O(V).
func StartVertex(g *core.Graph) (string, error) {
	// 1. Validate the graph pointer.
	if g == nil {
		return "", ErrNilGraph
	}

	// 2. Snapshot the vertex catalog in insertion order.
	vertices := g.Vertices()
	if len(vertices) == 0 {
		return "", ErrEmptyGraph
	}

	// 3. Primary rule: unique outgoing surplus of one.
	for _, v := range vertices {
		if g.OutDegree(v)-g.InDegree(v) == 1 {
			return v, nil
		}
	}

	// 4. Fallback: balanced graph, start anywhere; pick the first inserted
	//    vertex for determinism.
	return vertices[0], nil
}

// Path computes an Eulerian path through g: an ordered walk of vertex
// labels, of length EdgeCount+1, using every edge exactly once.
//
// The traversal consumes an owned adjacency snapshot; g itself is not
// mutated and stays valid for further queries or a repeat traversal.
//
// Steps:
//  1. Apply functional options over DefaultOptions.
//  2. Validate: non-nil graph, non-empty vertex catalog, existing start
//     override if one was given.
//  3. Optional degree validation (WithDegreeCheck): reject degree profiles
//     that rule out any Eulerian path, before spending O(E) on traversal.
//  4. Resolve the start vertex (override or StartVertex selection).
//  5. Iterative Hierholzer loop: push while the top vertex has unconsumed
//     edges, pop to the output once it is exhausted.
//  6. Reverse the output, then verify every edge was consumed; a short walk
//     means unreachable edges and is reported as ErrDisconnected.
//
// Errors:
//   - ErrNilGraph, ErrEmptyGraph, ErrVertexNotFound (bad WithStart),
//     ErrNoEulerianPath (degree pre-check), ErrDisconnected (post-check).
//
// Complexity: O(V + E) time, O(V + E) space.
func Path(g *core.Graph, opts ...Option) ([]string, error) {
	// 1. Build the effective options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2. Validate the graph pointer.
	if g == nil {
		return nil, ErrNilGraph
	}
	if g.VertexCount() == 0 {
		return nil, ErrEmptyGraph
	}

	// 3. Validate the start override before any heavier work.
	if cfg.Start != "" && !g.HasVertex(cfg.Start) {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, cfg.Start)
	}

	// 4. Optional degree validation.
	if cfg.DegreeCheck {
		if err := validateDegrees(g); err != nil {
			return nil, err
		}
	}

	// 5. Resolve the start vertex.
	start := cfg.Start
	if start == "" {
		var err error
		if start, err = StartVertex(g); err != nil {
			return nil, err
		}
	}

	// 6. Traverse and verify completeness.
	return traverse(g, start)
}

// validateDegrees performs the structural Eulerian-path precondition check:
// at most one vertex may hold an outgoing surplus of one, at most one an
// incoming surplus of one, and no vertex may be imbalanced by more than one.
// Connectivity is NOT checked here; that is caught by the post-traversal
// completeness check in traverse.
//
// Complexity: O(V).
func validateDegrees(g *core.Graph) error {
	var surplus, deficit int // counts of +1 and −1 imbalanced vertices
	for _, v := range g.Vertices() {
		switch diff := g.OutDegree(v) - g.InDegree(v); {
		case diff == 0:
			// balanced, interior vertex of the walk
		case diff == 1:
			surplus++
		case diff == -1:
			deficit++
		default:
			return fmt.Errorf("%w: vertex %q imbalanced by %d", ErrNoEulerianPath, v, diff)
		}
	}
	if surplus > 1 || deficit > 1 {
		return fmt.Errorf("%w: %d surplus and %d deficit vertices", ErrNoEulerianPath, surplus, deficit)
	}

	return nil
}

// traverse runs the iterative Hierholzer loop from start and returns the
// completed walk. The adjacency snapshot is owned by this call and drained
// edge by edge; each loop iteration either consumes one edge (push) or
// retires one vertex (pop), so the loop runs exactly 2·E + stack-depth
// iterations and always terminates.
func traverse(g *core.Graph, start string) ([]string, error) {
	adj := g.Adjacency() // owned, destructively consumed
	edges := g.EdgeCount()

	// Stack seeded with the start vertex; output collects vertices in
	// reverse walk order.
	stack := make([]string, 1, edges+1)
	stack[0] = start
	out := make([]string, 0, edges+1)

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if bag := adj[top]; len(bag) > 0 {
			// Consume one outgoing edge. Which parallel edge goes first is
			// arbitrary; tail removal keeps it O(1).
			next := bag[len(bag)-1]
			adj[top] = bag[:len(bag)-1]
			stack = append(stack, next)
		} else {
			// Vertex exhausted: retire it from the stack to the output.
			stack = stack[:len(stack)-1]
			out = append(out, top)
		}
	}

	// Reverse in place: out was collected end-to-start.
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}

	// Completeness check: a walk over all edges has exactly edges+1 steps.
	// Fewer means some edges were unreachable from start.
	if len(out) != edges+1 {
		return nil, fmt.Errorf("%w: walked %d of %d edges", ErrDisconnected, len(out)-1, edges)
	}

	return out, nil
}
