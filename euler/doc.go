// Package euler finds Eulerian paths in directed multigraphs: walks that
// traverse every edge exactly once.
//
// Overview:
//
//   - StartVertex selects the traversal root by degree imbalance: the unique
//     vertex whose outdegree exceeds its indegree by one, falling back to
//     the first inserted vertex when the graph is perfectly balanced (a
//     closed Eulerian circuit can begin anywhere).
//   - Path performs an iterative, stack-based Hierholzer traversal. It never
//     recurses, so pathological chain graphs cannot exhaust the call stack.
//     Edges are consumed destructively from an owned adjacency snapshot; the
//     input graph itself is left untouched and remains reusable.
//
// Algorithm (Hierholzer, iterative):
//
//  1. Seed the traversal stack with the start vertex.
//  2. While the stack is non-empty: if the top vertex still has unconsumed
//     outgoing edges, detach one and push its destination; otherwise pop the
//     vertex onto the output.
//  3. Reverse the output to obtain the walk from start to end.
//
// Correctness guardrails:
//
//   - An optional pre-traversal validation (enable with WithDegreeCheck)
//     rejects graphs whose degree profile admits no Eulerian path: more
//     than one vertex with outdeg−indeg = 1, more than one with
//     indeg−outdeg = 1, or any imbalance of magnitude greater than one.
//   - A mandatory post-traversal check compares the walk length against
//     edge count + 1. A disconnected graph leaves edges unconsumed and the
//     walk short; that situation is reported as ErrDisconnected, never
//     returned as a silently truncated path.
//
// Complexity:
//
//   - Time:  O(V + E) — each edge is pushed and popped exactly once, and
//     the degree pre-check is a single pass over the vertex catalog.
//   - Space: O(V + E) for the adjacency snapshot, stack, and output walk.
//
// Errors (sentinel):
//
//   - ErrNilGraph        – the graph pointer is nil.
//   - ErrEmptyGraph      – the graph has no vertices (nothing to traverse).
//   - ErrVertexNotFound  – a WithStart override names an unknown vertex.
//   - ErrNoEulerianPath  – the degree profile rules out any Eulerian path.
//   - ErrDisconnected    – traversal finished with unconsumed edges.
//
// Example usage:
//
//	walk, err := euler.Path(g)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(walk) // every edge of g, exactly once
package euler
