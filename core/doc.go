// Package core provides the fundamental directed multigraph used by the
// Eulerian-path and assembly packages.
//
// Overview:
//
//   - Graph stores string-labeled vertices in insertion order and keeps one
//     ordered "bag" of outgoing destinations per source vertex. Parallel
//     edges and self-loops are always permitted: each AddEdge call appends
//     one more entry to the source's bag, so duplicate read-pairs yield
//     duplicate edges, never a merge.
//   - Degree counts are maintained incrementally: indegree lives in an
//     explicit per-vertex counter updated on every AddEdge, and outdegree is
//     the length of the vertex's own bag. Both queries are O(1) — no global
//     adjacency scan is ever needed.
//   - A vertex that never appears as a source still exists in the vertex
//     catalog, and querying the successors of any absent or sink vertex
//     yields an empty bag, never an error.
//
// Concurrency:
//
//   - All mutations acquire a write lock; queries acquire a read lock on a
//     single sync.RWMutex. Building a graph from concurrent producers is
//     safe; algorithms consuming the graph read through snapshot accessors
//     (Adjacency, Successors) that return owned copies.
//
// Determinism:
//
//   - Vertices() reports vertex IDs in first-insertion order, and each bag
//     preserves AddEdge order. Algorithms that enumerate vertices (such as
//     start-vertex selection fallback) are therefore reproducible across
//     runs for identical input order.
//
// Errors (sentinel):
//
//   - ErrEmptyVertexID – a vertex or edge endpoint label is the empty string.
//   - ErrVertexNotFound – a degree/lookup operation referenced an unknown
//     vertex where existence is required.
//
// Complexity summary:
//
//   - AddVertex, AddEdge, HasVertex, OutDegree, InDegree: O(1) amortized.
//   - Vertices, Adjacency, Clone, Fingerprint: O(V+E).
package core
