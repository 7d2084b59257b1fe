// Mutation and query methods of the core Graph.
//
// All mutations acquire the write lock; queries acquire the read lock.
// Accessors that expose internal collections (Vertices, Successors,
// Adjacency) return owned copies, so callers may mutate the result freely.
package core

// AddVertex inserts the vertex with the given ID if absent.
// Re-adding an existing vertex is a no-op.
// Thread-safe: acquires a write lock.
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	g.addVertexLocked(id)

	return nil
}

// addVertexLocked registers id in the catalog, preserving insertion order.
// Caller must hold the write lock.
func (g *Graph) addVertexLocked(id string) {
	if _, exists := g.present[id]; exists {
		return
	}
	g.present[id] = struct{}{}
	g.order = append(g.order, id)
}

// AddEdge appends one directed edge from → to. Both endpoints are auto-added
// to the vertex catalog if absent. Parallel edges and self-loops are always
// permitted: each call appends exactly one entry to from's outgoing bag.
// Thread-safe: acquires a write lock.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	g.addVertexLocked(from)
	g.addVertexLocked(to)

	g.adjacency[from] = append(g.adjacency[from], to)
	g.inDegree[to]++
	g.edgeCount++

	return nil
}

// HasVertex reports whether the catalog contains the given vertex.
// Thread-safe: acquires a read lock.
//
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.present[id]

	return ok
}

// Vertices returns all vertex IDs in first-insertion order.
// The returned slice is a copy and safe to mutate.
// Thread-safe: acquires a read lock.
//
// Complexity: O(V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]string, len(g.order))
	copy(out, g.order)

	return out
}

// VertexCount returns the number of vertices in the catalog.
// Thread-safe: acquires a read lock.
//
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.order)
}

// EdgeCount returns the total number of edges (bag entries) in the graph.
// Thread-safe: acquires a read lock.
//
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// OutDegree returns the size of the vertex's outgoing bag. A vertex that is
// absent from the catalog, or that only ever appears as a destination, has
// outdegree 0 — missing bags behave as empty, never as an error.
// Thread-safe: acquires a read lock.
//
// Complexity: O(1).
func (g *Graph) OutDegree(id string) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency[id])
}

// InDegree returns the number of times the vertex occurs as a destination
// across every outgoing bag. Absent vertices have indegree 0.
// Thread-safe: acquires a read lock.
//
// Complexity: O(1).
func (g *Graph) InDegree(id string) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.inDegree[id]
}

// Successors returns a copy of the vertex's outgoing bag in edge-insertion
// order. Parallel edges appear as repeated entries. An absent vertex yields
// an empty (non-nil) slice.
// Thread-safe: acquires a read lock.
//
// Complexity: O(deg(id)).
func (g *Graph) Successors(id string) []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	bag := g.adjacency[id]
	out := make([]string, len(bag))
	copy(out, bag)

	return out
}

// Adjacency returns a deep copy of every outgoing bag, keyed by source
// vertex. Sources with empty bags are omitted from the map; consumers must
// treat a missing key as an empty bag. The copy is fully owned by the caller
// and may be destructively consumed (e.g. by an edge-walking traversal)
// without affecting the graph.
// Thread-safe: acquires a read lock.
//
// Complexity: O(V+E).
func (g *Graph) Adjacency() map[string][]string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make(map[string][]string, len(g.adjacency))
	for from, bag := range g.adjacency {
		dup := make([]string, len(bag))
		copy(dup, bag)
		out[from] = dup
	}

	return out
}

// Clone returns a structurally identical copy of the graph: same vertex
// catalog in the same insertion order, same per-vertex bags in the same edge
// order, same degree counters. The clone shares no mutable state with the
// original.
// Thread-safe: acquires a read lock on the source.
//
// Complexity: O(V+E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := &Graph{
		adjacency: make(map[string][]string, len(g.adjacency)),
		inDegree:  make(map[string]int, len(g.inDegree)),
		present:   make(map[string]struct{}, len(g.present)),
		order:     make([]string, len(g.order)),
		edgeCount: g.edgeCount,
	}
	copy(c.order, g.order)
	for id := range g.present {
		c.present[id] = struct{}{}
	}
	for id, deg := range g.inDegree {
		c.inDegree[id] = deg
	}
	for from, bag := range g.adjacency {
		dup := make([]string, len(bag))
		copy(dup, bag)
		c.adjacency[from] = dup
	}

	return c
}
