// This file declares the Graph type, its sentinel errors, construction
// options, and the NewGraph constructor. Mutation and query methods live in
// multigraph.go; structural hashing lives in fingerprint.go.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core multigraph operations.
var (
	// ErrEmptyVertexID indicates that a vertex or edge endpoint label is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")
)

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithExpectedVertices pre-sizes internal catalogs for n vertices.
// Purely a capacity hint; negative values are ignored.
func WithExpectedVertices(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.capHint = n
		}
	}
}

// Graph is a directed multigraph over string-labeled vertices.
//
// Parallel edges and self-loops are always allowed: every AddEdge appends one
// entry to the source's outgoing bag. Vertex enumeration order is insertion
// order. A single RWMutex guards all state; see package doc for the model.
type Graph struct {
	mu sync.RWMutex

	capHint int // construction-time capacity hint

	// adjacency maps each source vertex to its ordered bag of destinations.
	// Bag length is the vertex's outdegree; repeated entries are parallel edges.
	adjacency map[string][]string

	// inDegree counts, per vertex, its occurrences as a destination across
	// every bag. Maintained incrementally on AddEdge.
	inDegree map[string]int

	// order records vertex IDs in first-insertion order.
	order []string

	// present marks catalog membership for O(1) HasVertex.
	present map[string]struct{}

	// edgeCount is the total number of bag entries across all vertices.
	edgeCount int
}

// NewGraph creates an empty directed multigraph.
// Complexity: O(1).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}
	g.adjacency = make(map[string][]string, g.capHint)
	g.inDegree = make(map[string]int, g.capHint)
	g.present = make(map[string]struct{}, g.capHint)
	if g.capHint > 0 {
		g.order = make([]string, 0, g.capHint)
	}

	return g
}
