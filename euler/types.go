// Package euler defines sentinel errors and configuration options for the
// Eulerian path traversal. The algorithm itself lives in euler.go.
package euler

import "errors"

// Sentinel errors returned by the Eulerian path implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed in.
	ErrNilGraph = errors.New("euler: graph is nil")

	// ErrEmptyGraph indicates the graph contains no vertices, so there is
	// no start vertex and nothing to traverse.
	ErrEmptyGraph = errors.New("euler: graph is empty")

	// ErrVertexNotFound indicates a start-vertex override referenced a
	// vertex that does not exist in the graph.
	ErrVertexNotFound = errors.New("euler: start vertex not found in graph")

	// ErrNoEulerianPath indicates the degree profile of the graph rules out
	// any walk using every edge exactly once: more than one vertex with an
	// outgoing surplus, more than one with an incoming surplus, or any
	// vertex with an imbalance of magnitude greater than one.
	ErrNoEulerianPath = errors.New("euler: degree profile admits no eulerian path")

	// ErrDisconnected indicates traversal terminated with unconsumed edges:
	// the walk length did not reach edge count + 1, so some edges live in a
	// component unreachable from the start vertex.
	ErrDisconnected = errors.New("euler: graph is disconnected, edges left unconsumed")
)

// Options configures a single Path execution.
//
// Start       – optional start-vertex override; when empty, StartVertex
//
//	selects the root by degree imbalance.
//
// DegreeCheck – run the pre-traversal degree validation (default false; the
//
//	post-traversal completeness check always runs regardless).
type Options struct {
	// Start overrides automatic start-vertex selection when non-empty.
	Start string

	// DegreeCheck enables the O(V) pre-traversal degree validation.
	DegreeCheck bool
}

// Option represents a functional option for configuring Path.
type Option func(*Options)

// WithStart forces traversal to begin at the given vertex instead of the
// degree-imbalance choice. The vertex must exist in the graph; Path returns
// ErrVertexNotFound otherwise. Forcing an interior vertex of a non-circuit
// graph surfaces as ErrDisconnected after traversal.
func WithStart(id string) Option {
	return func(o *Options) {
		o.Start = id
	}
}

// WithDegreeCheck enables the pre-traversal degree validation, failing fast
// with ErrNoEulerianPath on a hopeless degree profile before any O(E) work.
// Without it, structurally invalid graphs are still rejected, but only
// after traversal, as ErrDisconnected.
func WithDegreeCheck() Option {
	return func(o *Options) {
		o.DegreeCheck = true
	}
}

// DefaultOptions returns the Options used when no functional options are
// supplied: automatic start selection, no degree pre-check.
//
// Complexity: O(1) to construct.
func DefaultOptions() Options {
	return Options{
		Start:       "",
		DegreeCheck: false,
	}
}
