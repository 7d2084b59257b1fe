package core_test

import (
	"testing"

	"github.com/katalvlaran/strand/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// edge is a compact test fixture for describing graph content.
type edge struct{ from, to string }

// buildFrom constructs a graph from the given edges in order.
func buildFrom(t *testing.T, edges []edge) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e.from, e.to))
	}

	return g
}

// TestFingerprint_InsertionOrderInsensitive verifies that the same edge
// multiset produces the same fingerprint regardless of insertion order.
func TestFingerprint_InsertionOrderInsensitive(t *testing.T) {
	a := buildFrom(t, []edge{{"AC", "CT"}, {"CT", "TG"}, {"TG", "GA"}})
	b := buildFrom(t, []edge{{"TG", "GA"}, {"AC", "CT"}, {"CT", "TG"}})

	assert.Equal(t, a.Fingerprint(), b.Fingerprint())
}

// TestFingerprint_MultiplicityMatters verifies that parallel edges are part
// of the structure: dropping or adding a duplicate changes the hash.
func TestFingerprint_MultiplicityMatters(t *testing.T) {
	single := buildFrom(t, []edge{{"AC", "CT"}})
	double := buildFrom(t, []edge{{"AC", "CT"}, {"AC", "CT"}})

	assert.NotEqual(t, single.Fingerprint(), double.Fingerprint())
}

// TestFingerprint_VertexSetMatters verifies that an isolated vertex is part
// of the structure even with no incident edges.
func TestFingerprint_VertexSetMatters(t *testing.T) {
	bare := buildFrom(t, []edge{{"AC", "CT"}})

	extra := buildFrom(t, []edge{{"AC", "CT"}})
	require.NoError(t, extra.AddVertex("GG"))

	assert.NotEqual(t, bare.Fingerprint(), extra.Fingerprint())
}

// TestFingerprint_LabelBoundaries verifies that length-prefixing keeps
// differently-split labels from aliasing each other.
func TestFingerprint_LabelBoundaries(t *testing.T) {
	a := buildFrom(t, []edge{{"AB", "C"}})
	b := buildFrom(t, []edge{{"A", "BC"}})

	assert.NotEqual(t, a.Fingerprint(), b.Fingerprint())
}

// TestFingerprint_EmptyGraphStable verifies the degenerate case is defined
// and reproducible.
func TestFingerprint_EmptyGraphStable(t *testing.T) {
	assert.Equal(t, core.NewGraph().Fingerprint(), core.NewGraph().Fingerprint())
}
