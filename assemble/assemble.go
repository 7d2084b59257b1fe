// Graph construction from read-pairs, overlap stitching, and the
// end-to-end Reconstruct entry point.
package assemble

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/strand/core"
	"github.com/katalvlaran/strand/euler"
	"github.com/katalvlaran/strand/kmer"
)

// Sentinel errors for assembly input validation.
var (
	// ErrEmptyInput indicates that no read-pairs were supplied.
	ErrEmptyInput = errors.New("assemble: no read-pairs supplied")

	// ErrEmptyLabel indicates a read-pair with an empty k-mer on either side.
	ErrEmptyLabel = errors.New("assemble: read-pair contains empty k-mer")
)

// BuildGraph constructs the directed multigraph induced by the read-pairs:
// one edge From → To per pair, inserted in input order. Duplicate pairs
// become parallel edges; the total edge count always equals len(pairs).
// The input slice is not mutated.
//
// Errors:
//   - ErrEmptyInput : pairs is empty.
//   - ErrEmptyLabel : a pair has an empty side (reported with its index).
//
// Complexity: O(len(pairs)).
func BuildGraph(pairs []kmer.Pair) (*core.Graph, error) {
	// 1. Reject empty input: an empty graph has no start vertex and nothing
	//    to reconstruct.
	if len(pairs) == 0 {
		return nil, ErrEmptyInput
	}

	// 2. Validate all labels up front, so a malformed pair cannot leave a
	//    half-built graph behind.
	for i, p := range pairs {
		if p.From == "" || p.To == "" {
			return nil, fmt.Errorf("%w: pair %d (%q→%q)", ErrEmptyLabel, i, p.From, p.To)
		}
	}

	// 3. Append one edge per pair, preserving order and multiplicity.
	g := core.NewGraph(core.WithExpectedVertices(len(pairs) + 1))
	for _, p := range pairs {
		if err := g.AddEdge(p.From, p.To); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// Stitch folds an Eulerian walk into the reconstructed sequence: the first
// label verbatim, then the final character of every subsequent label.
// Valid because consecutive walk labels are successive k-mers overlapping
// in all but their last character. An empty walk yields the empty string.
//
// Complexity: O(total output length).
func Stitch(walk []string) string {
	if len(walk) == 0 {
		return ""
	}

	var b strings.Builder
	b.Grow(len(walk[0]) + len(walk) - 1)
	b.WriteString(walk[0])
	for _, label := range walk[1:] {
		// Labels are validated non-empty at build time; the guard keeps
		// Stitch total for direct callers.
		if label == "" {
			continue
		}
		b.WriteByte(label[len(label)-1])
	}

	return b.String()
}

// Reconstruct recovers the source sequence from its read-pairs: build the
// multigraph, walk the Eulerian path through every pair exactly once, and
// stitch the walk by (k−1)-overlap. Options are forwarded to euler.Path
// (e.g. euler.WithDegreeCheck for fail-fast structural validation, or
// euler.WithStart to pin the traversal root).
//
// On any failure the sequence is empty and the error is one of the typed
// sentinels listed in the package documentation; a non-nil error never
// accompanies a partial result.
//
// Complexity: O(E) time and space, E = len(pairs).
func Reconstruct(pairs []kmer.Pair, opts ...euler.Option) (string, error) {
	g, err := BuildGraph(pairs)
	if err != nil {
		return "", err
	}

	walk, err := euler.Path(g, opts...)
	if err != nil {
		return "", err
	}

	return Stitch(walk), nil
}
