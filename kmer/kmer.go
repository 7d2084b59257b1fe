// Read-pair type, sequence decomposition, and pair-text parsing.
package kmer

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for pair production and parsing.
var (
	// ErrBadK indicates a non-positive k-mer length.
	ErrBadK = errors.New("kmer: k must be positive")

	// ErrShortSequence indicates the sequence cannot hold two overlapping
	// k-mers (length < k+1), so no pair can be produced from it.
	ErrShortSequence = errors.New("kmer: sequence shorter than k+1")

	// ErrBadPairText indicates pair text without a separator or with an
	// empty side.
	ErrBadPairText = errors.New("kmer: malformed pair text")
)

// Separator divides the two k-mers in the plain-text pair notation,
// e.g. "AC|CT".
const Separator = "|"

// Pair is one read-pair: the observation that k-mer To directly follows
// k-mer From in the source sequence, overlapping it in all but its last
// character. One Pair maps to one directed edge From → To.
type Pair struct {
	// From is the earlier k-mer.
	From string

	// To is the k-mer one position downstream of From.
	To string
}

// String renders the pair in the canonical "FROM|TO" notation.
func (p Pair) String() string {
	return p.From + Separator + p.To
}

// Decompose splits seq into its complete ordered chain of overlapping
// read-pairs of k-mer length k: pair i is (seq[i:i+k], seq[i+1:i+k+1]).
// A sequence of length n yields n−k pairs, and feeding them (in any order)
// to the assembler reconstructs seq exactly.
//
// Errors:
//   - ErrBadK          : k < 1.
//   - ErrShortSequence : len(seq) < k+1 (no two overlapping k-mers fit).
//
// Complexity: O(n) pairs, each a constant-size substring view.
func Decompose(seq string, k int) ([]Pair, error) {
	if k < 1 {
		return nil, fmt.Errorf("%w: k=%d", ErrBadK, k)
	}
	if len(seq) < k+1 {
		return nil, fmt.Errorf("%w: len=%d, k=%d", ErrShortSequence, len(seq), k)
	}

	pairs := make([]Pair, 0, len(seq)-k)
	for i := 0; i+k < len(seq); i++ {
		pairs = append(pairs, Pair{
			From: seq[i : i+k],
			To:   seq[i+1 : i+k+1],
		})
	}

	return pairs, nil
}

// ParsePair reads a single "FROM|TO" pair. Surrounding whitespace around
// the whole text and around each side is ignored.
//
// Errors: ErrBadPairText when the separator is absent or a side is empty.
func ParsePair(text string) (Pair, error) {
	from, to, found := strings.Cut(strings.TrimSpace(text), Separator)
	if !found {
		return Pair{}, fmt.Errorf("%w: %q (missing %q)", ErrBadPairText, text, Separator)
	}
	from = strings.TrimSpace(from)
	to = strings.TrimSpace(to)
	if from == "" || to == "" {
		return Pair{}, fmt.Errorf("%w: %q (empty side)", ErrBadPairText, text)
	}

	return Pair{From: from, To: to}, nil
}

// ParsePairs reads one "FROM|TO" pair per line, skipping blank lines.
// Parsing stops at the first malformed line, reported with its 1-based
// line number.
func ParsePairs(text string) ([]Pair, error) {
	lines := strings.Split(text, "\n")
	pairs := make([]Pair, 0, len(lines))
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		p, err := ParsePair(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		pairs = append(pairs, p)
	}

	return pairs, nil
}
