// Package kmer defines the read-pair vocabulary shared by the graph builder
// and the reconstructor, plus helpers for producing and parsing pairs.
//
// A Pair is one observed adjacency between two k-mers: the read-pair
// (From, To) asserts that the k-mer To follows the k-mer From in the source
// sequence, overlapping it in all but its last character. Each Pair becomes
// exactly one directed edge during graph construction; repeated pairs are
// repeated edges.
//
// Helpers:
//
//   - Decompose splits a known sequence into its full chain of overlapping
//     pairs — the exact inverse of assemble.Stitch. It exists for tests,
//     benchmarks, and round-trip validation of assembled output.
//   - ParsePair / ParsePairs read the plain "FROM|TO" notation used in test
//     fixtures. Callers owning richer formats (FASTA headers, TSV exports)
//     are expected to parse those themselves and hand this library Pairs.
//
// Errors (sentinel):
//
//   - ErrBadK          – k is not positive.
//   - ErrShortSequence – the sequence is too short to hold two overlapping
//     k-mers (length < k+1).
//   - ErrBadPairText   – pair text is missing the separator or has an empty
//     side.
package kmer
