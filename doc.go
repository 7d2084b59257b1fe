// Package strand reconstructs linear sequences from paired k-mers by
// modeling read-pairs as edges of a directed multigraph and walking an
// Eulerian path through it.
//
// 🚀 What is strand?
//
//	A thread-safe, in-memory toolkit for sequence assembly by Eulerian walk:
//		• Core primitives: insertion-ordered directed multigraph with
//		  parallel edges, self-loops and O(1) degree queries
//		• Eulerian paths: start-vertex selection by degree imbalance and an
//		  iterative, stack-based Hierholzer traversal
//		• K-mer vocabulary: read-pair type, sequence decomposition and
//		  plain-text pair parsing
//		• Assembly: graph construction from read-pairs and (k−1)-overlap
//		  stitching of the resulting walk
//
// ✨ Why choose strand?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – R/W locks, typed sentinel errors, no silent
//     truncation: a caller receives either the full sequence or an error
//   - Deterministic – insertion order is preserved end to end, so the same
//     input always yields the same walk
//
// Under the hood, everything is organized under four subpackages:
//
//	core/     — directed multigraph: vertices, edge bags, degree counts
//	euler/    — start selection + Eulerian path traversal
//	kmer/     — read-pair type, decomposition, parsing
//	assemble/ — graph builder, stitcher, and the end-to-end Reconstruct
//
// Quick ASCII example:
//
//	AC ──▶ CT ──▶ TG ──▶ GA
//
//	three read-pairs chain into the walk AC,CT,TG,GA and stitch to "ACTGA".
//
// Dive into the package docs for full examples and error contracts.
//
//	go get github.com/katalvlaran/strand
package strand
