// Package assemble reconstructs a linear sequence from paired k-mers.
//
// Overview:
//
//   - BuildGraph turns an ordered list of read-pairs into a directed
//     multigraph: one edge per pair, in input order, duplicates preserved
//     as parallel edges. Labels that only ever appear as destinations still
//     enter the vertex catalog, so degree queries see the whole graph.
//   - Stitch folds an Eulerian walk back into a sequence: the first label
//     verbatim, then the final character of every subsequent label, per the
//     (k−1)-overlap assumption between consecutive k-mers.
//   - Reconstruct is the end-to-end entry point: build the graph, walk the
//     Eulerian path, stitch the result. The caller receives either the
//     complete sequence or a typed error — never a silently truncated
//     string.
//
// Data flow:
//
//	read-pairs → BuildGraph → multigraph → euler.Path → walk → Stitch → sequence
//
// Failure taxonomy:
//
//   - assemble.ErrEmptyInput     – no read-pairs were supplied.
//   - assemble.ErrEmptyLabel     – a pair contains an empty k-mer.
//   - euler.ErrDisconnected      – the pairs split into unreachable groups.
//   - euler.ErrNoEulerianPath    – degree profile rules out a single walk
//     (only with euler.WithDegreeCheck).
//
// What this package does not do: it does not verify that the input pairs
// originate from one consistent source sequence, does not enumerate
// alternative walks when several exist, and performs no sequencing
// error-correction. Garbage pairs yield either an error or one valid walk
// of the garbage.
//
// Example usage:
//
//	seq, err := assemble.Reconstruct([]kmer.Pair{
//	    {From: "AC", To: "CT"},
//	    {From: "CT", To: "TG"},
//	    {From: "TG", To: "GA"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(seq) // "ACTGA"
package assemble
