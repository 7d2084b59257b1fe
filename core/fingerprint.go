// Structural fingerprinting of the multigraph.
//
// Fingerprint exists so callers can cheaply assert that two graphs are
// structurally identical — same vertex set, same per-vertex bag multisets —
// without walking both graphs pairwise. The assembly tests use it to verify
// that building a graph twice from the same read-pairs, in any order, yields
// the same structure.
package core

import (
	"encoding/binary"
	"sort"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint returns an order-insensitive structural hash of the graph.
//
// Two graphs fingerprint equally if and only if (up to hash collision) they
// have the same vertex set and, per vertex, the same multiset of outgoing
// destinations. Vertex insertion order and edge insertion order do not
// affect the result: the hash is computed over sorted vertices and sorted
// bag copies. Labels are length-prefixed before hashing, so no label
// content can alias record boundaries.
// Thread-safe: acquires a read lock.
//
// Complexity: O(V log V + Σ deg log deg) time, O(V+E) space.
func (g *Graph) Fingerprint() uint64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	// Canonical vertex enumeration: sorted copy of the catalog.
	ids := make([]string, len(g.order))
	copy(ids, g.order)
	sort.Strings(ids)

	d := xxhash.New()
	var lenBuf [8]byte
	writeLabel := func(s string) {
		binary.BigEndian.PutUint64(lenBuf[:], uint64(len(s)))
		_, _ = d.Write(lenBuf[:])
		_, _ = d.WriteString(s)
	}

	for _, id := range ids {
		writeLabel(id)
		// Canonical bag: sorted copy, so parallel edges collapse to a
		// deterministic run while multiplicity is preserved.
		bag := g.adjacency[id]
		dup := make([]string, len(bag))
		copy(dup, bag)
		sort.Strings(dup)
		binary.BigEndian.PutUint64(lenBuf[:], uint64(len(dup)))
		_, _ = d.Write(lenBuf[:])
		for _, to := range dup {
			writeLabel(to)
		}
	}

	return d.Sum64()
}
