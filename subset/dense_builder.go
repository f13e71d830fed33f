// File: dense_builder.go
// Role: lets callers outside this package (EdgeMap's pull-mode
// materialization) build a dense VertexSubset bit-by-bit without paying
// for an intermediate []bool mask.
package subset

import "github.com/katalvlaran/pargraph/runtime"

// DenseBuilder accumulates set bits for a single VertexSubset of
// universe n. Set is safe to call concurrently from multiple
// goroutines; Build must only run once every Set call has returned.
type DenseBuilder struct {
	b bitset
}

// NewDenseBuilder allocates a zeroed bitmap for universe n.
func NewDenseBuilder(n int) *DenseBuilder {
	return &DenseBuilder{b: newBitset(n)}
}

// Set marks v as a member. Safe to call concurrently for different v
// from different goroutines, even when two v's share one backing
// uint64 word: the word update is a CAS retry loop rather than a plain
// read-modify-write.
func (d *DenseBuilder) Set(v runtime.VId) {
	word := &d.b.words[v/64]
	mask := uint64(1) << (v % 64)
	for {
		old := *word
		if old&mask != 0 {
			return
		}
		if runtime.CAS64(word, old, old|mask) {
			return
		}
	}
}

// Build finalizes the bitmap into a VertexSubset, computing size as the
// popcount.
func (d *DenseBuilder) Build() *VertexSubset {
	return &VertexSubset{n: d.b.n, size: d.b.popCount(), enc: denseEnc, bits: d.b}
}
