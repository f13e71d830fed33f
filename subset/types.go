// Package subset implements VertexSubset, the active-set data structure
// EdgeMap and VertexMap communicate through.
//
// A VertexSubset holds its elements in one of two encodings, chosen
// lazily by whichever operator last produced it: a sparse array of
// distinct ids, or a dense length-n bitmap. The encoding is an
// implementation detail; the mathematical identity of the set is its
// element set, not its representation, and the converters
// (ToSparse/ToDense) move between the two without changing it.
package subset

import "github.com/katalvlaran/pargraph/runtime"

type encoding int

const (
	sparseEnc encoding = iota
	denseEnc
)

// VertexSubset is a set of vertex identifiers drawn from [0, n).
//
// VertexSubset values are not safe for concurrent mutation; the engine
// hands out a fresh VertexSubset per operator call and the caller owns
// it exclusively until it is passed to the next call or Release'd.
type VertexSubset struct {
	n    int
	size int
	enc  encoding
	ids  []runtime.VId // valid when enc == sparseEnc
	bits bitset        // valid when enc == denseEnc
}

// Empty returns a VertexSubset of size 0 over universe [0, n).
func Empty(n int) *VertexSubset {
	return &VertexSubset{n: n, size: 0, enc: sparseEnc, ids: nil}
}

// Singleton returns a sparse VertexSubset containing exactly {v}.
func Singleton(n int, v runtime.VId) *VertexSubset {
	return &VertexSubset{n: n, size: 1, enc: sparseEnc, ids: []runtime.VId{v}}
}

// FromSparse wraps an already-distinct, in-range id slice as a sparse
// VertexSubset. The subset takes ownership of ids; callers must not
// reuse or mutate it afterward.
func FromSparse(n int, ids []runtime.VId) *VertexSubset {
	return &VertexSubset{n: n, size: len(ids), enc: sparseEnc, ids: ids}
}

// FromDense builds a dense VertexSubset from a []bool mask of length n;
// size is computed as the popcount.
func FromDense(n int, mask []bool) *VertexSubset {
	b := newBitset(n)
	size := 0
	for i, v := range mask {
		if v {
			b.set(uint32(i))
			size++
		}
	}
	return &VertexSubset{n: n, size: size, enc: denseEnc, bits: b}
}

// Size returns the number of members.
func (s *VertexSubset) Size() int { return s.size }

// Universe returns n, the fixed universe size this subset is drawn from.
func (s *VertexSubset) Universe() int { return s.n }

// IsEmpty reports whether Size() == 0.
func (s *VertexSubset) IsEmpty() bool { return s.size == 0 }

// IsDense reports the current encoding, for callers (EdgeMap's planner)
// that want to avoid an unnecessary conversion.
func (s *VertexSubset) IsDense() bool { return s.enc == denseEnc }

// Release marks the subset consumed and drops its backing storage for
// the garbage collector. Drivers call it once per subset when handing
// a frontier off to the next round; a pooled-allocator implementation
// would return storage to the pool here instead.
func (s *VertexSubset) Release() {
	s.ids = nil
	s.bits = bitset{}
	s.size = 0
}
