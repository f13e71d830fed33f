// File: convert.go
// Role: sparse<->dense encoding converters and the membership test pull
// mode relies on.
package subset

import "github.com/katalvlaran/pargraph/runtime"

// ToSparse returns a VertexSubset denoting the same set in sparse
// encoding, converting via parallel pack-index if s is currently dense.
// If s is already sparse, ToSparse returns s unchanged (no copy).
func (s *VertexSubset) ToSparse() *VertexSubset {
	if s.enc == sparseEnc {
		return s
	}

	flags := make([]bool, s.n)
	runtime.ParallelFor(0, s.n, func(i int) {
		flags[i] = s.bits.test(uint32(i))
	})
	idx, k := runtime.PackIndex(flags)

	ids := make([]runtime.VId, k)
	for i, v := range idx[:k] {
		ids[i] = runtime.VId(v)
	}
	return &VertexSubset{n: s.n, size: k, enc: sparseEnc, ids: ids}
}

// ToDense returns a VertexSubset denoting the same set in dense
// encoding, scattering ones into a zero bitmap if s is currently sparse.
// If s is already dense, ToDense returns s unchanged (no copy).
func (s *VertexSubset) ToDense() *VertexSubset {
	if s.enc == denseEnc {
		return s
	}

	b := newBitset(s.n)
	for _, id := range s.ids {
		b.set(id)
	}
	return &VertexSubset{n: s.n, size: s.size, enc: denseEnc, bits: b}
}

// Test reports whether v is a member: O(1) on a dense subset, a linear
// scan of the ids (O(size)) on a sparse one. Callers on a hot path (EdgeMap's pull planner)
// should call ToDense once up front and call Test on the result rather
// than calling Test directly on a possibly-sparse subset repeatedly.
func (s *VertexSubset) Test(v runtime.VId) bool {
	if s.enc == denseEnc {
		return s.bits.test(v)
	}
	for _, id := range s.ids {
		if id == v {
			return true
		}
	}
	return false
}

// Ids returns the sparse member array, converting first if necessary.
// The returned slice aliases subset-owned storage; callers must not
// mutate it.
func (s *VertexSubset) Ids() []runtime.VId {
	return s.ToSparse().ids
}

// ForEachDense converts to dense if necessary and invokes fn(v) for
// every member, in parallel. fn is responsible for the thread safety of
// anything it touches.
func (s *VertexSubset) ForEachDense(fn func(v runtime.VId)) {
	d := s.ToDense()
	runtime.ParallelFor(0, d.n, func(i int) {
		if d.bits.test(uint32(i)) {
			fn(runtime.VId(i))
		}
	})
}
