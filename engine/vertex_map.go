// File: vertex_map.go
// Role: the vertex-map operator.
package engine

import (
	"github.com/katalvlaran/pargraph/runtime"
	"github.com/katalvlaran/pargraph/subset"
)

// VertexMap applies pred to every member of S in parallel and returns
// the subset of members for which pred returned true. S' inherits the
// universe of S. pred is responsible for the thread safety of any shared
// state it touches; the engine provides no synchronization between
// different v's.
func VertexMap(s *subset.VertexSubset, pred func(v runtime.VId) bool) *subset.VertexSubset {
	ids := s.Ids()
	n := len(ids)
	flags := make([]bool, n)
	runtime.ParallelFor(0, n, func(i int) {
		flags[i] = pred(ids[i])
	})

	idx, k := runtime.PackIndex(flags)
	out := make([]runtime.VId, k)
	for i, v := range idx[:k] {
		out[i] = ids[v]
	}
	return subset.FromSparse(s.Universe(), out)
}

// VertexMapNoOutput invokes apply on every member of S purely for its
// side effects and returns nothing.
func VertexMapNoOutput(s *subset.VertexSubset, apply func(v runtime.VId)) {
	ids := s.Ids()
	runtime.ParallelFor(0, len(ids), func(i int) {
		apply(ids[i])
	})
}
