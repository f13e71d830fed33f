// File: edge_operator.go
// Role: the capability record EdgeMap invokes per candidate edge.
package engine

import "github.com/katalvlaran/pargraph/runtime"

// EdgeOperator supplies the three capabilities EdgeMap needs per
// candidate edge (s, d):
//
//   - Cond(d) prunes destinations that are no longer interesting. An
//     EdgeOperator that never prunes returns true unconditionally.
//   - Update(s, d) is invoked when the engine can guarantee no other
//     goroutine is concurrently touching d (pull mode: one goroutine per
//     destination).
//   - UpdateAtomic(s, d) is invoked when concurrent writers to d are
//     possible (push mode: many sources may target the same d) and must
//     internally use the runtime package's atomics for any shared state
//     keyed by d.
//
// Both Update and UpdateAtomic return true iff d should appear in the
// output subset. EdgeMap relies on the "claim on transition" discipline
// (e.g. CAS from unvisited to s) to return true on at most one
// qualifying edge per d; EdgeMap itself performs no deduplication
// beyond packing/bitmap set semantics.
type EdgeOperator interface {
	Cond(d runtime.VId) bool
	Update(s, d runtime.VId) bool
	UpdateAtomic(s, d runtime.VId) bool
}

// AlwaysTrueCond is embeddable by EdgeOperator implementations whose
// Cond never prunes (PageRank- and triangle-counting-style operators,
// where every destination stays interesting every round).
type AlwaysTrueCond struct{}

// Cond always returns true.
func (AlwaysTrueCond) Cond(runtime.VId) bool { return true }
