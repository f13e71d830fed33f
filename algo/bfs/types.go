// Package bfs runs breadth-first search over a graph.Graph using the
// engine's EdgeMap operator, returning parent links and frontier-by-
// round sizes. One EdgeMap call per round; the operator claims each
// destination via CAS from VIdNone to the source vertex.
package bfs

import (
	"errors"

	"github.com/katalvlaran/pargraph/runtime"
)

// ErrRootOutOfRange is returned when the requested root id is not in
// [0, n).
var ErrRootOutOfRange = errors.New("bfs: root vertex out of range")

// Options configures one BFS run.
type Options struct {
	// Threshold overrides EdgeMap's push/pull switchover point for
	// every round when set through WithThreshold (any value, zero
	// included); without WithThreshold, EdgeMap's default (m/20) applies.
	Threshold int64
	hasThresh bool
}

// Option configures Options.
type Option func(*Options)

// WithThreshold overrides the push/pull threshold passed to every
// round's EdgeMap call.
func WithThreshold(w int64) Option {
	return func(o *Options) {
		o.Threshold = w
		o.hasThresh = true
	}
}

// Result holds the outcome of a BFS run.
type Result struct {
	// Parents[v] is v's predecessor in the BFS tree; Parents[root] ==
	// root; unreached vertices keep runtime.VIdNone.
	Parents []runtime.VId

	// RoundSizes[i] is the frontier size at round i; RoundSizes[0] == 1
	// (the root), the last entry is 0 (the empty fixpoint).
	RoundSizes []int
}

// PathTo reconstructs the path from the BFS root to dest, or false if
// dest was never reached.
func (r *Result) PathTo(dest runtime.VId) ([]runtime.VId, bool) {
	if r.Parents[dest] == runtime.VIdNone {
		return nil, false
	}
	path := []runtime.VId{dest}
	for path[len(path)-1] != r.Parents[path[len(path)-1]] {
		cur := path[len(path)-1]
		path = append(path, r.Parents[cur])
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, true
}
