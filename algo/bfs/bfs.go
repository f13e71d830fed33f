// File: bfs.go
// Role: the BFS driver body.
package bfs

import (
	"github.com/katalvlaran/pargraph/engine"
	"github.com/katalvlaran/pargraph/graph"
	"github.com/katalvlaran/pargraph/runtime"
	"github.com/katalvlaran/pargraph/subset"
)

// bfsOperator claims each destination d by CAS'ing Parents[d] from
// VIdNone to s, returning true only on the claiming transition, so each
// d enters the output frontier exactly once.
type bfsOperator struct {
	parents []runtime.VId
}

func (o *bfsOperator) Cond(d runtime.VId) bool {
	return o.parents[d] == runtime.VIdNone
}

func (o *bfsOperator) Update(s, d runtime.VId) bool {
	if o.parents[d] == runtime.VIdNone {
		o.parents[d] = s
		return true
	}
	return false
}

func (o *bfsOperator) UpdateAtomic(s, d runtime.VId) bool {
	return runtime.CAS32(&o.parents[d], runtime.VIdNone, s)
}

// Compute runs BFS from root, returning Parents and per-round frontier
// sizes. Returns ErrRootOutOfRange if root is not a valid vertex.
func Compute(g *graph.Graph, root runtime.VId, opts ...Option) (*Result, error) {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	if int(root) >= g.N() {
		return nil, ErrRootOutOfRange
	}

	parents := make([]runtime.VId, g.N())
	for i := range parents {
		parents[i] = runtime.VIdNone
	}
	parents[root] = root

	op := &bfsOperator{parents: parents}
	frontier := subset.Singleton(g.N(), root)

	res := &Result{Parents: parents, RoundSizes: []int{frontier.Size()}}
	var edgeOpts []engine.Option
	if o.hasThresh {
		edgeOpts = append(edgeOpts, engine.WithThreshold(o.Threshold))
	}

	for !frontier.IsEmpty() {
		next, err := engine.EdgeMap(g, frontier, op, edgeOpts...)
		if err != nil {
			frontier.Release()
			return nil, err
		}
		frontier.Release()
		frontier = next
		res.RoundSizes = append(res.RoundSizes, frontier.Size())
	}
	frontier.Release()

	return res, nil
}
