// File: bc.go
// Role: the two-phase Brandes' algorithm body.
package bc

import (
	"github.com/katalvlaran/pargraph/engine"
	"github.com/katalvlaran/pargraph/graph"
	"github.com/katalvlaran/pargraph/runtime"
	"github.com/katalvlaran/pargraph/subset"
)

// forwardOp accumulates NumPaths[d] += NumPaths[s] and reports "this
// was the zero-to-nonzero transition" by comparing the pre-update value
// to zero, rather than keeping a separate claimed-bit. Cond consults
// the round-boundary visited array; forwardOp itself never writes to it
// (the vertex-map pass does, between rounds, so no race).
type forwardOp struct {
	numPaths []float64
	visited  []bool
}

func (o *forwardOp) Cond(d runtime.VId) bool { return !o.visited[d] }

func (o *forwardOp) Update(s, d runtime.VId) bool {
	old := o.numPaths[d]
	o.numPaths[d] = old + o.numPaths[s]
	return old == 0.0
}

func (o *forwardOp) UpdateAtomic(s, d runtime.VId) bool {
	old := runtime.WriteAddFloat64(&o.numPaths[d], o.numPaths[s]) - o.numPaths[s]
	return old == 0.0
}

// backwardOp applies the same zero-to-nonzero claim discipline over
// Dependencies instead of NumPaths.
type backwardOp struct {
	dependencies []float64
	visited      []bool
}

func (o *backwardOp) Cond(d runtime.VId) bool { return !o.visited[d] }

func (o *backwardOp) Update(s, d runtime.VId) bool {
	old := o.dependencies[d]
	o.dependencies[d] = old + o.dependencies[s]
	return old == 0.0
}

func (o *backwardOp) UpdateAtomic(s, d runtime.VId) bool {
	delta := o.dependencies[s]
	old := runtime.WriteAddFloat64(&o.dependencies[d], delta) - delta
	return old == 0.0
}

// Compute runs single-source betweenness centrality from root. Returns
// ErrRootOutOfRange if root is not a valid vertex.
func Compute(g *graph.Graph, root runtime.VId, opts ...Option) (*Result, error) {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	if int(root) >= g.N() {
		return nil, ErrRootOutOfRange
	}

	n := g.N()
	var edgeOpts []engine.Option
	if o.hasThresh {
		edgeOpts = append(edgeOpts, engine.WithThreshold(o.Threshold))
	}

	numPaths := make([]float64, n)
	numPaths[root] = 1.0
	visited := make([]bool, n)
	visited[root] = true

	levels := []*subset.VertexSubset{subset.Singleton(n, root)}
	frontier := levels[0]
	round := 0

	for !frontier.IsEmpty() {
		round++
		fop := &forwardOp{numPaths: numPaths, visited: visited}
		output, err := engine.EdgeMap(g, frontier, fop, edgeOpts...)
		if err != nil {
			return nil, err
		}
		engine.VertexMapNoOutput(output, func(v runtime.VId) { visited[v] = true })
		levels = append(levels, output)
		frontier = output
	}

	inverseNumPaths := make([]float64, n)
	for i, p := range numPaths {
		inverseNumPaths[i] = 1 / p
	}

	dependencies := make([]float64, n)
	for i := range visited {
		visited[i] = false
	}

	frontier = levels[round-1]
	engine.VertexMapNoOutput(frontier, func(v runtime.VId) {
		visited[v] = true
		dependencies[v] += inverseNumPaths[v]
	})

	// The backward sweep is always push-only (threshold -1) regardless
	// of what the forward phase used; the WithThreshold(-1) here
	// overrides whatever edgeOpts carried, last-option-wins.
	backwardOpts := append(append([]engine.Option(nil), edgeOpts...), engine.WithThreshold(-1), engine.WithOutputMode(engine.NoOutput))

	g.Transpose()
	for r := round - 2; r >= 0; r-- {
		bop := &backwardOp{dependencies: dependencies, visited: visited}
		if _, err := engine.EdgeMap(g, frontier, bop, backwardOpts...); err != nil {
			frontier.Release()
			g.Transpose()
			return nil, err
		}
		frontier.Release()
		frontier = levels[r]
		engine.VertexMapNoOutput(frontier, func(v runtime.VId) {
			visited[v] = true
			dependencies[v] += inverseNumPaths[v]
		})
	}
	frontier.Release()
	g.Transpose()

	for i := range dependencies {
		dependencies[i] = (dependencies[i] - inverseNumPaths[i]) / inverseNumPaths[i]
	}
	// A source is never between itself and another vertex.
	dependencies[root] = 0

	return &Result{NumPaths: numPaths, Dependencies: dependencies, Rounds: round}, nil
}
