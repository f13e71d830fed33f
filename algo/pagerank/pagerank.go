// File: pagerank.go
// Role: the iterative PageRank driver body.
package pagerank

import (
	"math"

	"github.com/katalvlaran/pargraph/engine"
	"github.com/katalvlaran/pargraph/graph"
	"github.com/katalvlaran/pargraph/runtime"
	"github.com/katalvlaran/pargraph/subset"
)

// prOp's cond is always true (every vertex participates every round);
// both update variants distribute p_curr[s] evenly over s's
// out-neighbors into p_next.
type prOp struct {
	engine.AlwaysTrueCond
	g     *graph.Graph
	pCurr []float64
	pNext []float64
}

func (o *prOp) Update(s, d runtime.VId) bool {
	o.pNext[d] += o.pCurr[s] / float64(o.g.OutDegree(s))
	return true
}

func (o *prOp) UpdateAtomic(s, d runtime.VId) bool {
	runtime.WriteAddFloat64(&o.pNext[d], o.pCurr[s]/float64(o.g.OutDegree(s)))
	return true
}

// Compute runs PageRank to convergence (or MaxIters, whichever first).
func Compute(g *graph.Graph, opts ...Option) (*Result, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n := g.N()
	oneOverN := 1 / float64(n)
	addedConstant := (1 - o.Damping) * oneOverN

	pCurr := make([]float64, n)
	for i := range pCurr {
		pCurr[i] = oneOverN
	}
	pNext := make([]float64, n)

	mask := make([]bool, n)
	for i := range mask {
		mask[i] = true
	}
	frontier := subset.FromDense(n, mask)

	converged := false
	iterations := 0
	for iter := 0; iter < o.MaxIters; iter++ {
		iterations = iter + 1
		op := &prOp{g: g, pCurr: pCurr, pNext: pNext}
		if _, err := engine.EdgeMap(g, frontier, op, engine.WithThreshold(0), engine.WithOutputMode(engine.NoOutput)); err != nil {
			frontier.Release()
			return nil, err
		}
		engine.VertexMapNoOutput(frontier, func(v runtime.VId) {
			pNext[v] = o.Damping*pNext[v] + addedConstant
		})

		l1 := 0.0
		diffs := make([]float64, n)
		for i := range diffs {
			diffs[i] = math.Abs(pCurr[i] - pNext[i])
		}
		l1 = runtime.PlusReduceFloat(diffs)
		if l1 < o.Epsilon {
			converged = true
			pCurr = pNext
			break
		}

		for i := range pCurr {
			pCurr[i] = 0
		}
		pCurr, pNext = pNext, pCurr
	}
	frontier.Release()

	return &Result{P: pCurr, Iterations: iterations, Converged: converged}, nil
}
