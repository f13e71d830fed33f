// File: triangle.go
// Role: the triangle-counting driver body.
package triangle

import (
	"github.com/katalvlaran/pargraph/engine"
	"github.com/katalvlaran/pargraph/graph"
	"github.com/katalvlaran/pargraph/runtime"
	"github.com/katalvlaran/pargraph/subset"
)

// countCommon counts common neighbors of s and d strictly below both s
// and d, by merging their (already sorted, per the graph.Builder
// invariant) neighbor lists.
func countCommon(g *graph.Graph, s, d runtime.VId) int64 {
	nghA := g.OutNbrs(s)
	nghB := g.OutNbrs(d)
	var i, j int
	var ans int64
	for i < len(nghA) && j < len(nghB) && nghA[i] < s && nghB[j] < d {
		switch {
		case nghA[i] == nghB[j]:
			i++
			j++
			ans++
		case nghA[i] < nghB[j]:
			i++
		default:
			j++
		}
	}
	return ans
}

// countOp: only the s > d half of each undirected edge pair does the
// merge, avoiding double work.
type countOp struct {
	engine.AlwaysTrueCond
	g      *graph.Graph
	counts []int64
}

func (o *countOp) Update(s, d runtime.VId) bool {
	if s > d {
		o.counts[s] += countCommon(o.g, s, d)
	}
	return true
}

func (o *countOp) UpdateAtomic(s, d runtime.VId) bool {
	if s > d {
		runtime.WriteAddInt64(&o.counts[s], countCommon(o.g, s, d))
	}
	return true
}

// Compute returns the total number of triangles in g. Returns
// ErrNotSymmetric if g.Symmetric() is false (g was built with neither
// Builder.Symmetric nor Builder.AlreadySymmetric).
func Compute(g *graph.Graph) (int64, error) {
	if !g.Symmetric() {
		return 0, ErrNotSymmetric
	}

	n := g.N()
	counts := make([]int64, n)
	op := &countOp{g: g, counts: counts}

	mask := make([]bool, n)
	for i := range mask {
		mask[i] = true
	}
	frontier := subset.FromDense(n, mask)

	if _, err := engine.EdgeMap(g, frontier, op, engine.WithThreshold(-1), engine.WithOutputMode(engine.NoOutput)); err != nil {
		frontier.Release()
		return 0, err
	}
	frontier.Release()

	return runtime.PlusReduce(counts), nil
}
