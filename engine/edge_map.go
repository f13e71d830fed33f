// File: edge_map.go
// Role: the edge-map operator, the heart of the engine.
//
// Each call runs a fixed sequence: plan the direction (push vs pull),
// execute the chosen plan, materialize the output (pack the sparse
// scratch buffer, or finalize the dense bitmap). The only conditional
// branch is the single push/pull choice in choosePull.
package engine

import (
	"github.com/katalvlaran/pargraph/graph"
	"github.com/katalvlaran/pargraph/runtime"
	"github.com/katalvlaran/pargraph/subset"
)

// denseOutputThresholdDivisor sets the n/20 switchover point at which a
// packed sparse output is converted to dense before being returned.
const denseOutputThresholdDivisor = 20

// EdgeMap produces a new VertexSubset containing every unique neighbor
// d of some s in fIn for which eop qualifies (Cond(d) held and
// Update/UpdateAtomic(s, d) returned true), choosing a push or pull
// execution plan adaptively per call.
//
// Guarantee: for every directed edge (s, d) with s in fIn and
// Cond(d) == true at inspection time, exactly one of Update or
// UpdateAtomic is invoked once; the output contains d at most once.
// With WithOutputMode(NoOutput), EdgeMap returns an empty subset but
// still visits every qualifying edge regardless of the callback's
// return value, so cumulative-effect operators (PageRank-style, where
// every edge must contribute) work, and skips output construction
// entirely.
//
// EdgeMap returns graph.ErrUniverseMismatch if fIn's universe does not
// equal g.N(), the one misuse a caller can commit at this boundary
// without holding a broken Graph or VertexSubset to begin with.
func EdgeMap(g *graph.Graph, fIn *subset.VertexSubset, eop EdgeOperator, opts ...Option) (*subset.VertexSubset, error) {
	if fIn.Universe() != g.N() {
		return nil, graph.ErrUniverseMismatch
	}

	cfg := resolveConfig(int64(g.M())/denseOutputThresholdDivisor, opts)

	if fIn.IsEmpty() {
		return subset.Empty(fIn.Universe()), nil
	}

	if choosePull(g, fIn, cfg.threshold) {
		return runPull(g, fIn, eop, cfg), nil
	}
	return runPush(g, fIn, eop, cfg), nil
}

// choosePull estimates the work a push plan would do (frontier size
// plus the sum of its out-degrees) and compares it against threshold;
// threshold < 0 means "never choose pull" (push unconditionally).
func choosePull(g *graph.Graph, fIn *subset.VertexSubset, threshold int64) bool {
	if threshold < 0 {
		return false
	}
	sparse := fIn.ToSparse()
	ids := sparse.Ids()

	var wPush int64 = int64(len(ids))
	for _, s := range ids {
		wPush += int64(g.OutDegree(s))
	}
	return wPush > threshold
}

// runPush iterates s in fIn in parallel; for each out-edge (s, d), if
// Cond(d) holds, calls UpdateAtomic(s, d) since multiple s may target
// the same d concurrently.
func runPush(g *graph.Graph, fIn *subset.VertexSubset, eop EdgeOperator, cfg edgeMapConfig) *subset.VertexSubset {
	sparse := fIn.ToSparse()
	ids := sparse.Ids()
	k := len(ids)

	if cfg.outputMode == NoOutput {
		runtime.ParallelFor(0, k, func(i int) {
			s := ids[i]
			for _, d := range g.OutNbrs(s) {
				if eop.Cond(d) {
					eop.UpdateAtomic(s, d)
				}
			}
		})
		return subset.Empty(fIn.Universe())
	}

	offs := make([]int32, k+1)
	for i, s := range ids {
		offs[i+1] = offs[i] + int32(g.OutDegree(s))
	}
	total := int(offs[k])

	scratch := make([]runtime.VId, total)
	for i := range scratch {
		scratch[i] = runtime.VIdNone
	}

	runtime.ParallelFor(0, k, func(i int) {
		s := ids[i]
		base := int(offs[i])
		for j, d := range g.OutNbrs(s) {
			if eop.Cond(d) && eop.UpdateAtomic(s, d) {
				scratch[base+j] = d
			}
		}
	})

	packed, cnt := runtime.PackVIds(scratch, runtime.VIdNone)
	out := subset.FromSparse(fIn.Universe(), packed[:cnt])
	if cnt > fIn.Universe()/denseOutputThresholdDivisor {
		return out.ToDense()
	}
	return out
}

// runPull iterates every d in [0, n) in parallel; for each d with
// Cond(d), walks in_nbrs(d) sequentially (one goroutine per d, so no
// atomicity is needed within that walk) and calls Update(s, d) for each
// s that lies in fIn, stopping the walk as soon as Cond(d) turns false.
// A true Update marks d in the output but does not end the walk, so
// operators that accumulate over every in-edge (BC's path counts) see
// the same edges they would in push mode.
func runPull(g *graph.Graph, fIn *subset.VertexSubset, eop EdgeOperator, cfg edgeMapConfig) *subset.VertexSubset {
	dense := fIn.ToDense()
	n := g.N()

	if cfg.outputMode == NoOutput {
		runtime.ParallelFor(0, n, func(i int) {
			d := runtime.VId(i)
			if !eop.Cond(d) {
				return
			}
			for _, s := range g.InNbrs(d) {
				if !eop.Cond(d) {
					break
				}
				if dense.Test(s) {
					eop.Update(s, d)
				}
			}
		})
		return subset.Empty(fIn.Universe())
	}

	out := subset.NewDenseBuilder(n)
	runtime.ParallelFor(0, n, func(i int) {
		d := runtime.VId(i)
		if !eop.Cond(d) {
			return
		}
		for _, s := range g.InNbrs(d) {
			if !eop.Cond(d) {
				break
			}
			if dense.Test(s) {
				if eop.Update(s, d) {
					out.Set(d)
				}
			}
		}
	})
	return out.Build()
}
