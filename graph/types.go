// Package graph defines the immutable compressed-sparse-row Graph type
// the engine computes over, and the mutable Builder used to construct
// one.
//
// A Graph is read-only once built: EdgeMap and VertexMap never mutate
// it, so the same *Graph can be shared across goroutines without any
// locking on the read path. All mutation happens in the Builder, before
// any computation can see the Graph.
package graph

import "errors"

// ErrUniverseMismatch is returned by engine.EdgeMap when the frontier's
// universe does not equal the graph's vertex count.
var ErrUniverseMismatch = errors.New("graph: vertex subset universe does not match graph size")

// Graph is an immutable compressed-sparse-row adjacency structure over
// vertex identifiers [0, n).
//
// transposed toggles which of the two descriptor pairs (outOffsets/
// outNbrs vs inOffsets/inNbrs) answers OutDegree/OutNbrs: an O(1)
// logical swap, never a physical copy.
type Graph struct {
	n, m int

	outOffsets []int32
	outNbrs    []uint32
	outWeights []int64 // parallel to outNbrs; nil if unweighted

	inOffsets []int32
	inNbrs    []uint32
	inWeights []int64 // parallel to inNbrs; nil if unweighted

	transposed bool
	symmetric  bool
	weighted   bool
}

// N returns the number of vertices.
func (g *Graph) N() int { return g.n }

// M returns the number of directed edges stored (an undirected edge
// between u and v contributes two directed entries, one per endpoint).
func (g *Graph) M() int { return g.m }

// Weighted reports whether OutWeight/InWeight carry meaningful values.
func (g *Graph) Weighted() bool { return g.weighted }

// Symmetric reports whether the graph is undirected (out- and in-
// descriptors alias the same backing arrays), making Transpose a true
// no-op.
func (g *Graph) Symmetric() bool { return g.symmetric }

// Transposed reports whether Transpose has been called an odd number
// of times since construction.
func (g *Graph) Transposed() bool { return g.transposed }

func (g *Graph) outDesc() ([]int32, []uint32, []int64) {
	if g.transposed {
		return g.inOffsets, g.inNbrs, g.inWeights
	}
	return g.outOffsets, g.outNbrs, g.outWeights
}

func (g *Graph) inDesc() ([]int32, []uint32, []int64) {
	if g.transposed {
		return g.outOffsets, g.outNbrs, g.outWeights
	}
	return g.inOffsets, g.inNbrs, g.inWeights
}

// OutDegree returns out_deg(u). Complexity O(1).
func (g *Graph) OutDegree(u uint32) int {
	offs, _, _ := g.outDesc()
	return int(offs[u+1] - offs[u])
}

// InDegree returns in_deg(u). Complexity O(1).
func (g *Graph) InDegree(u uint32) int {
	offs, _, _ := g.inDesc()
	return int(offs[u+1] - offs[u])
}

// OutNbrs returns the contiguous out-neighbor run for u. The returned
// slice aliases Graph-owned storage and must not be mutated.
func (g *Graph) OutNbrs(u uint32) []uint32 {
	offs, nbrs, _ := g.outDesc()
	return nbrs[offs[u]:offs[u+1]]
}

// InNbrs returns the contiguous in-neighbor run for u.
func (g *Graph) InNbrs(u uint32) []uint32 {
	offs, nbrs, _ := g.inDesc()
	return nbrs[offs[u]:offs[u+1]]
}

// OutWeight returns the weight of the j-th out-edge of u (j indexes
// into OutNbrs(u)). Only meaningful when Weighted().
func (g *Graph) OutWeight(u uint32, j int) int64 {
	offs, _, w := g.outDesc()
	return w[int(offs[u])+j]
}

// Transpose toggles the logical direction in O(1) by swapping which
// descriptor pair OutDegree/OutNbrs consult. m is unchanged; in_deg and
// out_deg swap; neighbor-list pointers swap. A symmetric graph's
// Transpose is a genuine no-op since both descriptors already alias the
// same arrays.
//
// Transpose must not be called while an EdgeMap or VertexMap call over
// this Graph is in flight; the Graph does not enforce this at runtime.
func (g *Graph) Transpose() {
	g.transposed = !g.transposed
}
