// File: builder.go
// Role: mutable, single-goroutine graph assembly; Build() freezes into an
// immutable *Graph.
//
// Builder is not safe for concurrent use. Its job ends the moment
// Build() runs: once an EdgeMap/VertexMap call can see the Graph, the
// Graph is already frozen.
package graph

import "sort"

// edge is a builder-local record; From/To index [0, n).
type edge struct {
	from, to uint32
	weight   int64
}

// Builder assembles a Graph vertex-by-implicit-index (vertices are
// simply [0, n)) and edge-by-edge, then computes CSR offsets on Build.
type Builder struct {
	n         int
	edges     []edge
	symmetric bool
	mirror    bool
	weighted  bool
}

// NewBuilder creates a Builder for a graph with n vertices, [0, n).
func NewBuilder(n int) *Builder {
	return &Builder{n: n}
}

// Symmetric marks the graph as undirected: AddEdge(u, v) implicitly adds
// the reverse edge (v, u) as well, and Build aliases the out- and
// in-descriptors onto the same backing arrays so Transpose is a true
// no-op.
func (b *Builder) Symmetric() *Builder {
	b.symmetric = true
	b.mirror = true
	return b
}

// AlreadySymmetric marks the graph as undirected without mirroring
// AddEdge calls, for loaders (ioadj) whose source already lists every
// edge in both directions explicitly; Build still aliases the out- and
// in-descriptors, which is sound exactly because the caller guarantees
// the edge set it supplies is already symmetric.
func (b *Builder) AlreadySymmetric() *Builder {
	b.symmetric = true
	return b
}

// Weighted marks the graph as carrying meaningful per-edge weights.
func (b *Builder) Weighted() *Builder {
	b.weighted = true
	return b
}

// AddEdge records a directed edge u -> v with the given weight (ignored
// unless Weighted was called). Complexity: O(1) amortized per call;
// Build does the O(m log m) sort and O(n+m) CSR assembly.
func (b *Builder) AddEdge(u, v uint32, weight int64) *Builder {
	b.edges = append(b.edges, edge{from: u, to: v, weight: weight})
	if b.mirror && u != v {
		b.edges = append(b.edges, edge{from: v, to: u, weight: weight})
	}
	return b
}

// Build sorts each vertex's out-edge list by neighbor id (the invariant
// merge-intersection algorithms like triangle counting rely on) and
// assembles the CSR offset/neighbor/weight arrays. The returned
// Graph is immutable and safe to share across goroutines without
// locking.
func (b *Builder) Build() *Graph {
	n := b.n
	sort.Slice(b.edges, func(i, j int) bool {
		if b.edges[i].from != b.edges[j].from {
			return b.edges[i].from < b.edges[j].from
		}
		return b.edges[i].to < b.edges[j].to
	})

	outOffsets := make([]int32, n+1)
	for _, e := range b.edges {
		outOffsets[e.from+1]++
	}
	for i := 0; i < n; i++ {
		outOffsets[i+1] += outOffsets[i]
	}

	m := len(b.edges)
	outNbrs := make([]uint32, m)
	var outWeights []int64
	if b.weighted {
		outWeights = make([]int64, m)
	}
	cursor := append([]int32(nil), outOffsets[:n]...)
	for _, e := range b.edges {
		slot := cursor[e.from]
		outNbrs[slot] = e.to
		if b.weighted {
			outWeights[slot] = e.weight
		}
		cursor[e.from]++
	}

	g := &Graph{
		n:          n,
		m:          m,
		outOffsets: outOffsets,
		outNbrs:    outNbrs,
		outWeights: outWeights,
		weighted:   b.weighted,
		symmetric:  b.symmetric,
	}

	if b.symmetric {
		g.inOffsets = outOffsets
		g.inNbrs = outNbrs
		g.inWeights = outWeights
		return g
	}

	// Directed: build the in-descriptor from the transposed edge list,
	// same two-pass counting-sort CSR assembly.
	inEdges := make([]edge, m)
	for i, e := range b.edges {
		inEdges[i] = edge{from: e.to, to: e.from, weight: e.weight}
	}
	sort.Slice(inEdges, func(i, j int) bool {
		if inEdges[i].from != inEdges[j].from {
			return inEdges[i].from < inEdges[j].from
		}
		return inEdges[i].to < inEdges[j].to
	})

	inOffsets := make([]int32, n+1)
	for _, e := range inEdges {
		inOffsets[e.from+1]++
	}
	for i := 0; i < n; i++ {
		inOffsets[i+1] += inOffsets[i]
	}

	inNbrs := make([]uint32, m)
	var inWeights []int64
	if b.weighted {
		inWeights = make([]int64, m)
	}
	cursor = append([]int32(nil), inOffsets[:n]...)
	for _, e := range inEdges {
		slot := cursor[e.from]
		inNbrs[slot] = e.to
		if b.weighted {
			inWeights[slot] = e.weight
		}
		cursor[e.from]++
	}

	g.inOffsets = inOffsets
	g.inNbrs = inNbrs
	g.inWeights = inWeights
	return g
}
