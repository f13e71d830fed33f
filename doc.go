// Package pargraph is a shared-memory parallel graph-processing engine
// in the Ligra vertex-centric style (Shun & Blelloch, PPoPP'13): a
// small set of frontier operators (EdgeMap, VertexMap) drive BFS,
// betweenness centrality, PageRank, and triangle counting over an
// immutable CSR graph.
//
// Under the hood:
//
//	runtime/     parallel-for, pack, plus-reduce, CAS and atomic add primitives
//	graph/       the immutable CSR Graph and its Builder
//	subset/      VertexSubset, the sparse/dense frontier representation
//	engine/      EdgeMap and VertexMap, the two bulk operators
//	ioadj/       text and binary graph-file loaders
//	algo/        bfs, bc, pagerank, triangle drivers built on engine/
//	cmd/pargraph a cobra CLI exposing the algo/ drivers
package pargraph
