// Package subset: VertexSubset sparse/dense encodings.
//
//	ToSparse   O(n) work (O(n/P) per worker), dense -> sparse via parallel pack
//	ToDense    O(n + size) work, sparse -> dense via scatter
//	Test       O(1) dense, O(size) sparse
package subset
