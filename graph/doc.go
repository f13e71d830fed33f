// Package graph: immutable CSR Graph.
//
// Complexity summary:
//
//	OutDegree/InDegree/OutNbrs/InNbrs   O(1)
//	Transpose                           O(1)
//	Builder.AddEdge                     O(1) amortized
//	Builder.Build                       O(n + m log m)
package graph
