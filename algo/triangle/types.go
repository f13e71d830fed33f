// Package triangle counts triangles in a symmetric graph using the
// merge-intersection ("ranked forward") algorithm: each undirected edge
// (s, d) with s > d contributes the number of common neighbors w < d
// between s and d to counts[s]; summing counts gives the total triangle
// count with each triangle counted exactly once.
//
// countCommon relies on neighbor lists being sorted ascending, an
// invariant graph.Builder upholds at construction time.
package triangle

import "errors"

// ErrNotSymmetric is returned when Compute is called on a directed
// graph; the algorithm assumes an undirected graph.
var ErrNotSymmetric = errors.New("triangle: graph must be symmetric")
