// Package ioadj loads graph.Graph values from two on-disk forms: the
// Ligra/PBBS text "AdjacencyGraph"/"WeightedAdjacencyGraph" format, and
// a three-file binary form (.config/.idx/.adj). Both formats store an
// explicit out-adjacency list per vertex; a caller declaring symmetric
// must supply a source that already lists every edge in both directions
// (no doubling happens on load).
package ioadj

import "errors"

// ErrMalformedHeader is returned when the text format's header line
// doesn't match "AdjacencyGraph" or "WeightedAdjacencyGraph".
var ErrMalformedHeader = errors.New("ioadj: bad or missing header token")

// ErrSizeMismatch is returned when a declared count (n, m, an offset
// range) disagrees with the data actually present.
var ErrSizeMismatch = errors.New("ioadj: declared size disagrees with file contents")

// ErrTruncated is returned when a file ends before all the data its
// header or declared counts promised has been read.
var ErrTruncated = errors.New("ioadj: file truncated before declared data was read")
