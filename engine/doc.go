// Package engine implements the two operators every algorithm built on
// this module is expressed in terms of: VertexMap and EdgeMap.
//
// EdgeMap chooses a push or pull execution plan per call based on an
// estimate of the work a push plan would do versus a threshold
// (default graph.M()/20, overridable via WithThreshold), converts the
// input frontier to whichever encoding the chosen plan needs, and
// produces a deduplicated output VertexSubset by relying on the
// caller's EdgeOperator to claim each destination at most once.
package engine
