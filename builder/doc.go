// Package builder assembles a graph.Graph of pairwise region
// intersections from a regionset.RegionSet, driving sweep.Run with an
// internal observer equivalent to the original OpslConstr/SweeplnAlg
// pairing: one node per region, one edge per confirmed intersection.
//
// What:
//
//	Build(rs, opts...) runs the sweep along a configurable dimension
//	(default 0) and returns the finished graph.Graph. For d=1 every
//	candidate pair already overlaps by construction. For d>1 each
//	candidate is re-checked for intersection on every dimension other
//	than the swept one before an edge is added.
//
// Why:
//
//	Functional options (Option) resolve into an immutable buildConfig,
//	mirroring the teacher's BuilderOption/builderConfig split: option
//	constructors validate and panic on programmer error (a negative
//	dimension), while Build itself never panics. Build returns
//	ErrEmptyRegionSet from errors.go, or any error sweep.Run reports
//	unchanged (e.g. timeline.ErrDimensionOutOfRange for a sweep
//	dimension outside the set's dimensions).
package builder
