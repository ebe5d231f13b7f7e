// Package regionset provides RegionSet, a fixed-dimension, id-keyed
// collection of region.Region values plus a lazily-computed bounding box.
//
// What:
//
//   - New creates an empty RegionSet of a given dimension, optionally
//     bounded (Add then rejects regions the bound does not enclose).
//   - Add appends a Region, rejecting dimension mismatches, duplicate
//     IDs, and out-of-bounds regions.
//   - All, Get, At, Size, Dimension provide read-only access in
//     insertion order.
//   - MinBounds computes the bounding Region on demand, memoized after
//     the first call (or invalidated by a subsequent Add).
//
// A RegionSet has no built-in freeze step: by convention, construction
// (repeated Add calls) happens before the set is handed to timeline.New,
// mirroring the teacher library's Graph, which stays mutable for its
// whole lifetime and relies on documented usage rather than a type-level
// frozen/builder split.
package regionset
