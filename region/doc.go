// Package region lifts interval.Interval to d dimensions: a Region is an
// ordered tuple of Intervals (its factors) plus a stable string ID.
// Regions are the nodes of the intersection graph built by package
// builder; equality between Regions is by ID, not by geometry.
//
// What:
//
//   - New constructs a Region from an ID and one or more factors.
//   - Project returns the factor on a given dimension.
//   - Contains/Encloses/IsIntersecting generalize the Interval predicates
//     by requiring them to hold on every factor.
//   - Intersect/Union compute the per-dimension Interval intersection/union.
//
// Dimension mismatch:
//
//   - Every operation that combines two Regions requires equal Dimension;
//     mismatches return ErrDimensionMismatch.
package region
