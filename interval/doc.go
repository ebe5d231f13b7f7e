// Package interval implements a one-dimensional bounded-value algebra:
// an ordered pair of IEEE-754 doubles with containment, enclosure,
// intersection and union operations. It is the building block that
// package region lifts to d dimensions.
//
// What:
//
//   - Interval is an immutable value type: (Lower, Upper), Lower <= Upper.
//   - Contains/Encloses test point and interval membership with
//     configurable inclusive/exclusive bound policy.
//   - IsIntersecting/GetIntersection/GetUnion compute overlap and span.
//   - FromIntersection/FromUnion fold a slice of Intervals.
//
// Why:
//
//   - Every geometric decision higher up (Region, Timeline, sweep) reduces
//     to per-dimension Interval comparisons; keeping this algebra in one
//     small, well-tested package keeps those decisions auditable.
//
// Numeric semantics:
//
//   - All arithmetic is plain float64, no tolerance. New accepts any
//     float64, including NaN and +-Inf, and returns no error; Valid reports
//     whether both bounds are finite. region.New rejects a factor that is
//     not Valid.
//
// Errors:
//
//   - ErrInvariantViolation: names a non-finite bound; no function in this
//     package returns it.
//   - ErrEmptyInput: FromIntersection/FromUnion called with fewer than 2 elements.
package interval
