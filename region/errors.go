package region

import "errors"

// ErrDimensionMismatch indicates two Regions (or a Region and a requested
// dimension index) have incompatible dimensionality.
var ErrDimensionMismatch = errors.New("region: dimension mismatch")

// ErrInvariantViolation indicates a Region was constructed with zero
// factors or a non-finite factor bound. (A duplicate ID within a RegionSet
// is reported as regionset.ErrDuplicateID.)
var ErrInvariantViolation = errors.New("region: invariant violation")
