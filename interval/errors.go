package interval

import "errors"

// ErrInvariantViolation names a non-finite (NaN or +-Inf) bound. New does
// not return it (New has no error result); Valid reports such bounds.
var ErrInvariantViolation = errors.New("interval: non-finite bound")

// ErrEmptyInput indicates a fold operation (FromIntersection, FromUnion)
// was called with fewer than two Intervals.
var ErrEmptyInput = errors.New("interval: need at least two intervals")
