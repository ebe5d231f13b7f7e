package timeline

import "errors"

// ErrDimensionOutOfRange indicates Events was called with a sweep
// dimension outside [0, RegionSet.Dimension()).
var ErrDimensionOutOfRange = errors.New("timeline: sweep dimension out of range")
