package builder

import "errors"

// ErrEmptyRegionSet indicates Build was called with a RegionSet with no
// members; there is no bounding box to sweep.
var ErrEmptyRegionSet = errors.New("builder: region set is empty")
