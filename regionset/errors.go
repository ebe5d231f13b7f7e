package regionset

import "errors"

// ErrDimensionMismatch indicates a Region added to the set has a
// different dimension than the set.
var ErrDimensionMismatch = errors.New("regionset: dimension mismatch")

// ErrOutOfBounds indicates a Region added to a bounded RegionSet is not
// enclosed by the configured bound.
var ErrOutOfBounds = errors.New("regionset: region outside configured bounds")

// ErrDuplicateID indicates a Region added to the set has the same ID as
// an existing member.
var ErrDuplicateID = errors.New("regionset: duplicate region id")

// ErrNotFound indicates Get was called with an ID absent from the set.
var ErrNotFound = errors.New("regionset: region not found")

// ErrIndexOutOfRange indicates At was called with an index outside [0, Size).
var ErrIndexOutOfRange = errors.New("regionset: index out of range")

// ErrEmptySet indicates MinBounds was called on a RegionSet with no members.
var ErrEmptySet = errors.New("regionset: empty set has no bounding box")
