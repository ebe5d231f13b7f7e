package region

import (
	"sort"
	"strings"

	"github.com/katalvlaran/overlapgraph/interval"
)

// Region is an ordered tuple of d Intervals (its factors) plus a stable
// string ID. The ID is expected to be unique within a RegionSet; equality
// between Regions is by ID, never by geometry. Region is immutable after
// construction apart from its UserData slot, which the core never reads.
type Region struct {
	id       string
	factors  []interval.Interval
	userData interface{}
}

// Option customizes Region construction.
type Option func(*Region)

// WithUserData attaches an arbitrary payload to the Region. The core
// never reads this value; it exists for host applications.
func WithUserData(data interface{}) Option {
	return func(r *Region) {
		r.userData = data
	}
}

// New constructs a Region with the given ID and factors (one Interval per
// dimension, d >= 1). Returns ErrInvariantViolation if no factors are given
// or any factor has a non-finite bound.
func New(id string, factors []interval.Interval, opts ...Option) (Region, error) {
	if len(factors) == 0 {
		return Region{}, ErrInvariantViolation
	}
	cp := make([]interval.Interval, len(factors))
	for i, f := range factors {
		if !f.Valid() {
			return Region{}, ErrInvariantViolation
		}
		cp[i] = f
	}
	r := Region{id: id, factors: cp}
	for _, opt := range opts {
		opt(&r)
	}
	return r, nil
}

// ID returns the Region's stable identifier.
func (r Region) ID() string { return r.id }

// Dimension returns the number of factors (d).
func (r Region) Dimension() int { return len(r.factors) }

// UserData returns the optional payload attached via WithUserData.
func (r Region) UserData() interface{} { return r.userData }

// Factors returns a copy of the Region's per-dimension Intervals.
func (r Region) Factors() []interval.Interval {
	cp := make([]interval.Interval, len(r.factors))
	copy(cp, r.factors)
	return cp
}

// Equal reports whether two Regions share the same ID.
func (r Region) Equal(that Region) bool { return r.id == that.id }

// Project returns the factor on the given dimension.
func (r Region) Project(dim int) (interval.Interval, error) {
	if dim < 0 || dim >= len(r.factors) {
		return interval.Interval{}, ErrDimensionMismatch
	}
	return r.factors[dim], nil
}

// Contains reports whether point (one coordinate per dimension) lies
// within every factor under the given boundary policy.
func (r Region) Contains(point []float64, incLower, incUpper bool) (bool, error) {
	if len(point) != len(r.factors) {
		return false, ErrDimensionMismatch
	}
	for i, f := range r.factors {
		if !f.Contains(point[i], incLower, incUpper) {
			return false, nil
		}
	}
	return true, nil
}

// Encloses reports whether every factor of r encloses the corresponding
// factor of that, under the given boundary policy. Requires equal dimension.
func (r Region) Encloses(that Region, incLower, incUpper bool) (bool, error) {
	if r.Dimension() != that.Dimension() {
		return false, ErrDimensionMismatch
	}
	for i, f := range r.factors {
		if !f.Encloses(that.factors[i], incLower, incUpper) {
			return false, nil
		}
	}
	return true, nil
}

// IsIntersecting reports whether every pair of corresponding factors
// intersects under incBounds. Requires equal dimension.
func (r Region) IsIntersecting(that Region, incBounds bool) (bool, error) {
	if r.Dimension() != that.Dimension() {
		return false, ErrDimensionMismatch
	}
	for i, f := range r.factors {
		if !f.IsIntersecting(that.factors[i], incBounds) {
			return false, nil
		}
	}
	return true, nil
}

// Overlaps is an alias for IsIntersecting.
func (r Region) Overlaps(that Region, incBounds bool) (bool, error) {
	return r.IsIntersecting(that, incBounds)
}

// Intersect returns the Region whose factors are the per-dimension
// GetIntersection of r and that, and true, or false if they do not
// intersect in every dimension. The result ID is deterministic: the two
// operand IDs, sorted, joined with "∩", so repeated calls on the same
// pair return an equal ID regardless of call order.
func (r Region) Intersect(that Region, incBounds bool) (Region, bool, error) {
	if r.Dimension() != that.Dimension() {
		return Region{}, false, ErrDimensionMismatch
	}
	factors := make([]interval.Interval, len(r.factors))
	for i, f := range r.factors {
		got, ok := f.GetIntersection(that.factors[i], incBounds)
		if !ok {
			return Region{}, false, nil
		}
		factors[i] = got
	}
	return Region{id: pairID(r.id, that.id, "∩"), factors: factors}, true, nil
}

// Union returns the bounding Region whose factors are the per-dimension
// GetUnion of r and that. Requires equal dimension.
func (r Region) Union(that Region) (Region, error) {
	if r.Dimension() != that.Dimension() {
		return Region{}, ErrDimensionMismatch
	}
	factors := make([]interval.Interval, len(r.factors))
	for i, f := range r.factors {
		factors[i] = f.GetUnion(that.factors[i])
	}
	return Region{id: pairID(r.id, that.id, "∪"), factors: factors}, nil
}

// pairID builds a deterministic identifier for a derived Region from two
// operand IDs, independent of argument order.
func pairID(a, b, sep string) string {
	ids := []string{a, b}
	sort.Strings(ids)
	return strings.Join(ids, sep)
}
