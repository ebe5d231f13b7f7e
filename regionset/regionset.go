package regionset

import (
	"github.com/katalvlaran/overlapgraph/region"
)

// RegionSet is an ordered, id-keyed collection of Regions sharing one
// dimension. Members are enumerable in insertion order and lookup-able
// by ID or index in O(1)/O(1).
type RegionSet struct {
	dimension int
	ordered   []region.Region
	byID      map[string]int
	bound     *region.Region
	bounds    *region.Region // memoized MinBounds result
}

// Option customizes RegionSet construction.
type Option func(*RegionSet)

// WithBounds configures an enclosing Region: Add rejects any candidate
// Region the bound does not enclose.
func WithBounds(bound region.Region) Option {
	return func(rs *RegionSet) {
		b := bound
		rs.bound = &b
	}
}

// New creates an empty RegionSet of the given dimension.
func New(dimension int, opts ...Option) *RegionSet {
	rs := &RegionSet{
		dimension: dimension,
		ordered:   make([]region.Region, 0),
		byID:      make(map[string]int),
	}
	for _, opt := range opts {
		opt(rs)
	}
	return rs
}

// Dimension returns the fixed dimension every member shares.
func (rs *RegionSet) Dimension() int { return rs.dimension }

// Size returns the number of members.
func (rs *RegionSet) Size() int { return len(rs.ordered) }

// Add appends r to the set. Returns ErrDimensionMismatch if r.Dimension()
// differs from rs.Dimension(), ErrDuplicateID if r's ID already exists,
// or ErrOutOfBounds if the set is bounded and the bound does not enclose r.
func (rs *RegionSet) Add(r region.Region) error {
	if r.Dimension() != rs.dimension {
		return ErrDimensionMismatch
	}
	if _, exists := rs.byID[r.ID()]; exists {
		return ErrDuplicateID
	}
	if rs.bound != nil {
		enc, err := rs.bound.Encloses(r, true, true)
		if err != nil {
			return err
		}
		if !enc {
			return ErrOutOfBounds
		}
	}
	rs.byID[r.ID()] = len(rs.ordered)
	rs.ordered = append(rs.ordered, r)
	rs.bounds = nil // invalidate memoized bounding box
	return nil
}

// Get looks up a Region by ID.
func (rs *RegionSet) Get(id string) (region.Region, error) {
	idx, ok := rs.byID[id]
	if !ok {
		return region.Region{}, ErrNotFound
	}
	return rs.ordered[idx], nil
}

// At returns the Region at insertion index i.
func (rs *RegionSet) At(i int) (region.Region, error) {
	if i < 0 || i >= len(rs.ordered) {
		return region.Region{}, ErrIndexOutOfRange
	}
	return rs.ordered[i], nil
}

// All returns every member in insertion order. The returned slice is a
// copy; mutating it does not affect the RegionSet.
func (rs *RegionSet) All() []region.Region {
	cp := make([]region.Region, len(rs.ordered))
	copy(cp, rs.ordered)
	return cp
}

// MinBounds computes the bounding Region: the per-dimension union of
// every member's factors. The result is memoized until the next Add.
func (rs *RegionSet) MinBounds() (region.Region, error) {
	if len(rs.ordered) == 0 {
		return region.Region{}, ErrEmptySet
	}
	if rs.bounds != nil {
		return *rs.bounds, nil
	}
	acc := rs.ordered[0]
	for _, r := range rs.ordered[1:] {
		var err error
		acc, err = acc.Union(r)
		if err != nil {
			return region.Region{}, err
		}
	}
	bb, err := region.New("__bounds__", acc.Factors())
	if err != nil {
		return region.Region{}, err
	}
	rs.bounds = &bb
	return bb, nil
}
