package timeline

import (
	"sort"

	"github.com/katalvlaran/overlapgraph/region"
	"github.com/katalvlaran/overlapgraph/regionset"
)

// EventKind enumerates the four kinds of timeline event. The integer
// values are load-bearing: they define the Kind tie-break used when two
// events share the same When, Order and Context (spec.md §4.4).
type EventKind int

const (
	// Init marks the beginning of a sweep, at the bounding box's lower bound.
	Init EventKind = iota
	// Begin marks a Region becoming active.
	Begin
	// End marks a Region becoming inactive.
	End
	// Done marks the end of a sweep, at the bounding box's upper bound.
	Done
)

// String returns the event kind's name.
func (k EventKind) String() string {
	switch k {
	case Init:
		return "Init"
	case Begin:
		return "Begin"
	case End:
		return "End"
	case Done:
		return "Done"
	default:
		return "Unknown"
	}
}

// Event is a single point on the sweep timeline. Order is the tie-break
// priority for events sharing the same When: Init=-2, End of a non-zero-
// length region=-1, Begin or End of a zero-length region=0, Begin of a
// non-zero-length region=+1, Done=+2.
type Event struct {
	When      float64
	Kind      EventKind
	Order     int
	Context   region.Region
	Dimension int
}

// Timeline generates the ordered event stream for a RegionSet along a
// chosen sweep dimension.
type Timeline struct {
	rs *regionset.RegionSet
}

// New wraps rs for event generation.
func New(rs *regionset.RegionSet) *Timeline {
	return &Timeline{rs: rs}
}

// Events returns the totally ordered event stream for dim: one Init, one
// Begin and one End per Region, and one Done, sorted per spec.md §4.4.
// Returns ErrDimensionOutOfRange if dim is outside [0, rs.Dimension()).
func (tl *Timeline) Events(dim int) ([]Event, error) {
	if dim < 0 || dim >= tl.rs.Dimension() {
		return nil, ErrDimensionOutOfRange
	}

	bounds, err := tl.rs.MinBounds()
	if err != nil {
		return nil, err
	}
	bf, err := bounds.Project(dim)
	if err != nil {
		return nil, err
	}

	members := tl.rs.All()
	events := make([]Event, 0, 2*len(members)+2)
	events = append(events, Event{When: bf.Lower(), Kind: Init, Order: -2, Context: bounds, Dimension: dim})
	events = append(events, Event{When: bf.Upper(), Kind: Done, Order: 2, Context: bounds, Dimension: dim})

	for _, r := range members {
		f, err := r.Project(dim)
		if err != nil {
			return nil, err
		}
		zeroLength := f.Length() == 0

		beginOrder := 1
		if zeroLength {
			beginOrder = 0
		}
		events = append(events, Event{When: f.Lower(), Kind: Begin, Order: beginOrder, Context: r, Dimension: dim})

		endOrder := -1
		if zeroLength {
			endOrder = 0
		}
		events = append(events, Event{When: f.Upper(), Kind: End, Order: endOrder, Context: r, Dimension: dim})
	}

	sort.SliceStable(events, func(i, j int) bool {
		return less(events[i], events[j])
	})
	return events, nil
}

// less implements the strict total order from spec.md §4.4.
func less(a, b Event) bool {
	if a.When != b.When {
		return a.When < b.When
	}
	if a.Order != b.Order {
		return a.Order < b.Order
	}
	if a.Context.Equal(b.Context) {
		return a.Kind < b.Kind
	}
	return a.Context.ID() < b.Context.ID()
}
