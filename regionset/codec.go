package regionset

import (
	"encoding/json"

	"github.com/katalvlaran/overlapgraph/region"
)

// jsonObject is the {dimension, bounds, regions: [...]} wire shape from
// spec §6. bounds is the explicit enclosing Region configured via
// WithBounds, omitted when the set is unbounded; the memoized MinBounds
// is never part of the wire form since it is always recomputable.
type jsonObject struct {
	Dimension int             `json:"dimension"`
	Bounds    *region.Region  `json:"bounds,omitempty"`
	Regions   []region.Region `json:"regions"`
}

// MarshalJSON encodes the RegionSet as {"dimension":...,"bounds":...,"regions":[...]},
// one region.Region object per member, in insertion order.
func (rs *RegionSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonObject{Dimension: rs.dimension, Bounds: rs.bound, Regions: rs.ordered})
}

// UnmarshalJSON decodes the {"dimension", "bounds", "regions"} object
// form, rebuilding the id index (and the WithBounds configuration, if
// bounds was present) from scratch. Returns any error Add would return
// for a malformed member (dimension mismatch, duplicate ID, out of bounds).
func (rs *RegionSet) UnmarshalJSON(data []byte) error {
	var obj jsonObject
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}

	var opts []Option
	if obj.Bounds != nil {
		opts = append(opts, WithBounds(*obj.Bounds))
	}
	rebuilt := New(obj.Dimension, opts...)
	for _, r := range obj.Regions {
		if err := rebuilt.Add(r); err != nil {
			return err
		}
	}
	*rs = *rebuilt
	return nil
}
