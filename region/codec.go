package region

import (
	"encoding/json"

	"github.com/katalvlaran/overlapgraph/interval"
)

// jsonOut is the {id, factors: [[lower, upper], ...]} wire shape from
// spec §6, used for encoding.
type jsonOut struct {
	ID      string       `json:"id"`
	Factors [][2]float64 `json:"factors"`
}

// jsonIn is the decoding counterpart: factors may arrive either as
// compact [lower, upper] tuples or as {"lower":...,"upper":...}
// objects, since interval.Interval.UnmarshalJSON accepts both.
type jsonIn struct {
	ID      string              `json:"id"`
	Factors []interval.Interval `json:"factors"`
}

// MarshalJSON encodes the Region as {"id":...,"factors":[[lower,upper],...]},
// the compact-tuple form spec §6 documents for the boundary.
func (r Region) MarshalJSON() ([]byte, error) {
	factors := make([][2]float64, len(r.factors))
	for i, f := range r.factors {
		factors[i] = f.ToCompact()
	}
	return json.Marshal(jsonOut{ID: r.id, Factors: factors})
}

// UnmarshalJSON decodes the {"id", "factors"} object form. Each factor
// may be either the compact [lower, upper] tuple or the
// {"lower":...,"upper":...} object form.
func (r *Region) UnmarshalJSON(data []byte) error {
	var obj jsonIn
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	built, err := New(obj.ID, obj.Factors)
	if err != nil {
		return err
	}
	*r = built
	return nil
}
