package interval

import "encoding/json"

// jsonObject is the {lower, upper} wire shape from spec §6.
type jsonObject struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
}

// MarshalJSON encodes the Interval as {"lower":...,"upper":...}.
func (iv Interval) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonObject{Lower: iv.lower, Upper: iv.upper})
}

// UnmarshalJSON decodes either the {"lower":...,"upper":...} object form
// or the compact [lower, upper] tuple form.
func (iv *Interval) UnmarshalJSON(data []byte) error {
	var tuple [2]float64
	if err := json.Unmarshal(data, &tuple); err == nil {
		*iv = New(tuple[0], tuple[1])
		return nil
	}
	var obj jsonObject
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	*iv = New(obj.Lower, obj.Upper)
	return nil
}

// ToCompact returns the [lower, upper] tuple form.
func (iv Interval) ToCompact() [2]float64 {
	return [2]float64{iv.lower, iv.upper}
}
