package interval

import "math"

// Interval is an ordered pair of bounding values, Lower <= Upper. Zero
// value is the degenerate interval [0, 0]. Construct with New; Interval
// is immutable after construction, any re-bounding returns a new value.
type Interval struct {
	lower float64
	upper float64
}

// New returns a new Interval from two bounding values. If lower is
// greater than upper, the two are swapped so the invariant Lower <= Upper
// always holds.
func New(lower, upper float64) Interval {
	if lower > upper {
		lower, upper = upper, lower
	}
	return Interval{lower: lower, upper: upper}
}

// Lower returns the lower bounding value.
func (iv Interval) Lower() float64 { return iv.lower }

// Upper returns the upper bounding value.
func (iv Interval) Upper() float64 { return iv.upper }

// Length returns Upper - Lower, always non-negative.
func (iv Interval) Length() float64 { return iv.upper - iv.lower }

// Midpoint returns the value equidistant from Lower and Upper.
func (iv Interval) Midpoint() float64 { return (iv.lower + iv.upper) / 2 }

// Valid reports whether both bounds are finite and Lower <= Upper.
// New always restores Lower <= Upper, so only finiteness can fail here;
// it is checked explicitly rather than at New so zero-cost construction
// stays panic-free and error-free for ordinary numeric inputs.
func (iv Interval) Valid() bool {
	return !math.IsNaN(iv.lower) && !math.IsNaN(iv.upper) &&
		!math.IsInf(iv.lower, 0) && !math.IsInf(iv.upper, 0) &&
		iv.lower <= iv.upper
}

// Equal reports whether the two Intervals have bit-equal bounds.
func (iv Interval) Equal(that Interval) bool {
	return iv.lower == that.lower && iv.upper == that.upper
}

// Hash returns a value that is equal for equal Intervals, computed purely
// from (Lower, Upper).
func (iv Interval) Hash() uint64 {
	h := fnvOffset
	h = hashFloat(h, iv.lower)
	h = hashFloat(h, iv.upper)
	return h
}

const fnvOffset uint64 = 14695981039346656037
const fnvPrime uint64 = 1099511628211

func hashFloat(h uint64, v float64) uint64 {
	bits := math.Float64bits(v)
	for i := 0; i < 8; i++ {
		h ^= bits & 0xff
		h *= fnvPrime
		bits >>= 8
	}
	return h
}

// Contains reports whether value lies between Lower and Upper. incLower
// and incUpper control whether each bound is inclusive; both default to
// true when called via ContainsDefault.
func (iv Interval) Contains(value float64, incLower, incUpper bool) bool {
	gteLower := value >= iv.lower
	if !incLower {
		gteLower = value > iv.lower
	}
	lteUpper := value <= iv.upper
	if !incUpper {
		lteUpper = value < iv.upper
	}
	return gteLower && lteUpper
}

// ContainsDefault is Contains with both bounds inclusive.
func (iv Interval) ContainsDefault(value float64) bool {
	return iv.Contains(value, true, true)
}

// Encloses reports whether that lies entirely within iv: iv.Length() must
// be at least that.Length(), and both of that's bounds must be contained
// in iv under the given boundary policy.
func (iv Interval) Encloses(that Interval, incLower, incUpper bool) bool {
	return iv.Length() >= that.Length() &&
		iv.Contains(that.lower, incLower, incUpper) &&
		iv.Contains(that.upper, incLower, incUpper)
}

// IsIntersecting reports whether that overlaps iv. With incBounds=false,
// exactly-adjacent intervals (one's Upper equals the other's Lower) do not
// intersect; with incBounds=true they do, as a zero-length intersection.
// Equal intervals always intersect.
func (iv Interval) IsIntersecting(that Interval, incBounds bool) bool {
	if iv.Equal(that) {
		return true
	}
	if incBounds {
		return iv.upper >= that.lower && that.upper >= iv.lower
	}
	return iv.upper > that.lower && that.upper > iv.lower
}

// Overlaps is an alias for IsIntersecting.
func (iv Interval) Overlaps(that Interval, incBounds bool) bool {
	return iv.IsIntersecting(that, incBounds)
}

// GetIntersection returns the overlapping Interval between iv and that,
// and true, or the zero Interval and false if they do not intersect.
func (iv Interval) GetIntersection(that Interval, incBounds bool) (Interval, bool) {
	if !iv.IsIntersecting(that, incBounds) {
		return Interval{}, false
	}
	return New(math.Max(iv.lower, that.lower), math.Min(iv.upper, that.upper)), true
}

// GetUnion returns the Interval that encloses both iv and that, even when
// they are disjoint (the bounding interval).
func (iv Interval) GetUnion(that Interval) Interval {
	return New(math.Min(iv.lower, that.lower), math.Max(iv.upper, that.upper))
}

// FromIntersection folds a list of at least two Intervals under
// GetIntersection, returning the Interval that intersects all of them, or
// false as soon as any consecutive pair fails to intersect.
func FromIntersection(ivs []Interval, incBounds bool) (Interval, bool, error) {
	if len(ivs) < 2 {
		return Interval{}, false, ErrEmptyInput
	}
	acc := ivs[0]
	for _, next := range ivs[1:] {
		var ok bool
		acc, ok = acc.GetIntersection(next, incBounds)
		if !ok {
			return Interval{}, false, nil
		}
	}
	return acc, true, nil
}

// FromUnion folds a list of at least two Intervals under GetUnion,
// returning the Interval that encloses all of them.
func FromUnion(ivs []Interval) (Interval, error) {
	if len(ivs) < 2 {
		return Interval{}, ErrEmptyInput
	}
	acc := ivs[0]
	for _, next := range ivs[1:] {
		acc = acc.GetUnion(next)
	}
	return acc, nil
}
