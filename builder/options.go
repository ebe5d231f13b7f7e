package builder

// Option customizes a Build call by mutating a buildConfig before the
// sweep begins.
type Option func(*buildConfig)

// WithSweepDimension selects the dimension the driver sweeps along.
// Panics if dim is negative, since that can only be a programmer error.
func WithSweepDimension(dim int) Option {
	if dim < 0 {
		panic("builder: WithSweepDimension(dim<0)")
	}
	return func(c *buildConfig) {
		c.sweepDimension = dim
	}
}

// WithInclusiveBounds makes the full-dimension intersection check (and
// the d=1 edge label) treat touching boundaries as intersecting. The
// default is exclusive.
func WithInclusiveBounds(inc bool) Option {
	return func(c *buildConfig) {
		c.incBounds = inc
	}
}
