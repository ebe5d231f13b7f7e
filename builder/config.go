package builder

// buildConfig holds the resolved settings for one Build call. Never
// exposed directly; mutated only through Option during newBuildConfig.
type buildConfig struct {
	sweepDimension int
	incBounds      bool
}

// newBuildConfig applies opts over the package defaults: sweep dimension
// 0, exclusive bounds (matches spec.md §9's resolution that the default
// graph-construction boundary policy is exclusive).
func newBuildConfig(opts ...Option) *buildConfig {
	cfg := &buildConfig{
		sweepDimension: 0,
		incBounds:      false,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
