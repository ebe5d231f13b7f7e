package builder

import (
	"github.com/katalvlaran/overlapgraph/graph"
	"github.com/katalvlaran/overlapgraph/regionset"
	"github.com/katalvlaran/overlapgraph/sweep"
)

// Build constructs the IntersectionGraph of rs by a one-pass sweep.
// Returns ErrEmptyRegionSet if rs has no members.
func Build(rs *regionset.RegionSet, opts ...Option) (*graph.Graph, error) {
	if rs.Size() == 0 {
		return nil, ErrEmptyRegionSet
	}

	cfg := newBuildConfig(opts...)
	obs := newGraphObserver(rs, cfg)

	if err := sweep.Run(rs, cfg.sweepDimension, obs); err != nil {
		return nil, err
	}
	return obs.g, nil
}
