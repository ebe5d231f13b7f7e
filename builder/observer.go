package builder

import (
	"github.com/katalvlaran/overlapgraph/graph"
	"github.com/katalvlaran/overlapgraph/region"
	"github.com/katalvlaran/overlapgraph/regionset"
)

// graphObserver implements sweep.Observer, assembling an
// IntersectionGraph exactly per the GraphBuilder contract: one node per
// region, one edge per pair confirmed to intersect in every dimension.
type graphObserver struct {
	rs  *regionset.RegionSet
	cfg *buildConfig
	g   *graph.Graph
}

func newGraphObserver(rs *regionset.RegionSet, cfg *buildConfig) *graphObserver {
	return &graphObserver{rs: rs, cfg: cfg}
}

// OnInit creates an empty graph and adds one node per region in the set.
func (o *graphObserver) OnInit(dim int) error {
	o.g = graph.New()
	for _, r := range o.rs.All() {
		if err := o.g.AddNode(graph.Node{ID: r.ID(), Region: r}); err != nil {
			return err
		}
	}
	return nil
}

// OnCandidate confirms a pairwise intersection and adds an edge when it
// holds. For a 1-d region set the sweep dimension already guarantees
// overlap; for d>1 every other dimension is re-checked.
func (o *graphObserver) OnCandidate(a, b region.Region) error {
	if a.Dimension() > 1 {
		ok, err := intersectsExceptDimension(a, b, o.cfg.sweepDimension, o.cfg.incBounds)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}

	label, ok, err := a.Intersect(b, o.cfg.incBounds)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	return o.g.AddEdge(a.ID(), b.ID(), graph.Edge{A: a.ID(), B: b.ID(), Label: label})
}

// OnBegin and OnEnd do nothing; membership in the active set is all the
// driver needs and the observer has no per-region bookkeeping of its own.
func (o *graphObserver) OnBegin(region.Region, map[string]region.Region) error { return nil }
func (o *graphObserver) OnEnd(region.Region, map[string]region.Region) error   { return nil }

// OnDone is a no-op; the finished graph is read back via o.g after Run
// returns, not returned through the Observer interface.
func (o *graphObserver) OnDone() error { return nil }

// intersectsExceptDimension reports whether a and b intersect on every
// factor other than skip.
func intersectsExceptDimension(a, b region.Region, skip int, incBounds bool) (bool, error) {
	af, bf := a.Factors(), b.Factors()
	for i := range af {
		if i == skip {
			continue
		}
		if !af[i].IsIntersecting(bf[i], incBounds) {
			return false, nil
		}
	}
	return true, nil
}
