package sweep

import "github.com/katalvlaran/overlapgraph/region"

// Observer receives callbacks from Run as it walks a timeline. All
// callbacks that can fail return an error; Run aborts on the first one.
type Observer interface {
	// OnInit is called once, before any region event, with the swept
	// dimension.
	OnInit(dim int) error

	// OnBegin is called when r becomes active. active contains every
	// region whose Begin has fired and End has not, r included.
	OnBegin(r region.Region, active map[string]region.Region) error

	// OnCandidate is called once per unordered pair (a, b) whose
	// projections overlap on the swept dimension, at the moment the
	// later of the two begins.
	OnCandidate(a, b region.Region) error

	// OnEnd is called when r becomes inactive, after r has been removed
	// from the active set; implementations must not rely on r's
	// presence in active.
	OnEnd(r region.Region, active map[string]region.Region) error

	// OnDone is called once, after the Done event.
	OnDone() error
}
