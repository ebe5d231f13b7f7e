package sweep

import (
	"sort"

	"github.com/katalvlaran/overlapgraph/region"
	"github.com/katalvlaran/overlapgraph/regionset"
	"github.com/katalvlaran/overlapgraph/timeline"
)

// Run drives a one-pass sweep over rs along dim, dispatching obs's
// callbacks per the Timeline event order. The active set is keyed by
// region ID with O(1) insertion and removal; OnCandidate is nonetheless
// dispatched in sorted-ID order so the candidate-pair sequence is
// reproducible across runs, since Go's map iteration order is randomized.
func Run(rs *regionset.RegionSet, dim int, obs Observer) error {
	if obs == nil {
		return ErrNilObserver
	}

	tl := timeline.New(rs)
	events, err := tl.Events(dim)
	if err != nil {
		return err
	}

	active := make(map[string]region.Region)
	for _, ev := range events {
		switch ev.Kind {
		case timeline.Init:
			if err := obs.OnInit(dim); err != nil {
				return err
			}
		case timeline.Begin:
			r := ev.Context
			activeIDs := make([]string, 0, len(active))
			for id := range active {
				activeIDs = append(activeIDs, id)
			}
			sort.Strings(activeIDs)
			for _, id := range activeIDs {
				if err := obs.OnCandidate(active[id], r); err != nil {
					return err
				}
			}
			active[r.ID()] = r
			if err := obs.OnBegin(r, active); err != nil {
				return err
			}
		case timeline.End:
			r := ev.Context
			delete(active, r.ID())
			if err := obs.OnEnd(r, active); err != nil {
				return err
			}
		case timeline.Done:
			if err := obs.OnDone(); err != nil {
				return err
			}
		}
	}
	return nil
}
