// Package sweep implements the generic one-pass sweep-line driver: it
// walks a timeline.Timeline along one dimension, maintains the active
// set of regions currently "open" on that axis, and reports candidate
// overlapping pairs to an Observer.
//
// What:
//
//	Run(rs, dim, obs) iterates rs's Events(dim) in order. On Init it
//	calls obs.OnInit and starts an empty active set. On Begin(R), every
//	region already in the active set is reported as a candidate pair
//	against R via obs.OnCandidate, then R is inserted. On End(R), R is
//	removed from the active set before obs.OnEnd is called. On Done,
//	obs.OnDone is called.
//
// Why:
//
//	This produces, for d=1, exactly the set of overlapping interval
//	pairs with no duplicates: each unordered pair is examined once, at
//	the later region's Begin. For d>1 it enumerates a superset (pairs
//	whose projections overlap on the swept axis); the Observer is
//	responsible for the full-dimension confirmation.
//
// Complexity: O(n log n) for timeline construction plus O(m) candidate
// dispatches, where m is the number of projection-overlap pairs.
//
// Errors: Run propagates any error returned by timeline.Timeline.Events
// or by an Observer callback, unchanged.
package sweep
