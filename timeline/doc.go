// Package timeline converts a regionset.RegionSet into a totally-ordered
// stream of events along one chosen sweep dimension: one Init event, one
// Begin and one End event per Region, and one Done event.
//
// Event order:
//
//	Compare (When, Order, Kind, Context.ID) lexicographically:
//	  - lower When first;
//	  - then lower Order first (Init < End-of-nonzero-length < zero-length
//	    Begin/End < Begin-of-nonzero-length < Done);
//	  - if Order ties and the two events share the same Context, lower
//	    Kind first (Init < Begin < End < Done);
//	  - otherwise lower Context.ID first.
//
// This ordering makes adjacent regions (one ending exactly where another
// begins) not overlap by default: the ending event of a non-zero-length
// region sorts before a beginning event at the same When. Zero-length
// regions collapse Begin and End to the same When with Order=0, and tie
// on Kind since they share a Context.
//
// Events is computed eagerly into a sorted slice (O(n log n) via
// sort.SliceStable) and never streamed; this mirrors spec.md's
// requirement of "an in-memory sorted container", not a lazy generator.
package timeline
