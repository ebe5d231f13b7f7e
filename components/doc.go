// Package components partitions an IntersectionGraph into maximal sets
// of nodes that mutually overlap, directly or transitively — "overlap
// clusters".
//
// What:
//
//	Find(g) returns every connected component as a slice of node IDs.
//	Of(g, id) returns the component containing id, or nil if id is
//	absent.
//
// Why:
//
//	The original implementation builds its graph with networkx.Graph,
//	which gives every caller free access to connected_components. The
//	graph package here carries no such algorithm, so this package
//	supplies it with the same depth-first-marking walk the teacher uses
//	for graph traversal, generalized to visit every unvisited node
//	rather than stopping at one root.
package components
